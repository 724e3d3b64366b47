package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

const (
	ScheduleStatusActive    = "active"
	ScheduleStatusCompleted = "completed"
)

// UserSchedule is the header row for one user's attempt at following a role
// model's schedule. A user has at most one active header, enforced through
// users.active_schedule_id rather than a uniqueness constraint here.
type UserSchedule struct {
	ID          uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	UserID      uuid.UUID `gorm:"type:uuid;not null;index:ix_user_schedules_user_id" json:"user_id"`
	RoleModelID uuid.UUID `gorm:"type:uuid;not null;index:ix_user_schedules_role_model_id" json:"role_model_id"`

	// Denormalized for display so ranking rows survive role-model edits.
	RoleModelName string `gorm:"type:text;not null" json:"role_model_name"`

	Status     string         `gorm:"type:text;not null;default:'active';check:status IN ('active','completed')" json:"status"`
	TotalScore int            `gorm:"not null;default:0" json:"total_score"`
	StartDate  datatypes.Date `gorm:"not null" json:"start_date"`
	EndDate    datatypes.Date `gorm:"not null" json:"end_date"`

	CreatedAt time.Time `gorm:"autoCreateTime;not null;default:CURRENT_TIMESTAMP" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime;not null;default:CURRENT_TIMESTAMP" json:"updated_at"`

	// UserSchedule <-> User
	User *User `gorm:"foreignKey:UserID;references:ID;constraint:OnDelete:CASCADE,OnUpdate:CASCADE;" json:"-"`

	// UserSchedule <-> RoleModel
	RoleModel *RoleModel `gorm:"foreignKey:RoleModelID;references:ID;constraint:OnDelete:RESTRICT,OnUpdate:CASCADE;" json:"-"`

	// UserSchedule <-> UserTask (one-to-many)
	Tasks []UserTask `gorm:"constraint:OnDelete:CASCADE,OnUpdate:CASCADE;" json:"tasks,omitempty"`
}

func (UserSchedule) TableName() string { return "user_schedules" }
