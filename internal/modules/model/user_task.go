package model

import (
	"time"

	"github.com/google/uuid"
)

// UserTask is one confirmed time-block owned by a UserSchedule. The rows for
// a schedule are created in a single batch at confirm time; display_order is
// a dense 1..N sequence preserving the slot order at confirmation and is the
// only ordering guarantee.
type UserTask struct {
	ID             uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	UserScheduleID uuid.UUID `gorm:"type:uuid;not null;index:ix_user_tasks_schedule_id;uniqueIndex:uq_schedule_id_order,priority:1" json:"user_schedule_id"`

	StartTime    string `gorm:"type:time;not null" json:"start_time"`
	EndTime      string `gorm:"type:time;not null" json:"end_time"`
	ActivityName string `gorm:"type:text;not null" json:"activity_name"`
	Category     string `gorm:"type:text;not null" json:"category"`
	IsCompleted  bool   `gorm:"not null;default:false" json:"is_completed"`
	DisplayOrder int    `gorm:"not null;uniqueIndex:uq_schedule_id_order,priority:2" json:"display_order"`

	StartedAt         *time.Time `json:"started_at,omitempty"`
	CompletedAt       *time.Time `json:"completed_at,omitempty"`
	CompletedDuration *int       `json:"completed_duration,omitempty"`

	CreatedAt time.Time `gorm:"autoCreateTime;not null;default:CURRENT_TIMESTAMP" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime;not null;default:CURRENT_TIMESTAMP" json:"updated_at"`

	// UserTask <-> UserSchedule
	UserSchedule *UserSchedule `gorm:"foreignKey:UserScheduleID;references:ID;constraint:OnDelete:CASCADE,OnUpdate:CASCADE;" json:"-"`
}

func (UserTask) TableName() string { return "user_tasks" }
