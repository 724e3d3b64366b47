package model

import (
	"time"

	"github.com/google/uuid"
)

// Ranking snapshots the final score of a finished schedule. One row per
// completed or cancelled schedule.
type Ranking struct {
	ID             uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	UserID         uuid.UUID `gorm:"type:uuid;not null;index:ix_rankings_user_id" json:"user_id"`
	UserScheduleID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:uq_rankings_schedule_id" json:"user_schedule_id"`

	UserName      string `gorm:"type:text;not null" json:"user_name"`
	RoleModelName string `gorm:"type:text;not null" json:"role_model_name"`
	FinalScore    int    `gorm:"not null;default:0;index:ix_rankings_final_score" json:"final_score"`

	CreatedAt time.Time `gorm:"autoCreateTime;not null;default:CURRENT_TIMESTAMP" json:"created_at"`

	// Ranking <-> User
	User *User `gorm:"foreignKey:UserID;references:ID;constraint:OnDelete:CASCADE,OnUpdate:CASCADE;" json:"-"`
}

func (Ranking) TableName() string { return "rankings" }
