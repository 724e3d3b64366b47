package model

import (
	"time"

	"github.com/google/uuid"
)

type User struct {
	ID    uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	Email string    `gorm:"type:text;not null;uniqueIndex:uq_users_email" json:"email"`
	Name  string    `gorm:"type:text;not null" json:"name"`

	// Back-reference to the single schedule the user is currently running.
	// This pointer is the mechanism behind the one-active-schedule rule.
	ActiveScheduleID *uuid.UUID `gorm:"type:uuid;index:ix_users_active_schedule_id" json:"active_schedule_id"`

	CreatedAt time.Time `gorm:"autoCreateTime;not null;default:CURRENT_TIMESTAMP" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime;not null;default:CURRENT_TIMESTAMP" json:"updated_at"`

	// User <-> UserSchedule
	Schedules []UserSchedule `gorm:"constraint:OnDelete:CASCADE,OnUpdate:CASCADE;" json:"-"`
}

func (User) TableName() string { return "users" }
