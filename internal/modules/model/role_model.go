package model

import (
	"time"

	"github.com/google/uuid"
)

// RoleModel is a catalog entry users can choose to emulate. Read-only to the
// scheduling flows; its philosophy text grounds the customization prompt.
type RoleModel struct {
	ID          uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	Name        string    `gorm:"type:text;not null;uniqueIndex:uq_role_models_name" json:"name"`
	Description string    `gorm:"type:text" json:"description"`
	Philosophy  string    `gorm:"type:text" json:"philosophy"`
	Category    string    `gorm:"type:text" json:"category"`
	AvatarURL   string    `gorm:"type:text" json:"avatar_url"`

	CreatedAt time.Time `gorm:"autoCreateTime;not null;default:CURRENT_TIMESTAMP" json:"created_at"`
}

func (RoleModel) TableName() string { return "role_models" }
