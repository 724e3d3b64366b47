package bootstrap

import (
	"context"
	_ "embed"

	"github.com/modelday/modelday/internal/modules/model"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"
	"gorm.io/gorm"
)

//go:embed default_role_models.yaml
var defaultRoleModelsYAML []byte

type seedRoleModel struct {
	Name        string `yaml:"name"`
	Description string `yaml:"description"`
	Philosophy  string `yaml:"philosophy"`
	Category    string `yaml:"category"`
	AvatarURL   string `yaml:"avatar_url"`
}

// EnsureDefaultRoleModelsExist seeds the role model catalog on first boot.
// The seed only runs against an empty table so operator edits survive
// restarts.
func EnsureDefaultRoleModelsExist(ctx context.Context, db *gorm.DB, log *zap.Logger) error {
	var existing int64
	if err := db.WithContext(ctx).Model(&model.RoleModel{}).Count(&existing).Error; err != nil {
		return err
	}
	if existing > 0 {
		return nil
	}

	var seeds []seedRoleModel
	if err := yaml.Unmarshal(defaultRoleModelsYAML, &seeds); err != nil {
		return err
	}

	roleModels := make([]model.RoleModel, 0, len(seeds))
	for _, s := range seeds {
		roleModels = append(roleModels, model.RoleModel{
			Name:        s.Name,
			Description: s.Description,
			Philosophy:  s.Philosophy,
			Category:    s.Category,
			AvatarURL:   s.AvatarURL,
		})
	}

	if err := db.WithContext(ctx).Create(&roleModels).Error; err != nil {
		return err
	}
	log.Sugar().Infow("default role models seeded", "count", len(roleModels))
	return nil
}
