package tryon_interface

import (
	"context"

	"github.com/stylesong/stylesong/domain/domain_tryon/tryon_models"
)

// GenerationRepository 第三方生成式试穿服务
type GenerationRepository interface {
	Generate(ctx context.Context, humanImageRef, garmentImageRef string) (string, error)
}

type TryOnTaskRepository interface {
	Save(ctx context.Context, task *tryon_models.TryOnTask) error
	GetByUser(ctx context.Context, userID string, limit int64) ([]tryon_models.TryOnTask, error)
}
