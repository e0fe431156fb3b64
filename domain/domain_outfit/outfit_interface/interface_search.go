package outfit_interface

import (
	"context"

	"github.com/stylesong/stylesong/domain/domain_outfit/outfit_models"
)

type SearchRepository interface {
	Search(ctx context.Context, query, category string, limit int) ([]outfit_models.OutfitRecord, error)
}
