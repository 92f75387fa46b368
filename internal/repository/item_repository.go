package repository

import (
	"context"

	"pincart/internal/domain/model"
)

type ItemRepository interface {
	Create(ctx context.Context, item model.Item) (model.Item, error)

	FindByID(ctx context.Context, itemID int) (model.Item, error)
}
