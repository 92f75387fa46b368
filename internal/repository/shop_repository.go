package repository

import (
	"context"

	"pincart/internal/domain/model"
)

type ShopRepository interface {
	Create(ctx context.Context, shop model.Shop) (model.Shop, error)

	FindByID(ctx context.Context, shopID int) (model.Shop, error)

	//全店舗を保存順で返す（ピンコード絞り込みは住所と突き合わせるのでusecase側）
	List(ctx context.Context) ([]model.Shop, error)

	//取り扱い商品を末尾に追加
	AddItem(ctx context.Context, shopID int, itemID int) error
}
