package repository

import (
	"context"

	"pincart/internal/domain/model"
)

// 住所(Address)を保存・取得する窓口。
// 住所は削除しない設計なのでDeleteは無い。
type AddressRepository interface {
	//作成後はaddress（IDが埋まったもの）を返す
	Create(ctx context.Context, address model.Address) (model.Address, error)

	//住所IDから住所を1件取得
	FindByID(ctx context.Context, addressID int) (model.Address, error)
}
