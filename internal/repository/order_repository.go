package repository

import (
	"context"

	"pincart/internal/domain/model"
)

type OrderRepository interface {
	Create(ctx context.Context, order model.Order) (model.Order, error)

	//(user, item, shop, status=Cart) のカート行を1件取得
	FindCartLine(ctx context.Context, userID, itemID, shopID int) (model.Order, error)

	//ユーザーの全注文を保存順で返す
	ListByUser(ctx context.Context, userID int) ([]model.Order, error)

	//ユーザーのカート行だけを保存順で返す
	ListCartByUser(ctx context.Context, userID int) ([]model.Order, error)

	//行全体を上書き（数量・ステータス・配送先の更新）
	Update(ctx context.Context, order model.Order) error

	//数量0になった行の削除
	Delete(ctx context.Context, orderID int) error
}
