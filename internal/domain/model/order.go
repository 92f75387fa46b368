package model

import "time"

type OrderStatus string

const (
	OrderStatusCart      OrderStatus = "Cart"
	OrderStatusPlaced    OrderStatus = "Placed"
	OrderStatusDelivered OrderStatus = "Delivered"
)

// ステータスの表示順（Cart < Placed < Delivered）
var orderStatusRank = map[OrderStatus]int{
	OrderStatusCart:      0,
	OrderStatusPlaced:    1,
	OrderStatusDelivered: 2,
}

func (s OrderStatus) Rank() int {
	return orderStatusRank[s]
}

// 注文1行。
// (user_id, item_id, shop_id, status=Cart) はユーザーごとに高々1行。
type Order struct {
	ID int `json:"-"`

	PlacedAt  time.Time `json:"placed_at"`
	UpdatedAt time.Time `json:"updated_at"`

	UserID int `json:"user_id"`
	ItemID int `json:"item_id"`
	ShopID int `json:"shop_id"`

	//常に1以上。0になる場合は行ごと削除する。
	Quantity int `json:"quantity"`

	Status OrderStatus `json:"status"`

	//カート中はnil。確定時に配送先が入る。
	AddressID *int `json:"address_id"`
}
