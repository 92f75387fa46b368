package model

// 店舗
type Shop struct {
	ID   int    `json:"-"`
	Name string `json:"name"`

	//店舗の所在地（Addressへの参照）
	AddressID int `json:"address_id"`

	//取り扱い商品ID（追加順）
	ItemIDs []int `json:"item_ids"`
}
