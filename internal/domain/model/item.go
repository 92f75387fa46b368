package model

// 商品。作成後は変更しない。
type Item struct {
	ID    int     `json:"-"`
	Name  string  `json:"name"`
	Price float64 `json:"price"`

	//商品画像のファイル名（任意）
	ImageName string `json:"image_name"`
}
