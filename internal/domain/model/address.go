package model

// 配送先・店舗の両方で使う住所
type Address struct {
	ID int `json:"-"`

	//宛名
	PersonName string `json:"person_name"`

	//郵便番号（ピンコード）
	Pincode int `json:"pincode"`

	//建物名など
	Building string `json:"building"`

	//番地など（任意）
	Street string `json:"street"`

	//目印（任意）
	Landmark string `json:"landmark"`

	//市区町村
	City string `json:"city"`

	//地区
	District string `json:"district"`

	//州・都道府県
	State string `json:"state"`
}

// 一覧表示用の短い表記
func (a Address) ShortLabel() string {
	return a.Building + ", " + a.City
}
