package model

// 会員
type User struct {
	ID int `json:"-"`

	//メールはユーザー全体で一意
	Email string `json:"email"`

	//bcryptハッシュを保存する（平文は保存しない）
	PasswordHash string `json:"password_hash"`

	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`

	//所有する住所ID（登録順）
	AddressIDs []int `json:"address_ids"`
}
