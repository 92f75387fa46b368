package model

import "time"

// ログインセッション。
// 行が存在する＝有効、削除済み＝失効の2状態のみ。
type Session struct {
	ID     int `json:"-"`
	UserID int `json:"user_id"`

	//推測不能なランダム文字列（uuid4のhex）
	Token string `json:"token"`

	CreatedAt time.Time `json:"created_at"`
}
