package usecase

import (
	"errors"
	"fmt"
)

var (
	//400 入力不足
	ErrValidation = errors.New("validation error")
	//409 一意制約（メール重複）
	ErrAlreadyExists = errors.New("already exists")
	//401 認証失敗。メール不存在とパスワード不一致は区別して返さない
	ErrAuthenticationFailed = errors.New("authentication failed")
	//404 参照先が無い
	ErrNotFound = errors.New("not found")
)

// カートと追加先店舗のピンコードが食い違ったとき。
// 呼び出し側がカートのクリアを促せるように現在のピンコードを持たせる。
type PincodeConflictError struct {
	CartPincode int
}

func (e *PincodeConflictError) Error() string {
	return fmt.Sprintf("cart is locked to pincode %d", e.CartPincode)
}
