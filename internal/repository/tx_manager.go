package repository

import "context"

// 書き込みセクション内で使うリポジトリ一式
type TxRepos interface {
	Users() UserRepository
	Sessions() SessionRepository
	Shops() ShopRepository
	Items() ItemRepository
	Addresses() AddressRepository
	Orders() OrderRepository
}

// Usecaseからクリティカルセクションの開始/巻き戻しを隠す。
// read-modify-write（一意チェック、数量マージ、一括確定）は必ずこの中で行う。
type TxManager interface {
	WithinTx(ctx context.Context, fn func(r TxRepos) error) error
}
