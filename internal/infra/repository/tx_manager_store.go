package repository

import (
	"context"

	repo "pincart/internal/repository"
	"pincart/internal/store"
)

// runner は「このコードを読み取り/書き込みセクションで動かす」の抽象。
// Storeそのもの（都度セクションを開く）と、開いているTx（そのまま使う）の
// 2実装があり、同じリポジトリ実装を単発呼び出しとWithinTxの両方で使い回す。
type runner interface {
	View(fn func(tx *store.Tx) error) error
	Update(fn func(tx *store.Tx) error) error
}

// 開いているTxに相乗りするrunner
type txRunner struct {
	tx *store.Tx
}

func (r txRunner) View(fn func(tx *store.Tx) error) error   { return fn(r.tx) }
func (r txRunner) Update(fn func(tx *store.Tx) error) error { return fn(r.tx) }

type txReposStore struct {
	users     repo.UserRepository
	sessions  repo.SessionRepository
	shops     repo.ShopRepository
	items     repo.ItemRepository
	addresses repo.AddressRepository
	orders    repo.OrderRepository
}

func (r *txReposStore) Users() repo.UserRepository       { return r.users }
func (r *txReposStore) Sessions() repo.SessionRepository { return r.sessions }
func (r *txReposStore) Shops() repo.ShopRepository       { return r.shops }
func (r *txReposStore) Items() repo.ItemRepository       { return r.items }
func (r *txReposStore) Addresses() repo.AddressRepository {
	return r.addresses
}
func (r *txReposStore) Orders() repo.OrderRepository { return r.orders }

type TxManagerStore struct {
	s *store.Store
}

func NewTxManagerStore(s *store.Store) *TxManagerStore {
	return &TxManagerStore{s: s}
}

// WithinTx は書き込みセクションを1つだけ開き、
// その中で動くリポジトリ一式をfnへ渡す。fnのエラーで全体が巻き戻る。
func (tm *TxManagerStore) WithinTx(ctx context.Context, fn func(r repo.TxRepos) error) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	return tm.s.Update(func(tx *store.Tx) error {
		run := txRunner{tx: tx}
		r := &txReposStore{
			users:     &userStore{r: run},
			sessions:  &sessionStore{r: run},
			shops:     &shopStore{r: run},
			items:     &itemStore{r: run},
			addresses: &addressStore{r: run},
			orders:    &orderStore{r: run},
		}
		return fn(r)
	})
}
