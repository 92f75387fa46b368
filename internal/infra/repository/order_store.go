package repository

import (
	"context"
	"errors"

	"pincart/internal/domain/model"
	domainrepo "pincart/internal/repository"
	"pincart/internal/store"
)

const tableOrders = "orders"

type orderStore struct {
	r runner
}

func NewOrderStoreRepository(s *store.Store) domainrepo.OrderRepository {
	return &orderStore{r: s}
}

func (u *orderStore) Create(ctx context.Context, order model.Order) (model.Order, error) {
	err := u.r.Update(func(tx *store.Tx) error {
		id, err := store.TableOf[model.Order](tx, tableOrders).Insert(order)
		if err != nil {
			return err
		}
		order.ID = id
		return nil
	})
	if err != nil {
		return model.Order{}, err
	}
	return order, nil
}

func (u *orderStore) FindCartLine(ctx context.Context, userID, itemID, shopID int) (model.Order, error) {
	var out model.Order
	found := false
	err := u.r.View(func(tx *store.Tx) error {
		rows, err := store.TableOf[model.Order](tx, tableOrders).Search(func(rec model.Order) bool {
			return rec.UserID == userID &&
				rec.ItemID == itemID &&
				rec.ShopID == shopID &&
				rec.Status == model.OrderStatusCart
		})
		if err != nil {
			return err
		}
		if len(rows) > 0 {
			out = rows[0].Rec
			out.ID = rows[0].ID
			found = true
		}
		return nil
	})
	if err != nil {
		return model.Order{}, err
	}
	if !found {
		return model.Order{}, domainrepo.ErrNotFound
	}
	return out, nil
}

func (u *orderStore) ListByUser(ctx context.Context, userID int) ([]model.Order, error) {
	return u.list(func(rec model.Order) bool {
		return rec.UserID == userID
	})
}

func (u *orderStore) ListCartByUser(ctx context.Context, userID int) ([]model.Order, error) {
	return u.list(func(rec model.Order) bool {
		return rec.UserID == userID && rec.Status == model.OrderStatusCart
	})
}

func (u *orderStore) list(match func(rec model.Order) bool) ([]model.Order, error) {
	var out []model.Order
	err := u.r.View(func(tx *store.Tx) error {
		rows, err := store.TableOf[model.Order](tx, tableOrders).Search(match)
		if err != nil {
			return err
		}
		out = make([]model.Order, 0, len(rows))
		for _, row := range rows {
			row.Rec.ID = row.ID
			out = append(out, row.Rec)
		}
		return nil
	})
	return out, err
}

func (u *orderStore) Update(ctx context.Context, order model.Order) error {
	err := u.r.Update(func(tx *store.Tx) error {
		_, err := store.TableOf[model.Order](tx, tableOrders).Update(order.ID, func(rec *model.Order) {
			*rec = order
		})
		return err
	})
	if errors.Is(err, store.ErrNotFound) {
		return domainrepo.ErrNotFound
	}
	return err
}

func (u *orderStore) Delete(ctx context.Context, orderID int) error {
	err := u.r.Update(func(tx *store.Tx) error {
		return store.TableOf[model.Order](tx, tableOrders).Delete(orderID)
	})
	if errors.Is(err, store.ErrNotFound) {
		return domainrepo.ErrNotFound
	}
	return err
}
