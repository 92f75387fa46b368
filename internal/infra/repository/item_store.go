package repository

import (
	"context"
	"errors"

	"pincart/internal/domain/model"
	domainrepo "pincart/internal/repository"
	"pincart/internal/store"
)

const tableItems = "items"

type itemStore struct {
	r runner
}

func NewItemStoreRepository(s *store.Store) domainrepo.ItemRepository {
	return &itemStore{r: s}
}

func (u *itemStore) Create(ctx context.Context, item model.Item) (model.Item, error) {
	err := u.r.Update(func(tx *store.Tx) error {
		id, err := store.TableOf[model.Item](tx, tableItems).Insert(item)
		if err != nil {
			return err
		}
		item.ID = id
		return nil
	})
	if err != nil {
		return model.Item{}, err
	}
	return item, nil
}

func (u *itemStore) FindByID(ctx context.Context, itemID int) (model.Item, error) {
	var out model.Item
	err := u.r.View(func(tx *store.Tx) error {
		rec, err := store.TableOf[model.Item](tx, tableItems).Get(itemID)
		if err != nil {
			return err
		}
		rec.ID = itemID
		out = rec
		return nil
	})
	if errors.Is(err, store.ErrNotFound) {
		return model.Item{}, domainrepo.ErrNotFound
	}
	return out, err
}
