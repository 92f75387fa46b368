package repository

import (
	"context"
	"errors"

	"pincart/internal/domain/model"
	domainrepo "pincart/internal/repository"
	"pincart/internal/store"
)

const tableShops = "shops"

type shopStore struct {
	r runner
}

func NewShopStoreRepository(s *store.Store) domainrepo.ShopRepository {
	return &shopStore{r: s}
}

func (u *shopStore) Create(ctx context.Context, shop model.Shop) (model.Shop, error) {
	if shop.ItemIDs == nil {
		shop.ItemIDs = []int{}
	}
	err := u.r.Update(func(tx *store.Tx) error {
		id, err := store.TableOf[model.Shop](tx, tableShops).Insert(shop)
		if err != nil {
			return err
		}
		shop.ID = id
		return nil
	})
	if err != nil {
		return model.Shop{}, err
	}
	return shop, nil
}

func (u *shopStore) FindByID(ctx context.Context, shopID int) (model.Shop, error) {
	var out model.Shop
	err := u.r.View(func(tx *store.Tx) error {
		rec, err := store.TableOf[model.Shop](tx, tableShops).Get(shopID)
		if err != nil {
			return err
		}
		rec.ID = shopID
		out = rec
		return nil
	})
	if errors.Is(err, store.ErrNotFound) {
		return model.Shop{}, domainrepo.ErrNotFound
	}
	return out, err
}

func (u *shopStore) List(ctx context.Context) ([]model.Shop, error) {
	var out []model.Shop
	err := u.r.View(func(tx *store.Tx) error {
		rows, err := store.TableOf[model.Shop](tx, tableShops).Search(nil)
		if err != nil {
			return err
		}
		out = make([]model.Shop, 0, len(rows))
		for _, row := range rows {
			row.Rec.ID = row.ID
			out = append(out, row.Rec)
		}
		return nil
	})
	return out, err
}

func (u *shopStore) AddItem(ctx context.Context, shopID int, itemID int) error {
	err := u.r.Update(func(tx *store.Tx) error {
		_, err := store.TableOf[model.Shop](tx, tableShops).Update(shopID, func(rec *model.Shop) {
			rec.ItemIDs = append(rec.ItemIDs, itemID)
		})
		return err
	})
	if errors.Is(err, store.ErrNotFound) {
		return domainrepo.ErrNotFound
	}
	return err
}
