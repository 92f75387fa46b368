package repository

import (
	"context"
	"errors"

	"pincart/internal/domain/model"
	domainrepo "pincart/internal/repository"
	"pincart/internal/store"
)

const tableAddresses = "addresses"

type addressStore struct {
	r runner
}

func NewAddressStoreRepository(s *store.Store) domainrepo.AddressRepository {
	return &addressStore{r: s}
}

func (u *addressStore) Create(ctx context.Context, address model.Address) (model.Address, error) {
	err := u.r.Update(func(tx *store.Tx) error {
		id, err := store.TableOf[model.Address](tx, tableAddresses).Insert(address)
		if err != nil {
			return err
		}
		address.ID = id
		return nil
	})
	if err != nil {
		return model.Address{}, err
	}
	return address, nil
}

func (u *addressStore) FindByID(ctx context.Context, addressID int) (model.Address, error) {
	var out model.Address
	err := u.r.View(func(tx *store.Tx) error {
		rec, err := store.TableOf[model.Address](tx, tableAddresses).Get(addressID)
		if err != nil {
			return err
		}
		rec.ID = addressID
		out = rec
		return nil
	})
	if errors.Is(err, store.ErrNotFound) {
		return model.Address{}, domainrepo.ErrNotFound
	}
	return out, err
}
