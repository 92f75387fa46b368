package repository

import (
	"context"
	"errors"

	"pincart/internal/domain/model"
	domainrepo "pincart/internal/repository"
	"pincart/internal/store"
)

const tableUsers = "users"

type userStore struct {
	r runner
}

// DI
// main.goでこれをnewしてusecaseに注入する。
func NewUserStoreRepository(s *store.Store) domainrepo.UserRepository {
	return &userStore{r: s}
}

func (u *userStore) Create(ctx context.Context, user model.User) (model.User, error) {
	err := u.r.Update(func(tx *store.Tx) error {
		id, err := store.TableOf[model.User](tx, tableUsers).Insert(user)
		if err != nil {
			return err
		}
		user.ID = id
		return nil
	})
	if err != nil {
		return model.User{}, err
	}
	return user, nil
}

func (u *userStore) FindByID(ctx context.Context, userID int) (model.User, error) {
	var out model.User
	err := u.r.View(func(tx *store.Tx) error {
		rec, err := store.TableOf[model.User](tx, tableUsers).Get(userID)
		if err != nil {
			return err
		}
		rec.ID = userID
		out = rec
		return nil
	})
	if errors.Is(err, store.ErrNotFound) {
		return model.User{}, domainrepo.ErrNotFound
	}
	return out, err
}

func (u *userStore) FindByEmail(ctx context.Context, email string) (model.User, error) {
	var out model.User
	found := false
	err := u.r.View(func(tx *store.Tx) error {
		rows, err := store.TableOf[model.User](tx, tableUsers).Search(func(rec model.User) bool {
			return rec.Email == email
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
		return model.User{}, err
	}
	if !found {
		return model.User{}, domainrepo.ErrNotFound
	}
	return out, nil
}

func (u *userStore) Update(ctx context.Context, user model.User) error {
	err := u.r.Update(func(tx *store.Tx) error {
		_, err := store.TableOf[model.User](tx, tableUsers).Update(user.ID, func(rec *model.User) {
			*rec = user
		})
		return err
	})
	if errors.Is(err, store.ErrNotFound) {
		return domainrepo.ErrNotFound
	}
	return err
}
