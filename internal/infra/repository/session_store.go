package repository

import (
	"context"
	"errors"

	"pincart/internal/domain/model"
	domainrepo "pincart/internal/repository"
	"pincart/internal/store"
)

const tableSessions = "sessions"

type sessionStore struct {
	r runner
}

func NewSessionStoreRepository(s *store.Store) domainrepo.SessionRepository {
	return &sessionStore{r: s}
}

func (u *sessionStore) Create(ctx context.Context, session model.Session) (model.Session, error) {
	err := u.r.Update(func(tx *store.Tx) error {
		id, err := store.TableOf[model.Session](tx, tableSessions).Insert(session)
		if err != nil {
			return err
		}
		session.ID = id
		return nil
	})
	if err != nil {
		return model.Session{}, err
	}
	return session, nil
}

func (u *sessionStore) FindByToken(ctx context.Context, token string) (model.Session, error) {
	var out model.Session
	found := false
	err := u.r.View(func(tx *store.Tx) error {
		rows, err := store.TableOf[model.Session](tx, tableSessions).Search(func(rec model.Session) bool {
			return rec.Token == token
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
		return model.Session{}, err
	}
	if !found {
		return model.Session{}, domainrepo.ErrNotFound
	}
	return out, nil
}

func (u *sessionStore) DeleteByToken(ctx context.Context, token string) error {
	//検索と削除は同じセクションで行う
	err := u.r.Update(func(tx *store.Tx) error {
		tbl := store.TableOf[model.Session](tx, tableSessions)
		rows, err := tbl.Search(func(rec model.Session) bool {
			return rec.Token == token
		})
		if err != nil {
			return err
		}
		if len(rows) == 0 {
			return store.ErrNotFound
		}
		return tbl.Delete(rows[0].ID)
	})
	if errors.Is(err, store.ErrNotFound) {
		return domainrepo.ErrNotFound
	}
	return err
}
