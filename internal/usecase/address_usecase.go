package usecase

import (
	"context"
	"errors"
	"slices"

	"pincart/internal/domain/model"
	"pincart/internal/repository"
)

type AddressDTO struct {
	ID         int    `json:"id"`
	PersonName string `json:"person_name"`
	Pincode    int    `json:"pincode"`
	Building   string `json:"building"`
	Street     string `json:"street,omitempty"`
	Landmark   string `json:"landmark,omitempty"`
	City       string `json:"city"`
	District   string `json:"district"`
	State      string `json:"state"`
}

type AddressInput struct {
	PersonName string `json:"person_name"`
	Pincode    int    `json:"pincode"`
	Building   string `json:"building"`
	Street     string `json:"street"`
	Landmark   string `json:"landmark"`
	City       string `json:"city"`
	District   string `json:"district"`
	State      string `json:"state"`
}

type AddressUsecase struct {
	tx        repository.TxManager
	addresses repository.AddressRepository
	users     repository.UserRepository
}

func NewAddressUsecase(
	tx repository.TxManager,
	addresses repository.AddressRepository,
	users repository.UserRepository,
) *AddressUsecase {
	return &AddressUsecase{tx: tx, addresses: addresses, users: users}
}

// AddAddress は住所を新規作成する。所有者の紐付けはAttachAddressToUserで行う。
func (u *AddressUsecase) AddAddress(ctx context.Context, in AddressInput) (AddressDTO, error) {
	//入力チェック（StreetとLandmarkは任意）
	if in.PersonName == "" || in.Building == "" || in.City == "" || in.District == "" || in.State == "" {
		return AddressDTO{}, ErrValidation
	}
	if in.Pincode <= 0 {
		return AddressDTO{}, ErrValidation
	}

	created, err := u.addresses.Create(ctx, model.Address{
		PersonName: in.PersonName,
		Pincode:    in.Pincode,
		Building:   in.Building,
		Street:     in.Street,
		Landmark:   in.Landmark,
		City:       in.City,
		District:   in.District,
		State:      in.State,
	})
	if err != nil {
		return AddressDTO{}, err
	}
	return toAddressDTO(created), nil
}

// AttachAddressToUser は住所をユーザーの所有リスト末尾に加える。
// 既に持っていれば何もしない。
func (u *AddressUsecase) AttachAddressToUser(ctx context.Context, addressID, userID int) error {
	return u.tx.WithinTx(ctx, func(r repository.TxRepos) error {
		if _, err := r.Addresses().FindByID(ctx, addressID); err != nil {
			return notFoundOr(err)
		}

		user, err := r.Users().FindByID(ctx, userID)
		if err != nil {
			return notFoundOr(err)
		}
		if slices.Contains(user.AddressIDs, addressID) {
			return nil
		}
		user.AddressIDs = append(user.AddressIDs, addressID)
		return r.Users().Update(ctx, user)
	})
}

// ListByUser はユーザーの住所一覧を登録順で返す。
// 参照先が消えている住所は読み飛ばす。
func (u *AddressUsecase) ListByUser(ctx context.Context, userID int) ([]AddressDTO, error) {
	user, err := u.users.FindByID(ctx, userID)
	if err != nil {
		return nil, notFoundOr(err)
	}

	out := make([]AddressDTO, 0, len(user.AddressIDs))
	for _, id := range user.AddressIDs {
		a, err := u.addresses.FindByID(ctx, id)
		if errors.Is(err, repository.ErrNotFound) {
			continue
		}
		if err != nil {
			return nil, err
		}
		out = append(out, toAddressDTO(a))
	}
	return out, nil
}

func toAddressDTO(a model.Address) AddressDTO {
	return AddressDTO{
		ID:         a.ID,
		PersonName: a.PersonName,
		Pincode:    a.Pincode,
		Building:   a.Building,
		Street:     a.Street,
		Landmark:   a.Landmark,
		City:       a.City,
		District:   a.District,
		State:      a.State,
	}
}

// repo.ErrNotFoundをusecaseの404へ寄せる
func notFoundOr(err error) error {
	if errors.Is(err, repository.ErrNotFound) {
		return ErrNotFound
	}
	return err
}
