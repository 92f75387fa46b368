package usecase

import (
	"context"
	"encoding/hex"
	"errors"
	"time"

	"pincart/internal/domain/model"
	"pincart/internal/repository"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

type UserDTO struct {
	ID        int          `json:"id"`
	Email     string       `json:"email"`
	FirstName string       `json:"first_name"`
	LastName  string       `json:"last_name"`
	Addresses []AddressDTO `json:"addresses"`
}

type SessionDTO struct {
	Token     string    `json:"token"`
	CreatedAt time.Time `json:"created_at"`
}

type RegisterInput struct {
	FirstName string
	LastName  string
	Email     string
	Password  string

	//会員登録と同時に住所を1件作る場合だけ指定
	Address *AddressInput
}

type AuthUsecase struct {
	tx        repository.TxManager
	users     repository.UserRepository
	sessions  repository.SessionRepository
	addresses repository.AddressRepository

	bcryptCost int
}

func NewAuthUsecase(
	tx repository.TxManager,
	users repository.UserRepository,
	sessions repository.SessionRepository,
	addresses repository.AddressRepository,
	bcryptCost int,
) *AuthUsecase {
	return &AuthUsecase{
		tx:         tx,
		users:      users,
		sessions:   sessions,
		addresses:  addresses,
		bcryptCost: bcryptCost,
	}
}

// Register は会員を新規作成する。
// メールの一意チェックと挿入は同じ書き込みセクションで行う（check-then-actの競合対策）。
func (u *AuthUsecase) Register(ctx context.Context, in RegisterInput) (UserDTO, error) {
	if in.FirstName == "" || in.LastName == "" || in.Email == "" || in.Password == "" {
		return UserDTO{}, ErrValidation
	}

	//ハッシュ化はロックの外でやる
	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), u.bcryptCost)
	if err != nil {
		return UserDTO{}, err
	}

	var created model.User
	var addrs []model.Address

	err = u.tx.WithinTx(ctx, func(r repository.TxRepos) error {
		_, err := r.Users().FindByEmail(ctx, in.Email)
		if err == nil {
			return ErrAlreadyExists
		}
		if !errors.Is(err, repository.ErrNotFound) {
			return err
		}

		var addressIDs []int
		if in.Address != nil {
			a, err := r.Addresses().Create(ctx, model.Address{
				PersonName: in.Address.PersonName,
				Pincode:    in.Address.Pincode,
				Building:   in.Address.Building,
				Street:     in.Address.Street,
				Landmark:   in.Address.Landmark,
				City:       in.Address.City,
				District:   in.Address.District,
				State:      in.Address.State,
			})
			if err != nil {
				return err
			}
			addressIDs = append(addressIDs, a.ID)
			addrs = append(addrs, a)
		}

		created, err = r.Users().Create(ctx, model.User{
			Email:        in.Email,
			PasswordHash: string(hash),
			FirstName:    in.FirstName,
			LastName:     in.LastName,
			AddressIDs:   addressIDs,
		})
		return err
	})
	if err != nil {
		return UserDTO{}, err
	}

	return toUserDTO(created, addrs), nil
}

// Login はメールとパスワードを照合する。
// メールが無いのか、パスワード違いなのかは呼び出し側に区別させない。
func (u *AuthUsecase) Login(ctx context.Context, email, password string) (UserDTO, error) {
	if email == "" || password == "" {
		return UserDTO{}, ErrAuthenticationFailed
	}

	user, err := u.users.FindByEmail(ctx, email)
	if errors.Is(err, repository.ErrNotFound) {
		return UserDTO{}, ErrAuthenticationFailed
	}
	if err != nil {
		return UserDTO{}, err
	}

	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		return UserDTO{}, ErrAuthenticationFailed
	}

	addrs, err := u.resolveAddresses(ctx, user)
	if err != nil {
		return UserDTO{}, err
	}
	return toUserDTO(user, addrs), nil
}

// CreateSession はログイン済みユーザーにセッショントークンを発行する。
// 同一ユーザーが複数セッションを持ってよい。
func (u *AuthUsecase) CreateSession(ctx context.Context, userID int) (SessionDTO, error) {
	sess, err := u.sessions.Create(ctx, model.Session{
		UserID:    userID,
		Token:     newSessionToken(),
		CreatedAt: time.Now().UTC(),
	})
	if err != nil {
		return SessionDTO{}, err
	}
	return SessionDTO{Token: sess.Token, CreatedAt: sess.CreatedAt}, nil
}

// ResolveToken はトークンからログイン中ユーザーを引く。
// セッションのuser_idで直接引く。パスワードの再照合はしない。
func (u *AuthUsecase) ResolveToken(ctx context.Context, token string) (UserDTO, error) {
	if token == "" {
		return UserDTO{}, ErrAuthenticationFailed
	}

	sess, err := u.sessions.FindByToken(ctx, token)
	if errors.Is(err, repository.ErrNotFound) {
		return UserDTO{}, ErrAuthenticationFailed
	}
	if err != nil {
		return UserDTO{}, err
	}

	user, err := u.users.FindByID(ctx, sess.UserID)
	if errors.Is(err, repository.ErrNotFound) {
		//ユーザーが消えた古いセッション
		return UserDTO{}, ErrAuthenticationFailed
	}
	if err != nil {
		return UserDTO{}, err
	}

	addrs, err := u.resolveAddresses(ctx, user)
	if err != nil {
		return UserDTO{}, err
	}
	return toUserDTO(user, addrs), nil
}

// Logout はトークンのセッション行を消す。知らないトークンは何もしない。
func (u *AuthUsecase) Logout(ctx context.Context, token string) error {
	err := u.sessions.DeleteByToken(ctx, token)
	if errors.Is(err, repository.ErrNotFound) {
		return nil
	}
	return err
}

// 消えている住所参照は読み飛ばす
func (u *AuthUsecase) resolveAddresses(ctx context.Context, user model.User) ([]model.Address, error) {
	addrs := make([]model.Address, 0, len(user.AddressIDs))
	for _, id := range user.AddressIDs {
		a, err := u.addresses.FindByID(ctx, id)
		if errors.Is(err, repository.ErrNotFound) {
			continue
		}
		if err != nil {
			return nil, err
		}
		addrs = append(addrs, a)
	}
	return addrs, nil
}

// uuid4のhex表記（32文字）
func newSessionToken() string {
	id := uuid.New()
	return hex.EncodeToString(id[:])
}

func toUserDTO(user model.User, addrs []model.Address) UserDTO {
	out := UserDTO{
		ID:        user.ID,
		Email:     user.Email,
		FirstName: user.FirstName,
		LastName:  user.LastName,
		Addresses: make([]AddressDTO, 0, len(addrs)),
	}
	for _, a := range addrs {
		out.Addresses = append(out.Addresses, toAddressDTO(a))
	}
	return out
}
