package usecase_test

import (
	"context"
	"path/filepath"
	"testing"

	infraRepo "pincart/internal/infra/repository"
	"pincart/internal/store"
	"pincart/internal/usecase"

	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

// 実ストア（一時ファイル）の上にUsecase一式を組むテスト環境
type testEnv struct {
	auth      *usecase.AuthUsecase
	catalog   *usecase.CatalogUsecase
	orders    *usecase.OrderUsecase
	addresses *usecase.AddressUsecase
}

func newEnv(t *testing.T) *testEnv {
	t.Helper()

	st, err := store.Open(filepath.Join(t.TempDir(), "store.json"))
	require.NoError(t, err)

	userRepo := infraRepo.NewUserStoreRepository(st)
	sessionRepo := infraRepo.NewSessionStoreRepository(st)
	shopRepo := infraRepo.NewShopStoreRepository(st)
	itemRepo := infraRepo.NewItemStoreRepository(st)
	addressRepo := infraRepo.NewAddressStoreRepository(st)
	orderRepo := infraRepo.NewOrderStoreRepository(st)
	tx := infraRepo.NewTxManagerStore(st)

	return &testEnv{
		//テストなのでbcryptは最小コスト
		auth:      usecase.NewAuthUsecase(tx, userRepo, sessionRepo, addressRepo, bcrypt.MinCost),
		catalog:   usecase.NewCatalogUsecase(tx, shopRepo, itemRepo, addressRepo),
		orders:    usecase.NewOrderUsecase(tx, orderRepo, itemRepo, shopRepo),
		addresses: usecase.NewAddressUsecase(tx, addressRepo, userRepo),
	}
}

func testAddress(pincode int) usecase.AddressInput {
	return usecase.AddressInput{
		PersonName: "Test Person",
		Pincode:    pincode,
		Building:   "1 Test Building",
		City:       "Sikar",
		District:   "Sikar",
		State:      "Rajasthan",
	}
}

// ピンコード付きの店舗を1軒作る
func (e *testEnv) createShop(t *testing.T, name string, pincode int) usecase.ShopDTO {
	t.Helper()
	ctx := context.Background()

	addr, err := e.addresses.AddAddress(ctx, testAddress(pincode))
	require.NoError(t, err)

	shop, err := e.catalog.CreateShop(ctx, name, addr.ID)
	require.NoError(t, err)
	return shop
}

// 商品を作って店舗の取り扱いに入れる
func (e *testEnv) createItem(t *testing.T, shopID int, name string, price float64) usecase.ItemDTO {
	t.Helper()
	ctx := context.Background()

	item, err := e.catalog.CreateItem(ctx, name, price, "")
	require.NoError(t, err)
	require.NoError(t, e.catalog.AddItemToShop(ctx, shopID, item.ID))
	return item
}

// 会員登録（住所1件付き）。登録時の住所IDも返す
func (e *testEnv) registerUser(t *testing.T, email string, pincode int) (usecase.UserDTO, int) {
	t.Helper()

	addr := testAddress(pincode)
	user, err := e.auth.Register(context.Background(), usecase.RegisterInput{
		FirstName: "Taro",
		LastName:  "Test",
		Email:     email,
		Password:  "password123",
		Address:   &addr,
	})
	require.NoError(t, err)
	require.Len(t, user.Addresses, 1)
	return user, user.Addresses[0].ID
}
