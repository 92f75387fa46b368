package usecase_test

import (
	"context"
	"testing"

	"pincart/internal/domain/model"
	"pincart/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// =====================
// カート：追加と減算
// =====================

// 同じ(商品,店舗)の追加は行を増やさず数量をマージする
func TestOrderUsecase_AddToCart_MergesQuantity(t *testing.T) {
	env := newEnv(t)
	ctx := context.Background()

	shop := env.createShop(t, "Sharma Kirana", 332404)
	item := env.createItem(t, shop.ID, "Rice 1kg", 95)
	user, _ := env.registerUser(t, "taro@test.com", 332404)

	qty, err := env.orders.AddToCart(ctx, user.ID, item.ID, shop.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, qty)

	qty, err = env.orders.AddToCart(ctx, user.ID, item.ID, shop.ID)
	require.NoError(t, err)
	assert.Equal(t, 2, qty)

	out, err := env.orders.ListOrders(ctx, user.ID)
	require.NoError(t, err)
	require.Len(t, out.Cart, 1)
	assert.Equal(t, 2, out.Cart[0].Quantity)
	assert.Equal(t, string(model.OrderStatusCart), out.Cart[0].Status)
}

// 減算は1ずつ。最後の1個を減らすと行ごと消える（数量0の行は残らない）
func TestOrderUsecase_DecreaseQuantity_DeletesAtZero(t *testing.T) {
	env := newEnv(t)
	ctx := context.Background()

	shop := env.createShop(t, "Sharma Kirana", 332404)
	item := env.createItem(t, shop.ID, "Rice 1kg", 95)
	user, _ := env.registerUser(t, "taro@test.com", 332404)

	for i := 0; i < 2; i++ {
		_, err := env.orders.AddToCart(ctx, user.ID, item.ID, shop.ID)
		require.NoError(t, err)
	}

	qty, err := env.orders.DecreaseQuantity(ctx, user.ID, item.ID, shop.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, qty)

	qty, err = env.orders.DecreaseQuantity(ctx, user.ID, item.ID, shop.ID)
	require.NoError(t, err)
	assert.Equal(t, 0, qty)

	out, err := env.orders.ListOrders(ctx, user.ID)
	require.NoError(t, err)
	assert.Empty(t, out.Cart)

	//行が無い状態の減算は0を返すだけでエラーにしない
	qty, err = env.orders.DecreaseQuantity(ctx, user.ID, item.ID, shop.ID)
	require.NoError(t, err)
	assert.Equal(t, 0, qty)
}

func TestOrderUsecase_AddToCart_UnknownRefs(t *testing.T) {
	env := newEnv(t)
	ctx := context.Background()

	shop := env.createShop(t, "Sharma Kirana", 332404)
	item := env.createItem(t, shop.ID, "Rice 1kg", 95)
	user, _ := env.registerUser(t, "taro@test.com", 332404)

	_, err := env.orders.AddToCart(ctx, user.ID, item.ID, 999)
	assert.ErrorIs(t, err, usecase.ErrNotFound)

	_, err = env.orders.AddToCart(ctx, user.ID, 999, shop.ID)
	assert.ErrorIs(t, err, usecase.ErrNotFound)
}

// =====================
// ピンコードの前提チェック
// =====================

// 別ピンコードの店舗を混ぜようとするとPincodeConflictError。
// カート側のピンコードがエラーに入り、カートは変化しない
func TestOrderUsecase_AddToCart_PincodeConflict(t *testing.T) {
	env := newEnv(t)
	ctx := context.Background()

	shopA := env.createShop(t, "Sharma Kirana", 332404)
	itemA := env.createItem(t, shopA.ID, "Rice 1kg", 95)
	shopB := env.createShop(t, "City Mart", 302001)
	itemB := env.createItem(t, shopB.ID, "Milk 1L", 58)
	user, _ := env.registerUser(t, "taro@test.com", 332404)

	_, err := env.orders.AddToCart(ctx, user.ID, itemA.ID, shopA.ID)
	require.NoError(t, err)

	_, err = env.orders.AddToCart(ctx, user.ID, itemB.ID, shopB.ID)
	var conflict *usecase.PincodeConflictError
	require.ErrorAs(t, err, &conflict)
	assert.Equal(t, 332404, conflict.CartPincode)

	out, err := env.orders.ListOrders(ctx, user.ID)
	require.NoError(t, err)
	require.Len(t, out.Cart, 1)
	assert.Equal(t, itemA.ID, out.Cart[0].ItemID)
}

// 同一ピンコードなら別店舗でも混在できる
func TestOrderUsecase_AddToCart_SamePincodeShops(t *testing.T) {
	env := newEnv(t)
	ctx := context.Background()

	shopA := env.createShop(t, "Sharma Kirana", 332404)
	itemA := env.createItem(t, shopA.ID, "Rice 1kg", 95)
	shopB := env.createShop(t, "Gupta General", 332404)
	itemB := env.createItem(t, shopB.ID, "Atta 5kg", 210)
	user, _ := env.registerUser(t, "taro@test.com", 332404)

	_, err := env.orders.AddToCart(ctx, user.ID, itemA.ID, shopA.ID)
	require.NoError(t, err)
	_, err = env.orders.AddToCart(ctx, user.ID, itemB.ID, shopB.ID)
	require.NoError(t, err)

	out, err := env.orders.ListOrders(ctx, user.ID)
	require.NoError(t, err)
	assert.Len(t, out.Cart, 2)
}

// カートを空にすれば別ピンコードの店舗に移れる
func TestOrderUsecase_AddToCart_AfterClearingCart(t *testing.T) {
	env := newEnv(t)
	ctx := context.Background()

	shopA := env.createShop(t, "Sharma Kirana", 332404)
	itemA := env.createItem(t, shopA.ID, "Rice 1kg", 95)
	shopB := env.createShop(t, "City Mart", 302001)
	itemB := env.createItem(t, shopB.ID, "Milk 1L", 58)
	user, _ := env.registerUser(t, "taro@test.com", 332404)

	_, err := env.orders.AddToCart(ctx, user.ID, itemA.ID, shopA.ID)
	require.NoError(t, err)

	qty, err := env.orders.DecreaseQuantity(ctx, user.ID, itemA.ID, shopA.ID)
	require.NoError(t, err)
	require.Equal(t, 0, qty)

	qty, err = env.orders.AddToCart(ctx, user.ID, itemB.ID, shopB.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, qty)
}

// =====================
// 注文確定
// =====================

// 確定で全カート行がPlacedになり、同じ配送先が刻まれる
func TestOrderUsecase_PlaceCart_AllLinesShareAddress(t *testing.T) {
	env := newEnv(t)
	ctx := context.Background()

	shop := env.createShop(t, "Sharma Kirana", 332404)
	itemA := env.createItem(t, shop.ID, "Rice 1kg", 95)
	itemB := env.createItem(t, shop.ID, "Dal 1kg", 140)
	user, addrID := env.registerUser(t, "taro@test.com", 332404)

	_, err := env.orders.AddToCart(ctx, user.ID, itemA.ID, shop.ID)
	require.NoError(t, err)
	_, err = env.orders.AddToCart(ctx, user.ID, itemB.ID, shop.ID)
	require.NoError(t, err)

	require.NoError(t, env.orders.PlaceCart(ctx, user.ID, addrID))

	out, err := env.orders.ListOrders(ctx, user.ID)
	require.NoError(t, err)
	assert.Empty(t, out.Cart)
	assert.Zero(t, out.CartTotal)
	require.Len(t, out.Others, 2)
	for _, line := range out.Others {
		assert.Equal(t, string(model.OrderStatusPlaced), line.Status)
		require.NotNil(t, line.AddressID)
		assert.Equal(t, addrID, *line.AddressID)
	}
}

// カートが空なら確定は何もしない
func TestOrderUsecase_PlaceCart_EmptyCart(t *testing.T) {
	env := newEnv(t)
	ctx := context.Background()

	user, addrID := env.registerUser(t, "taro@test.com", 332404)

	require.NoError(t, env.orders.PlaceCart(ctx, user.ID, addrID))

	out, err := env.orders.ListOrders(ctx, user.ID)
	require.NoError(t, err)
	assert.Empty(t, out.Cart)
	assert.Empty(t, out.Others)
}

// 他人の住所への確定は存在しない扱いで弾き、カートはCartのまま残る
func TestOrderUsecase_PlaceCart_ForeignAddress(t *testing.T) {
	env := newEnv(t)
	ctx := context.Background()

	shop := env.createShop(t, "Sharma Kirana", 332404)
	item := env.createItem(t, shop.ID, "Rice 1kg", 95)
	user, _ := env.registerUser(t, "taro@test.com", 332404)
	_, otherAddrID := env.registerUser(t, "hanako@test.com", 332404)

	_, err := env.orders.AddToCart(ctx, user.ID, item.ID, shop.ID)
	require.NoError(t, err)

	err = env.orders.PlaceCart(ctx, user.ID, otherAddrID)
	assert.ErrorIs(t, err, usecase.ErrNotFound)

	//存在しない住所も同じ
	err = env.orders.PlaceCart(ctx, user.ID, 999)
	assert.ErrorIs(t, err, usecase.ErrNotFound)

	out, err := env.orders.ListOrders(ctx, user.ID)
	require.NoError(t, err)
	assert.Len(t, out.Cart, 1)
}

// 確定後にまた買い物を始められる（新しいカート行が作れる）
func TestOrderUsecase_NewCartAfterPlacement(t *testing.T) {
	env := newEnv(t)
	ctx := context.Background()

	shop := env.createShop(t, "Sharma Kirana", 332404)
	item := env.createItem(t, shop.ID, "Rice 1kg", 95)
	user, addrID := env.registerUser(t, "taro@test.com", 332404)

	_, err := env.orders.AddToCart(ctx, user.ID, item.ID, shop.ID)
	require.NoError(t, err)
	require.NoError(t, env.orders.PlaceCart(ctx, user.ID, addrID))

	qty, err := env.orders.AddToCart(ctx, user.ID, item.ID, shop.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, qty)

	out, err := env.orders.ListOrders(ctx, user.ID)
	require.NoError(t, err)
	assert.Len(t, out.Cart, 1)
	assert.Len(t, out.Others, 1)
}

// =====================
// 一覧と合計
// =====================

// カート合計は現在単価×数量の和（2×5.5 + 1×2.4 = 13.4）
func TestOrderUsecase_ListOrders_CartTotal(t *testing.T) {
	env := newEnv(t)
	ctx := context.Background()

	shop := env.createShop(t, "Sharma Kirana", 332404)
	itemA := env.createItem(t, shop.ID, "Soap", 5.5)
	itemB := env.createItem(t, shop.ID, "Matchbox", 2.4)
	user, _ := env.registerUser(t, "taro@test.com", 332404)

	for i := 0; i < 2; i++ {
		_, err := env.orders.AddToCart(ctx, user.ID, itemA.ID, shop.ID)
		require.NoError(t, err)
	}
	_, err := env.orders.AddToCart(ctx, user.ID, itemB.ID, shop.ID)
	require.NoError(t, err)

	out, err := env.orders.ListOrders(ctx, user.ID)
	require.NoError(t, err)
	require.Len(t, out.Cart, 2)
	assert.InDelta(t, 13.4, out.CartTotal, 1e-9)
	assert.InDelta(t, 11.0, out.Cart[0].Price, 1e-9)
	assert.InDelta(t, 2.4, out.Cart[1].Price, 1e-9)
	assert.Equal(t, "Sharma Kirana", out.Cart[0].ShopName)
	assert.Equal(t, "Soap", out.Cart[0].ItemName)
}

// 他ユーザーの注文は混ざらない
func TestOrderUsecase_ListOrders_PerUser(t *testing.T) {
	env := newEnv(t)
	ctx := context.Background()

	shop := env.createShop(t, "Sharma Kirana", 332404)
	item := env.createItem(t, shop.ID, "Rice 1kg", 95)
	taro, _ := env.registerUser(t, "taro@test.com", 332404)
	hanako, _ := env.registerUser(t, "hanako@test.com", 332404)

	_, err := env.orders.AddToCart(ctx, taro.ID, item.ID, shop.ID)
	require.NoError(t, err)

	out, err := env.orders.ListOrders(ctx, hanako.ID)
	require.NoError(t, err)
	assert.Empty(t, out.Cart)
	assert.Empty(t, out.Others)
}
