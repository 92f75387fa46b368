package usecase_test

import (
	"context"
	"testing"

	"pincart/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAddressUsecase_AddAddress_Validation(t *testing.T) {
	env := newEnv(t)
	ctx := context.Background()

	in := testAddress(332404)
	in.City = ""
	_, err := env.addresses.AddAddress(ctx, in)
	assert.ErrorIs(t, err, usecase.ErrValidation)

	in = testAddress(0)
	_, err = env.addresses.AddAddress(ctx, in)
	assert.ErrorIs(t, err, usecase.ErrValidation)

	//StreetとLandmarkは空でよい
	in = testAddress(332404)
	in.Street = ""
	in.Landmark = ""
	addr, err := env.addresses.AddAddress(ctx, in)
	require.NoError(t, err)
	assert.Positive(t, addr.ID)
}

// 紐付けは重複させない。2回付けても一覧は1件のまま
func TestAddressUsecase_AttachIsIdempotent(t *testing.T) {
	env := newEnv(t)
	ctx := context.Background()

	user, _ := env.registerUser(t, "taro@test.com", 332404)

	addr, err := env.addresses.AddAddress(ctx, testAddress(302001))
	require.NoError(t, err)

	require.NoError(t, env.addresses.AttachAddressToUser(ctx, addr.ID, user.ID))
	require.NoError(t, env.addresses.AttachAddressToUser(ctx, addr.ID, user.ID))

	addrs, err := env.addresses.ListByUser(ctx, user.ID)
	require.NoError(t, err)
	require.Len(t, addrs, 2)
	//登録順（会員登録時の住所→後付けの住所）
	assert.Equal(t, addr.ID, addrs[1].ID)
}

func TestAddressUsecase_Attach_UnknownRefs(t *testing.T) {
	env := newEnv(t)
	ctx := context.Background()

	user, _ := env.registerUser(t, "taro@test.com", 332404)
	addr, err := env.addresses.AddAddress(ctx, testAddress(332404))
	require.NoError(t, err)

	assert.ErrorIs(t, env.addresses.AttachAddressToUser(ctx, 999, user.ID), usecase.ErrNotFound)
	assert.ErrorIs(t, env.addresses.AttachAddressToUser(ctx, addr.ID, 999), usecase.ErrNotFound)
}

func TestAddressUsecase_ListByUser_UnknownUser(t *testing.T) {
	env := newEnv(t)

	_, err := env.addresses.ListByUser(context.Background(), 999)
	assert.ErrorIs(t, err, usecase.ErrNotFound)
}
