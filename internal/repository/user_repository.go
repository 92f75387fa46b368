package repository

import (
	"context"

	"pincart/internal/domain/model"
)

// 会員の保存・取得を約束
type UserRepository interface {
	//新規ユーザー作成。IDが埋まったものを返す
	Create(ctx context.Context, user model.User) (model.User, error)

	// IDからユーザーを1件取得する
	FindByID(ctx context.Context, userID int) (model.User, error)

	//メールからユーザーを1件取得する
	FindByEmail(ctx context.Context, email string) (model.User, error)

	// ユーザー情報の更新=>住所の追加など
	Update(ctx context.Context, user model.User) error
}
