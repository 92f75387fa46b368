package repository

import (
	"context"

	"pincart/internal/domain/model"
)

// セッション行の保存・検索・削除
type SessionRepository interface {
	Create(ctx context.Context, session model.Session) (model.Session, error)

	//トークンからセッションを1件取得
	FindByToken(ctx context.Context, token string) (model.Session, error)

	//トークンに一致する行を削除（失効）。無ければErrNotFound
	DeleteByToken(ctx context.Context, token string) error
}
