package repository

import "errors"

// 参照先が存在しないことを統一して表す（Handlerが404に変換する）
var ErrNotFound = errors.New("not found")
