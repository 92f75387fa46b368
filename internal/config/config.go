package config

import (
	"fmt"
	"os"
	"strconv"

	"golang.org/x/crypto/bcrypt"
)

// Configはアプリ全体の設定
type Config struct {
	Port string // サーバーポート（8080）

	StorePath string // ドキュメントストアのファイルパス

	BcryptCost   int    // パスワードハッシュのコスト
	CookieSecure bool   // tokenクッキーのSecure属性
	GoEnv        string // dev/prod
}

// Loadは環境変数
func Load() (Config, error) {
	cfg := Config{
		Port:      os.Getenv("PORT"),
		StorePath: os.Getenv("STORE_PATH"),

		BcryptCost:   bcrypt.DefaultCost,
		CookieSecure: envBool("COOKIE_SECURE", true),
		GoEnv:        os.Getenv("GO_ENV"),
	}

	if v := os.Getenv("BCRYPT_COST"); v != "" {
		cost, err := strconv.Atoi(v)
		if err != nil {
			return Config{}, fmt.Errorf("BCRYPT_COST must be an integer: %w", err)
		}
		cfg.BcryptCost = cost
	}

	//必須チェック
	if cfg.Port == "" {
		return Config{}, fmt.Errorf("PORT is required")
	}
	if cfg.StorePath == "" {
		return Config{}, fmt.Errorf("STORE_PATH is required")
	}
	return cfg, nil
}

func envBool(key string, def bool) bool {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	switch v {
	case "1", "true", "TRUE", "True":
		return true
	case "0", "false", "FALSE", "False":
		return false
	default:
		return def
	}
}
