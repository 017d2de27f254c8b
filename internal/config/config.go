package config

import (
	"fmt"
	"os"
)

// ストレージの実装名
const (
	StorageDriverFile     = "file"
	StorageDriverMemory   = "memory"
	StorageDriverPostgres = "postgres"
)

// Configはアプリ全体の設定
type Config struct {
	Port string // サーバーポート（8080）

	StorageDriver string // file / memory / postgres
	StorageDir    string // fileドライバの保存先ディレクトリ

	JWTSecret string // JWT署名シークレット

	GoEnv string // dev/prod
}

// Loadは環境変数から読む。デモなのでdev向けデフォルトを持つ。
func Load() (Config, error) {
	cfg := Config{
		Port:          getenv("PORT", "8080"),
		StorageDriver: getenv("STORAGE_DRIVER", StorageDriverFile),
		StorageDir:    getenv("STORAGE_DIR", "./data"),
		JWTSecret:     getenv("JWT_SECRET", "dev_secret_change_me"),
		GoEnv:         getenv("GO_ENV", "dev"),
	}

	//必須チェック
	switch cfg.StorageDriver {
	case StorageDriverFile, StorageDriverMemory, StorageDriverPostgres:
	default:
		return Config{}, fmt.Errorf("unknown STORAGE_DRIVER: %s", cfg.StorageDriver)
	}
	if cfg.StorageDriver == StorageDriverFile && cfg.StorageDir == "" {
		return Config{}, fmt.Errorf("STORAGE_DIR is required")
	}
	if cfg.GoEnv == "prod" && cfg.JWTSecret == "dev_secret_change_me" {
		return Config{}, fmt.Errorf("JWT_SECRET is required in prod")
	}

	return cfg, nil
}

func getenv(key string, def string) string {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	return v
}
