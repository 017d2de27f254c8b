package main

import (
	"fmt"
	"os"
	"time"

	"app/internal/auth"
	"app/internal/config"
	"app/internal/handler"
	"app/internal/infra/db"
	"app/internal/server"
	"app/internal/storage"
	"app/internal/store"

	"github.com/google/uuid"
	"github.com/joho/godotenv"
)

type uuidGenerator struct{}

func (g *uuidGenerator) NewID() string {
	return uuid.NewString()
}

type realClock struct{}

func (c *realClock) Now() time.Time {
	return time.Now()
}

// 設定に応じてストレージ実装を選ぶ
func newStorage(cfg config.Config) (storage.Storage, error) {
	switch cfg.StorageDriver {
	case config.StorageDriverPostgres:
		gormDB, err := db.Connect()
		if err != nil {
			return nil, err
		}
		return storage.NewGormStorage(gormDB)
	case config.StorageDriverMemory:
		return storage.NewMemoryStorage(), nil
	default:
		return storage.NewFileStorage(cfg.StorageDir)
	}
}

func main() {
	// .envは無くてもよい
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		panic(err)
	}

	//ストレージ生成
	st, err := newStorage(cfg)
	if err != nil {
		panic(err)
	}

	//Store生成：カタログ投入→前回の状態を読み込み
	s := store.New(st)
	s.Seed(store.DemoCatalog())
	if err := s.Load(); err != nil {
		// 読み込み失敗は空の状態で続行する（デモなので致命ではない）
		fmt.Fprintf(os.Stderr, "load persisted state: %v\n", err)
	}

	//認証の部品
	idGen := &uuidGenerator{}
	clock := &realClock{}

	//bcrypt（サインアップ：Hash / ログイン：Verify）
	hasher := auth.NewBcryptPasswordHasher(12)
	verifier := auth.NewBcryptPasswordVerifier()

	//JWT issuer
	issuer := auth.NewJWTIssuer(cfg.JWTSecret, 24*time.Hour)

	authSvc := auth.NewService(hasher, verifier, issuer, idGen, clock)

	//Handler生成
	productH := handler.NewProductHandler(s)
	cartH := handler.NewCartHandler(s)
	wishH := handler.NewWishlistHandler(s)
	authH := handler.NewAuthHandler(authSvc, s)
	checkoutH := handler.NewCheckoutHandler(s)

	//Server起動
	e := server.New()
	server.RegisterRoutes(e, cfg, productH, cartH, wishH, authH, checkoutH)

	addr := cfg.Port
	if addr == "" {
		addr = "8080"
	}
	if addr[0] != ':' {
		addr = ":" + addr
	}

	if err := server.Start(e, addr); err != nil {
		panic(err)
	}
}
