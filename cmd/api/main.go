package main

import (
	"pincart/internal/config"
	"pincart/internal/handler"
	infraRepo "pincart/internal/infra/repository"
	"pincart/internal/middleware"
	"pincart/internal/server"
	"pincart/internal/store"
	"pincart/internal/usecase"

	"github.com/joho/godotenv"
	"go.uber.org/zap"
)

func main() {
	//.envは無くてもよい
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		panic(err)
	}

	logger, err := newLogger(cfg.GoEnv)
	if err != nil {
		panic(err)
	}
	defer logger.Sync()

	//ストアを開く（無ければ空で作られる）
	st, err := store.Open(cfg.StorePath)
	if err != nil {
		logger.Fatal("open store", zap.String("path", cfg.StorePath), zap.Error(err))
	}

	//Repository（ストア実装）生成
	userRepo := infraRepo.NewUserStoreRepository(st)
	sessionRepo := infraRepo.NewSessionStoreRepository(st)
	shopRepo := infraRepo.NewShopStoreRepository(st)
	itemRepo := infraRepo.NewItemStoreRepository(st)
	addressRepo := infraRepo.NewAddressStoreRepository(st)
	orderRepo := infraRepo.NewOrderStoreRepository(st)
	txManager := infraRepo.NewTxManagerStore(st)

	//Usecase生成
	authUC := usecase.NewAuthUsecase(txManager, userRepo, sessionRepo, addressRepo, cfg.BcryptCost)
	catalogUC := usecase.NewCatalogUsecase(txManager, shopRepo, itemRepo, addressRepo)
	orderUC := usecase.NewOrderUsecase(txManager, orderRepo, itemRepo, shopRepo)
	addressUC := usecase.NewAddressUsecase(txManager, addressRepo, userRepo)

	//Handler生成
	authH := handler.NewAuthHandler(authUC, cfg)
	shopH := handler.NewShopHandler(catalogUC)
	orderH := handler.NewOrderHandler(orderUC)
	addressH := handler.NewAddressHandler(addressUC)

	authMW := middleware.AuthSession(authUC)

	e := server.New(logger, authMW, authH, shopH, orderH, addressH)

	addr := cfg.Port
	if addr[0] != ':' {
		addr = ":" + addr
	}

	logger.Info("starting server", zap.String("addr", addr), zap.String("store", cfg.StorePath))
	if err := e.Start(addr); err != nil {
		logger.Fatal("server stopped", zap.Error(err))
	}
}

func newLogger(goEnv string) (*zap.Logger, error) {
	if goEnv == "dev" {
		return zap.NewDevelopment()
	}
	return zap.NewProduction()
}
