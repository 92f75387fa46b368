// カタログ投入ツール。
// 空のストアにデモ用の店舗・商品を入れる（店舗作成は管理操作でWeb側に無い）。
package main

import (
	"context"
	"os"

	infraRepo "pincart/internal/infra/repository"
	"pincart/internal/store"
	"pincart/internal/usecase"

	"github.com/joho/godotenv"
	"go.uber.org/zap"
)

type seedItem struct {
	name  string
	price float64
	image string
}

type seedShop struct {
	name    string
	address usecase.AddressInput
	items   []seedItem
}

var seedShops = []seedShop{
	{
		name: "Sharma Kirana Store",
		address: usecase.AddressInput{
			PersonName: "Ramesh Sharma",
			Pincode:    332404,
			Building:   "12 Station Road",
			City:       "Sikar",
			District:   "Sikar",
			State:      "Rajasthan",
		},
		items: []seedItem{
			{name: "Basmati Rice 1kg", price: 95.0, image: "rice.jpg"},
			{name: "Toor Dal 1kg", price: 140.0, image: "dal.jpg"},
			{name: "Sunflower Oil 1L", price: 125.5, image: "oil.jpg"},
		},
	},
	{
		name: "Gupta General Store",
		address: usecase.AddressInput{
			PersonName: "Anita Gupta",
			Pincode:    332404,
			Building:   "4 Bazar Lane",
			Street:     "Subhash Chowk",
			City:       "Sikar",
			District:   "Sikar",
			State:      "Rajasthan",
		},
		items: []seedItem{
			{name: "Wheat Flour 5kg", price: 210.0, image: "atta.jpg"},
			{name: "Tea Powder 250g", price: 120.0, image: "tea.jpg"},
		},
	},
	{
		name: "City Mart",
		address: usecase.AddressInput{
			PersonName: "City Mart",
			Pincode:    302001,
			Building:   "MI Road 88",
			City:       "Jaipur",
			District:   "Jaipur",
			State:      "Rajasthan",
		},
		items: []seedItem{
			{name: "Milk 1L", price: 58.0, image: "milk.jpg"},
			{name: "Bread", price: 40.0, image: "bread.jpg"},
		},
	},
}

func main() {
	_ = godotenv.Load()

	logger, err := zap.NewDevelopment()
	if err != nil {
		panic(err)
	}
	defer logger.Sync()

	path := os.Getenv("STORE_PATH")
	if path == "" {
		logger.Fatal("STORE_PATH is required")
	}

	st, err := store.Open(path)
	if err != nil {
		logger.Fatal("open store", zap.Error(err))
	}

	txManager := infraRepo.NewTxManagerStore(st)
	shopRepo := infraRepo.NewShopStoreRepository(st)
	itemRepo := infraRepo.NewItemStoreRepository(st)
	addressRepo := infraRepo.NewAddressStoreRepository(st)
	catalogUC := usecase.NewCatalogUsecase(txManager, shopRepo, itemRepo, addressRepo)
	addressUC := usecase.NewAddressUsecase(txManager, addressRepo, infraRepo.NewUserStoreRepository(st))

	ctx := context.Background()

	//既に店舗があれば二重投入しない
	existing, err := shopRepo.List(ctx)
	if err != nil {
		logger.Fatal("list shops", zap.Error(err))
	}
	if len(existing) > 0 {
		logger.Info("store already seeded", zap.Int("shops", len(existing)))
		return
	}

	for _, s := range seedShops {
		addr, err := addressUC.AddAddress(ctx, s.address)
		if err != nil {
			logger.Fatal("add address", zap.String("shop", s.name), zap.Error(err))
		}

		shop, err := catalogUC.CreateShop(ctx, s.name, addr.ID)
		if err != nil {
			logger.Fatal("create shop", zap.String("shop", s.name), zap.Error(err))
		}

		for _, it := range s.items {
			item, err := catalogUC.CreateItem(ctx, it.name, it.price, it.image)
			if err != nil {
				logger.Fatal("create item", zap.String("item", it.name), zap.Error(err))
			}
			if err := catalogUC.AddItemToShop(ctx, shop.ID, item.ID); err != nil {
				logger.Fatal("attach item", zap.String("item", it.name), zap.Error(err))
			}
		}

		logger.Info("seeded shop",
			zap.Int("shop_id", shop.ID),
			zap.String("name", s.name),
			zap.Int("pincode", s.address.Pincode),
			zap.Int("items", len(s.items)),
		)
	}
}
