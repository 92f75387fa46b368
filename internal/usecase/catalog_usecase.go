package usecase

import (
	"context"
	"errors"
	"sort"

	"pincart/internal/domain/model"
	"pincart/internal/repository"
)

type ShopDTO struct {
	ID      int        `json:"id"`
	Name    string     `json:"name"`
	Address AddressDTO `json:"address"`
	ItemIDs []int      `json:"item_ids"`
}

type ItemDTO struct {
	ID        int     `json:"id"`
	Name      string  `json:"name"`
	Price     float64 `json:"price"`
	ImageName string  `json:"image_name,omitempty"`
}

// 店舗・商品の参照と、カタログ投入の管理操作
type CatalogUsecase struct {
	tx        repository.TxManager
	shops     repository.ShopRepository
	items     repository.ItemRepository
	addresses repository.AddressRepository
}

func NewCatalogUsecase(
	tx repository.TxManager,
	shops repository.ShopRepository,
	items repository.ItemRepository,
	addresses repository.AddressRepository,
) *CatalogUsecase {
	return &CatalogUsecase{tx: tx, shops: shops, items: items, addresses: addresses}
}

// ListShops はピンコード一致の店舗を新しい順（ID降順）で返す。
// 住所が消えている店舗は読み飛ばす。
func (u *CatalogUsecase) ListShops(ctx context.Context, pincode int) ([]ShopDTO, error) {
	shops, err := u.shops.List(ctx)
	if err != nil {
		return nil, err
	}

	out := make([]ShopDTO, 0, len(shops))
	for _, s := range shops {
		addr, err := u.addresses.FindByID(ctx, s.AddressID)
		if errors.Is(err, repository.ErrNotFound) {
			continue
		}
		if err != nil {
			return nil, err
		}
		if addr.Pincode != pincode {
			continue
		}
		out = append(out, toShopDTO(s, addr))
	}

	sort.Slice(out, func(i, j int) bool { return out[i].ID > out[j].ID })
	return out, nil
}

func (u *CatalogUsecase) GetShop(ctx context.Context, shopID int) (ShopDTO, error) {
	shop, err := u.shops.FindByID(ctx, shopID)
	if err != nil {
		return ShopDTO{}, notFoundOr(err)
	}
	addr, err := u.addresses.FindByID(ctx, shop.AddressID)
	if err != nil {
		return ShopDTO{}, notFoundOr(err)
	}
	return toShopDTO(shop, addr), nil
}

// ListItems は店舗の取り扱い商品を登録順で返す。
// 消えている商品参照は読み飛ばす。
func (u *CatalogUsecase) ListItems(ctx context.Context, shopID int) ([]ItemDTO, error) {
	shop, err := u.shops.FindByID(ctx, shopID)
	if err != nil {
		return nil, notFoundOr(err)
	}

	out := make([]ItemDTO, 0, len(shop.ItemIDs))
	for _, id := range shop.ItemIDs {
		item, err := u.items.FindByID(ctx, id)
		if errors.Is(err, repository.ErrNotFound) {
			continue
		}
		if err != nil {
			return nil, err
		}
		out = append(out, toItemDTO(item))
	}
	return out, nil
}

func (u *CatalogUsecase) GetItem(ctx context.Context, itemID int) (ItemDTO, error) {
	item, err := u.items.FindByID(ctx, itemID)
	if err != nil {
		return ItemDTO{}, notFoundOr(err)
	}
	return toItemDTO(item), nil
}

// ここから管理操作（カタログ投入）。

func (u *CatalogUsecase) CreateShop(ctx context.Context, name string, addressID int) (ShopDTO, error) {
	if name == "" {
		return ShopDTO{}, ErrValidation
	}

	var created model.Shop
	var addr model.Address

	err := u.tx.WithinTx(ctx, func(r repository.TxRepos) error {
		var err error
		addr, err = r.Addresses().FindByID(ctx, addressID)
		if err != nil {
			return notFoundOr(err)
		}
		created, err = r.Shops().Create(ctx, model.Shop{Name: name, AddressID: addressID})
		return err
	})
	if err != nil {
		return ShopDTO{}, err
	}
	return toShopDTO(created, addr), nil
}

func (u *CatalogUsecase) CreateItem(ctx context.Context, name string, price float64, imageName string) (ItemDTO, error) {
	if name == "" || price < 0 {
		return ItemDTO{}, ErrValidation
	}
	created, err := u.items.Create(ctx, model.Item{Name: name, Price: price, ImageName: imageName})
	if err != nil {
		return ItemDTO{}, err
	}
	return toItemDTO(created), nil
}

// AddItemToShop は商品を店舗の取り扱いに加える。
func (u *CatalogUsecase) AddItemToShop(ctx context.Context, shopID, itemID int) error {
	return u.tx.WithinTx(ctx, func(r repository.TxRepos) error {
		if _, err := r.Items().FindByID(ctx, itemID); err != nil {
			return notFoundOr(err)
		}
		if err := r.Shops().AddItem(ctx, shopID, itemID); err != nil {
			return notFoundOr(err)
		}
		return nil
	})
}

func toShopDTO(s model.Shop, addr model.Address) ShopDTO {
	itemIDs := s.ItemIDs
	if itemIDs == nil {
		itemIDs = []int{}
	}
	return ShopDTO{
		ID:      s.ID,
		Name:    s.Name,
		Address: toAddressDTO(addr),
		ItemIDs: itemIDs,
	}
}

func toItemDTO(i model.Item) ItemDTO {
	return ItemDTO{
		ID:        i.ID,
		Name:      i.Name,
		Price:     i.Price,
		ImageName: i.ImageName,
	}
}
