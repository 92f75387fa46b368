package usecase

import (
	"context"
	"errors"
	"slices"
	"sort"
	"time"

	"pincart/internal/domain/model"
	"pincart/internal/repository"
)

// 注文1行の表示用。Priceは現在の商品単価×数量。
type OrderLineDTO struct {
	ID        int       `json:"id"`
	ItemID    int       `json:"item_id"`
	ShopID    int       `json:"shop_id"`
	ItemName  string    `json:"item_name"`
	ShopName  string    `json:"shop_name"`
	Quantity  int       `json:"quantity"`
	Status    string    `json:"status"`
	Price     float64   `json:"price"`
	AddressID *int      `json:"address_id,omitempty"`
	PlacedAt  time.Time `json:"placed_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type ListOrdersOutput struct {
	//カート行（未確定）
	Cart []OrderLineDTO `json:"cart"`
	//確定済み・配達済み（Cart < Placed < Delivered の順）
	Others []OrderLineDTO `json:"others"`
	//カート合計
	CartTotal float64 `json:"cart_total"`
}

// カート〜注文のステートマシン。
// NoOrder → Cart → Placed → Delivered。Cartは数量0で行削除によりNoOrderへ戻る。
type OrderUsecase struct {
	tx     repository.TxManager
	orders repository.OrderRepository
	items  repository.ItemRepository
	shops  repository.ShopRepository
}

func NewOrderUsecase(
	tx repository.TxManager,
	orders repository.OrderRepository,
	items repository.ItemRepository,
	shops repository.ShopRepository,
) *OrderUsecase {
	return &OrderUsecase{tx: tx, orders: orders, items: items, shops: shops}
}

// AddToCart はカートに1個追加し、追加後の数量を返す。
// 既存行があれば+1、無ければ数量1の行を作る。
// カートが既に別ピンコードの店舗を持っていたらPincodeConflictErrorで弾く。
func (u *OrderUsecase) AddToCart(ctx context.Context, userID, itemID, shopID int) (int, error) {
	var qty int

	err := u.tx.WithinTx(ctx, func(r repository.TxRepos) error {
		shop, err := r.Shops().FindByID(ctx, shopID)
		if err != nil {
			return notFoundOr(err)
		}
		if _, err := r.Items().FindByID(ctx, itemID); err != nil {
			return notFoundOr(err)
		}
		shopAddr, err := r.Addresses().FindByID(ctx, shop.AddressID)
		if err != nil {
			return notFoundOr(err)
		}

		//ピンコード前提チェック。自動解決はしない
		cartLines, err := r.Orders().ListCartByUser(ctx, userID)
		if err != nil {
			return err
		}
		if len(cartLines) > 0 {
			cartShop, err := r.Shops().FindByID(ctx, cartLines[0].ShopID)
			if err != nil {
				return notFoundOr(err)
			}
			cartAddr, err := r.Addresses().FindByID(ctx, cartShop.AddressID)
			if err != nil {
				return notFoundOr(err)
			}
			if cartAddr.Pincode != shopAddr.Pincode {
				return &PincodeConflictError{CartPincode: cartAddr.Pincode}
			}
		}

		now := time.Now().UTC()

		line, err := r.Orders().FindCartLine(ctx, userID, itemID, shopID)
		if errors.Is(err, repository.ErrNotFound) {
			_, err := r.Orders().Create(ctx, model.Order{
				PlacedAt:  now,
				UpdatedAt: now,
				UserID:    userID,
				ItemID:    itemID,
				ShopID:    shopID,
				Quantity:  1,
				Status:    model.OrderStatusCart,
			})
			if err != nil {
				return err
			}
			qty = 1
			return nil
		}
		if err != nil {
			return err
		}

		line.Quantity++
		line.UpdatedAt = now
		if err := r.Orders().Update(ctx, line); err != nil {
			return err
		}
		qty = line.Quantity
		return nil
	})
	if err != nil {
		return 0, err
	}
	return qty, nil
}

// DecreaseQuantity はカート行を1個減らし、残数量を返す。
// 行が無ければ0を返すだけ（エラーにしない）。残1の行は削除する（数量0の行は残さない）。
func (u *OrderUsecase) DecreaseQuantity(ctx context.Context, userID, itemID, shopID int) (int, error) {
	var qty int

	err := u.tx.WithinTx(ctx, func(r repository.TxRepos) error {
		line, err := r.Orders().FindCartLine(ctx, userID, itemID, shopID)
		if errors.Is(err, repository.ErrNotFound) {
			qty = 0
			return nil
		}
		if err != nil {
			return err
		}

		if line.Quantity == 1 {
			qty = 0
			return r.Orders().Delete(ctx, line.ID)
		}

		line.Quantity--
		line.UpdatedAt = time.Now().UTC()
		if err := r.Orders().Update(ctx, line); err != nil {
			return err
		}
		qty = line.Quantity
		return nil
	})
	if err != nil {
		return 0, err
	}
	return qty, nil
}

// PlaceCart はユーザーの全カート行をまとめてPlacedへ進め、
// 同じ配送先address_idを刻む。カートが空なら何もしない。
// 住所は実在し、かつ本人の所有であること。他人の住所は存在しない扱い。
func (u *OrderUsecase) PlaceCart(ctx context.Context, userID, addressID int) error {
	return u.tx.WithinTx(ctx, func(r repository.TxRepos) error {
		user, err := r.Users().FindByID(ctx, userID)
		if err != nil {
			return notFoundOr(err)
		}
		if _, err := r.Addresses().FindByID(ctx, addressID); err != nil {
			return notFoundOr(err)
		}
		if !slices.Contains(user.AddressIDs, addressID) {
			return ErrNotFound
		}

		lines, err := r.Orders().ListCartByUser(ctx, userID)
		if err != nil {
			return err
		}

		now := time.Now().UTC()
		for _, line := range lines {
			line.Status = model.OrderStatusPlaced
			line.AddressID = &addressID
			line.UpdatedAt = now
			if err := r.Orders().Update(ctx, line); err != nil {
				return err
			}
		}
		return nil
	})
}

// ListOrders はユーザーの注文をカートとそれ以外に分け、カート合計を付けて返す。
// 商品が消えている行は読み飛ばす。店舗が消えていても行は残す（名前だけ空）。
func (u *OrderUsecase) ListOrders(ctx context.Context, userID int) (ListOrdersOutput, error) {
	orders, err := u.orders.ListByUser(ctx, userID)
	if err != nil {
		return ListOrdersOutput{}, err
	}

	out := ListOrdersOutput{
		Cart:   []OrderLineDTO{},
		Others: []OrderLineDTO{},
	}

	for _, o := range orders {
		item, err := u.items.FindByID(ctx, o.ItemID)
		if errors.Is(err, repository.ErrNotFound) {
			continue
		}
		if err != nil {
			return ListOrdersOutput{}, err
		}

		shopName := ""
		if shop, err := u.shops.FindByID(ctx, o.ShopID); err == nil {
			shopName = shop.Name
		}

		line := OrderLineDTO{
			ID:        o.ID,
			ItemID:    o.ItemID,
			ShopID:    o.ShopID,
			ItemName:  item.Name,
			ShopName:  shopName,
			Quantity:  o.Quantity,
			Status:    string(o.Status),
			Price:     item.Price * float64(o.Quantity),
			AddressID: o.AddressID,
			PlacedAt:  o.PlacedAt,
			UpdatedAt: o.UpdatedAt,
		}

		if o.Status == model.OrderStatusCart {
			out.Cart = append(out.Cart, line)
			out.CartTotal += line.Price
		} else {
			out.Others = append(out.Others, line)
		}
	}

	//保存順を保ったままステータス順に寄せる
	sort.SliceStable(out.Others, func(i, j int) bool {
		return model.OrderStatus(out.Others[i].Status).Rank() < model.OrderStatus(out.Others[j].Status).Rank()
	})
	return out, nil
}
