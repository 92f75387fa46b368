package handler

import (
	"net/http"

	"pincart/internal/usecase"

	"github.com/labstack/echo/v4"
)

// /cart と /orders のHTTP
type OrderHandler struct {
	uc *usecase.OrderUsecase
}

// DI
func NewOrderHandler(uc *usecase.OrderUsecase) *OrderHandler {
	return &OrderHandler{uc: uc}
}

type cartItemRequest struct {
	ShopID int `json:"shop_id"`
	ItemID int `json:"item_id"`
}

type quantityResponse struct {
	Quantity int `json:"quantity"`
}

type placeOrderRequest struct {
	AddressID int `json:"address_id"`
}

func (h *OrderHandler) RegisterRoutes(e *echo.Echo, authMW echo.MiddlewareFunc) {
	g := e.Group("", authMW)

	g.POST("/cart/items", h.addToCart)
	g.POST("/cart/items/decrease", h.decrease)
	g.POST("/orders", h.place)
	g.GET("/orders", h.list)
}

// POST /cart/items
func (h *OrderHandler) addToCart(c echo.Context) error {
	userID, ok := getUserIDFromContext(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "unauthorized"})
	}

	var req cartItemRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	if req.ShopID <= 0 || req.ItemID <= 0 {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}

	qty, err := h.uc.AddToCart(c.Request().Context(), userID, req.ItemID, req.ShopID)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, quantityResponse{Quantity: qty})
}

// POST /cart/items/decrease
func (h *OrderHandler) decrease(c echo.Context) error {
	userID, ok := getUserIDFromContext(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "unauthorized"})
	}

	var req cartItemRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	if req.ShopID <= 0 || req.ItemID <= 0 {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}

	qty, err := h.uc.DecreaseQuantity(c.Request().Context(), userID, req.ItemID, req.ShopID)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, quantityResponse{Quantity: qty})
}

// POST /orders カートを一括確定
func (h *OrderHandler) place(c echo.Context) error {
	userID, ok := getUserIDFromContext(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "unauthorized"})
	}

	var req placeOrderRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	if req.AddressID <= 0 {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid address_id"})
	}

	if err := h.uc.PlaceCart(c.Request().Context(), userID, req.AddressID); err != nil {
		return writeError(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}

// GET /orders カート＋注文履歴
func (h *OrderHandler) list(c echo.Context) error {
	userID, ok := getUserIDFromContext(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "unauthorized"})
	}

	out, err := h.uc.ListOrders(c.Request().Context(), userID)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, out)
}
