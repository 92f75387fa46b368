package handler

import (
	"net/http"
	"strconv"

	"pincart/internal/usecase"

	"github.com/labstack/echo/v4"
)

// /shops の公開API
type ShopHandler struct {
	uc *usecase.CatalogUsecase
}

// DI
func NewShopHandler(uc *usecase.CatalogUsecase) *ShopHandler {
	return &ShopHandler{uc: uc}
}

func (h *ShopHandler) RegisterRoutes(e *echo.Echo) {
	e.GET("/shops", h.list)
	e.GET("/shops/:id", h.detail)
	e.GET("/shops/:id/items", h.items)
}

// GET /shops?pincode=332404
func (h *ShopHandler) list(c echo.Context) error {
	pincode, err := strconv.Atoi(c.QueryParam("pincode"))
	if err != nil || pincode <= 0 {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid pincode"})
	}

	out, err := h.uc.ListShops(c.Request().Context(), pincode)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, out)
}

// GET /shops/:id
func (h *ShopHandler) detail(c echo.Context) error {
	shopID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid id"})
	}

	out, err := h.uc.GetShop(c.Request().Context(), shopID)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, out)
}

// GET /shops/:id/items
func (h *ShopHandler) items(c echo.Context) error {
	shopID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid id"})
	}

	out, err := h.uc.ListItems(c.Request().Context(), shopID)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, out)
}
