package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/shrigondanews/news-api/internal/core/domain"
)

type CategoryHandler struct{}

func NewCategoryHandler() *CategoryHandler {
	return &CategoryHandler{}
}

type categoryListResponse struct {
	Categories []domain.Category `json:"categories"`
}

// List handles GET /categories — the static section catalogue.
//
// @Summary      List categories
// @Tags         categories
// @Produce      json
// @Success      200  {object}  categoryListResponse
// @Router       /categories [get]
func (h *CategoryHandler) List(c echo.Context) error {
	return c.JSON(http.StatusOK, categoryListResponse{Categories: domain.Categories()})
}
