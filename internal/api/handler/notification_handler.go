package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/shrigondanews/news-api/internal/core/domain"
	"github.com/shrigondanews/news-api/internal/core/ports"
)

type NotificationHandler struct {
	service ports.NotificationService
}

func NewNotificationHandler(service ports.NotificationService) *NotificationHandler {
	return &NotificationHandler{service: service}
}

type notificationListResponse struct {
	Notifications []domain.Notification `json:"notifications"`
}

// List handles GET /notifications — the latest 20, newest-first.
//
// @Summary      List recent notifications
// @Tags         notifications
// @Produce      json
// @Success      200  {object}  notificationListResponse
// @Failure      500  {object}  map[string]string
// @Router       /notifications [get]
func (h *NotificationHandler) List(c echo.Context) error {
	notifications, err := h.service.Latest(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, notificationListResponse{Notifications: notifications})
}
