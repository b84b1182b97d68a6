package http

import (
	"encoding/json"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/kartavyango/sahaaya/internal/handler/http/dto"
	"github.com/kartavyango/sahaaya/internal/realtime"
	usecasecontract "github.com/kartavyango/sahaaya/internal/usecase/contract"
)

type NotificationHandler struct {
	notificationUsecase usecasecontract.INotificationUseCase
	hub                 *realtime.Hub
}

func NewNotificationHandler(notificationUsecase usecasecontract.INotificationUseCase, hub *realtime.Hub) *NotificationHandler {
	return &NotificationHandler{
		notificationUsecase: notificationUsecase,
		hub:                 hub,
	}
}

// ListHandler handles the paginated notification feed, newest first
func (h *NotificationHandler) ListHandler(c *gin.Context) {
	userID, exists := c.Get("userID")
	if !exists {
		ErrorHandler(c, http.StatusUnauthorized, "User not authenticated")
		return
	}
	page, limit := parsePagination(c)

	items, totalPages, err := h.notificationUsecase.GetUserNotifications(c.Request.Context(), userID.(string), page, limit)
	if err != nil {
		HandleDomainError(c, err)
		return
	}

	SuccessHandler(c, http.StatusOK, dto.PaginatedNotificationsResponse{
		Notifications: dto.ToNotificationResponses(items),
		Page:          page,
		Limit:         limit,
		TotalPages:    totalPages,
	})
}

// MarkAsReadHandler handles flipping one notification to read
func (h *NotificationHandler) MarkAsReadHandler(c *gin.Context) {
	userID, exists := c.Get("userID")
	if !exists {
		ErrorHandler(c, http.StatusUnauthorized, "User not authenticated")
		return
	}

	if err := h.notificationUsecase.MarkAsRead(c.Request.Context(), c.Param("notificationID"), userID.(string)); err != nil {
		HandleDomainError(c, err)
		return
	}
	MessageHandler(c, http.StatusOK, "Notification marked as read")
}

// MarkAllAsReadHandler handles flipping the whole feed to read
func (h *NotificationHandler) MarkAllAsReadHandler(c *gin.Context) {
	userID, exists := c.Get("userID")
	if !exists {
		ErrorHandler(c, http.StatusUnauthorized, "User not authenticated")
		return
	}

	if err := h.notificationUsecase.MarkAllAsRead(c.Request.Context(), userID.(string)); err != nil {
		HandleDomainError(c, err)
		return
	}
	MessageHandler(c, http.StatusOK, "All notifications marked as read")
}

// UnreadCountHandler handles the unread badge count
func (h *NotificationHandler) UnreadCountHandler(c *gin.Context) {
	userID, exists := c.Get("userID")
	if !exists {
		ErrorHandler(c, http.StatusUnauthorized, "User not authenticated")
		return
	}

	count, err := h.notificationUsecase.GetUnreadCount(c.Request.Context(), userID.(string))
	if err != nil {
		HandleDomainError(c, err)
		return
	}
	SuccessHandler(c, http.StatusOK, dto.UnreadCountResponse{Count: count})
}

// StreamHandler handles the server-sent events stream of fresh
// notifications. The subscription is removed when the client disconnects.
func (h *NotificationHandler) StreamHandler(c *gin.Context) {
	userID, exists := c.Get("userID")
	if !exists {
		ErrorHandler(c, http.StatusUnauthorized, "User not authenticated")
		return
	}
	if h.hub == nil {
		ErrorHandler(c, http.StatusServiceUnavailable, "Realtime notifications not available")
		return
	}

	ch, cancel := h.hub.Subscribe(userID.(string))
	defer cancel()

	c.Header("Content-Type", "text/event-stream")
	c.Header("Cache-Control", "no-cache")
	c.Header("Connection", "keep-alive")

	c.Stream(func(w io.Writer) bool {
		select {
		case n, ok := <-ch:
			if !ok {
				return false
			}
			payload, err := json.Marshal(dto.ToNotificationResponse(*n))
			if err != nil {
				return true
			}
			c.SSEvent("notification", string(payload))
			return true
		case <-c.Request.Context().Done():
			return false
		}
	})
}
