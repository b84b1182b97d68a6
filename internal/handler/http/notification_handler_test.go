package http_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"github.com/kartavyango/sahaaya/internal/domain/entity"
	handler "github.com/kartavyango/sahaaya/internal/handler/http"
	mocks "github.com/kartavyango/sahaaya/internal/handler/http/mocks"
)

func setupNotificationRouter(h *handler.NotificationHandler, user *entity.User) *gin.Engine {
	r := gin.Default()
	authed := r.Group("/")
	authed.Use(asUser(user))
	authed.GET("/notifications", h.ListHandler)
	authed.PUT("/notifications/:notificationID/read", h.MarkAsReadHandler)
	authed.PUT("/notifications/read-all", h.MarkAllAsReadHandler)
	authed.GET("/notifications/unread-count", h.UnreadCountHandler)
	return r
}

func TestListNotifications(t *testing.T) {
	mockUsecase := mocks.NewMockNotificationUsecase()
	h := handler.NewNotificationHandler(mockUsecase, nil)
	r := setupNotificationRouter(h, testOfficer())

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/notifications?page=1&limit=10", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "New event: Health Camp")
	assert.Contains(t, w.Body.String(), `"total_pages":1`)
}

func TestListNotifications_Unauthenticated(t *testing.T) {
	mockUsecase := mocks.NewMockNotificationUsecase()
	h := handler.NewNotificationHandler(mockUsecase, nil)
	r := gin.Default()
	r.GET("/notifications", h.ListHandler)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/notifications", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestMarkNotificationAsRead(t *testing.T) {
	mockUsecase := mocks.NewMockNotificationUsecase()
	h := handler.NewNotificationHandler(mockUsecase, nil)
	r := setupNotificationRouter(h, testOfficer())

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("PUT", "/notifications/mock-notification-id/read", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Notification marked as read")
}

func TestMarkNotificationAsRead_NotFound(t *testing.T) {
	mockUsecase := mocks.NewMockNotificationUsecase()
	mockUsecase.MarkReadNotFound = true
	h := handler.NewNotificationHandler(mockUsecase, nil)
	r := setupNotificationRouter(h, testOfficer())

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("PUT", "/notifications/someone-elses-id/read", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestMarkAllNotificationsAsRead(t *testing.T) {
	mockUsecase := mocks.NewMockNotificationUsecase()
	h := handler.NewNotificationHandler(mockUsecase, nil)
	r := setupNotificationRouter(h, testOfficer())

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("PUT", "/notifications/read-all", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "All notifications marked as read")
}

func TestUnreadCount(t *testing.T) {
	mockUsecase := mocks.NewMockNotificationUsecase()
	h := handler.NewNotificationHandler(mockUsecase, nil)
	r := setupNotificationRouter(h, testOfficer())

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/notifications/unread-count", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"count":3`)
}
