package http

import (
	"mime/multipart"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/kartavyango/sahaaya/internal/handler/http/dto"
	usecasecontract "github.com/kartavyango/sahaaya/internal/usecase/contract"
)

type EventHandler struct {
	eventUsecase usecasecontract.IEventUseCase
}

func NewEventHandler(eventUsecase usecasecontract.IEventUseCase) *EventHandler {
	return &EventHandler{
		eventUsecase: eventUsecase,
	}
}

// parsePagination reads page and limit query params with defaults.
func parsePagination(c *gin.Context) (int64, int64) {
	page, err := strconv.ParseInt(c.DefaultQuery("page", "1"), 10, 64)
	if err != nil || page < 1 {
		page = 1
	}
	limit, err := strconv.ParseInt(c.DefaultQuery("limit", "10"), 10, 64)
	if err != nil || limit < 1 {
		limit = 10
	}
	return page, limit
}

// openUploads converts multipart file headers into usecase uploads. The
// returned closer must run after the usecase finishes with the readers.
func openUploads(headers []*multipart.FileHeader) ([]usecasecontract.FileUpload, func(), error) {
	uploads := make([]usecasecontract.FileUpload, 0, len(headers))
	closers := make([]multipart.File, 0, len(headers))
	closeAll := func() {
		for _, f := range closers {
			_ = f.Close()
		}
	}

	for _, fh := range headers {
		f, err := fh.Open()
		if err != nil {
			closeAll()
			return nil, nil, err
		}
		closers = append(closers, f)
		uploads = append(uploads, usecasecontract.FileUpload{
			FileName: fh.Filename,
			Size:     fh.Size,
			MimeType: fh.Header.Get("Content-Type"),
			Reader:   f,
		})
	}
	return uploads, closeAll, nil
}

// CreateEventHandler handles multipart event creation with attachments
func (h *EventHandler) CreateEventHandler(c *gin.Context) {
	creator, ok := currentUser(c)
	if !ok {
		ErrorHandler(c, http.StatusUnauthorized, "User not authenticated")
		return
	}

	form, err := c.MultipartForm()
	if err != nil {
		ErrorHandler(c, http.StatusBadRequest, "Invalid multipart form")
		return
	}

	in := usecasecontract.CreateEventInput{
		Title:       c.PostForm("title"),
		Description: c.PostForm("description"),
		Location:    c.PostForm("location"),
		District:    c.PostForm("district"),
	}
	if dateStr := c.PostForm("date"); dateStr != "" {
		date, err := time.Parse(time.RFC3339, dateStr)
		if err != nil {
			date, err = time.Parse("2006-01-02", dateStr)
		}
		if err != nil {
			ErrorHandler(c, http.StatusBadRequest, "Invalid date format, expected RFC3339 or YYYY-MM-DD")
			return
		}
		in.Date = date
	}
	if eventTime := c.PostForm("event_time"); eventTime != "" {
		in.EventTime = &eventTime
	}

	images, closeImages, err := openUploads(form.File["images"])
	if err != nil {
		ErrorHandler(c, http.StatusBadRequest, "Failed to read uploaded images")
		return
	}
	defer closeImages()
	reports, closeReports, err := openUploads(form.File["reports"])
	if err != nil {
		ErrorHandler(c, http.StatusBadRequest, "Failed to read uploaded reports")
		return
	}
	defer closeReports()
	in.Images = images
	in.Reports = reports

	event, err := h.eventUsecase.CreateEvent(c.Request.Context(), creator, in)
	if err != nil {
		HandleDomainError(c, err)
		return
	}
	SuccessHandler(c, http.StatusCreated, dto.ToEventResponse(*event))
}

// GetEventsHandler handles paginated event listing
func (h *EventHandler) GetEventsHandler(c *gin.Context) {
	page, limit := parsePagination(c)

	events, total, err := h.eventUsecase.GetEvents(c.Request.Context(), page, limit)
	if err != nil {
		HandleDomainError(c, err)
		return
	}

	SuccessHandler(c, http.StatusOK, dto.PaginatedEventsResponse{
		Events:     dto.ToEventResponses(events),
		Total:      total,
		Page:       page,
		Limit:      limit,
		TotalPages: (total + limit - 1) / limit,
	})
}

// GetEventHandler handles retrieving a single event
func (h *EventHandler) GetEventHandler(c *gin.Context) {
	event, err := h.eventUsecase.GetEventByID(c.Request.Context(), c.Param("eventID"))
	if err != nil {
		HandleDomainError(c, err)
		return
	}
	SuccessHandler(c, http.StatusOK, dto.ToEventResponse(*event))
}

// UpdateEventHandler handles event field updates
func (h *EventHandler) UpdateEventHandler(c *gin.Context) {
	requester, ok := currentUser(c)
	if !ok {
		ErrorHandler(c, http.StatusUnauthorized, "User not authenticated")
		return
	}

	var req dto.UpdateEventRequest
	if err := BindAndValidate(c, &req); err != nil {
		return
	}

	updates := make(map[string]interface{})
	if req.Title != nil {
		updates["title"] = *req.Title
	}
	if req.Description != nil {
		updates["description"] = *req.Description
	}
	if req.Location != nil {
		updates["location"] = *req.Location
	}
	if req.District != nil {
		updates["district"] = *req.District
	}
	if req.Date != nil {
		date, err := time.Parse(time.RFC3339, *req.Date)
		if err != nil {
			ErrorHandler(c, http.StatusBadRequest, "Invalid date format, expected RFC3339")
			return
		}
		updates["date"] = date
	}
	if req.EventTime != nil {
		updates["event_time"] = *req.EventTime
	}

	event, err := h.eventUsecase.UpdateEvent(c.Request.Context(), c.Param("eventID"), requester, updates)
	if err != nil {
		HandleDomainError(c, err)
		return
	}
	SuccessHandler(c, http.StatusOK, dto.ToEventResponse(*event))
}

// DeleteEventHandler handles event deletion
func (h *EventHandler) DeleteEventHandler(c *gin.Context) {
	requester, ok := currentUser(c)
	if !ok {
		ErrorHandler(c, http.StatusUnauthorized, "User not authenticated")
		return
	}

	if err := h.eventUsecase.DeleteEvent(c.Request.Context(), c.Param("eventID"), requester); err != nil {
		HandleDomainError(c, err)
		return
	}
	MessageHandler(c, http.StatusOK, "Event deleted successfully")
}

// ShareEventHandler handles sharing the event's registration list
func (h *EventHandler) ShareEventHandler(c *gin.Context) {
	requester, ok := currentUser(c)
	if !ok {
		ErrorHandler(c, http.StatusUnauthorized, "User not authenticated")
		return
	}

	var req dto.ShareRequest
	if err := BindAndValidate(c, &req); err != nil {
		return
	}

	event, err := h.eventUsecase.ShareEvent(c.Request.Context(), c.Param("eventID"), requester, req.UserIDs)
	if err != nil {
		HandleDomainError(c, err)
		return
	}
	SuccessHandler(c, http.StatusOK, dto.ToEventResponse(*event))
}

// RemoveReportFileHandler handles detaching one report attachment
func (h *EventHandler) RemoveReportFileHandler(c *gin.Context) {
	requester, ok := currentUser(c)
	if !ok {
		ErrorHandler(c, http.StatusUnauthorized, "User not authenticated")
		return
	}

	err := h.eventUsecase.RemoveReportFile(c.Request.Context(), c.Param("eventID"), requester, c.Param("storageID"))
	if err != nil {
		HandleDomainError(c, err)
		return
	}
	MessageHandler(c, http.StatusOK, "Report file removed successfully")
}
