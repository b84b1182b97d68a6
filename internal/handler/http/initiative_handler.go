package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/kartavyango/sahaaya/internal/domain/entity"
	"github.com/kartavyango/sahaaya/internal/handler/http/dto"
	usecasecontract "github.com/kartavyango/sahaaya/internal/usecase/contract"
)

type InitiativeHandler struct {
	initiativeUsecase usecasecontract.IInitiativeUseCase
}

func NewInitiativeHandler(initiativeUsecase usecasecontract.IInitiativeUseCase) *InitiativeHandler {
	return &InitiativeHandler{
		initiativeUsecase: initiativeUsecase,
	}
}

// CreateInitiativeHandler handles multipart initiative creation with
// categorized media
func (h *InitiativeHandler) CreateInitiativeHandler(c *gin.Context) {
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

	in := usecasecontract.CreateInitiativeInput{
		Category:    entity.InitiativeCategory(c.PostForm("category")),
		Subcategory: c.PostForm("subcategory"),
		Title:       c.PostForm("title"),
		Description: c.PostForm("description"),
		Content:     c.PostForm("content"),
		ListItems:   form.Value["list_items"],
	}

	for _, kind := range []struct {
		field string
		dst   *[]usecasecontract.FileUpload
	}{
		{"images", &in.Images},
		{"videos", &in.Videos},
		{"documents", &in.Documents},
		{"audio", &in.Audio},
	} {
		uploads, closeAll, err := openUploads(form.File[kind.field])
		if err != nil {
			ErrorHandler(c, http.StatusBadRequest, "Failed to read uploaded media")
			return
		}
		defer closeAll()
		*kind.dst = uploads
	}

	ini, err := h.initiativeUsecase.CreateInitiative(c.Request.Context(), creator, in)
	if err != nil {
		HandleDomainError(c, err)
		return
	}
	SuccessHandler(c, http.StatusCreated, dto.ToInitiativeResponse(*ini))
}

// GetInitiativesHandler handles the paginated, category-filtered catalog
func (h *InitiativeHandler) GetInitiativesHandler(c *gin.Context) {
	page, limit := parsePagination(c)

	var category *entity.InitiativeCategory
	if cat := c.Query("category"); cat != "" {
		v := entity.InitiativeCategory(cat)
		category = &v
	}

	items, total, err := h.initiativeUsecase.GetInitiatives(c.Request.Context(), category, page, limit)
	if err != nil {
		HandleDomainError(c, err)
		return
	}

	SuccessHandler(c, http.StatusOK, dto.PaginatedInitiativesResponse{
		Initiatives: dto.ToInitiativeResponses(items),
		Total:       total,
		Page:        page,
		Limit:       limit,
		TotalPages:  (total + limit - 1) / limit,
	})
}

// GetInitiativeHandler handles retrieving a single initiative
func (h *InitiativeHandler) GetInitiativeHandler(c *gin.Context) {
	ini, err := h.initiativeUsecase.GetInitiativeByID(c.Request.Context(), c.Param("initiativeID"))
	if err != nil {
		HandleDomainError(c, err)
		return
	}
	SuccessHandler(c, http.StatusOK, dto.ToInitiativeResponse(*ini))
}

// UpdateInitiativeHandler handles initiative field updates
func (h *InitiativeHandler) UpdateInitiativeHandler(c *gin.Context) {
	requester, ok := currentUser(c)
	if !ok {
		ErrorHandler(c, http.StatusUnauthorized, "User not authenticated")
		return
	}

	var req dto.UpdateInitiativeRequest
	if err := BindAndValidate(c, &req); err != nil {
		return
	}

	updates := make(map[string]interface{})
	if req.Category != nil {
		updates["category"] = *req.Category
	}
	if req.Subcategory != nil {
		updates["subcategory"] = *req.Subcategory
	}
	if req.Title != nil {
		updates["title"] = *req.Title
	}
	if req.Description != nil {
		updates["description"] = *req.Description
	}
	if req.Content != nil {
		updates["content"] = *req.Content
	}
	if req.ListItems != nil {
		updates["list_items"] = *req.ListItems
	}

	ini, err := h.initiativeUsecase.UpdateInitiative(c.Request.Context(), c.Param("initiativeID"), requester, updates)
	if err != nil {
		HandleDomainError(c, err)
		return
	}
	SuccessHandler(c, http.StatusOK, dto.ToInitiativeResponse(*ini))
}

// DeleteInitiativeHandler handles initiative deletion
func (h *InitiativeHandler) DeleteInitiativeHandler(c *gin.Context) {
	requester, ok := currentUser(c)
	if !ok {
		ErrorHandler(c, http.StatusUnauthorized, "User not authenticated")
		return
	}

	if err := h.initiativeUsecase.DeleteInitiative(c.Request.Context(), c.Param("initiativeID"), requester); err != nil {
		HandleDomainError(c, err)
		return
	}
	MessageHandler(c, http.StatusOK, "Initiative deleted successfully")
}
