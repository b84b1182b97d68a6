package dto

import (
	"time"

	"github.com/kartavyango/sahaaya/internal/domain/entity"
)

// UpdateInitiativeRequest is the payload for initiative field updates.
type UpdateInitiativeRequest struct {
	Category    *string   `json:"category"`
	Subcategory *string   `json:"subcategory"`
	Title       *string   `json:"title"`
	Description *string   `json:"description"`
	Content     *string   `json:"content"`
	ListItems   *[]string `json:"list_items"`
}

// InitiativeResponse is the DTO for an initiative.
type InitiativeResponse struct {
	ID          string                  `json:"id"`
	Category    string                  `json:"category"`
	Subcategory string                  `json:"subcategory"`
	Title       string                  `json:"title"`
	Description string                  `json:"description"`
	Content     string                  `json:"content"`
	Media       entity.InitiativeMedia  `json:"media"`
	ListItems   []string                `json:"list_items"`
	CreatedBy   string                  `json:"created_by"`
	CreatedAt   string                  `json:"created_at"`
	UpdatedAt   string                  `json:"updated_at"`
}

// PaginatedInitiativesResponse is one page of the initiative catalog.
type PaginatedInitiativesResponse struct {
	Initiatives []InitiativeResponse `json:"initiatives"`
	Total       int64                `json:"total"`
	Page        int64                `json:"page"`
	Limit       int64                `json:"limit"`
	TotalPages  int64                `json:"total_pages"`
}

// ToInitiativeResponse converts an entity.Initiative to its DTO.
func ToInitiativeResponse(ini entity.Initiative) InitiativeResponse {
	return InitiativeResponse{
		ID:          ini.ID,
		Category:    string(ini.Category),
		Subcategory: ini.Subcategory,
		Title:       ini.Title,
		Description: ini.Description,
		Content:     ini.Content,
		Media:       ini.Media,
		ListItems:   ini.ListItems,
		CreatedBy:   ini.CreatedBy,
		CreatedAt:   ini.CreatedAt.Format(time.RFC3339),
		UpdatedAt:   ini.UpdatedAt.Format(time.RFC3339),
	}
}

// ToInitiativeResponses converts a slice of initiatives.
func ToInitiativeResponses(items []*entity.Initiative) []InitiativeResponse {
	out := make([]InitiativeResponse, 0, len(items))
	for _, ini := range items {
		out = append(out, ToInitiativeResponse(*ini))
	}
	return out
}
