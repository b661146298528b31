package dto

import (
	"github.com/roshan-1001/credence-realtor-sub001/internal/domain/entity"
)

// APIResponse is the normalized envelope every endpoint returns.
type APIResponse struct {
	Success    bool                    `json:"success"`
	Message    string                  `json:"message"`
	Data       interface{}             `json:"data,omitempty"`
	Pagination *entity.PaginationBlock `json:"pagination,omitempty"`
	Error      string                  `json:"error,omitempty"`
}

// ListingsResponse builds the success envelope for a listing page.
func ListingsResponse(message string, items []entity.ListingItem, pagination entity.PaginationBlock) APIResponse {
	return APIResponse{
		Success:    true,
		Message:    message,
		Data:       items,
		Pagination: &pagination,
	}
}

// DevelopersResponse builds the success envelope for a developer page.
func DevelopersResponse(message string, items []entity.DeveloperItem, pagination entity.PaginationBlock) APIResponse {
	return APIResponse{
		Success:    true,
		Message:    message,
		Data:       items,
		Pagination: &pagination,
	}
}
