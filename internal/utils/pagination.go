package utils

import (
	"strconv"

	"github.com/Jacopo-Sassi/codylab-talent-be-2025/internal/constants"
	"github.com/gin-gonic/gin"
)

// PaginationParams holds page-number based pagination parameters
type PaginationParams struct {
	Page   int
	Limit  int
	Offset int
}

// PaginationResponse represents the pagination metadata in API responses
type PaginationResponse struct {
	Page  int   `json:"page"`
	Limit int   `json:"limit"`
	Total int64 `json:"total"`
}

// PageRequest describes an offset-based page of a collection along with the
// key the collection is sorted by before slicing.
type PageRequest struct {
	Offset  int
	Size    int
	SortKey string
}

// DefaultPageRequest is the page applied when the caller supplies none:
// first ten items, sorted by identifier.
func DefaultPageRequest() PageRequest {
	return PageRequest{
		Offset:  0,
		Size:    constants.DefaultPageSize,
		SortKey: "id",
	}
}

// GetPaginationParams extracts and validates pagination parameters from the request
func GetPaginationParams(c *gin.Context) PaginationParams {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", strconv.Itoa(constants.DefaultPageSize)))

	if page < 1 {
		page = 1
	}
	if limit < constants.MinPageSize || limit > constants.MaxPageSize {
		limit = constants.DefaultPageSize
	}

	offset := (page - 1) * limit

	return PaginationParams{
		Page:   page,
		Limit:  limit,
		Offset: offset,
	}
}

// GetPageRequest extracts an offset/size/sort page descriptor from the request,
// falling back to the defaults for anything missing or out of range.
func GetPageRequest(c *gin.Context) PageRequest {
	req := DefaultPageRequest()

	params := GetPaginationParams(c)
	req.Offset = params.Offset
	req.Size = params.Limit

	if sort := c.Query("sort"); sort != "" {
		req.SortKey = sort
	}

	return req
}
