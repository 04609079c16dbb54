package dto

import (
	"encoding/json"

	"github.com/siteledger/backend/internal/domain/shared"
)

// Response represents a standard API response
type Response struct {
	Success bool        `json:"success"`
	Data    interface{} `json:"data,omitempty"`
	Error   *ErrorInfo  `json:"error,omitempty"`
}

// ErrorInfo represents error details
type ErrorInfo struct {
	Code    string       `json:"code"`
	Message string       `json:"message"`
	Details []FieldError `json:"details,omitempty"`
}

// FieldError describes one invalid request field
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// Pagination carries cursors to the adjacent pages. Absent cursors mean the
// listing already reaches that edge.
type Pagination struct {
	Next *shared.PageCursor `json:"next,omitempty"`
	Prev *shared.PageCursor `json:"prev,omitempty"`
}

// ListResponse is the envelope for paginated listings. Count is the number
// of records in this page, not the filtered total.
type ListResponse struct {
	Success    bool        `json:"success"`
	Count      int         `json:"count"`
	Pagination Pagination  `json:"pagination"`
	Data       interface{} `json:"data"`
}

// NewSuccessResponse creates a success response
func NewSuccessResponse(data interface{}) Response {
	return Response{
		Success: true,
		Data:    data,
	}
}

// NewErrorResponse creates an error response
func NewErrorResponse(code, message string) Response {
	return Response{
		Success: false,
		Error: &ErrorInfo{
			Code:    code,
			Message: message,
		},
	}
}

// NewValidationErrorResponse creates an error response with per-field details
func NewValidationErrorResponse(message string, details []FieldError) Response {
	return Response{
		Success: false,
		Error: &ErrorInfo{
			Code:    ErrCodeValidation,
			Message: message,
			Details: details,
		},
	}
}

// NewListResponse wraps one page of records in the listing envelope
func NewListResponse[T any](page shared.Page[T], data interface{}) ListResponse {
	if data == nil {
		data = page.Items
	}
	return ListResponse{
		Success:    true,
		Count:      len(page.Items),
		Pagination: Pagination{Next: page.Next(), Prev: page.Prev()},
		Data:       data,
	}
}

// TrimFields reduces a record (or slice of records) to the requested JSON
// fields. The id field always survives so responses stay addressable. Data
// round trips through JSON, so the input must be marshalable.
func TrimFields(v interface{}, fields []string) (interface{}, error) {
	raw, err := json.Marshal(v)
	if err != nil {
		return nil, err
	}

	keep := make(map[string]bool, len(fields)+1)
	keep["id"] = true
	for _, f := range fields {
		keep[f] = true
	}

	var asSlice []map[string]interface{}
	if err := json.Unmarshal(raw, &asSlice); err == nil {
		out := make([]map[string]interface{}, len(asSlice))
		for i, item := range asSlice {
			out[i] = trimMap(item, keep)
		}
		return out, nil
	}

	var asMap map[string]interface{}
	if err := json.Unmarshal(raw, &asMap); err != nil {
		return nil, err
	}
	return trimMap(asMap, keep), nil
}

func trimMap(item map[string]interface{}, keep map[string]bool) map[string]interface{} {
	out := make(map[string]interface{}, len(keep))
	for k, v := range item {
		if keep[k] {
			out[k] = v
		}
	}
	return out
}
