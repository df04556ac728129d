// Package dto provides Data Transfer Objects for API requests/responses.
package dto

// SuccessResponse is the plain acknowledgement used by login.
type SuccessResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// SaveResponse reports the outcome of an edit. Durable is false when the change was
// applied but could not be written to storage.
type SaveResponse struct {
	Success bool   `json:"success"`
	Durable bool   `json:"durable"`
	Message string `json:"message"`
	Data    any    `json:"data,omitempty"`
}

// ListResponse wraps list results.
type ListResponse[T any] struct {
	Items []T `json:"items"`
	Total int `json:"total"`
}

// NewListResponse builds a list response. A nil slice is rendered as [].
func NewListResponse[T any](items []T) ListResponse[T] {
	if items == nil {
		items = []T{}
	}
	return ListResponse[T]{Items: items, Total: len(items)}
}

// mapAll converts every element of in. A nil input gives an empty slice.
func mapAll[S, D any](in []S, fn func(S) D) []D {
	out := make([]D, len(in))
	for i, v := range in {
		out[i] = fn(v)
	}
	return out
}
