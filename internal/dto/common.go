package dto

// ListResponse wraps a listing with its size.
type ListResponse[T any] struct {
	Count int `json:"count"`
	Data  []T `json:"data"`
}

// NewListResponse builds a ListResponse, rendering a nil slice as [].
func NewListResponse[T any](items []T) ListResponse[T] {
	if items == nil {
		items = []T{}
	}
	return ListResponse[T]{Count: len(items), Data: items}
}

// StatusResponse is the generic acknowledgement body.
type StatusResponse struct {
	Status  string `json:"status"`
	Message string `json:"message,omitempty"`
	ID      int64  `json:"id,omitempty"`
}
