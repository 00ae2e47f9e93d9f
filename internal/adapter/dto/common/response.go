package common

// ListResponse wraps a list payload with its total count
type ListResponse struct {
	Data  interface{} `json:"data"`
	Total int64       `json:"total"`
}
