package dto

// IncrementRequest is the request body for incrementing a counter.
// Delta may be negative but not zero.
type IncrementRequest struct {
	Delta int64 `json:"delta" binding:"required"`
}

// CounterResponse is the response body for counter endpoints.
type CounterResponse struct {
	Name  string `json:"name"`
	Value int64  `json:"value"`
}
