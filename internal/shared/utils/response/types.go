package response

// ErrorResponse is the body of every failed request.
type ErrorResponse struct {
	Message string `json:"message"`
}
