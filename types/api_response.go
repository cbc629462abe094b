package types

// MessageResponse is the success envelope returned by the contact endpoint.
type MessageResponse struct {
	Message string `json:"message"`
}

// ErrorResponse is the error envelope returned by the contact endpoint.
// The error string is either a validation reason or the generic
// "Server error"; infrastructure detail is never exposed.
type ErrorResponse struct {
	Error string `json:"error"`
}
