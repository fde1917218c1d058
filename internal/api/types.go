// Package api defines the JSON shapes shared by every HTTP handler.
package api

// ErrorResponse is returned with every 4xx/5xx response.
type ErrorResponse struct {
	Error string `json:"error"`
}
