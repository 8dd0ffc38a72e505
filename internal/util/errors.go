// internal/util/errors.go
// Definisi error aplikasi standar + helper respons JSON

package util

import (
	"encoding/json"
	"fmt"
	"net/http"
)

type AppError struct {
	Code    string `json:"error"` // e.g., "bad_input", "not_found", "internal"
	Message string `json:"message"`
}

func (e AppError) Error() string {
	if e.Code == "" {
		return e.Message
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func BadInput(msg string) AppError     { return AppError{Code: "bad_input", Message: msg} }
func NotFound(msg string) AppError     { return AppError{Code: "not_found", Message: msg} }
func Internal(msg string) AppError     { return AppError{Code: "internal", Message: msg} }
func Unavailable(msg string) AppError  { return AppError{Code: "unavailable", Message: msg} }
func Unauthorized(msg string) AppError { return AppError{Code: "unauthorized", Message: msg} }

// WriteJSON menulis v sebagai JSON dengan status tertentu.
func WriteJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// WriteError menulis AppError sebagai {"error": code, "message": msg}.
func WriteError(w http.ResponseWriter, status int, e AppError) {
	WriteJSON(w, status, e)
}
