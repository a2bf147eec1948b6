package service

import (
	"errors"
	"strings"
)

// Validation error kinds, mapped to 400 responses at the handler boundary.
const (
	KindMissingFields = "missing_fields"
	KindInvalidEmail  = "invalid_email"
	KindInvalidStatus = "invalid_status"
	KindNoFields      = "no_fields"
)

// ValidationError carries the kind of rejection and, for missing fields,
// every offending field name — not just the first.
type ValidationError struct {
	Kind    string   `json:"kind"`
	Fields  []string `json:"fields,omitempty"`
	Message string   `json:"message"`
}

func (e *ValidationError) Error() string {
	if len(e.Fields) > 0 {
		return e.Message + ": " + strings.Join(e.Fields, ", ")
	}
	return e.Message
}

func missingFieldsError(fields []string) *ValidationError {
	return &ValidationError{
		Kind:    KindMissingFields,
		Fields:  fields,
		Message: "Missing required fields",
	}
}

func invalidEmailError() *ValidationError {
	return &ValidationError{Kind: KindInvalidEmail, Message: "Invalid email address"}
}

func invalidStatusError() *ValidationError {
	return &ValidationError{Kind: KindInvalidStatus, Message: "Invalid status"}
}

func noFieldsError() *ValidationError {
	return &ValidationError{Kind: KindNoFields, Message: "No fields to update"}
}

// ErrInvalidCredentials 登录凭证错误
var ErrInvalidCredentials = errors.New("invalid credentials")
