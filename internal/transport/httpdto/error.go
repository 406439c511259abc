package httpdto

import (
	"errors"

	"github.com/go-playground/validator/v10"
)

// ErrorResponse is the error body for every failing request:
// {"detail": "..."} for plain errors, {"detail": [...]} with field-level
// entries for validation failures.
type ErrorResponse struct {
	Detail interface{} `json:"detail"`
}

func NewDetailError(msg string) ErrorResponse {
	return ErrorResponse{Detail: msg}
}

// FieldError mirrors one field-level validation failure.
type FieldError struct {
	Loc  []string `json:"loc"`
	Msg  string   `json:"msg"`
	Type string   `json:"type"`
}

// NewValidationError converts a binding error into the 422 body. Validator
// errors become field entries; anything else (malformed JSON, bad query
// parameter types) becomes a single string detail.
func NewValidationError(err error) ErrorResponse {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return ErrorResponse{Detail: err.Error()}
	}

	details := make([]FieldError, 0, len(verrs))
	for _, fe := range verrs {
		details = append(details, FieldError{
			Loc:  []string{"body", fe.Field()},
			Msg:  messageFor(fe),
			Type: fe.Tag(),
		})
	}
	return ErrorResponse{Detail: details}
}

func messageFor(fe validator.FieldError) string {
	if fe.Tag() == "required" {
		return "field required"
	}
	return "invalid value"
}
