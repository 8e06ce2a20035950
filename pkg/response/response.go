package response

import "github.com/linskybing/property-portal/pkg/apperrors"

type ErrorResponse struct {
	Error string `json:"error"`
}

// ValidationErrorResponse is the 400 body for schema violations.
type ValidationErrorResponse struct {
	Error []apperrors.ValidationIssue `json:"error"`
}

type MessageResponse struct {
	Message string `json:"message"`
}

type StatusResponse struct {
	Status string `json:"status"`
}
