// Package errors defines the domain error taxonomy shared by the products and
// sales contexts and its mapping onto HTTP status codes.
package errors

import (
	"errors"
	"net/http"
)

// Kind classifies a domain failure.
type Kind string

const (
	KindBadRequest          Kind = "bad_request"
	KindUnprocessableEntity Kind = "unprocessable_entity"
	KindNotFound            Kind = "not_found"
)

// Error is a domain failure carrying the message returned to clients and the
// HTTP status it maps to.
type Error struct {
	Kind    Kind
	Message string
	Status  int
}

// Error implements the error interface.
func (e *Error) Error() string {
	return e.Message
}

// BadRequest reports a malformed payload or a missing required field.
func BadRequest(message string) *Error {
	return &Error{Kind: KindBadRequest, Message: message, Status: http.StatusBadRequest}
}

// UnprocessableEntity reports a well-formed but semantically invalid value.
func UnprocessableEntity(message string) *Error {
	return &Error{Kind: KindUnprocessableEntity, Message: message, Status: http.StatusUnprocessableEntity}
}

// NotFound reports a reference to an entity that does not exist.
func NotFound(message string) *Error {
	return &Error{Kind: KindNotFound, Message: message, Status: http.StatusNotFound}
}

// Shared not-found instances. Callers compare them by identity with errors.Is.
var (
	ErrProductNotFound = NotFound("Product not found")
	ErrSaleNotFound    = NotFound("Sale not found")
)

// FromKind rebuilds a taxonomy error from its kind and message, returning the
// shared instance when one matches. Used when an error crossed a process
// boundary and lost its identity.
func FromKind(kind Kind, message string) (*Error, bool) {
	switch kind {
	case KindNotFound:
		switch message {
		case ErrProductNotFound.Message:
			return ErrProductNotFound, true
		case ErrSaleNotFound.Message:
			return ErrSaleNotFound, true
		}
		return NotFound(message), true
	case KindBadRequest:
		return BadRequest(message), true
	case KindUnprocessableEntity:
		return UnprocessableEntity(message), true
	default:
		return nil, false
	}
}

// As extracts the taxonomy error from err's chain.
func As(err error) (*Error, bool) {
	var domainErr *Error
	if errors.As(err, &domainErr) {
		return domainErr, true
	}
	return nil, false
}

// HTTPStatusFromError extracts the HTTP status from err, defaulting to 500.
func HTTPStatusFromError(err error) int {
	if domainErr, ok := As(err); ok {
		return domainErr.Status
	}
	return http.StatusInternalServerError
}
