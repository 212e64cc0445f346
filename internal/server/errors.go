// Package server provides the HTTP REST API for the resume restyler.
package server

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/jonathan/resume-restyle/internal/decode"
	"github.com/jonathan/resume-restyle/internal/export"
	"github.com/jonathan/resume-restyle/internal/rendering"
	"github.com/jonathan/resume-restyle/internal/templates"
)

// ErrValidation indicates request validation failure
type ErrValidation struct {
	Field   string
	Message string
}

func (e *ErrValidation) Error() string {
	return fmt.Sprintf("validation error: %s - %s", e.Field, e.Message)
}

// HTTPStatus returns the appropriate HTTP status code for an error
func HTTPStatus(err error) int {
	var (
		unsupportedFormat *decode.UnsupportedFormatError
		emptyDocument     *decode.EmptyDocumentError
		decodeFailure     *decode.DecodeFailureError
		templateNotFound  *templates.TemplateNotFoundError
		invalidName       *templates.InvalidTemplateNameError
		templateEmpty     *rendering.TemplateEmptyError
		badExportFormat   *export.UnsupportedExportFormatError
		validation        *ErrValidation
	)

	switch {
	case errors.As(err, &unsupportedFormat):
		return http.StatusUnsupportedMediaType
	case errors.As(err, &emptyDocument), errors.As(err, &decodeFailure), errors.As(err, &templateEmpty):
		return http.StatusUnprocessableEntity
	case errors.As(err, &templateNotFound):
		return http.StatusNotFound
	case errors.As(err, &invalidName), errors.As(err, &badExportFormat), errors.As(err, &validation):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
