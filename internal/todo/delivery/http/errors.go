package http

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"reflect"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"

	pkgErrors "todo-list-service/pkg/errors"
)

// mapBindError classifies a gin binding failure.
func mapBindError(err error) error {
	var (
		syntaxErr *json.SyntaxError
		typeErr   *json.UnmarshalTypeError
		timeErr   *time.ParseError
		validErrs validator.ValidationErrors
	)

	switch {
	case errors.Is(err, io.EOF):
		return pkgErrors.Wrapf(pkgErrors.KindNullArgument, err, "request body is required")
	case errors.As(err, &syntaxErr), errors.Is(err, io.ErrUnexpectedEOF):
		return pkgErrors.Wrapf(pkgErrors.KindMalformedRequest, err, "malformed JSON body")
	case errors.As(err, &typeErr):
		return pkgErrors.Wrapf(pkgErrors.KindMalformedRequest, err, "field %s has the wrong type", typeErr.Field)
	case errors.As(err, &timeErr):
		return pkgErrors.Wrapf(pkgErrors.KindMalformedRequest, err, "due_date must be an RFC3339 timestamp")
	case errors.As(err, &validErrs):
		return mapValidationErrors(validErrs)
	default:
		return pkgErrors.Wrapf(pkgErrors.KindMalformedRequest, err, "invalid request")
	}
}

// mapValidationErrors reports a missing pointer field as NullArgument and
// anything else as Validation.
func mapValidationErrors(errs validator.ValidationErrors) error {
	kind := pkgErrors.KindValidation
	msgs := make([]string, 0, len(errs))
	for _, fe := range errs {
		if fe.Tag() == "required" && fe.Kind() == reflect.Ptr {
			kind = pkgErrors.KindNullArgument
		}
		msgs = append(msgs, describeFieldError(fe))
	}
	return pkgErrors.Wrap(kind, errors.New(strings.Join(msgs, "; ")))
}

func describeFieldError(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", fe.Field())
	case "max":
		return fmt.Sprintf("%s must be at most %s characters", fe.Field(), fe.Param())
	default:
		return fmt.Sprintf("%s failed on %s", fe.Field(), fe.Tag())
	}
}

// handleError hands err to the error translator and stops the chain.
func (h *handler) handleError(c *gin.Context, err error) {
	_ = c.Error(err)
	c.Abort()
}
