package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"reflect"
	"strings"

	"invoice-api/internal/services"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator"
)

// RegisterFieldNames makes validation messages use the JSON field names
// clients actually submit instead of the Go struct field names.
func RegisterFieldNames(v *validator.Validate) {
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "" || name == "-" {
			return fld.Name
		}
		return name
	})
}

// ErrorResponder is the single funnel for error responses: every failure
// leaves the API as {"error": <public message>} with the underlying
// cause attached as "message" outside production.
type ErrorResponder struct {
	production bool
}

func NewErrorResponder(production bool) *ErrorResponder {
	return &ErrorResponder{production: production}
}

// Respond writes the error payload and status.
func (r *ErrorResponder) Respond(c *gin.Context, status int, message string, cause error) {
	body := gin.H{"error": message}
	if cause != nil && !r.production {
		body["message"] = cause.Error()
	}
	c.JSON(status, body)
}

// RespondService maps a service error to its HTTP status: not-found to
// 404, anything else to a 500 with a generic message so storage details
// never leak.
func (r *ErrorResponder) RespondService(c *gin.Context, err error, fallback string) {
	if errors.Is(err, services.ErrNotFound) {
		r.Respond(c, http.StatusNotFound, "Invoice not found", nil)
		return
	}
	r.Respond(c, http.StatusInternalServerError, fallback, err)
}

// FormatValidationErrors collects every field failure into one
// multi-line message; validation never fails fast.
func FormatValidationErrors(err error) string {
	validationErrors, ok := err.(validator.ValidationErrors)
	if !ok {
		return err.Error()
	}
	messages := make([]string, 0, len(validationErrors))
	for _, fieldError := range validationErrors {
		fieldName := fieldError.Field()
		switch fieldError.Tag() {
		case "required":
			messages = append(messages, fmt.Sprintf("%q is required", fieldName))
		case "email":
			messages = append(messages, fmt.Sprintf("%q must be a valid email address", fieldName))
		case "oneof":
			messages = append(messages, fmt.Sprintf("%q must be one of [%s]", fieldName, fieldError.Param()))
		default:
			messages = append(messages, fmt.Sprintf("%q failed on the '%s' rule", fieldName, fieldError.Tag()))
		}
	}
	return strings.Join(messages, "\n")
}
