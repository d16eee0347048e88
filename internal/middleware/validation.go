package middleware

import (
	"encoding/json"
	"fmt"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/yigit/campus/internal/pkg/apperrors"
	"github.com/yigit/campus/internal/pkg/validation"
)

func init() {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		validation.UseJSONNames(v)
	}
}

// BindJSON decodes and validates the request body into obj.
// Failures come back as a validation error carrying the offending fields.
func BindJSON(c *gin.Context, obj interface{}) error {
	if err := c.ShouldBindJSON(obj); err != nil {
		return bindError(err)
	}
	return nil
}

// BindBatch decodes a JSON array body and validates each element.
// Field errors are keyed by element index, for example "[1].name".
func BindBatch[T any](c *gin.Context, items *[]T) error {
	if err := json.NewDecoder(c.Request.Body).Decode(items); err != nil {
		return apperrors.NewValidationError(map[string]string{"body": "request body must be a JSON array"})
	}

	fields := map[string]string{}
	for i := range *items {
		if err := binding.Validator.ValidateStruct(&(*items)[i]); err != nil {
			for field, msg := range validation.FieldErrors(err) {
				fields[fmt.Sprintf("[%d].%s", i, field)] = msg
			}
		}
	}
	if len(fields) > 0 {
		return apperrors.NewValidationError(fields)
	}
	return nil
}

func bindError(err error) error {
	if fields := validation.FieldErrors(err); fields != nil {
		return apperrors.NewValidationError(fields)
	}
	return apperrors.NewValidationError(map[string]string{"body": "malformed JSON request body"})
}
