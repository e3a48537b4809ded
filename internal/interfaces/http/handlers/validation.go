package handlers

import (
	"errors"
	"fmt"
	"strings"
	"unicode"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	domainerrors "stone-shop.backend/internal/domain/errors"
	"stone-shop.backend/internal/interfaces/http/response"
)

// bindJSON binds the request body and, on failure, writes a validation
// error envelope with per-field messages. Returns false when binding failed.
func bindJSON(c *gin.Context, input interface{}) bool {
	if err := c.ShouldBindJSON(input); err != nil {
		response.Error(c, bindingError(err))
		return false
	}
	return true
}

func bindingError(err error) *domainerrors.AppError {
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		fieldErrors := make(map[string]string, len(validationErrs))
		for _, fe := range validationErrs {
			fieldErrors[toSnakeCase(fe.Field())] = validationMessage(fe)
		}
		return domainerrors.Validation("Invalid input.", fieldErrors)
	}
	return domainerrors.Validation("Malformed request body.", nil)
}

func validationMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "This field is required."
	case "email":
		return "Enter a valid email address."
	case "min":
		return fmt.Sprintf("Ensure this field has at least %s characters.", fe.Param())
	case "gt":
		return fmt.Sprintf("Ensure this value is greater than %s.", fe.Param())
	case "gte":
		return fmt.Sprintf("Ensure this value is greater than or equal to %s.", fe.Param())
	default:
		return "This value is invalid."
	}
}

// toSnakeCase converts a struct field name to its wire form
// ("FirstName" -> "first_name", "ProductID" -> "product_id").
func toSnakeCase(name string) string {
	runes := []rune(name)
	var b strings.Builder
	for i, r := range runes {
		if unicode.IsUpper(r) {
			prevLower := i > 0 && unicode.IsLower(runes[i-1])
			nextLower := i+1 < len(runes) && unicode.IsLower(runes[i+1])
			if i > 0 && (prevLower || nextLower) {
				b.WriteByte('_')
			}
			b.WriteRune(unicode.ToLower(r))
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}
