// Package request binds path, query and body input into typed values,
// reporting failures as validation errors.
package request

import (
	"fmt"

	"github.com/gin-gonic/gin"
	"github.com/oapi-codegen/runtime"

	"shop_backend/internal/platform/pagination"
	"shop_backend/internal/shared/apperr"
)

func invalid(field, format string, args ...any) error {
	return apperr.Invalid([]apperr.FieldError{{Field: field, Message: fmt.Sprintf(format, args...)}})
}

// ID reads a positive integer path parameter.
func ID(c *gin.Context, name string) (uint, error) {
	var id uint
	err := runtime.BindStyledParameterWithOptions("simple", name, c.Param(name), &id,
		runtime.BindStyledParameterOptions{ParamLocation: runtime.ParamLocationPath, Required: true})
	if err != nil || id == 0 {
		return 0, invalid(name, "must be a positive integer")
	}
	return id, nil
}

// Page reads page, size and filter from the query string. Missing values
// fall back to the pagination defaults.
func Page(c *gin.Context) (pagination.Params, error) {
	q := c.Request.URL.Query()
	p := pagination.Params{Page: 1, Size: pagination.DefaultSize}

	if err := runtime.BindQueryParameter("form", true, false, "page", q, &p.Page); err != nil || p.Page < 1 {
		return p, invalid("page", "must be an integer >= 1")
	}
	if err := runtime.BindQueryParameter("form", true, false, "size", q, &p.Size); err != nil ||
		p.Size < 1 || p.Size > pagination.MaxSize {
		return p, invalid("size", "must be an integer between 1 and %d", pagination.MaxSize)
	}
	if err := runtime.BindQueryParameter("form", true, false, "filter", q, &p.Filter); err != nil {
		return p, invalid("filter", "must be a single value")
	}
	return p, nil
}

// Quantity reads the "cantidad" query parameter, defaulting to def when absent.
func Quantity(c *gin.Context, def int) (int, error) {
	qty := def
	if err := runtime.BindQueryParameter("form", true, false, "cantidad", c.Request.URL.Query(), &qty); err != nil {
		return 0, invalid("cantidad", "must be an integer")
	}
	return qty, nil
}

// JSON decodes the request body into dst.
func JSON(c *gin.Context, dst any) error {
	if err := c.ShouldBindJSON(dst); err != nil {
		return invalid("body", "malformed JSON: %v", err)
	}
	return nil
}
