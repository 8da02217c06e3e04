// Package handler provides the HTTP handlers of the catalog feature.
package handler

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"shop_backend/internal/feature/catalog/transport/http/dto"
	"shop_backend/internal/platform/http/request"
	"shop_backend/internal/platform/http/respond"
	"shop_backend/internal/platform/pagination"
)

func writeList[T, R any](c *gin.Context, list func(context.Context) ([]T, error), toRes func(T) R) {
	items, err := list(c.Request.Context())
	if err != nil {
		respond.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.MapList(items, toRes))
}

func writePage[T, R any](c *gin.Context, page func(context.Context, pagination.Params) (pagination.Page[T], error), toRes func(T) R) {
	p, err := request.Page(c)
	if err != nil {
		respond.Error(c, err)
		return
	}
	result, err := page(c.Request.Context(), p)
	if err != nil {
		respond.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, pagination.NewResponse(result, toRes))
}

func writeOne[T, R any](c *gin.Context, get func(context.Context, uint) (*T, error), toRes func(T) R) {
	id, err := request.ID(c, "id")
	if err != nil {
		respond.Error(c, err)
		return
	}
	item, err := get(c.Request.Context(), id)
	if err != nil {
		respond.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, toRes(*item))
}

func writeDelete(c *gin.Context, del func(context.Context, uint) error) {
	id, err := request.ID(c, "id")
	if err != nil {
		respond.Error(c, err)
		return
	}
	if err := del(c.Request.Context(), id); err != nil {
		respond.Error(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// writeSaved responds 201 for creates and 200 for updates.
func writeSaved[T, R any](c *gin.Context, status int, item *T, err error, toRes func(T) R) {
	if err != nil {
		respond.Error(c, err)
		return
	}
	c.JSON(status, toRes(*item))
}
