package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"growbit/internal/middleware"
	"growbit/internal/service"

	"github.com/gin-gonic/gin"
)

func SetupRoutes(r *gin.Engine, svc *service.Service) {
	r.Use(middleware.LogRequests())
	r.Use(middleware.SecurityHeaders())
	r.Use(middleware.AddServiceContext(svc))

	api := r.Group("/api")
	api.POST("/register", handleRegister)
	api.POST("/login", handleLogin)

	scoped := api.Group("/:userId")
	scoped.Use(middleware.TokenAuth(svc))
	{
		scoped.POST("/categories", handleCreateCategory)
		scoped.GET("/categories", handleListCategories)
		scoped.DELETE("/categories/:categoryId", handleDeleteCategory)

		scoped.POST("/categories/:categoryId/items", handleCreateItem)
		scoped.GET("/categories/:categoryId/items", handleListItems)
		scoped.GET("/categories/:categoryId/items/:itemId", handleGetItem)
	}
}

// bindStrict decodes a JSON body into dst, rejecting unknown fields so that
// a misspelled key fails loudly instead of silently dropping data.
func bindStrict(c *gin.Context, dst interface{}) error {
	decoder := json.NewDecoder(c.Request.Body)
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(dst); err != nil {
		return fmt.Errorf("invalid request body: %w", err)
	}
	return nil
}

func getService(c *gin.Context) *service.Service {
	return c.MustGet("service").(*service.Service)
}

// respondError maps the service failure taxonomy onto HTTP statuses for the
// resource endpoints. Register and login shape their own envelopes.
func respondError(c *gin.Context, err error) {
	var ve *service.ValidationError
	switch {
	case errors.As(err, &ve):
		c.JSON(http.StatusBadRequest, gin.H{"error": ve.Reason})
	case errors.Is(err, service.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "resource not found for this user"})
	case errors.Is(err, service.ErrConflict):
		c.JSON(http.StatusConflict, gin.H{"error": "resource already exists"})
	case errors.Is(err, service.ErrUnauthorized):
		c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid credentials"})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
	}
}
