package handlers

import (
	"net/http"

	"growbit/internal/models"
	"growbit/internal/validation"

	"github.com/gin-gonic/gin"
)

func handleCreateCategory(c *gin.Context) {
	svc := getService(c)

	userID, err := validation.ParseID(c.Param("userId"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "missing or invalid userId parameter"})
		return
	}

	var req models.CategoryRequest
	if err := bindStrict(c, &req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	category, err := svc.CreateCategory(userID, req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, category.Response())
}

func handleListCategories(c *gin.Context) {
	svc := getService(c)

	userID, err := validation.ParseID(c.Param("userId"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "missing or invalid userId parameter"})
		return
	}

	categories, err := svc.ListCategories(userID)
	if err != nil {
		respondError(c, err)
		return
	}

	responses := make([]models.CategoryResponse, 0, len(categories))
	for i := range categories {
		responses = append(responses, categories[i].Response())
	}

	c.JSON(http.StatusOK, responses)
}

func handleDeleteCategory(c *gin.Context) {
	svc := getService(c)

	userID, err := validation.ParseID(c.Param("userId"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "missing or invalid userId parameter"})
		return
	}

	categoryID, err := validation.ParseID(c.Param("categoryId"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "missing or invalid categoryId parameter"})
		return
	}

	category, err := svc.DeleteCategory(userID, categoryID)
	if err != nil {
		respondError(c, err)
		return
	}

	// Snapshot of the record as it was before deletion.
	c.JSON(http.StatusOK, category.Response())
}
