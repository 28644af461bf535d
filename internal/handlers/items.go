package handlers

import (
	"net/http"

	"growbit/internal/models"
	"growbit/internal/validation"

	"github.com/gin-gonic/gin"
)

func handleCreateItem(c *gin.Context) {
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

	var req models.ItemRequest
	if err := bindStrict(c, &req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	item, err := svc.CreateItem(userID, categoryID, req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, item.Response())
}

func handleListItems(c *gin.Context) {
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

	items, err := svc.ListItems(userID, categoryID)
	if err != nil {
		respondError(c, err)
		return
	}

	responses := make([]models.ItemResponse, 0, len(items))
	for i := range items {
		responses = append(responses, items[i].Response())
	}

	c.JSON(http.StatusOK, responses)
}

func handleGetItem(c *gin.Context) {
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

	itemID, err := validation.ParseID(c.Param("itemId"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "missing or invalid itemId parameter"})
		return
	}

	item, err := svc.GetItem(userID, categoryID, itemID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, item.Response())
}
