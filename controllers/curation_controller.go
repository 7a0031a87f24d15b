package controllers

import (
	"math"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/lib/pq"
	"github.com/wayfarer-app/api-go/models"
	"github.com/wayfarer-app/api-go/types"
	"github.com/wayfarer-app/api-go/utils"
	"gorm.io/gorm"
)

type CurationController struct {
	DB *gorm.DB
}

func NewCurationController(db *gorm.DB) *CurationController {
	return &CurationController{DB: db}
}

// CreateCuration godoc
// @Summary Create a named list of saved places
// @Tags curations
// @Accept json
// @Produce json
// @Param request body types.CreateCurationRequest true "Curation"
// @Success 201 {object} StandardResponse
// @Router /curations [post]
func (cc *CurationController) CreateCuration(c *gin.Context) {
	user := utils.GetUser(c)
	if user == nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not found in context"})
		return
	}

	var input types.CreateCurationRequest
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error(), "success": false})
		return
	}

	curation := models.Curation{
		UserID:      user.UserID,
		Title:       input.Title,
		Description: input.Description,
		Tags:        pq.StringArray(input.Tags),
		ShareSlug:   uuid.New().String(),
		IsPublic:    input.IsPublic,
	}

	if err := cc.DB.Create(&curation).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create curation", "success": false})
		return
	}

	c.JSON(http.StatusCreated, StandardResponse{
		Success: true,
		Data:    curation,
		Message: "Curation created successfully",
	})
}

// ListCurations godoc
// @Summary List the caller's curations with pagination
// @Tags curations
// @Produce json
// @Param page query integer false "Page number (default: 1)"
// @Param pageSize query integer false "Items per page (default: 10, max: 50)"
// @Success 200 {object} StandardResponse
// @Router /curations [get]
func (cc *CurationController) ListCurations(c *gin.Context) {
	user := utils.GetUser(c)
	if user == nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not found in context"})
		return
	}

	var query types.CurationListQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	db := cc.DB.Model(&models.Curation{}).Where("user_id = ?", user.UserID)

	var total int64
	db.Count(&total)

	var curations []models.Curation
	offset := (query.Page - 1) * query.PageSize
	if err := db.Preload("Entries").Order("updated_at DESC").Offset(offset).Limit(query.PageSize).Find(&curations).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error fetching curations"})
		return
	}

	c.JSON(http.StatusOK, StandardResponse{
		Success: true,
		Data:    curations,
		Pagination: &PaginationMeta{
			CurrentPage: query.Page,
			PageSize:    query.PageSize,
			TotalItems:  total,
			TotalPages:  int(math.Ceil(float64(total) / float64(query.PageSize))),
		},
	})
}

// GetCuration godoc
// @Summary Get one curation with its entries
// @Tags curations
// @Produce json
// @Param curationId path integer true "Curation ID"
// @Success 200 {object} StandardResponse
// @Router /curations/{curationId} [get]
func (cc *CurationController) GetCuration(c *gin.Context) {
	curation, ok := cc.ownedCuration(c)
	if !ok {
		return
	}

	if err := cc.DB.Preload("Entries").First(&curation, curation.ID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Curation not found"})
		return
	}

	c.JSON(http.StatusOK, StandardResponse{Success: true, Data: curation})
}

// UpdateCuration godoc
// @Summary Update a curation's metadata
// @Tags curations
// @Accept json
// @Produce json
// @Param curationId path integer true "Curation ID"
// @Param request body types.UpdateCurationRequest true "Fields to update"
// @Success 200 {object} StandardResponse
// @Router /curations/{curationId} [put]
func (cc *CurationController) UpdateCuration(c *gin.Context) {
	curation, ok := cc.ownedCuration(c)
	if !ok {
		return
	}

	var input types.UpdateCurationRequest
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error(), "success": false})
		return
	}

	updates := map[string]interface{}{}
	if input.Title != "" {
		updates["title"] = input.Title
	}
	if input.Description != "" {
		updates["description"] = input.Description
	}
	if input.Tags != nil {
		updates["tags"] = pq.StringArray(input.Tags)
	}
	if input.IsPublic != nil {
		updates["is_public"] = *input.IsPublic
	}
	if input.CoverImage != "" {
		updates["cover_image"] = input.CoverImage
	}

	if err := cc.DB.Model(&curation).Updates(updates).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update curation", "success": false})
		return
	}

	c.JSON(http.StatusOK, StandardResponse{Success: true, Data: curation, Message: "Curation updated successfully"})
}

// DeleteCuration godoc
// @Summary Delete a curation and its entries
// @Tags curations
// @Param curationId path integer true "Curation ID"
// @Success 200 {object} StandardResponse
// @Router /curations/{curationId} [delete]
func (cc *CurationController) DeleteCuration(c *gin.Context) {
	curation, ok := cc.ownedCuration(c)
	if !ok {
		return
	}

	if err := cc.DB.Where("curation_id = ?", curation.ID).Delete(&models.CurationEntry{}).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete curation entries", "success": false})
		return
	}
	if err := cc.DB.Delete(&curation).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete curation", "success": false})
		return
	}

	c.JSON(http.StatusOK, StandardResponse{Success: true, Message: "Curation deleted successfully"})
}

// AddEntry godoc
// @Summary Save a place into a curation
// @Tags curations
// @Accept json
// @Produce json
// @Param curationId path integer true "Curation ID"
// @Param request body types.AddCurationEntryRequest true "Place snapshot"
// @Success 201 {object} StandardResponse
// @Router /curations/{curationId}/entries [post]
func (cc *CurationController) AddEntry(c *gin.Context) {
	curation, ok := cc.ownedCuration(c)
	if !ok {
		return
	}

	var input types.AddCurationEntryRequest
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error(), "success": false})
		return
	}

	// One entry per place per curation.
	var existing models.CurationEntry
	if err := cc.DB.Where("curation_id = ? AND place_id = ?", curation.ID, input.PlaceID).First(&existing).Error; err == nil {
		c.JSON(http.StatusConflict, gin.H{"error": "Place already saved to this curation", "success": false})
		return
	}

	entry := models.CurationEntry{
		CurationID:  curation.ID,
		PlaceID:     input.PlaceID,
		DisplayName: input.DisplayName,
		Address:     input.Address,
		Latitude:    input.Latitude,
		Longitude:   input.Longitude,
		Rating:      input.Rating,
		PriceLevel:  input.PriceLevel,
		PrimaryType: input.PrimaryType,
		Note:        input.Note,
	}

	if err := cc.DB.Create(&entry).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save place", "success": false})
		return
	}

	c.JSON(http.StatusCreated, StandardResponse{Success: true, Data: entry, Message: "Place saved successfully"})
}

// RemoveEntry godoc
// @Summary Remove a saved place from a curation
// @Tags curations
// @Param curationId path integer true "Curation ID"
// @Param entryId path integer true "Entry ID"
// @Success 200 {object} StandardResponse
// @Router /curations/{curationId}/entries/{entryId} [delete]
func (cc *CurationController) RemoveEntry(c *gin.Context) {
	curation, ok := cc.ownedCuration(c)
	if !ok {
		return
	}

	entryID := c.Param("entryId")
	result := cc.DB.Where("curation_id = ? AND id = ?", curation.ID, entryID).Delete(&models.CurationEntry{})
	if result.Error != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to remove place", "success": false})
		return
	}
	if result.RowsAffected == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "Entry not found", "success": false})
		return
	}

	c.JSON(http.StatusOK, StandardResponse{Success: true, Message: "Place removed successfully"})
}

// ownedCuration loads the curation from the path and enforces ownership.
func (cc *CurationController) ownedCuration(c *gin.Context) (models.Curation, bool) {
	var curation models.Curation

	user := utils.GetUser(c)
	if user == nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not found in context"})
		return curation, false
	}

	id := c.Param("curationId")
	if err := cc.DB.First(&curation, "id = ?", id).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Curation not found"})
		return curation, false
	}

	if curation.UserID != user.UserID {
		c.JSON(http.StatusForbidden, gin.H{"error": "Access denied"})
		return curation, false
	}

	return curation, true
}
