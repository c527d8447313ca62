package api

import (
	"strconv"

	"gigbook/database"
	"gigbook/models"

	"github.com/gin-gonic/gin"
)

// CategoryHandler serves the shared category list
type CategoryHandler struct{}

// NewCategoryHandler creates a category handler
func NewCategoryHandler() *CategoryHandler {
	return &CategoryHandler{}
}

// CreateCategoryRequest is the category creation payload
type CreateCategoryRequest struct {
	Name  string `json:"name" binding:"required,max=50"`
	Color string `json:"color" binding:"omitempty,max=20" example:"#10b981"`
	Icon  string `json:"icon" binding:"omitempty,max=30" example:"code"`
	Sort  int    `json:"sort"`
}

// UpdateCategoryRequest carries the editable category fields
type UpdateCategoryRequest struct {
	Name       *string `json:"name" binding:"omitempty,max=50"`
	Color      *string `json:"color"`
	Icon       *string `json:"icon"`
	Sort       *int    `json:"sort"`
	IsArchived *bool   `json:"is_archived"`
}

// List returns all categories in display order
// @Summary List categories
// @Tags categories
// @Produce json
// @Security BearerAuth
// @Success 200 {object} Response{data=[]models.Category}
// @Router /api/v1/categories [get]
func (h *CategoryHandler) List(c *gin.Context) {
	var categories []models.Category
	query := database.DB.Model(&models.Category{})
	if c.Query("include_archived") != "true" {
		query = query.Where("is_archived = ?", false)
	}
	if err := query.Order("sort ASC, id ASC").Find(&categories).Error; err != nil {
		InternalError(c, SafeErrorMessage(err, "listing categories failed"))
		return
	}
	Success(c, categories)
}

// Create adds a category, styled from the legacy lookup when no color is given
// @Summary Create a category
// @Tags categories
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body CreateCategoryRequest true "category"
// @Success 200 {object} Response{data=models.Category}
// @Failure 400 {object} Response
// @Router /api/v1/categories [post]
func (h *CategoryHandler) Create(c *gin.Context) {
	var req CreateCategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, "invalid request: "+err.Error())
		return
	}

	var existing models.Category
	if err := database.DB.Where("name = ?", req.Name).First(&existing).Error; err == nil {
		BadRequest(c, "a category with this name already exists")
		return
	}

	style, _ := models.LookupCategoryStyle(req.Name)
	category := models.Category{
		Name:  req.Name,
		Color: style.Color,
		Icon:  style.Icon,
		Sort:  req.Sort,
	}
	if req.Color != "" {
		category.Color = req.Color
	}
	if req.Icon != "" {
		category.Icon = req.Icon
	}

	if err := database.DB.Create(&category).Error; err != nil {
		InternalError(c, SafeErrorMessage(err, "creating category failed"))
		return
	}
	SuccessWithMessage(c, "category created", category)
}

// Update edits a category
// @Summary Update a category
// @Tags categories
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "category id"
// @Param request body UpdateCategoryRequest true "fields to change"
// @Success 200 {object} Response{data=models.Category}
// @Failure 404 {object} Response
// @Router /api/v1/categories/{id} [put]
func (h *CategoryHandler) Update(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		BadRequest(c, "invalid id")
		return
	}
	var category models.Category
	if err := database.DB.First(&category, id).Error; err != nil {
		NotFound(c, "category not found")
		return
	}
	var req UpdateCategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, "invalid request: "+err.Error())
		return
	}

	updates := map[string]interface{}{}
	if req.Name != nil && *req.Name != "" {
		updates["name"] = *req.Name
	}
	if req.Color != nil {
		updates["color"] = *req.Color
	}
	if req.Icon != nil {
		updates["icon"] = *req.Icon
	}
	if req.Sort != nil {
		updates["sort"] = *req.Sort
	}
	if req.IsArchived != nil {
		updates["is_archived"] = *req.IsArchived
	}

	if len(updates) > 0 {
		if err := database.DB.Model(&category).Updates(updates).Error; err != nil {
			InternalError(c, SafeErrorMessage(err, "updating category failed"))
			return
		}
	}
	database.DB.First(&category, category.ID)
	SuccessWithMessage(c, "category updated", category)
}

// Delete archives a category; entries keep their category id
// @Summary Archive a category
// @Tags categories
// @Produce json
// @Security BearerAuth
// @Param id path int true "category id"
// @Success 200 {object} Response
// @Failure 404 {object} Response
// @Router /api/v1/categories/{id} [delete]
func (h *CategoryHandler) Delete(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		BadRequest(c, "invalid id")
		return
	}
	var category models.Category
	if err := database.DB.First(&category, id).Error; err != nil {
		NotFound(c, "category not found")
		return
	}
	if err := database.DB.Model(&category).Update("is_archived", true).Error; err != nil {
		InternalError(c, SafeErrorMessage(err, "archiving category failed"))
		return
	}
	SuccessWithMessage(c, "category archived", nil)
}
