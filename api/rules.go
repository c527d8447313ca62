package api

import (
	"strconv"

	"gigbook/classifier"
	"gigbook/database"
	"gigbook/middleware"
	"gigbook/models"

	"github.com/gin-gonic/gin"
)

// RuleHandler serves the classifier keyword rules
type RuleHandler struct{}

// NewRuleHandler creates a rule handler
func NewRuleHandler() *RuleHandler {
	return &RuleHandler{}
}

// CreateRuleRequest is the rule creation payload
type CreateRuleRequest struct {
	Category string `json:"category" binding:"required,oneof=work personal" example:"work"`
	Keyword  string `json:"keyword" binding:"required,max=80" example:"meeting"`
	Client   string `json:"client" binding:"omitempty,max=120"`
}

// UpdateRuleRequest carries the editable rule fields
type UpdateRuleRequest struct {
	Category *string `json:"category" binding:"omitempty,oneof=work personal"`
	Keyword  *string `json:"keyword" binding:"omitempty,max=80"`
	Client   *string `json:"client" binding:"omitempty,max=120"`
}

// List returns the user's keyword rules
// @Summary List keyword rules
// @Tags rules
// @Produce json
// @Security BearerAuth
// @Success 200 {object} Response{data=[]models.KeywordRule}
// @Failure 401 {object} Response
// @Router /api/v1/rules [get]
func (h *RuleHandler) List(c *gin.Context) {
	userID := middleware.GetCurrentUserID(c)
	var rules []models.KeywordRule
	if err := database.DB.Where("user_id = ?", userID).Order("category ASC, keyword ASC").Find(&rules).Error; err != nil {
		InternalError(c, SafeErrorMessage(err, "listing rules failed"))
		return
	}
	Success(c, rules)
}

// Create adds a keyword rule. When the keyword has a known translation the
// paired spelling is stored as a second rule, so events match in either
// language.
// @Summary Create a keyword rule
// @Tags rules
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body CreateRuleRequest true "rule"
// @Success 200 {object} Response{data=[]models.KeywordRule}
// @Failure 400 {object} Response
// @Router /api/v1/rules [post]
func (h *RuleHandler) Create(c *gin.Context) {
	userID := middleware.GetCurrentUserID(c)
	var req CreateRuleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, "invalid request: "+err.Error())
		return
	}

	created := make([]models.KeywordRule, 0, 2)
	for _, kw := range classifier.ExpandKeyword(req.Keyword) {
		var existing models.KeywordRule
		if err := database.DB.Where("user_id = ? AND keyword = ?", userID, kw).First(&existing).Error; err == nil {
			continue
		}
		rule := models.KeywordRule{
			UserID:   userID,
			Category: req.Category,
			Keyword:  kw,
			Client:   req.Client,
		}
		if err := database.DB.Create(&rule).Error; err != nil {
			InternalError(c, SafeErrorMessage(err, "creating rule failed"))
			return
		}
		created = append(created, rule)
	}
	if len(created) == 0 {
		BadRequest(c, "rule already exists")
		return
	}
	SuccessWithMessage(c, "rule created", created)
}

// Update edits a keyword rule
// @Summary Update a keyword rule
// @Tags rules
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "rule id"
// @Param request body UpdateRuleRequest true "fields to change"
// @Success 200 {object} Response{data=models.KeywordRule}
// @Failure 404 {object} Response
// @Router /api/v1/rules/{id} [put]
func (h *RuleHandler) Update(c *gin.Context) {
	userID := middleware.GetCurrentUserID(c)
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		BadRequest(c, "invalid id")
		return
	}
	var rule models.KeywordRule
	if err := database.DB.Where("id = ? AND user_id = ?", id, userID).First(&rule).Error; err != nil {
		NotFound(c, "rule not found")
		return
	}
	var req UpdateRuleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, "invalid request: "+err.Error())
		return
	}

	updates := map[string]interface{}{}
	if req.Category != nil {
		updates["category"] = *req.Category
	}
	if req.Keyword != nil && *req.Keyword != "" {
		updates["keyword"] = *req.Keyword
	}
	if req.Client != nil {
		updates["client"] = *req.Client
	}
	if len(updates) > 0 {
		if err := database.DB.Model(&rule).Updates(updates).Error; err != nil {
			InternalError(c, SafeErrorMessage(err, "updating rule failed"))
			return
		}
	}
	database.DB.First(&rule, rule.ID)
	SuccessWithMessage(c, "rule updated", rule)
}

// Delete removes a keyword rule
// @Summary Delete a keyword rule
// @Tags rules
// @Produce json
// @Security BearerAuth
// @Param id path int true "rule id"
// @Success 200 {object} Response
// @Failure 404 {object} Response
// @Router /api/v1/rules/{id} [delete]
func (h *RuleHandler) Delete(c *gin.Context) {
	userID := middleware.GetCurrentUserID(c)
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		BadRequest(c, "invalid id")
		return
	}
	var rule models.KeywordRule
	if err := database.DB.Where("id = ? AND user_id = ?", id, userID).First(&rule).Error; err != nil {
		NotFound(c, "rule not found")
		return
	}
	if err := database.DB.Delete(&rule).Error; err != nil {
		InternalError(c, SafeErrorMessage(err, "deleting rule failed"))
		return
	}
	SuccessWithMessage(c, "rule deleted", nil)
}
