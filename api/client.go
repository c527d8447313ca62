package api

import (
	"strconv"

	"gigbook/database"
	"gigbook/middleware"
	"gigbook/models"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// ClientHandler serves client CRUD and the merge operations
type ClientHandler struct{}

// NewClientHandler creates a client handler
func NewClientHandler() *ClientHandler {
	return &ClientHandler{}
}

// CreateClientRequest is the client creation payload
type CreateClientRequest struct {
	Name        string  `json:"name" binding:"required,max=120" example:"Acme Ltd"`
	Email       string  `json:"email" binding:"omitempty,email"`
	Phone       string  `json:"phone" binding:"omitempty,max=30"`
	DefaultRate float64 `json:"default_rate" binding:"omitempty,gte=0"`
}

// UpdateClientRequest carries the editable client fields
type UpdateClientRequest struct {
	Name         *string  `json:"name" binding:"omitempty,max=120"`
	Email        *string  `json:"email"`
	Phone        *string  `json:"phone"`
	DefaultRate  *float64 `json:"default_rate" binding:"omitempty,gte=0"`
	IsArchived   *bool    `json:"is_archived"`
	DisplayOrder *int     `json:"display_order"`
}

// Create adds a client
// @Summary Create a client
// @Tags clients
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body CreateClientRequest true "client"
// @Success 200 {object} Response{data=models.Client}
// @Failure 400 {object} Response
// @Router /api/v1/clients [post]
func (h *ClientHandler) Create(c *gin.Context) {
	userID := middleware.GetCurrentUserID(c)
	var req CreateClientRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, "invalid request: "+err.Error())
		return
	}

	var existing models.Client
	if err := database.DB.Where("user_id = ? AND name = ?", userID, req.Name).First(&existing).Error; err == nil {
		BadRequest(c, "a client with this name already exists")
		return
	}

	client := models.Client{
		UserID:      userID,
		Name:        req.Name,
		Email:       req.Email,
		Phone:       req.Phone,
		DefaultRate: req.DefaultRate,
	}
	if err := database.DB.Create(&client).Error; err != nil {
		InternalError(c, SafeErrorMessage(err, "creating client failed"))
		return
	}
	SuccessWithMessage(c, "client created", client)
}

// List returns the user's clients
// @Summary List clients
// @Tags clients
// @Produce json
// @Security BearerAuth
// @Param include_archived query bool false "include archived clients"
// @Success 200 {object} Response{data=[]models.Client}
// @Failure 401 {object} Response
// @Router /api/v1/clients [get]
func (h *ClientHandler) List(c *gin.Context) {
	userID := middleware.GetCurrentUserID(c)
	query := database.DB.Where("user_id = ?", userID)
	if c.Query("include_archived") != "true" {
		query = query.Where("is_archived = ?", false)
	}
	var clients []models.Client
	if err := query.Order("display_order ASC, name ASC").Find(&clients).Error; err != nil {
		InternalError(c, SafeErrorMessage(err, "listing clients failed"))
		return
	}
	Success(c, clients)
}

// Get returns one client
// @Summary Get a client
// @Tags clients
// @Produce json
// @Security BearerAuth
// @Param id path int true "client id"
// @Success 200 {object} Response{data=models.Client}
// @Failure 404 {object} Response
// @Router /api/v1/clients/{id} [get]
func (h *ClientHandler) Get(c *gin.Context) {
	userID := middleware.GetCurrentUserID(c)
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		BadRequest(c, "invalid id")
		return
	}
	var client models.Client
	if err := database.DB.Where("id = ? AND user_id = ?", id, userID).First(&client).Error; err != nil {
		NotFound(c, "client not found")
		return
	}
	Success(c, client)
}

// Update edits a client
// @Summary Update a client
// @Tags clients
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "client id"
// @Param request body UpdateClientRequest true "fields to change"
// @Success 200 {object} Response{data=models.Client}
// @Failure 404 {object} Response
// @Router /api/v1/clients/{id} [put]
func (h *ClientHandler) Update(c *gin.Context) {
	userID := middleware.GetCurrentUserID(c)
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		BadRequest(c, "invalid id")
		return
	}
	var client models.Client
	if err := database.DB.Where("id = ? AND user_id = ?", id, userID).First(&client).Error; err != nil {
		NotFound(c, "client not found")
		return
	}
	var req UpdateClientRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, "invalid request: "+err.Error())
		return
	}

	updates := map[string]interface{}{}
	if req.Name != nil && *req.Name != "" {
		updates["name"] = *req.Name
	}
	if req.Email != nil {
		updates["email"] = *req.Email
	}
	if req.Phone != nil {
		updates["phone"] = *req.Phone
	}
	if req.DefaultRate != nil {
		updates["default_rate"] = *req.DefaultRate
	}
	if req.IsArchived != nil {
		updates["is_archived"] = *req.IsArchived
	}
	if req.DisplayOrder != nil {
		updates["display_order"] = *req.DisplayOrder
	}

	if len(updates) > 0 {
		if err := database.DB.Model(&client).Updates(updates).Error; err != nil {
			InternalError(c, SafeErrorMessage(err, "updating client failed"))
			return
		}
	}
	database.DB.First(&client, client.ID)
	SuccessWithMessage(c, "client updated", client)
}

// Delete archives a client; its entries keep their client name
// @Summary Archive a client
// @Tags clients
// @Produce json
// @Security BearerAuth
// @Param id path int true "client id"
// @Success 200 {object} Response
// @Failure 404 {object} Response
// @Router /api/v1/clients/{id} [delete]
func (h *ClientHandler) Delete(c *gin.Context) {
	userID := middleware.GetCurrentUserID(c)
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		BadRequest(c, "invalid id")
		return
	}
	var client models.Client
	if err := database.DB.Where("id = ? AND user_id = ?", id, userID).First(&client).Error; err != nil {
		NotFound(c, "client not found")
		return
	}
	if err := database.DB.Model(&client).Update("is_archived", true).Error; err != nil {
		InternalError(c, SafeErrorMessage(err, "archiving client failed"))
		return
	}
	SuccessWithMessage(c, "client archived", nil)
}

// MergeClientsRequest merges client records into a surviving target
type MergeClientsRequest struct {
	TargetID  uint   `json:"target_id" binding:"required"`
	SourceIDs []uint `json:"source_ids" binding:"required,min=1"`
}

// MergeResult reports what a merge touched
type MergeResult struct {
	TargetID       uint   `json:"target_id"`
	TargetName     string `json:"target_name"`
	EntriesUpdated int64  `json:"entries_updated"`
	SourcesMerged  int    `json:"sources_merged"`
}

// Merge folds client records into one: entries are re-pointed at the target
// and the source records archived. The whole merge runs in one transaction;
// a missing target or source fails the operation with nothing applied.
// @Summary Merge client records
// @Tags clients
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body MergeClientsRequest true "target and sources"
// @Success 200 {object} Response{data=MergeResult}
// @Failure 400 {object} Response
// @Failure 404 {object} Response
// @Router /api/v1/clients/merge [post]
func (h *ClientHandler) Merge(c *gin.Context) {
	userID := middleware.GetCurrentUserID(c)
	var req MergeClientsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, "invalid request: "+err.Error())
		return
	}
	for _, src := range req.SourceIDs {
		if src == req.TargetID {
			BadRequest(c, "target cannot be one of the sources")
			return
		}
	}

	var result MergeResult
	err := database.DB.Transaction(func(tx *gorm.DB) error {
		var target models.Client
		if err := tx.Where("id = ? AND user_id = ?", req.TargetID, userID).First(&target).Error; err != nil {
			return err
		}

		var sources []models.Client
		if err := tx.Where("user_id = ? AND id IN ?", userID, req.SourceIDs).Find(&sources).Error; err != nil {
			return err
		}
		if len(sources) != len(req.SourceIDs) {
			return gorm.ErrRecordNotFound
		}

		res := tx.Model(&models.Entry{}).
			Where("user_id = ? AND client_id IN ?", userID, req.SourceIDs).
			Updates(map[string]interface{}{
				"client_id":   target.ID,
				"client_name": target.Name,
			})
		if res.Error != nil {
			return res.Error
		}

		if err := tx.Model(&models.Client{}).
			Where("user_id = ? AND id IN ?", userID, req.SourceIDs).
			Update("is_archived", true).Error; err != nil {
			return err
		}

		result = MergeResult{
			TargetID:       target.ID,
			TargetName:     target.Name,
			EntriesUpdated: res.RowsAffected,
			SourcesMerged:  len(sources),
		}
		return nil
	})
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			NotFound(c, "target or source client not found")
			return
		}
		InternalError(c, SafeErrorMessage(err, "merging clients failed"))
		return
	}
	SuccessWithMessage(c, "clients merged", result)
}

// MergeNamesRequest folds raw entry spellings into one canonical name
type MergeNamesRequest struct {
	TargetName  string   `json:"target_name" binding:"required,max=120"`
	SourceNames []string `json:"source_names" binding:"required,min=1"`
}

// MergeNames rewrites entries whose client_name matches any source spelling
// to the target name, creating the target client record when it does not
// exist yet. Re-running the same merge is a no-op.
// @Summary Merge client name spellings
// @Tags clients
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body MergeNamesRequest true "canonical name and spellings"
// @Success 200 {object} Response{data=MergeResult}
// @Failure 400 {object} Response
// @Router /api/v1/clients/merge-names [post]
func (h *ClientHandler) MergeNames(c *gin.Context) {
	userID := middleware.GetCurrentUserID(c)
	var req MergeNamesRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, "invalid request: "+err.Error())
		return
	}

	// the target name itself may appear in the source list; drop it
	sources := make([]string, 0, len(req.SourceNames))
	for _, n := range req.SourceNames {
		if n != req.TargetName && n != "" {
			sources = append(sources, n)
		}
	}
	if len(sources) == 0 {
		BadRequest(c, "no source names to merge")
		return
	}

	var result MergeResult
	err := database.DB.Transaction(func(tx *gorm.DB) error {
		target := models.Client{UserID: userID, Name: req.TargetName}
		if err := tx.Where(models.Client{UserID: userID, Name: req.TargetName}).
			FirstOrCreate(&target).Error; err != nil {
			return err
		}

		// the repoint covers the target spelling too, so entries already
		// named the target get linked to the target client record
		names := append(append(make([]string, 0, len(sources)+1), sources...), target.Name)
		res := tx.Model(&models.Entry{}).
			Where("user_id = ? AND client_name IN ?", userID, names).
			Updates(map[string]interface{}{
				"client_id":   target.ID,
				"client_name": target.Name,
			})
		if res.Error != nil {
			return res.Error
		}

		// archive client records that carried a source spelling
		if err := tx.Model(&models.Client{}).
			Where("user_id = ? AND name IN ? AND id <> ?", userID, sources, target.ID).
			Update("is_archived", true).Error; err != nil {
			return err
		}

		result = MergeResult{
			TargetID:       target.ID,
			TargetName:     target.Name,
			EntriesUpdated: res.RowsAffected,
			SourcesMerged:  len(sources),
		}
		return nil
	})
	if err != nil {
		InternalError(c, SafeErrorMessage(err, "merging client names failed"))
		return
	}
	SuccessWithMessage(c, "client names merged", result)
}
