package api

import (
	"time"

	"gigbook/database"
	"gigbook/dedup"
	"gigbook/middleware"
	"gigbook/models"

	"github.com/gin-gonic/gin"
)

// Duplicates reports groups of client-name spellings that normalize to the
// same key, as candidates for MergeNames. Detection is read-only.
// @Summary Detect duplicate client names
// @Tags clients
// @Produce json
// @Security BearerAuth
// @Success 200 {object} Response{data=[]dedup.Group}
// @Failure 401 {object} Response
// @Router /api/v1/clients/duplicates [get]
func (h *ClientHandler) Duplicates(c *gin.Context) {
	userID := middleware.GetCurrentUserID(c)

	var rows []struct {
		ClientName string
		Count      int
		LastUsed   time.Time
	}
	if err := database.DB.Model(&models.Entry{}).
		Select("client_name, COUNT(*) AS count, MAX(work_date) AS last_used").
		Where("user_id = ? AND client_name <> ''", userID).
		Group("client_name").
		Scan(&rows).Error; err != nil {
		InternalError(c, SafeErrorMessage(err, "scanning client names failed"))
		return
	}

	usages := make([]dedup.NameUsage, 0, len(rows))
	for _, r := range rows {
		usages = append(usages, dedup.NameUsage{Name: r.ClientName, Count: r.Count, LastUsed: r.LastUsed})
	}
	Success(c, dedup.GroupDuplicates(usages))
}
