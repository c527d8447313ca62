package api

import (
	"fmt"
	"time"

	"gigbook/config"
	"gigbook/database"
	"gigbook/middleware"
	"gigbook/models"
	"gigbook/service"

	"github.com/gin-gonic/gin"
)

// ReminderHandler mails overdue-invoice summaries
type ReminderHandler struct {
	emailService *service.EmailService
}

// NewReminderHandler creates a reminder handler
func NewReminderHandler(cfg *config.Config) *ReminderHandler {
	return &ReminderHandler{
		emailService: service.NewEmailService(&cfg.Email),
	}
}

// SendOverdue mails the user a summary of their overdue invoices
// @Summary Send overdue invoice reminder
// @Description Collects invoices sent more than 30 days ago and still unpaid, and mails a summary to the account email.
// @Tags reminders
// @Produce json
// @Security BearerAuth
// @Success 200 {object} Response
// @Failure 400 {object} Response
// @Router /api/v1/reminders/overdue [post]
func (h *ReminderHandler) SendOverdue(c *gin.Context) {
	userID := middleware.GetCurrentUserID(c)

	var user models.User
	if err := database.DB.First(&user, userID).Error; err != nil {
		NotFound(c, "user not found")
		return
	}
	if user.Email == "" {
		BadRequest(c, "no email address on this account")
		return
	}

	var entries []models.Entry
	if err := database.DB.
		Where("user_id = ? AND invoice_status = ? AND payment_status <> ?",
			userID, models.InvoiceSent, models.PaymentPaid).
		Order("invoice_sent_date ASC").
		Find(&entries).Error; err != nil {
		InternalError(c, SafeErrorMessage(err, "loading entries failed"))
		return
	}

	today := time.Now()
	overdue := make([]models.Entry, 0, len(entries))
	for _, e := range entries {
		if e.IsOverdue(today) {
			overdue = append(overdue, e)
		}
	}
	if len(overdue) == 0 {
		SuccessWithMessage(c, "no overdue invoices", nil)
		return
	}

	if err := h.emailService.SendOverdueReminder(user.Email, user.Username, overdue); err != nil {
		InternalError(c, SafeErrorMessage(err, "sending reminder failed"))
		return
	}
	SuccessWithMessage(c, fmt.Sprintf("reminder sent for %d overdue invoice(s)", len(overdue)), nil)
}
