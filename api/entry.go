package api

import (
	"strconv"
	"time"

	"gigbook/database"
	"gigbook/middleware"
	"gigbook/models"
	"gigbook/money"

	"github.com/gin-gonic/gin"
)

// EntryHandler serves the work-entry CRUD and status transitions
type EntryHandler struct{}

// NewEntryHandler creates an entry handler
func NewEntryHandler() *EntryHandler {
	return &EntryHandler{}
}

// EntryView is an entry plus its derived read-side fields. The derived
// statuses are computed against today at render time and never stored.
type EntryView struct {
	models.Entry
	DisplayStatus string  `json:"display_status"`
	WorkStatus    string  `json:"work_status"`
	MoneyStatus   string  `json:"money_status"`
	IsOverdue     bool    `json:"is_overdue"`
	VATAmount     float64 `json:"vat_amount"`
	NetAmount     float64 `json:"net_amount"`
}

// NewEntryView derives the read-side fields for one entry
func NewEntryView(e models.Entry, today time.Time) EntryView {
	vat, _ := money.VATPortion(e.AmountGross, e.VATRate, e.IncludesVAT)
	net, _ := money.NetAmount(e.AmountGross, e.VATRate, e.IncludesVAT)
	return EntryView{
		Entry:         e,
		DisplayStatus: e.DisplayStatus(today),
		WorkStatus:    e.WorkStatus(today),
		MoneyStatus:   e.MoneyStatus(),
		IsOverdue:     e.IsOverdue(today),
		VATAmount:     vat,
		NetAmount:     net,
	}
}

func entryViews(entries []models.Entry, today time.Time) []EntryView {
	views := make([]EntryView, 0, len(entries))
	for _, e := range entries {
		views = append(views, NewEntryView(e, today))
	}
	return views
}

// CreateEntryRequest is the entry creation payload
type CreateEntryRequest struct {
	WorkDate    string  `json:"work_date" binding:"required" example:"2026-01-15"`
	AmountGross float64 `json:"amount_gross" binding:"required,gt=0" example:"1500.00"`
	VATRate     float64 `json:"vat_rate" binding:"omitempty,gte=0" example:"18"`
	IncludesVAT *bool   `json:"includes_vat"`
	ClientName  string  `json:"client_name" example:"Acme Ltd"`
	ClientID    *uint   `json:"client_id"`
	CategoryID  *uint   `json:"category_id"`
	Description string  `json:"description"`
}

// UpdateEntryRequest carries the editable entry fields; zero values are left
// unchanged except where a pointer allows clearing.
type UpdateEntryRequest struct {
	WorkDate    string   `json:"work_date"`
	AmountGross *float64 `json:"amount_gross" binding:"omitempty,gt=0"`
	AmountPaid  *float64 `json:"amount_paid" binding:"omitempty,gte=0"`
	VATRate     *float64 `json:"vat_rate" binding:"omitempty,gte=0"`
	IncludesVAT *bool    `json:"includes_vat"`
	ClientName  *string  `json:"client_name"`
	ClientID    *uint    `json:"client_id"`
	CategoryID  *uint    `json:"category_id"`
	Description *string  `json:"description"`
}

// EntryListRequest filters the entry list
type EntryListRequest struct {
	Page       int    `form:"page" example:"1"`
	PageSize   int    `form:"page_size" example:"20"`
	ClientName string `form:"client_name"`
	ClientID   uint   `form:"client_id"`
	CategoryID uint   `form:"category_id"`
	Status     string `form:"status" example:"sent"` // display status filter: paid/sent/done/draft
	StartDate  string `form:"start_date" example:"2026-01-01"`
	EndDate    string `form:"end_date" example:"2026-12-31"`
}

// Create records a new work entry
// @Summary Create a work entry
// @Tags entries
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body CreateEntryRequest true "entry"
// @Success 200 {object} Response{data=EntryView}
// @Failure 400 {object} Response
// @Router /api/v1/entries [post]
func (h *EntryHandler) Create(c *gin.Context) {
	userID := middleware.GetCurrentUserID(c)
	var req CreateEntryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, "invalid request: "+err.Error())
		return
	}
	workDate, err := time.ParseInLocation("2006-01-02", req.WorkDate, time.Local)
	if err != nil {
		BadRequest(c, "work_date must be formatted as 2006-01-02")
		return
	}

	entry := models.Entry{
		UserID:        userID,
		WorkDate:      workDate,
		AmountGross:   money.Round2(req.AmountGross),
		VATRate:       18,
		IncludesVAT:   true,
		InvoiceStatus: models.InvoiceDraft,
		PaymentStatus: models.PaymentUnpaid,
		ClientName:    req.ClientName,
		ClientID:      req.ClientID,
		CategoryID:    req.CategoryID,
		Description:   req.Description,
	}
	if req.VATRate > 0 {
		entry.VATRate = req.VATRate
	}
	if req.IncludesVAT != nil {
		entry.IncludesVAT = *req.IncludesVAT
	}

	if err := database.DB.Create(&entry).Error; err != nil {
		InternalError(c, SafeErrorMessage(err, "creating entry failed"))
		return
	}
	SuccessWithMessage(c, "entry created", NewEntryView(entry, time.Now()))
}

// List returns the user's entries with derived statuses
// @Summary List work entries
// @Tags entries
// @Produce json
// @Security BearerAuth
// @Param page query int false "page" default(1)
// @Param page_size query int false "page size" default(20)
// @Param client_name query string false "exact client name filter"
// @Param client_id query int false "client id filter"
// @Param category_id query int false "category id filter"
// @Param status query string false "display status filter: paid/sent/done/draft"
// @Param start_date query string false "range start (2026-01-01)"
// @Param end_date query string false "range end (2026-12-31)"
// @Success 200 {object} Response{data=PageResponse{list=[]EntryView}}
// @Failure 401 {object} Response
// @Router /api/v1/entries [get]
func (h *EntryHandler) List(c *gin.Context) {
	userID := middleware.GetCurrentUserID(c)
	var req EntryListRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		BadRequest(c, "invalid request: "+err.Error())
		return
	}
	if req.Page <= 0 {
		req.Page = 1
	}
	if req.PageSize <= 0 {
		req.PageSize = 20
	}
	if req.PageSize > 100 {
		req.PageSize = 100
	}

	query := database.DB.Model(&models.Entry{}).Where("user_id = ?", userID)
	if req.ClientName != "" {
		query = query.Where("client_name = ?", req.ClientName)
	}
	if req.ClientID > 0 {
		query = query.Where("client_id = ?", req.ClientID)
	}
	if req.CategoryID > 0 {
		query = query.Where("category_id = ?", req.CategoryID)
	}
	if req.StartDate != "" {
		if t, err := time.ParseInLocation("2006-01-02", req.StartDate, time.Local); err == nil {
			query = query.Where("work_date >= ?", t)
		}
	}
	if req.EndDate != "" {
		if t, err := time.ParseInLocation("2006-01-02", req.EndDate, time.Local); err == nil {
			query = query.Where("work_date <= ?", t)
		}
	}
	// the stored facts behind each display status are filterable directly
	switch req.Status {
	case models.DisplayPaid:
		query = query.Where("payment_status = ? OR invoice_status = ?", models.PaymentPaid, models.InvoicePaid)
	case models.DisplaySent:
		query = query.Where("invoice_status = ? AND payment_status <> ?", models.InvoiceSent, models.PaymentPaid)
	case models.DisplayDone, models.InvoiceDraft:
		query = query.Where("invoice_status = ? AND payment_status <> ?", models.InvoiceDraft, models.PaymentPaid)
	}

	var total int64
	query.Count(&total)
	var list []models.Entry
	offset := (req.Page - 1) * req.PageSize
	if err := query.Preload("Category").Order("work_date DESC, id DESC").Offset(offset).Limit(req.PageSize).Find(&list).Error; err != nil {
		InternalError(c, SafeErrorMessage(err, "listing entries failed"))
		return
	}
	Success(c, PageResponse{Total: total, Page: req.Page, PageSize: req.PageSize, List: entryViews(list, time.Now())})
}

// Get returns one entry
// @Summary Get a work entry
// @Tags entries
// @Produce json
// @Security BearerAuth
// @Param id path int true "entry id"
// @Success 200 {object} Response{data=EntryView}
// @Failure 404 {object} Response
// @Router /api/v1/entries/{id} [get]
func (h *EntryHandler) Get(c *gin.Context) {
	userID := middleware.GetCurrentUserID(c)
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		BadRequest(c, "invalid id")
		return
	}
	var entry models.Entry
	if err := database.DB.Preload("Category").Where("id = ? AND user_id = ?", id, userID).First(&entry).Error; err != nil {
		NotFound(c, "entry not found")
		return
	}
	Success(c, NewEntryView(entry, time.Now()))
}

// Update edits an entry's facts; statuses move through SetStatus only
// @Summary Update a work entry
// @Tags entries
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "entry id"
// @Param request body UpdateEntryRequest true "fields to change"
// @Success 200 {object} Response{data=EntryView}
// @Failure 404 {object} Response
// @Router /api/v1/entries/{id} [put]
func (h *EntryHandler) Update(c *gin.Context) {
	userID := middleware.GetCurrentUserID(c)
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		BadRequest(c, "invalid id")
		return
	}
	var entry models.Entry
	if err := database.DB.Where("id = ? AND user_id = ?", id, userID).First(&entry).Error; err != nil {
		NotFound(c, "entry not found")
		return
	}
	var req UpdateEntryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, "invalid request: "+err.Error())
		return
	}

	updates := map[string]interface{}{}
	if req.WorkDate != "" {
		t, err := time.ParseInLocation("2006-01-02", req.WorkDate, time.Local)
		if err != nil {
			BadRequest(c, "work_date must be formatted as 2006-01-02")
			return
		}
		updates["work_date"] = t
	}
	if req.AmountGross != nil {
		updates["amount_gross"] = money.Round2(*req.AmountGross)
	}
	if req.AmountPaid != nil {
		paid := money.Round2(*req.AmountPaid)
		updates["amount_paid"] = paid
		gross := entry.AmountGross
		if req.AmountGross != nil {
			gross = money.Round2(*req.AmountGross)
		}
		// a manual payment moves the payment axis with it; paid_date only
		// holds while the entry is fully settled
		switch {
		case paid <= 0:
			updates["payment_status"] = models.PaymentUnpaid
			updates["paid_date"] = nil
		case paid < gross:
			updates["payment_status"] = models.PaymentPartial
			updates["paid_date"] = nil
		default:
			updates["payment_status"] = models.PaymentPaid
			day := models.DateOnly(time.Now())
			updates["paid_date"] = &day
		}
	}
	if req.VATRate != nil {
		updates["vat_rate"] = *req.VATRate
	}
	if req.IncludesVAT != nil {
		updates["includes_vat"] = *req.IncludesVAT
	}
	if req.ClientName != nil {
		updates["client_name"] = *req.ClientName
	}
	if req.ClientID != nil {
		updates["client_id"] = *req.ClientID
	}
	if req.CategoryID != nil {
		updates["category_id"] = *req.CategoryID
	}
	if req.Description != nil {
		updates["description"] = *req.Description
	}

	if len(updates) > 0 {
		if err := database.DB.Model(&entry).Updates(updates).Error; err != nil {
			InternalError(c, SafeErrorMessage(err, "updating entry failed"))
			return
		}
	}
	database.DB.Preload("Category").First(&entry, entry.ID)
	SuccessWithMessage(c, "entry updated", NewEntryView(entry, time.Now()))
}

// SetStatusRequest names the target display status
type SetStatusRequest struct {
	Status string `json:"status" example:"sent"` // paid/sent/done or empty for draft
}

// SetStatus moves an entry between draft, sent and paid. Transitions are
// idempotent; reverting from paid to sent keeps the original sent date.
// @Summary Set entry status
// @Tags entries
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "entry id"
// @Param request body SetStatusRequest true "target status"
// @Success 200 {object} Response{data=EntryView}
// @Failure 400 {object} Response
// @Failure 404 {object} Response
// @Router /api/v1/entries/{id}/status [put]
func (h *EntryHandler) SetStatus(c *gin.Context) {
	userID := middleware.GetCurrentUserID(c)
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		BadRequest(c, "invalid id")
		return
	}
	var req SetStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, "invalid request: "+err.Error())
		return
	}
	switch req.Status {
	case models.DisplayPaid, models.DisplaySent, models.DisplayDone, models.DisplayNone:
	default:
		BadRequest(c, "status must be one of: paid, sent, done, or empty")
		return
	}

	var entry models.Entry
	if err := database.DB.Where("id = ? AND user_id = ?", id, userID).First(&entry).Error; err != nil {
		NotFound(c, "entry not found")
		return
	}

	today := time.Now()
	entry.ApplyStatus(req.Status, today)

	updates := map[string]interface{}{
		"invoice_status":    entry.InvoiceStatus,
		"payment_status":    entry.PaymentStatus,
		"invoice_sent_date": entry.InvoiceSentDate,
		"paid_date":         entry.PaidDate,
		"amount_paid":       entry.AmountPaid,
	}
	if err := database.DB.Model(&entry).Updates(updates).Error; err != nil {
		InternalError(c, SafeErrorMessage(err, "updating entry status failed"))
		return
	}
	SuccessWithMessage(c, "status updated", NewEntryView(entry, today))
}

// Delete removes an entry (soft delete)
// @Summary Delete a work entry
// @Tags entries
// @Produce json
// @Security BearerAuth
// @Param id path int true "entry id"
// @Success 200 {object} Response
// @Failure 404 {object} Response
// @Router /api/v1/entries/{id} [delete]
func (h *EntryHandler) Delete(c *gin.Context) {
	userID := middleware.GetCurrentUserID(c)
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		BadRequest(c, "invalid id")
		return
	}
	var entry models.Entry
	if err := database.DB.Where("id = ? AND user_id = ?", id, userID).First(&entry).Error; err != nil {
		NotFound(c, "entry not found")
		return
	}
	if err := database.DB.Delete(&entry).Error; err != nil {
		InternalError(c, SafeErrorMessage(err, "deleting entry failed"))
		return
	}
	SuccessWithMessage(c, "entry deleted", nil)
}
