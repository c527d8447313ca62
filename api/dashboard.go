package api

import (
	"strconv"
	"time"

	"gigbook/database"
	"gigbook/middleware"
	"gigbook/models"
	"gigbook/stats"

	"github.com/gin-gonic/gin"
)

// DashboardHandler serves the KPI headline and the chart series. Handlers
// fetch the entry collections; the aggregation itself lives in stats.
type DashboardHandler struct{}

// NewDashboardHandler creates a dashboard handler
func NewDashboardHandler() *DashboardHandler {
	return &DashboardHandler{}
}

// targetMonth reads year/month query params, defaulting to the current month
func targetMonth(c *gin.Context, now time.Time) (int, time.Month) {
	year := now.Year()
	month := now.Month()
	if y := c.Query("year"); y != "" {
		if v, err := strconv.Atoi(y); err == nil && v > 0 {
			year = v
		}
	}
	if m := c.Query("month"); m != "" {
		if v, err := strconv.Atoi(m); err == nil && v >= 1 && v <= 12 {
			month = time.Month(v)
		}
	}
	return year, month
}

// GetKPI returns the dashboard headline figures for one month
// @Summary Dashboard KPIs
// @Description Outstanding, ready-to-invoice and overdue figures span all time; this-month figures are scoped to the target month.
// @Tags dashboard
// @Produce json
// @Security BearerAuth
// @Param year query int false "target year, defaults to current"
// @Param month query int false "target month 1-12, defaults to current"
// @Success 200 {object} Response{data=stats.KPI}
// @Failure 401 {object} Response
// @Router /api/v1/dashboard/kpi [get]
func (h *DashboardHandler) GetKPI(c *gin.Context) {
	userID := middleware.GetCurrentUserID(c)
	now := time.Now()
	year, month := targetMonth(c, now)

	var entries []models.Entry
	if err := database.DB.Where("user_id = ?", userID).Find(&entries).Error; err != nil {
		InternalError(c, SafeErrorMessage(err, "loading entries failed"))
		return
	}
	Success(c, stats.ComputeKPI(entries, now, year, month))
}

// GetSeries returns the income chart over a date range: monthly buckets for
// ranges past 60 days, Sunday-start weekly buckets otherwise.
// @Summary Income time series
// @Tags dashboard
// @Produce json
// @Security BearerAuth
// @Param start_date query string true "range start (2026-01-01)"
// @Param end_date query string true "range end (2026-03-31)"
// @Success 200 {object} Response{data=[]stats.TimeBucket}
// @Failure 400 {object} Response
// @Router /api/v1/dashboard/series [get]
func (h *DashboardHandler) GetSeries(c *gin.Context) {
	userID := middleware.GetCurrentUserID(c)

	startStr := c.Query("start_date")
	endStr := c.Query("end_date")
	if startStr == "" || endStr == "" {
		BadRequest(c, "start_date and end_date are required")
		return
	}
	start, err := time.ParseInLocation("2006-01-02", startStr, time.Local)
	if err != nil {
		BadRequest(c, "start_date must be formatted as 2006-01-02")
		return
	}
	end, err := time.ParseInLocation("2006-01-02", endStr, time.Local)
	if err != nil {
		BadRequest(c, "end_date must be formatted as 2006-01-02")
		return
	}

	var entries []models.Entry
	if err := database.DB.
		Where("user_id = ? AND work_date >= ? AND work_date <= ?", userID, start, end).
		Find(&entries).Error; err != nil {
		InternalError(c, SafeErrorMessage(err, "loading entries failed"))
		return
	}
	Success(c, stats.TimeBuckets(entries, start, end))
}

// GetCategories returns the category breakdown for a date range, top
// categories first with the tail collapsed into "other".
// @Summary Income by category
// @Tags dashboard
// @Produce json
// @Security BearerAuth
// @Param start_date query string false "range start (2026-01-01)"
// @Param end_date query string false "range end (2026-03-31)"
// @Success 200 {object} Response{data=[]stats.CategoryBucket}
// @Failure 401 {object} Response
// @Router /api/v1/dashboard/categories [get]
func (h *DashboardHandler) GetCategories(c *gin.Context) {
	userID := middleware.GetCurrentUserID(c)

	query := database.DB.Preload("Category").Where("user_id = ?", userID)
	if s := c.Query("start_date"); s != "" {
		if t, err := time.ParseInLocation("2006-01-02", s, time.Local); err == nil {
			query = query.Where("work_date >= ?", t)
		}
	}
	if e := c.Query("end_date"); e != "" {
		if t, err := time.ParseInLocation("2006-01-02", e, time.Local); err == nil {
			query = query.Where("work_date <= ?", t)
		}
	}

	var entries []models.Entry
	if err := query.Find(&entries).Error; err != nil {
		InternalError(c, SafeErrorMessage(err, "loading entries failed"))
		return
	}
	Success(c, stats.CategoryBuckets(entries))
}

// AttentionView is one flagged entry with its derived fields
type AttentionView struct {
	Entry EntryView `json:"entry"`
	Label string    `json:"label"`
}

// GetAttention lists entries that still need invoicing or chasing, largest
// amounts first.
// @Summary Entries needing attention
// @Tags dashboard
// @Produce json
// @Security BearerAuth
// @Success 200 {object} Response{data=[]AttentionView}
// @Failure 401 {object} Response
// @Router /api/v1/dashboard/attention [get]
func (h *DashboardHandler) GetAttention(c *gin.Context) {
	userID := middleware.GetCurrentUserID(c)

	var entries []models.Entry
	if err := database.DB.Preload("Category").Where("user_id = ?", userID).Find(&entries).Error; err != nil {
		InternalError(c, SafeErrorMessage(err, "loading entries failed"))
		return
	}

	now := time.Now()
	items := stats.NeedsAttention(entries)
	views := make([]AttentionView, 0, len(items))
	for _, it := range items {
		views = append(views, AttentionView{Entry: NewEntryView(it.Entry, now), Label: it.Label})
	}
	Success(c, views)
}
