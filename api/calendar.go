package api

import (
	"strconv"
	"time"

	"gigbook/classifier"
	"gigbook/config"
	"gigbook/database"
	"gigbook/middleware"
	"gigbook/models"
	"gigbook/service"

	"github.com/gin-gonic/gin"
)

// CalendarHandler previews external calendar events through the classifier
type CalendarHandler struct {
	calendarService *service.CalendarService
}

// NewCalendarHandler creates a calendar handler
func NewCalendarHandler(cfg *config.Config) *CalendarHandler {
	return &CalendarHandler{
		calendarService: service.NewCalendarService(&cfg.Calendar),
	}
}

// loadRules fetches the user's keyword rules in classifier form
func loadRules(userID uint) ([]classifier.Rule, error) {
	var stored []models.KeywordRule
	if err := database.DB.Where("user_id = ?", userID).Find(&stored).Error; err != nil {
		return nil, err
	}
	rules := make([]classifier.Rule, 0, len(stored))
	for _, r := range stored {
		rules = append(rules, classifier.Rule{Category: r.Category, Keyword: r.Keyword, Client: r.Client})
	}
	return rules, nil
}

// Preview fetches one month of events from the external calendar and scores
// each against the user's rules.
// @Summary Preview calendar events for import
// @Tags calendar
// @Produce json
// @Security BearerAuth
// @Param calendar_id query string true "external calendar id"
// @Param year query int false "target year, defaults to current"
// @Param month query int false "target month 1-12, defaults to current"
// @Success 200 {object} Response{data=[]classifier.Result}
// @Failure 400 {object} Response
// @Failure 502 {object} Response
// @Router /api/v1/calendar/preview [get]
func (h *CalendarHandler) Preview(c *gin.Context) {
	userID := middleware.GetCurrentUserID(c)

	calendarID := c.Query("calendar_id")
	if calendarID == "" {
		BadRequest(c, "calendar_id is required")
		return
	}
	now := time.Now()
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

	events, err := h.calendarService.FetchMonthEvents(calendarID, year, month)
	if err != nil {
		Error(c, 502, SafeErrorMessage(err, "fetching calendar events failed"))
		return
	}

	rules, err := loadRules(userID)
	if err != nil {
		InternalError(c, SafeErrorMessage(err, "loading rules failed"))
		return
	}
	Success(c, classifier.Classify(events, rules))
}

// ClassifyRequest carries caller-supplied events to score
type ClassifyRequest struct {
	Events []classifier.Event `json:"events" binding:"required"`
}

// Classify scores caller-supplied events against the user's rules without
// touching the external calendar.
// @Summary Classify events
// @Tags calendar
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body ClassifyRequest true "events"
// @Success 200 {object} Response{data=[]classifier.Result}
// @Failure 400 {object} Response
// @Router /api/v1/calendar/classify [post]
func (h *CalendarHandler) Classify(c *gin.Context) {
	userID := middleware.GetCurrentUserID(c)

	var req ClassifyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, "invalid request: "+err.Error())
		return
	}

	rules, err := loadRules(userID)
	if err != nil {
		InternalError(c, SafeErrorMessage(err, "loading rules failed"))
		return
	}
	Success(c, classifier.Classify(req.Events, rules))
}
