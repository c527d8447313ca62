package service

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"gigbook/classifier"
	"gigbook/config"
)

// CalendarService talks to the external calendar events API. The engine
// itself never fetches anything; handlers call this and feed the result to
// the classifier.
type CalendarService struct {
	cfg    *config.CalendarConfig
	client *http.Client
}

// NewCalendarService creates a calendar client
func NewCalendarService(cfg *config.CalendarConfig) *CalendarService {
	return &CalendarService{
		cfg:    cfg,
		client: &http.Client{Timeout: 15 * time.Second},
	}
}

// wire format of the events endpoint
type calendarEvent struct {
	ID         string    `json:"id"`
	Title      string    `json:"title"`
	Start      time.Time `json:"start"`
	End        time.Time `json:"end"`
	CalendarID string    `json:"calendar_id"`
}

type calendarEventsResponse struct {
	Events []calendarEvent `json:"events"`
}

// FetchMonthEvents lists a calendar's events for one month
func (s *CalendarService) FetchMonthEvents(calendarID string, year int, month time.Month) ([]classifier.Event, error) {
	if !s.cfg.Enabled {
		return nil, fmt.Errorf("calendar integration is not enabled")
	}

	start := time.Date(year, month, 1, 0, 0, 0, 0, time.Local)
	end := start.AddDate(0, 1, 0).Add(-time.Second)

	params := url.Values{}
	params.Set("start", start.Format("2006-01-02"))
	params.Set("end", end.Format("2006-01-02"))

	endpoint := fmt.Sprintf("%s/calendars/%s/events?%s", s.cfg.BaseURL, url.PathEscape(calendarID), params.Encode())
	req, err := http.NewRequest("GET", endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("building calendar request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+s.cfg.Token)

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("calling calendar API: %w", err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("reading calendar response: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("calendar API returned %d: %s", resp.StatusCode, string(data))
	}

	var parsed calendarEventsResponse
	if err := json.Unmarshal(data, &parsed); err != nil {
		return nil, fmt.Errorf("parsing calendar response: %w", err)
	}

	events := make([]classifier.Event, 0, len(parsed.Events))
	for _, ev := range parsed.Events {
		events = append(events, classifier.Event{
			ID:         ev.ID,
			Title:      ev.Title,
			Start:      ev.Start,
			End:        ev.End,
			CalendarID: ev.CalendarID,
		})
	}
	return events, nil
}
