package calendar

import (
	"context"
	"net/http"
	"time"

	"github.com/danielgtaylor/huma/v2"
	"github.com/shopspring/decimal"

	"github.com/ironforge/finance-server/internal/finance"
	"github.com/ironforge/finance-server/internal/logging"
)

// ListEventsInput is the Huma input for listing calendar events. Either an
// explicit start and end pair or a date plus view window selects the range.
type ListEventsInput struct {
	Start string `query:"start" doc:"Range start date (2006-01-02), paired with end"`
	End   string `query:"end" doc:"Range end date (2006-01-02), paired with start"`
	Date  string `query:"date" doc:"Anchor date (2006-01-02) for a view window, defaults to today"`
	View  string `query:"view" enum:"week,month,quarter" doc:"Window around the anchor date when start/end are absent; defaults to month"`
}

// ListEventsResponseBody is the response body for listing calendar events.
type ListEventsResponseBody struct {
	Start     string     `json:"start" doc:"Resolved range start (2006-01-02)"`
	End       string     `json:"end" doc:"Resolved range end (2006-01-02)"`
	Events    []Event    `json:"events" doc:"Occurrences in range, sorted by date ascending"`
	DayTotals []DayTotal `json:"dayTotals" doc:"Net movement per day with at least one event"`
}

// ListEventsOutput is the Huma output for listing calendar events.
type ListEventsOutput struct {
	Body ListEventsResponseBody
}

// eventLister is the interface for expanding occurrences in a date range.
type eventLister interface {
	CalendarEvents(ctx context.Context, from, to time.Time) []finance.Occurrence
}

// ListEventsHandler handles GET /v1/calendar/events.
type ListEventsHandler struct {
	DashboardService eventLister
}

// NewListEventsHandler creates a new ListEventsHandler.
func NewListEventsHandler(svc eventLister) *ListEventsHandler {
	return &ListEventsHandler{DashboardService: svc}
}

// Register registers the list events endpoint with the Huma API.
func (h *ListEventsHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "list-calendar-events",
		Method:      http.MethodGet,
		Path:        "/v1/calendar/events",
		Summary:     "List calendar events",
		Description: "Expands transactions, including recurring ones, into dated occurrences within a range.",
		Tags:        []string{"Calendar"},
	}, h.handle)
}

// parseListEventsInput resolves the requested range. An explicit start/end
// pair wins; otherwise the view window around the anchor date is used.
func parseListEventsInput(input *ListEventsInput) (from, to time.Time, err error) {
	if input.Start != "" || input.End != "" {
		if input.Start == "" || input.End == "" {
			return time.Time{}, time.Time{}, huma.NewError(http.StatusBadRequest, "start and end must be provided together")
		}
		from, err = time.Parse("2006-01-02", input.Start)
		if err != nil {
			return time.Time{}, time.Time{}, huma.NewError(http.StatusBadRequest, "invalid start", err)
		}
		to, err = time.Parse("2006-01-02", input.End)
		if err != nil {
			return time.Time{}, time.Time{}, huma.NewError(http.StatusBadRequest, "invalid end", err)
		}
		if to.Before(from) {
			return time.Time{}, time.Time{}, huma.NewError(http.StatusBadRequest, "end must not precede start")
		}
		return from, to, nil
	}

	anchor := time.Now().UTC()
	if input.Date != "" {
		anchor, err = time.Parse("2006-01-02", input.Date)
		if err != nil {
			return time.Time{}, time.Time{}, huma.NewError(http.StatusBadRequest, "invalid date", err)
		}
	}

	switch input.View {
	case "week":
		return finance.WeekStart(anchor), finance.WeekEnd(anchor), nil
	case "quarter":
		return finance.QuarterStart(anchor), finance.QuarterEnd(anchor), nil
	case "", "month":
		return finance.MonthStart(anchor), finance.MonthEnd(anchor), nil
	default:
		return time.Time{}, time.Time{}, huma.NewError(http.StatusBadRequest, "view must be week, month, or quarter")
	}
}

func (h *ListEventsHandler) handle(ctx context.Context, input *ListEventsInput) (*ListEventsOutput, error) {
	logData := logging.GetLogData(ctx)
	from, to, err := parseListEventsInput(input)
	if err != nil {
		return nil, err
	}

	var stopTimer func()
	if logData != nil {
		stopTimer = logData.AddTiming("listCalendarEventsMs")
	}
	occurrences := h.DashboardService.CalendarEvents(ctx, from, to)
	if stopTimer != nil {
		stopTimer()
	}

	if logData != nil {
		logData.AddData("eventCount", len(occurrences))
	}

	resp := ListEventsResponseBody{
		Start:     from.Format("2006-01-02"),
		End:       to.Format("2006-01-02"),
		Events:    make([]Event, len(occurrences)),
		DayTotals: dayTotals(occurrences),
	}
	for i, occ := range occurrences {
		resp.Events[i] = fromOccurrence(occ)
	}

	return &ListEventsOutput{Body: resp}, nil
}

// dayTotals folds sorted occurrences into one revenue/expense/net row per
// day. Input order is preserved, so rows come out date ascending.
func dayTotals(occurrences []finance.Occurrence) []DayTotal {
	totals := make([]DayTotal, 0)
	var day string
	var revenue, expenses decimal.Decimal
	flush := func() {
		if day == "" {
			return
		}
		totals = append(totals, DayTotal{
			Date:     day,
			Revenue:  revenue.String(),
			Expenses: expenses.String(),
			Net:      revenue.Sub(expenses).String(),
		})
	}
	for _, occ := range occurrences {
		occDay := occ.Date.Format("2006-01-02")
		if occDay != day {
			flush()
			day = occDay
			revenue = decimal.Zero
			expenses = decimal.Zero
		}
		if occ.Type == finance.TypeRevenue {
			revenue = revenue.Add(occ.Amount)
		} else {
			expenses = expenses.Add(occ.Amount)
		}
	}
	flush()
	return totals
}
