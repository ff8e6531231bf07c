package client

import (
	"bytes"
	"context"
	"errors"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/bytedance/sonic"
	"github.com/google/uuid"
	"github.com/limbo/timelog/pkg/entity"
	"github.com/limbo/timelog/pkg/httputil"
)

const defaultTimeout = 10 * time.Second

// APIError is a non-2xx answer of the server.
type APIError struct {
	StatusCode int
	Message    string
	Fields     map[string]string
}

func (e *APIError) Error() string {
	msg := "api error: " + strconv.Itoa(e.StatusCode) + " " + e.Message
	if len(e.Fields) > 0 {
		parts := make([]string, 0, len(e.Fields))
		for f, m := range e.Fields {
			parts = append(parts, f+": "+m)
		}
		msg += " (" + strings.Join(parts, "; ") + ")"
	}
	return msg
}

func IsNotFound(err error) bool {
	var apiErr *APIError
	return errors.As(err, &apiErr) && apiErr.StatusCode == http.StatusNotFound
}

type CreateLogRequest struct {
	Activity string   `json:"activity"`
	Minutes  int      `json:"minutes"`
	Date     string   `json:"date,omitempty"`
	Notes    string   `json:"notes,omitempty"`
	Category string   `json:"category,omitempty"`
	Tags     []string `json:"tags,omitempty"`
}

// UpdateLogRequest sends only the non-nil fields.
type UpdateLogRequest struct {
	Activity *string   `json:"activity,omitempty"`
	Minutes  *int      `json:"minutes,omitempty"`
	Date     *string   `json:"date,omitempty"`
	Notes    *string   `json:"notes,omitempty"`
	Category *string   `json:"category,omitempty"`
	Tags     *[]string `json:"tags,omitempty"`
}

// ListParams are the filters and page of ListLogs. Zero values are left to
// server defaults.
type ListParams struct {
	Page     int
	Limit    int
	Activity string
	Category string
	Date     string
}

func (p ListParams) values() url.Values {
	v := url.Values{}
	if p.Page > 0 {
		v.Set("page", strconv.Itoa(p.Page))
	}
	if p.Limit > 0 {
		v.Set("limit", strconv.Itoa(p.Limit))
	}
	if p.Activity != "" {
		v.Set("activity", p.Activity)
	}
	if p.Category != "" {
		v.Set("category", p.Category)
	}
	if p.Date != "" {
		v.Set("date", p.Date)
	}
	return v
}

type logResponse struct {
	Message string           `json:"message"`
	Log     *entity.LogEntry `json:"log"`
}

type deleteLogResponse struct {
	Message    string           `json:"message"`
	DeletedLog *entity.LogEntry `json:"deletedLog"`
}

type Client struct {
	baseURL string
	http    *http.Client
}

type Option func(*Client)

func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		c.http = hc
	}
}

// New creates a client of the API served at baseURL, e.g. http://localhost:8080.
func New(baseURL string, opts ...Option) *Client {
	c := &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: defaultTimeout},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

func (c *Client) do(ctx context.Context, method, path string, query url.Values, body, out any) error {
	var reader io.Reader
	if body != nil {
		data, err := sonic.ConfigDefault.Marshal(body)
		if err != nil {
			return errors.New("marshalling request error: " + err.Error())
		}
		reader = bytes.NewReader(data)
	}
	target := c.baseURL + path
	if len(query) > 0 {
		target += "?" + query.Encode()
	}
	req, err := http.NewRequestWithContext(ctx, method, target, reader)
	if err != nil {
		return errors.New("creating request error: " + err.Error())
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set("Accept", "application/json")
	resp, err := c.http.Do(req)
	if err != nil {
		return errors.New("sending request error: " + err.Error())
	}
	defer resp.Body.Close()
	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return errors.New("reading response error: " + err.Error())
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return decodeAPIError(resp.StatusCode, data)
	}
	if out == nil {
		return nil
	}
	if err = sonic.ConfigDefault.Unmarshal(data, out); err != nil {
		return errors.New("decoding response error: " + err.Error())
	}
	return nil
}

func decodeAPIError(status int, data []byte) *APIError {
	apiErr := &APIError{StatusCode: status, Message: http.StatusText(status)}
	var body httputil.ErrorResponse
	if err := sonic.ConfigDefault.Unmarshal(data, &body); err != nil {
		return apiErr
	}
	if body.Message != "" {
		apiErr.Message = body.Message
	}
	if len(body.Errors) > 0 {
		apiErr.Fields = make(map[string]string, len(body.Errors))
		for _, f := range body.Errors {
			apiErr.Fields[f.Field] = f.Message
		}
	}
	return apiErr
}

func (c *Client) Health(ctx context.Context) error {
	return c.do(ctx, http.MethodGet, "/health", nil, nil, nil)
}

func (c *Client) ListLogs(ctx context.Context, params ListParams) (*entity.LogPage, error) {
	var page entity.LogPage
	if err := c.do(ctx, http.MethodGet, "/api/logs", params.values(), nil, &page); err != nil {
		return nil, err
	}
	return &page, nil
}

// DayLog fetches entries and totals of one day given as YYYY-MM-DD.
func (c *Client) DayLog(ctx context.Context, day string) (*entity.DayLog, error) {
	var dl entity.DayLog
	if err := c.do(ctx, http.MethodGet, "/api/logs/date/"+url.PathEscape(day), nil, nil, &dl); err != nil {
		return nil, err
	}
	return &dl, nil
}

func (c *Client) CreateLog(ctx context.Context, req CreateLogRequest) (*entity.LogEntry, error) {
	var resp logResponse
	if err := c.do(ctx, http.MethodPost, "/api/logs", nil, req, &resp); err != nil {
		return nil, err
	}
	return resp.Log, nil
}

func (c *Client) UpdateLog(ctx context.Context, id uuid.UUID, req UpdateLogRequest) (*entity.LogEntry, error) {
	var resp logResponse
	if err := c.do(ctx, http.MethodPut, "/api/logs/"+id.String(), nil, req, &resp); err != nil {
		return nil, err
	}
	return resp.Log, nil
}

func (c *Client) DeleteLog(ctx context.Context, id uuid.UUID) (*entity.LogEntry, error) {
	var resp deleteLogResponse
	if err := c.do(ctx, http.MethodDelete, "/api/logs/"+id.String(), nil, nil, &resp); err != nil {
		return nil, err
	}
	return resp.DeletedLog, nil
}

func (c *Client) Dashboard(ctx context.Context) (*entity.Dashboard, error) {
	var d entity.Dashboard
	if err := c.do(ctx, http.MethodGet, "/api/dashboard", nil, nil, &d); err != nil {
		return nil, err
	}
	return &d, nil
}

func (c *Client) Insights(ctx context.Context) (*entity.Insights, error) {
	var ins entity.Insights
	if err := c.do(ctx, http.MethodGet, "/api/dashboard/insights", nil, nil, &ins); err != nil {
		return nil, err
	}
	return &ins, nil
}

func (c *Client) Overview(ctx context.Context) (*entity.StatsOverview, error) {
	var ov entity.StatsOverview
	if err := c.do(ctx, http.MethodGet, "/api/stats/overview", nil, nil, &ov); err != nil {
		return nil, err
	}
	return &ov, nil
}

// WeeklyStats asks for per-day totals. Empty bounds use the server default
// of the last seven days.
func (c *Client) WeeklyStats(ctx context.Context, startDate, endDate string) ([]entity.DayTotal, error) {
	q := url.Values{}
	if startDate != "" {
		q.Set("startDate", startDate)
	}
	if endDate != "" {
		q.Set("endDate", endDate)
	}
	var resp struct {
		WeeklyStats []entity.DayTotal `json:"weeklyStats"`
	}
	if err := c.do(ctx, http.MethodGet, "/api/stats/weekly", q, nil, &resp); err != nil {
		return nil, err
	}
	return resp.WeeklyStats, nil
}

// ActivityStats ranks activities. period is "week", "month" or empty for all time.
func (c *Client) ActivityStats(ctx context.Context, period string, limit int) ([]entity.ActivitySummary, error) {
	q := url.Values{}
	if period != "" {
		q.Set("period", period)
	}
	if limit > 0 {
		q.Set("limit", strconv.Itoa(limit))
	}
	var resp struct {
		ActivityStats []entity.ActivitySummary `json:"activityStats"`
	}
	if err := c.do(ctx, http.MethodGet, "/api/stats/activities", q, nil, &resp); err != nil {
		return nil, err
	}
	return resp.ActivityStats, nil
}

func (c *Client) CategoryStats(ctx context.Context) ([]entity.CategorySummary, error) {
	var resp struct {
		CategoryStats []entity.CategorySummary `json:"categoryStats"`
	}
	if err := c.do(ctx, http.MethodGet, "/api/stats/categories", nil, nil, &resp); err != nil {
		return nil, err
	}
	return resp.CategoryStats, nil
}

func (c *Client) Trends(ctx context.Context, days int) ([]entity.DayTotal, error) {
	q := url.Values{}
	if days > 0 {
		q.Set("days", strconv.Itoa(days))
	}
	var resp struct {
		Trends []entity.DayTotal `json:"trends"`
	}
	if err := c.do(ctx, http.MethodGet, "/api/stats/trends", q, nil, &resp); err != nil {
		return nil, err
	}
	return resp.Trends, nil
}
