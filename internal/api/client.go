package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/vitaminR/autobudget/internal/domain"
)

// Client is a typed HTTP client for the AutoBudget REST service. It is the
// only component that touches the wire; everything above it works on
// decoded snapshots.
type Client struct {
	cfg      Config
	http     *http.Client
	observer Observer
}

// NewClient creates a Client for the configured endpoint.
func NewClient(cfg Config, observer Observer) *Client {
	if observer == nil {
		observer = NoopObserver{}
	}
	return &Client{
		cfg: cfg,
		http: &http.Client{
			Transport: &http.Transport{
				DialContext: (&net.Dialer{
					Timeout: 5 * time.Second,
				}).DialContext,
			},
		},
		observer: observer,
	}
}

// BillPatch is a partial update for PUT /bills/{id}. Nil fields are
// omitted from the request body and left untouched server-side.
type BillPatch struct {
	Paid      *bool             `json:"paid,omitempty"`
	Amount    *decimal.Decimal  `json:"amount,omitempty"`
	Name      *string           `json:"name,omitempty"`
	DueDay    *int              `json:"due_day,omitempty"`
	BillClass *domain.BillClass `json:"bill_class,omitempty"`
}

// ── bills ────────────────────────────────────────────────────────────────────

func (c *Client) ListBills(ctx context.Context) ([]domain.Bill, error) {
	var bills []domain.Bill
	if err := c.do(ctx, http.MethodGet, "/bills", nil, &bills); err != nil {
		return nil, err
	}
	return bills, nil
}

func (c *Client) UpdateBill(ctx context.Context, id int, patch BillPatch) error {
	return c.do(ctx, http.MethodPut, fmt.Sprintf("/bills/%d", id), patch, nil)
}

func (c *Client) DeleteBill(ctx context.Context, id int) error {
	return c.do(ctx, http.MethodDelete, fmt.Sprintf("/bills/%d", id), nil, nil)
}

// ToggleBillPaid flips a bill's paid flag via the legacy toggle endpoint.
// New call sites should prefer UpdateBill with an explicit paid value,
// which is idempotent.
func (c *Client) ToggleBillPaid(ctx context.Context, id int) error {
	return c.do(ctx, http.MethodPost, fmt.Sprintf("/bills/%d/toggle-paid", id), nil, nil)
}

// MarkBillPaid sets paid=true via the PUT endpoint.
func (c *Client) MarkBillPaid(ctx context.Context, id int) error {
	paid := true
	return c.UpdateBill(ctx, id, BillPatch{Paid: &paid})
}

// ── paychecks ────────────────────────────────────────────────────────────────

func (c *Client) ListPaychecks(ctx context.Context) ([]domain.Paycheck, error) {
	var paychecks []domain.Paycheck
	if err := c.do(ctx, http.MethodGet, "/paychecks", nil, &paychecks); err != nil {
		return nil, err
	}
	return paychecks, nil
}

func (c *Client) CreatePaycheck(ctx context.Context, p domain.Paycheck) error {
	return c.do(ctx, http.MethodPost, "/paychecks", p, nil)
}

func (c *Client) UpdatePaycheck(ctx context.Context, p domain.Paycheck) error {
	return c.do(ctx, http.MethodPut, fmt.Sprintf("/paychecks/%d", p.ID), p, nil)
}

func (c *Client) DeletePaycheck(ctx context.Context, id int) error {
	return c.do(ctx, http.MethodDelete, fmt.Sprintf("/paychecks/%d", id), nil, nil)
}

// ── debts ────────────────────────────────────────────────────────────────────

// DebtSnowball returns the raw debt entries, pre-sort. The payoff plan is
// derived client-side by the snowball package.
func (c *Client) DebtSnowball(ctx context.Context) ([]domain.DebtEntry, error) {
	var entries []domain.DebtEntry
	if err := c.do(ctx, http.MethodGet, "/debts/snowball", nil, &entries); err != nil {
		return nil, err
	}
	return entries, nil
}

// ── gamification ─────────────────────────────────────────────────────────────

func (c *Client) GameStatus(ctx context.Context) (*domain.GameStatus, error) {
	var status domain.GameStatus
	if err := c.do(ctx, http.MethodGet, "/gamification/status", nil, &status); err != nil {
		return nil, err
	}
	return &status, nil
}

func (c *Client) GameTasks(ctx context.Context) ([]domain.Task, error) {
	var tasks []domain.Task
	if err := c.do(ctx, http.MethodGet, "/gamification/tasks", nil, &tasks); err != nil {
		return nil, err
	}
	return tasks, nil
}

type completeTaskRequest struct {
	PlayerID domain.PlayerID `json:"player_id"`
	TaskType domain.TaskType `json:"task_type"`
}

func (c *Client) CompleteTask(ctx context.Context, player domain.PlayerID, taskType domain.TaskType) error {
	body := completeTaskRequest{PlayerID: player, TaskType: taskType}
	return c.do(ctx, http.MethodPost, "/gamification/complete-task", body, nil)
}

// ── calendar / pay periods ───────────────────────────────────────────────────

func (c *Client) Calendar(ctx context.Context) ([]domain.CalendarEvent, error) {
	var events []domain.CalendarEvent
	if err := c.do(ctx, http.MethodGet, "/calendar", nil, &events); err != nil {
		return nil, err
	}
	return events, nil
}

func (c *Client) PayPeriodSummary(ctx context.Context, pp int) (*domain.PayPeriodSummary, error) {
	var summary domain.PayPeriodSummary
	if err := c.do(ctx, http.MethodGet, fmt.Sprintf("/payperiods/%d/summary", pp), nil, &summary); err != nil {
		return nil, err
	}
	return &summary, nil
}

// Available checks whether the server is reachable via its root endpoint.
func (c *Client) Available(ctx context.Context) bool {
	ctx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.cfg.Endpoint+"/", nil)
	if err != nil {
		return false
	}
	resp, err := c.http.Do(req)
	if err != nil {
		return false
	}
	resp.Body.Close()
	return resp.StatusCode == http.StatusOK
}

// ── transport ────────────────────────────────────────────────────────────────

// do issues one JSON request and decodes the response into out (if non-nil).
// There are no retries: failures surface immediately and the caller decides
// whether to roll back local state.
func (c *Client) do(ctx context.Context, method, path string, body, out any) error {
	start := time.Now()
	requestID := uuid.NewString()

	ctx, cancel := context.WithTimeout(ctx, time.Duration(c.cfg.TimeoutMs)*time.Millisecond)
	defer cancel()

	status, err := c.roundTrip(ctx, method, path, requestID, body, out)

	latency := time.Since(start).Milliseconds()
	if err == nil {
		c.observer.OnCallComplete(CallEvent{
			Method: method, Path: path, Status: status,
			LatencyMs: latency, RequestID: requestID, Success: true,
		})
		return nil
	}

	if ctx.Err() != nil {
		err = ErrTimeout
	} else if isConnectionError(err) {
		err = fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	c.observer.OnCallComplete(CallEvent{
		Method: method, Path: path, Status: status,
		LatencyMs: latency, RequestID: requestID,
		Success: false, ErrorCode: errorCode(err),
	})
	return err
}

func (c *Client) roundTrip(ctx context.Context, method, path, requestID string, body, out any) (int, error) {
	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return 0, fmt.Errorf("marshaling request: %w", err)
		}
		reader = bytes.NewReader(data)
	}

	url := c.cfg.Endpoint + c.cfg.BasePath + path
	req, err := http.NewRequestWithContext(ctx, method, url, reader)
	if err != nil {
		return 0, fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("X-Request-ID", requestID)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return 0, err
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return resp.StatusCode, fmt.Errorf("reading response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return resp.StatusCode, &HTTPError{
			Status: resp.StatusCode,
			Method: method,
			Path:   path,
			Body:   truncate(string(respBody), 200),
		}
	}

	if out != nil {
		if err := json.Unmarshal(respBody, out); err != nil {
			return resp.StatusCode, fmt.Errorf("decoding response: %w", err)
		}
	}
	return resp.StatusCode, nil
}

func isConnectionError(err error) bool {
	if err == nil {
		return false
	}
	var netErr *net.OpError
	return errors.As(err, &netErr)
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n] + "..."
}
