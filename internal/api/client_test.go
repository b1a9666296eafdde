package api

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vitaminR/autobudget/internal/domain"
)

func testClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	cfg := DefaultConfig()
	cfg.Endpoint = srv.URL
	return NewClient(cfg, nil)
}

func TestListBills_DecodesSnapshot(t *testing.T) {
	client := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/api/bills", r.URL.Path)
		assert.NotEmpty(t, r.Header.Get("X-Request-ID"))
		io.WriteString(w, `[
			{"id":1,"name":"Rent","amount":1800.0,"due_day":1,"bill_class":"Critical","paid":false},
			{"id":2,"name":"Electric","amount":150.55,"due_day":3,"bill_class":"Needed","paid":true}
		]`)
	})

	bills, err := client.ListBills(context.Background())
	require.NoError(t, err)
	require.Len(t, bills, 2)
	assert.Equal(t, "Rent", bills[0].Name)
	assert.Equal(t, "1800", bills[0].Amount.String())
	assert.Equal(t, domain.ClassCritical, bills[0].BillClass)
	assert.True(t, bills[1].Paid)
	assert.Equal(t, "150.55", bills[1].Amount.String())
}

func TestUpdateBill_SendsPartialBody(t *testing.T) {
	var got map[string]any
	client := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPut, r.Method)
		assert.Equal(t, "/api/bills/7", r.URL.Path)
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		io.WriteString(w, `{"ok":true}`)
	})

	paid := true
	err := client.UpdateBill(context.Background(), 7, BillPatch{Paid: &paid})
	require.NoError(t, err)
	// Only the patched field travels; nil fields must stay out of the body.
	assert.Equal(t, map[string]any{"paid": true}, got)
}

func TestCompleteTask_Body(t *testing.T) {
	var got completeTaskRequest
	client := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/gamification/complete-task", r.URL.Path)
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		io.WriteString(w, `{"points":10}`)
	})

	require.NoError(t, client.CompleteTask(context.Background(), domain.Player1, domain.TaskPayBill))
	assert.Equal(t, domain.Player1, got.PlayerID)
	assert.Equal(t, domain.TaskPayBill, got.TaskType)
}

func TestCalendar_ParsesLocalDates(t *testing.T) {
	client := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		io.WriteString(w, `[
			{"id":"bill-1","type":"bill","title":"Rent","date":"2025-09-01","bill_class":"Critical","amount":1800.0},
			{"id":"pp-17","type":"pay_period","title":"PP 17","start_date":"2025-08-18","end_date":"2025-08-31"}
		]`)
	})

	events, err := client.Calendar(context.Background())
	require.NoError(t, err)
	require.Len(t, events, 2)

	require.NotNil(t, events[0].Date)
	assert.Equal(t, time.Local, events[0].Date.Location())
	assert.Equal(t, "2025-09-01", events[0].Date.String())

	require.NotNil(t, events[1].StartDate)
	assert.Equal(t, "2025-08-18", events[1].StartDate.String())
	assert.Equal(t, "2025-08-31", events[1].EndDate.String())
}

func TestDo_NonOKStatusIsHTTPError(t *testing.T) {
	client := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"detail":"nope"}`, http.StatusBadRequest)
	})

	_, err := client.ListBills(context.Background())
	require.Error(t, err)

	var he *HTTPError
	require.ErrorAs(t, err, &he)
	assert.Equal(t, http.StatusBadRequest, he.Status)
	assert.True(t, IsNetworkError(err))
}

func TestDo_ConnectionRefusedIsUnavailable(t *testing.T) {
	cfg := DefaultConfig()
	// Reserved port with nothing listening.
	cfg.Endpoint = "http://127.0.0.1:1"
	client := NewClient(cfg, nil)

	_, err := client.ListBills(context.Background())
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrUnavailable)
	assert.True(t, IsNetworkError(err))
}

func TestPayPeriodSummary(t *testing.T) {
	client := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/payperiods/17/summary", r.URL.Path)
		io.WriteString(w, `{
			"pp_id":17,"income":2500.0,"fixed":1200.0,"variable":400.0,
			"surplus_or_deficit":900.0,"pots":{"groceries":300.0,"fun":100.0}
		}`)
	})

	summary, err := client.PayPeriodSummary(context.Background(), 17)
	require.NoError(t, err)
	assert.Equal(t, 17, summary.PPID)
	assert.Equal(t, "900", summary.SurplusOrDeficit.String())
	assert.Equal(t, "300", summary.Pots["groceries"].String())
}

func TestObserver_ReceivesEvents(t *testing.T) {
	var events []CallEvent
	obs := observerFunc(func(e CallEvent) { events = append(events, e) })

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		io.WriteString(w, `[]`)
	}))
	t.Cleanup(srv.Close)

	cfg := DefaultConfig()
	cfg.Endpoint = srv.URL
	client := NewClient(cfg, obs)

	_, err := client.ListBills(context.Background())
	require.NoError(t, err)
	require.Len(t, events, 1)
	assert.True(t, events[0].Success)
	assert.Equal(t, http.MethodGet, events[0].Method)
	assert.Equal(t, "/bills", events[0].Path)
	assert.NotEmpty(t, events[0].RequestID)
}

type observerFunc func(CallEvent)

func (f observerFunc) OnCallComplete(e CallEvent) { f(e) }
