package game

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vitaminR/autobudget/internal/api"
	"github.com/vitaminR/autobudget/internal/domain"
)

// fakeBackend is a minimal stateful gamification server. Points award
// succeeds; the bill mutation can be forced to fail to reproduce the
// partial-failure outcome end to end.
type fakeBackend struct {
	points   int
	billPaid bool
	failMark bool
}

func (b *fakeBackend) handler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		switch {
		case r.URL.Path == "/api/gamification/complete-task":
			b.points += domain.TaskPoints[domain.TaskPayBill]
			io.WriteString(w, `{"points":10}`)
		case strings.HasPrefix(r.URL.Path, "/api/bills/"):
			if b.failMark {
				http.Error(w, `{"detail":"db locked"}`, http.StatusInternalServerError)
				return
			}
			b.billPaid = true
			io.WriteString(w, `{"ok":true}`)
		case r.URL.Path == "/api/gamification/status":
			io.WriteString(w, `{"player1":{"points":10,"spending_money":0.0},"player2":{"points":0,"spending_money":0.0}}`)
		default:
			http.NotFound(w, r)
		}
	}
}

func backendClient(t *testing.T, b *fakeBackend) *api.Client {
	t.Helper()
	srv := httptest.NewServer(b.handler())
	t.Cleanup(srv.Close)

	cfg := api.DefaultConfig()
	cfg.Endpoint = srv.URL
	return api.NewClient(cfg, nil)
}

func TestCompletion_EndToEnd_Success(t *testing.T) {
	backend := &fakeBackend{}
	c := NewCoordinator(backendClient(t, backend))

	err := c.Complete(context.Background(), domain.Player1, electricTask())

	require.NoError(t, err)
	assert.Equal(t, PhaseDone, c.Phase())
	assert.Equal(t, 10, backend.points)
	assert.True(t, backend.billPaid)
}

func TestCompletion_EndToEnd_PartialFailureLeavesInconsistency(t *testing.T) {
	backend := &fakeBackend{failMark: true}
	c := NewCoordinator(backendClient(t, backend))

	err := c.Complete(context.Background(), domain.Player1, electricTask())

	require.True(t, IsPartialFailure(err))
	assert.Equal(t, PhaseInconsistent, c.Phase())

	// The exact documented outcome: points are credited, the bill is not
	// paid, and nothing attempts to compensate.
	assert.Equal(t, 10, backend.points, "points stay awarded")
	assert.False(t, backend.billPaid, "bill remains unpaid")
}
