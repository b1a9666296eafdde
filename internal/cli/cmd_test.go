package cli

import (
	"io"
	"os"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vitaminR/autobudget/internal/domain"
	"github.com/vitaminR/autobudget/internal/game"
)

// runCommand executes one cobra invocation against the fake backend and
// returns captured stdout. Handlers print with fmt.Print, so os.Stdout
// itself is redirected.
func runCommand(t *testing.T, backend *testBackend, args ...string) (string, error) {
	t.Helper()

	origStdout := os.Stdout
	pr, pw, err := os.Pipe()
	require.NoError(t, err)
	os.Stdout = pw

	app := newTestApp(t, backend)
	app.IsInteractive = func() bool { return false }

	root := NewRootCmd(app)
	root.SetOut(pw)
	root.SetErr(pw)
	root.SetArgs(args)
	root.SilenceUsage = true
	root.SilenceErrors = true

	var buf strings.Builder
	done := make(chan struct{})
	go func() {
		io.Copy(&buf, pr)
		close(done)
	}()

	execErr := root.Execute()

	pw.Close()
	os.Stdout = origStdout
	<-done

	return buf.String(), execErr
}

func TestBillsCommandListsBills(t *testing.T) {
	out, err := runCommand(t, newTestBackend(t), "bills")
	require.NoError(t, err)
	assert.Contains(t, out, "Electric")
	assert.Contains(t, out, "$120.00")
	assert.Contains(t, out, "Visa")
}

func TestBillsPayCommandUsesIdempotentPut(t *testing.T) {
	backend := newTestBackend(t)

	out, err := runCommand(t, backend, "bills", "pay", "1")
	require.NoError(t, err)
	assert.Contains(t, out, "Bill 1 marked paid")
	assert.True(t, backend.bills[0].Paid)

	// Repeating the command must not flip the bill back.
	_, err = runCommand(t, backend, "bills", "pay", "1")
	require.NoError(t, err)
	assert.True(t, backend.bills[0].Paid)
}

func TestBillsPayCommandRejectsBadID(t *testing.T) {
	_, err := runCommand(t, newTestBackend(t), "bills", "pay", "nope")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "must be a number")
}

func TestDebtsCommandShowsAggregatedPlan(t *testing.T) {
	out, err := runCommand(t, newTestBackend(t), "debts")
	require.NoError(t, err)

	// Sorted ascending by balance, with the formula's ETAs.
	visa := strings.Index(out, "Visa")
	auto := strings.Index(out, "Auto Loan")
	require.True(t, visa >= 0 && auto >= 0)
	assert.Less(t, visa, auto)
	assert.Contains(t, out, "~30 days")
	assert.Contains(t, out, "~420 days")
}

func TestForecastCommandPrintsSummary(t *testing.T) {
	out, err := runCommand(t, newTestBackend(t), "forecast", "--pp", "1")
	require.NoError(t, err)
	assert.Contains(t, out, "Pay period 1")
	assert.Contains(t, out, "$2,500.00")
	assert.Contains(t, out, "Surplus:  $500.00")
}

func TestArenaCompleteCommandPartialFailure(t *testing.T) {
	backend := newTestBackend(t)
	backend.failBillPut = true

	out, err := runCommand(t, backend, "arena", "complete", "1", "--player", "player1")
	require.Error(t, err)
	assert.True(t, game.IsPartialFailure(err))
	assert.Contains(t, out, "still unpaid")
	assert.Contains(t, out, "bills pay 1")

	assert.Equal(t, 130, backend.status.Player1.Points)
	assert.False(t, backend.bills[0].Paid)
}

func TestArenaCompleteCommandSuccess(t *testing.T) {
	backend := newTestBackend(t)

	out, err := runCommand(t, backend, "arena", "complete", "2", "--player", "player2")
	require.NoError(t, err)
	assert.Contains(t, out, "bill marked paid")
	assert.True(t, backend.bills[1].Paid)
}

func TestArenaCompleteCommandRejectsUnknownPlayer(t *testing.T) {
	backend := newTestBackend(t)

	_, err := runCommand(t, backend, "arena", "complete", "1", "--player", "player3")
	require.Error(t, err)
	assert.True(t, domain.IsValidationError(err))
	assert.Contains(t, err.Error(), "player1 or player2")

	// Rejected client-side, so nothing reached the server.
	assert.Equal(t, 120, backend.status.Player1.Points)
	assert.Equal(t, 40, backend.status.Player2.Points)
	assert.False(t, backend.bills[0].Paid)
}

func TestCalendarCommandFilters(t *testing.T) {
	out, err := runCommand(t, newTestBackend(t), "calendar", "--no-pay-periods")
	require.NoError(t, err)
	assert.Contains(t, out, "Electric")
	assert.NotContains(t, out, "Pay Period 1")
}

func TestPaychecksAddCommandValidates(t *testing.T) {
	_, err := runCommand(t, newTestBackend(t), "paychecks", "add",
		"--source", "Acme", "--amount", "-5", "--player", "player1")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "negative")
}
