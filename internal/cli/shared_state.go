package cli

import "github.com/vitaminR/autobudget/internal/api"

// SharedState holds context shared across all views via pointer.
type SharedState struct {
	API *api.Client

	// Terminal dimensions
	Width  int
	Height int

	// Pay period shown by dashboard and forecast views.
	CurrentPP int
}

// ContentHeight returns the available height for view content, accounting
// for header (2 lines) and status bar (2 lines).
func (s *SharedState) ContentHeight() int {
	h := s.Height - 4
	if h < 1 {
		return 1
	}
	return h
}
