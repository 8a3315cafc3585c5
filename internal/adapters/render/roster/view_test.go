package roster

import (
	"testing"
	"time"

	"github.com/rentora/admin-cli/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRenderViewShowsCountsAndRecords(t *testing.T) {
	t.Parallel()

	records := []domain.Record{
		{
			ID:        "u1",
			Name:      "Asha Verma",
			Email:     "asha@example.com",
			Phone:     "9811000001",
			Role:      "owner",
			Status:    domain.StatusActive,
			CreatedAt: time.Date(2025, 3, 14, 8, 0, 0, 0, time.UTC),
			Address:   domain.Address{City: "Mumbai"},
		},
		{ID: "u2", Name: "Ben Kale", Status: domain.StatusBlocked},
	}

	output := renderView(records, RenderOptions{Title: "Rentora Accounts", Total: 5, Visible: 2}, newStyles())

	assert.Contains(t, output, "Rentora Accounts")
	assert.Contains(t, output, "showing 2 of 5")
	assert.Contains(t, output, "Asha Verma (u1)")
	assert.Contains(t, output, "[Active]")
	assert.Contains(t, output, "asha@example.com")
	assert.Contains(t, output, "Mumbai")
	assert.Contains(t, output, "joined 2025-03-14")
	assert.Contains(t, output, "Ben Kale (u2)")
	assert.Contains(t, output, "[Blocked]")
}

func TestRenderViewEmptyRoster(t *testing.T) {
	t.Parallel()

	output := renderView(nil, RenderOptions{}, newStyles())

	assert.Contains(t, output, "Rentora Records")
	assert.Contains(t, output, "showing 0 of 0")
	assert.Contains(t, output, "No records match the current view.")
}

func TestRenderViewFallsBackToIDWhenNameMissing(t *testing.T) {
	t.Parallel()

	output := renderView([]domain.Record{{ID: "p9", Status: domain.StatusPending}}, RenderOptions{Visible: 1, Total: 1}, newStyles())

	require.Contains(t, output, "p9")
	assert.Contains(t, output, "[Pending]")
}
