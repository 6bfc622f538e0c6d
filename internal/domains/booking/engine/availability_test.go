package engine_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"roost/internal/domains/booking/engine"
)

func TestIsAvailable(t *testing.T) {
	tests := []struct {
		name      string
		existing  []engine.Stay
		candidate engine.DateRange
		expected  bool
		wantErr   error
	}{
		{
			name:      "no existing stays",
			existing:  nil,
			candidate: mustRange(t, "2026-06-01", "2026-06-05"),
			expected:  true,
		},
		{
			name: "overlapping pending stay blocks",
			existing: []engine.Stay{
				{Range: mustRange(t, "2026-06-03", "2026-06-08"), Status: engine.StatusPending},
			},
			candidate: mustRange(t, "2026-06-01", "2026-06-05"),
			expected:  false,
		},
		{
			name: "overlapping confirmed stay blocks",
			existing: []engine.Stay{
				{Range: mustRange(t, "2026-06-01", "2026-06-05"), Status: engine.StatusConfirmed},
			},
			candidate: mustRange(t, "2026-06-04", "2026-06-06"),
			expected:  false,
		},
		{
			name: "cancelled stay never blocks",
			existing: []engine.Stay{
				{Range: mustRange(t, "2026-06-01", "2026-06-05"), Status: engine.StatusCancelled},
			},
			candidate: mustRange(t, "2026-06-01", "2026-06-05"),
			expected:  true,
		},
		{
			name: "checkout day frees the night for a new check-in",
			existing: []engine.Stay{
				{Range: mustRange(t, "2026-06-01", "2026-06-05"), Status: engine.StatusConfirmed},
			},
			candidate: mustRange(t, "2026-06-05", "2026-06-10"),
			expected:  true,
		},
		{
			name: "candidate ending on an existing check-in is free",
			existing: []engine.Stay{
				{Range: mustRange(t, "2026-06-05", "2026-06-10"), Status: engine.StatusConfirmed},
			},
			candidate: mustRange(t, "2026-06-01", "2026-06-05"),
			expected:  true,
		},
		{
			name: "one blocking stay among cancelled ones",
			existing: []engine.Stay{
				{Range: mustRange(t, "2026-06-01", "2026-06-03"), Status: engine.StatusCancelled},
				{Range: mustRange(t, "2026-06-02", "2026-06-06"), Status: engine.StatusCancelled},
				{Range: mustRange(t, "2026-06-04", "2026-06-07"), Status: engine.StatusPending},
			},
			candidate: mustRange(t, "2026-06-01", "2026-06-05"),
			expected:  false,
		},
		{
			name:      "invalid candidate range",
			existing:  nil,
			candidate: engine.DateRange{},
			wantErr:   engine.ErrInvalidRange,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			available, err := engine.IsAvailable(tt.existing, tt.candidate)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.expected, available)
			}
		})
	}
}
