package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRentalDays(t *testing.T) {
	tests := []struct {
		name    string
		start   string
		end     string
		want    int32
		wantErr bool
	}{
		{"three calendar days", "2025-03-01", "2025-03-04", 3, false},
		{"single day", "2025-03-01", "2025-03-02", 1, false},
		{"partial day rounds up", "2025-03-01T10:00:00Z", "2025-03-03T11:00:00Z", 3, false},
		{"exact 48 hours", "2025-03-01T10:00:00Z", "2025-03-03T10:00:00Z", 2, false},
		{"across month boundary", "2025-01-30", "2025-02-02", 3, false},
		{"same date rejected", "2025-03-01", "2025-03-01", 0, true},
		{"inverted range rejected", "2025-03-04", "2025-03-01", 0, true},
		{"garbage input rejected", "not-a-date", "2025-03-01", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := RentalDays(tt.start, tt.end)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestRentalAmountCents(t *testing.T) {
	days, amount, err := RentalAmountCents("2025-03-01", "2025-03-04", 100000)
	assert.NoError(t, err)
	assert.Equal(t, int32(3), days)
	assert.Equal(t, int32(300000), amount)

	_, _, err = RentalAmountCents("2025-03-04", "2025-03-01", 100000)
	assert.Error(t, err)
}
