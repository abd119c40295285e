package cli

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeExpiry(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"", ""},
		{"  ", ""},
		{"2027-03-31", "2027-03-31"},
		{" 2027-03 ", "2027-03"},
		{"Not visible", "Not visible"},
		{"N/A", "N/A"},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.want, normalizeExpiry(tt.input, fixedNow))
		})
	}
}

func TestNormalizeExpiry_RelativeCarriesYear(t *testing.T) {
	lateNow := time.Date(2026, 10, 17, 10, 0, 0, 0, time.UTC)
	monthEnd := time.Date(2026, 8, 31, 10, 0, 0, 0, time.UTC)
	leapEnd := time.Date(2027, 11, 30, 10, 0, 0, 0, time.UTC)

	tests := []struct {
		name  string
		input string
		now   time.Time
		want  string
	}{
		{"months across year end", "in 6 months", lateNow, "2027-04-17"},
		{"single month", "in 1 month", lateNow, "2026-11-17"},
		{"years", "in 2 years", lateNow, "2028-10-17"},
		{"weeks across month end", "in 3 weeks", lateNow, "2026-11-07"},
		{"days", "in 90 days", lateNow, "2027-01-15"},
		{"article", "in a year", lateNow, "2027-10-17"},
		{"mixed case", "In 6 Months", lateNow, "2027-04-17"},
		{"extra spaces", "  in  6   months ", lateNow, "2027-04-17"},
		{"clamped to short month", "in 6 months", monthEnd, "2027-02-28"},
		{"clamped to leap february", "in 3 months", leapEnd, "2028-02-29"},
		{"zero is not in the future", "in 0 days", lateNow, "in 0 days"},
		{"past phrase kept verbatim", "yesterday", lateNow, "yesterday"},
		{"out of range kept verbatim", "in 9000 years", lateNow, "in 9000 years"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, normalizeExpiry(tt.input, tt.now))
		})
	}
}
