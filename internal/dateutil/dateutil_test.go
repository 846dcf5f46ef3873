package dateutil

import (
	"errors"
	"strings"
	"testing"
	"time"
)

var fixedTime = time.Date(2026, time.March, 7, 12, 0, 0, 0, time.UTC)

func TestParseDateFormat(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		format  string
		want    string
		wantErr bool
	}{
		{"iso tokens", "YYYY-MM-DD", "2006-01-02", false},
		{"short year", "YY/M/D", "06/1/2", false},
		{"long month", "MMMM D, YYYY", "January 2, 2006", false},
		{"short month", "D MMM YYYY", "2 Jan 2006", false},
		{"escaped literal", "[Built] YYYY", "Built 2006", false},
		{"literal with tokens inside brackets", "[DD] DD", "DD 02", false},
		{"plain literals preserved", "YYYY.MM.DD", "2006.01.02", false},
		{"empty format", "", "", true},
		{"unclosed bracket", "[Built YYYY", "", true},
		{"too long", strings.Repeat("Y", MaxDateFormatLength+1), "", true},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got, err := ParseDateFormat(tt.format)
			if tt.wantErr {
				if !errors.Is(err, ErrInvalidDateFormat) {
					t.Errorf("error = %v, want ErrInvalidDateFormat", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseDateFormat() error = %v", err)
			}
			if got != tt.want {
				t.Errorf("ParseDateFormat(%q) = %q, want %q", tt.format, got, tt.want)
			}
		})
	}
}

func TestResolveDate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		value   string
		want    string
		wantErr bool
	}{
		{"literal passthrough", "March 2026", "March 2026", false},
		{"empty passthrough", "", "", false},
		{"auto default format", "auto", "2026-03-07", false},
		{"auto custom format", "auto:DD/MM/YYYY", "07/03/2026", false},
		{"auto preset iso", "auto:iso", "2026-03-07", false},
		{"auto preset european", "auto:european", "07/03/2026", false},
		{"auto preset us", "auto:US", "03/07/2026", false},
		{"auto preset long", "auto:long", "March 7, 2026", false},
		{"auto empty format", "auto:", "", true},
		{"auto bad syntax", "automatic", "", true},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got, err := ResolveDate(tt.value, fixedTime)
			if tt.wantErr {
				if !errors.Is(err, ErrInvalidDateFormat) {
					t.Errorf("error = %v, want ErrInvalidDateFormat", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("ResolveDate() error = %v", err)
			}
			if got != tt.want {
				t.Errorf("ResolveDate(%q) = %q, want %q", tt.value, got, tt.want)
			}
		})
	}
}
