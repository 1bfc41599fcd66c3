package query

import (
	"errors"
	"testing"
	"time"

	"github.com/dapod93/freecodecamp-exercisetracker-service/internal/apperror"
)

func TestBuildLogQuery_Empty(t *testing.T) {
	q, err := BuildLogQuery("", "", "")
	if err != nil {
		t.Fatalf("BuildLogQuery() error = %v", err)
	}

	if q.From != nil {
		t.Errorf("From = %v, want nil", q.From)
	}
	if q.To != nil {
		t.Errorf("To = %v, want nil", q.To)
	}
	if q.Limit != DefaultLogLimit {
		t.Errorf("Limit = %d, want default %d", q.Limit, DefaultLogLimit)
	}
}

func TestBuildLogQuery_BothBounds(t *testing.T) {
	q, err := BuildLogQuery("2026-01-01", "2026-06-30", "")
	if err != nil {
		t.Fatalf("BuildLogQuery() error = %v", err)
	}

	if q.From == nil || q.To == nil {
		t.Fatal("expected both bounds to be set")
	}

	wantFrom := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	if !q.From.Equal(wantFrom) {
		t.Errorf("From = %v, want %v", q.From, wantFrom)
	}

	// The upper bound is widened to the end of the day so a date-only "to"
	// still includes logs recorded during that day.
	if !q.To.After(time.Date(2026, 6, 30, 23, 59, 59, 0, time.UTC)) {
		t.Errorf("To = %v, want end of 2026-06-30", q.To)
	}
	if !q.To.Before(time.Date(2026, 7, 1, 0, 0, 0, 0, time.UTC)) {
		t.Errorf("To = %v, must stay within 2026-06-30", q.To)
	}
}

func TestBuildLogQuery_OnlyFrom(t *testing.T) {
	q, err := BuildLogQuery("2026-03-15", "", "")
	if err != nil {
		t.Fatalf("BuildLogQuery() error = %v", err)
	}
	if q.From == nil {
		t.Fatal("expected From to be set")
	}
	if q.To != nil {
		t.Errorf("To = %v, want nil", q.To)
	}
}

func TestBuildLogQuery_OnlyTo(t *testing.T) {
	q, err := BuildLogQuery("", "2026-03-15", "")
	if err != nil {
		t.Fatalf("BuildLogQuery() error = %v", err)
	}
	if q.From != nil {
		t.Errorf("From = %v, want nil", q.From)
	}
	if q.To == nil {
		t.Fatal("expected To to be set")
	}
}

func TestBuildLogQuery_MalformedBounds(t *testing.T) {
	tests := []struct {
		name     string
		from, to string
	}{
		{name: "garbage from", from: "not-a-date"},
		{name: "garbage to", to: "tomorrow"},
		{name: "wrong layout", from: "01/02/2026"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := BuildLogQuery(tt.from, tt.to, "")
			if err == nil {
				t.Fatal("BuildLogQuery() should reject a malformed bound")
			}
			if !errors.Is(err, apperror.ErrValidation) {
				t.Errorf("error = %v, want ErrValidation", err)
			}
		})
	}
}

// Invalid limits never error — they fall back to the default. That
// leniency is inherited behaviour, distinct from the strict date policy.
func TestBuildLogQuery_LimitLeniency(t *testing.T) {
	tests := []struct {
		name  string
		limit string
		want  int
	}{
		{name: "valid limit", limit: "3", want: 3},
		{name: "missing limit", limit: "", want: DefaultLogLimit},
		{name: "non-numeric limit", limit: "abc", want: DefaultLogLimit},
		{name: "zero limit", limit: "0", want: DefaultLogLimit},
		{name: "negative limit", limit: "-7", want: DefaultLogLimit},
		{name: "float limit", limit: "2.5", want: DefaultLogLimit},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			q, err := BuildLogQuery("", "", tt.limit)
			if err != nil {
				t.Fatalf("BuildLogQuery() error = %v", err)
			}
			if q.Limit != tt.want {
				t.Errorf("Limit = %d, want %d", q.Limit, tt.want)
			}
		})
	}
}
