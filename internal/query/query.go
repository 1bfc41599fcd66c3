// Package query translates the optional from/to/limit query parameters of
// the logs endpoint into a repository.LogQuery. It's the only piece of the
// API with real branching, so it lives in its own package where the date
// policy is testable without HTTP or a database.
package query

import (
	"fmt"
	"strconv"
	"time"

	"github.com/dapod93/freecodecamp-exercisetracker-service/internal/apperror"
	"github.com/dapod93/freecodecamp-exercisetracker-service/internal/repository"
)

const (
	// DateLayout is the accepted layout for from/to bounds and submitted
	// exercise dates: a plain calendar date, no time component.
	DateLayout = "2006-01-02"

	// DefaultLogLimit is applied when limit is absent or unusable.
	DefaultLogLimit = 5
)

// BuildLogQuery turns raw query-string values into a LogQuery.
//
// Policy, deliberately asymmetric:
//   - from/to: present but unparseable is a validation error. The original
//     handed malformed strings straight to the store with undefined
//     results; failing loudly is the corrected behaviour.
//   - limit: present but unparseable (or < 1) silently falls back to the
//     default. That leniency is inherited behaviour, not an accident.
//
// Both bounds are inclusive. A date-only "to" is widened to the end of
// that day, since stored dates carry a time component and midnight would
// otherwise exclude the whole upper day.
func BuildLogQuery(from, to, limit string) (repository.LogQuery, error) {
	q := repository.LogQuery{Limit: DefaultLogLimit}

	if from != "" {
		t, err := time.Parse(DateLayout, from)
		if err != nil {
			return repository.LogQuery{}, apperror.ValidationFailed("from",
				fmt.Sprintf("from must be a date in %s format", DateLayout))
		}
		q.From = &t
	}

	if to != "" {
		t, err := time.Parse(DateLayout, to)
		if err != nil {
			return repository.LogQuery{}, apperror.ValidationFailed("to",
				fmt.Sprintf("to must be a date in %s format", DateLayout))
		}
		t = t.Add(24*time.Hour - time.Nanosecond)
		q.To = &t
	}

	if limit != "" {
		if n, err := strconv.Atoi(limit); err == nil && n > 0 {
			q.Limit = n
		}
	}

	return q, nil
}
