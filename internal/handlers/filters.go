package handlers

import (
	"fmt"
	"net/http"
	"time"

	"superstore-dashboard/internal/errors"
	"superstore-dashboard/internal/models"
)

const dateLayout = "2006-01-02"

// parseFilter builds the active filter from query parameters. `category`,
// `segment` and `state` repeat; omitting one leaves that dimension open,
// matching the dashboard's default-everything multi-selects.
func parseFilter(r *http.Request) (models.Filter, error) {
	q := r.URL.Query()

	var f models.Filter

	if v := q.Get("from"); v != "" {
		t, err := time.Parse(dateLayout, v)
		if err != nil {
			return models.Filter{}, errors.ValidationWrap(err, fmt.Sprintf("invalid from date %q, want YYYY-MM-DD", v))
		}
		f.From = t
	}

	if v := q.Get("to"); v != "" {
		t, err := time.Parse(dateLayout, v)
		if err != nil {
			return models.Filter{}, errors.ValidationWrap(err, fmt.Sprintf("invalid to date %q, want YYYY-MM-DD", v))
		}
		f.To = t
	}

	if !f.From.IsZero() && !f.To.IsZero() && f.To.Before(f.From) {
		return models.Filter{}, errors.Validation("to date is before from date")
	}

	f.Categories = q["category"]
	f.Segments = q["segment"]
	f.States = q["state"]

	return f, nil
}
