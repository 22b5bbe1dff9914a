package utils

import "time"

// ParseDate parses an optional YYYY-MM-DD query parameter. An empty string
// yields nil rather than an error so absent filters stay absent.
func ParseDate(dateStr string) (*time.Time, error) {
	if dateStr == "" {
		return nil, nil
	}

	date, err := time.Parse(time.DateOnly, dateStr)
	if err != nil {
		return nil, err
	}

	return &date, nil
}
