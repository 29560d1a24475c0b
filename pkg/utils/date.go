package utils

import "time"

// ParseDate interpreta uma data no formato YYYY-MM-DD.
// String vazia devolve a data zero sem erro; o chamador decide se aceita.
func ParseDate(dateStr string) (*time.Time, error) {
	var date time.Time

	if dateStr != "" {
		parsed, err := time.Parse("2006-01-02", dateStr)
		if err != nil {
			return nil, err
		}

		date = parsed
	}

	return &date, nil
}
