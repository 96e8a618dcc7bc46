package utils

import (
	"errors"
	"time"
)

// ParseDate interpreta datas no formato YYYY-MM-DD
func ParseDate(dateStr string) (time.Time, error) {
	if dateStr == "" {
		return time.Time{}, errors.New("data ausente")
	}

	return time.Parse(time.DateOnly, dateStr)
}
