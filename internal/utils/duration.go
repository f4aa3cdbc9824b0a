package utils

import (
	"fmt"
	"time"
)

const dayHours = 24

// ParseRentalDate accepts either a bare calendar date (yyyy-mm-dd, taken as
// midnight UTC) or a full RFC3339 timestamp.
func ParseRentalDate(dateStr string) (time.Time, error) {
	if t, err := time.Parse("2006-01-02", dateStr); err == nil {
		return t, nil
	}
	t, err := time.Parse(time.RFC3339, dateStr)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q, expected yyyy-mm-dd or RFC3339", dateStr)
	}
	return t, nil
}

// RentalDays returns the billable day count for a period: the hour difference
// divided by 24, rounded up. The end date must be strictly after the start
// date, so the result is always at least 1.
func RentalDays(startDate, endDate string) (int32, error) {
	start, err := ParseRentalDate(startDate)
	if err != nil {
		return 0, fmt.Errorf("invalid start date: %w", err)
	}
	end, err := ParseRentalDate(endDate)
	if err != nil {
		return 0, fmt.Errorf("invalid end date: %w", err)
	}
	if !end.After(start) {
		return 0, fmt.Errorf("end date must be after start date")
	}

	hours := end.Sub(start).Hours()
	days := int32(hours / dayHours)
	if hours > float64(days)*dayHours {
		days++ // partial day bills as a full day
	}
	return days, nil
}

// RentalAmountCents computes the charge for a period at the given daily rate.
func RentalAmountCents(startDate, endDate string, dailyPriceCents int32) (int32, int32, error) {
	days, err := RentalDays(startDate, endDate)
	if err != nil {
		return 0, 0, err
	}
	return days, days * dailyPriceCents, nil
}
