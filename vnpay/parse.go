package vnpay

import (
	"errors"
	"fmt"
	"strconv"
	"time"
)

var (
	ErrInvalidAmount = errors.New("vnpay: invalid amount")
	ErrInvalidDate   = errors.New("vnpay: invalid date")
)

// ParseAmount converts a wire amount (VND x 100) back to VND.
func ParseAmount(s string) (int64, error) {
	if s == "" {
		return 0, fmt.Errorf("%w: empty", ErrInvalidAmount)
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return 0, fmt.Errorf("%w: %q", ErrInvalidAmount, s)
		}
	}
	v, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %v", ErrInvalidAmount, err)
	}
	if v%100 != 0 {
		return 0, fmt.Errorf("%w: %q is not a multiple of 100", ErrInvalidAmount, s)
	}
	return v / 100, nil
}

// FormatDate formats t as the gateway's 14-digit yyyyMMddHHmmss.
func FormatDate(t time.Time) string {
	return t.Format(DateLayout)
}

// ParseDate reads a 14-digit yyyyMMddHHmmss value (vnp_PayDate,
// vnp_CreateDate) in loc. A nil loc means time.Local.
func ParseDate(s string, loc *time.Location) (time.Time, error) {
	if len(s) != len(DateLayout) {
		return time.Time{}, fmt.Errorf("%w: %q must have %d digits", ErrInvalidDate, s, len(DateLayout))
	}
	if loc == nil {
		loc = time.Local
	}
	t, err := time.ParseInLocation(DateLayout, s, loc)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %v", ErrInvalidDate, err)
	}
	return t, nil
}
