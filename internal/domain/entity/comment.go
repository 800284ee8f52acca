package entity

import (
	"strings"
	"time"

	"github.com/pkg/errors"
)

// Rating bounds.
const (
	MinRating = 0
	MaxRating = 5
)

// ErrRatingOutOfRange is returned by ParseRating for integers outside MinRating..MaxRating.
var ErrRatingOutOfRange = errors.New("rating out of range")

// Comment is a review left on an address. It only exists under its parent address.
type Comment struct {
	ID        string    `json:"id"`
	Text      string    `json:"text"`
	Rating    int       `json:"rating"`
	ImageURL  string    `json:"imageUrl"`
	User      string    `json:"user"` // Author, lower-cased email.
	CreatedAt time.Time `json:"createdAt"`
}

// ParseRating reads the leading integer of raw, the way the mobile client's
// rating field is interpreted. Input without a leading integer yields 0.
func ParseRating(raw string) (int, error) {
	s := strings.TrimSpace(raw)

	negative := false
	if s != "" && (s[0] == '-' || s[0] == '+') {
		negative = s[0] == '-'
		s = s[1:]
	}

	digits := 0
	value := 0
	for digits < len(s) && s[digits] >= '0' && s[digits] <= '9' {
		// Anything past two digits is out of range anyway; stop before overflowing.
		if value <= MaxRating*10 {
			value = value*10 + int(s[digits]-'0')
		}
		digits++
	}

	if digits == 0 {
		return 0, nil
	}
	if negative {
		value = -value
	}
	if value < MinRating || value > MaxRating {
		return 0, errors.Wrapf(ErrRatingOutOfRange, "got %d", value)
	}

	return value, nil
}
