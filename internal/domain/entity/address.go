// Package entity contains the core business objects of the project.
package entity

import (
	"math"
	"strings"
	"time"

	"github.com/pkg/errors"
)

// ErrMalformedRecord is returned by Validate when a stored record lacks what is needed to display it.
var ErrMalformedRecord = errors.New("malformed record")

// Address is a user-submitted, geo-tagged point of interest.
type Address struct {
	ID          string    `json:"id"`          // Assigned by the store on creation.
	Name        string    `json:"name"`        // Required display name.
	Description string    `json:"description"` // Optional free text.
	Latitude    float64   `json:"latitude"`
	Longitude   float64   `json:"longitude"`
	ImageURL    string    `json:"imageUrl"`          // Empty when the address has no photo.
	IsPublic    bool      `json:"isPublic"`          // Visible to every signed-in user when true.
	User        string    `json:"user"`              // Owner, lower-cased email.
	CreatedAt   time.Time `json:"createdAt,omitzero"` // Zero for records written by older clients.
}

// OwnedBy reports whether the identity owns the address. Legacy records may
// carry an owner that was never lower-cased, so both sides are normalized.
func (a *Address) OwnedBy(identity Identity) bool {
	if identity.IsAnonymous() {
		return false
	}

	return NormalizeEmail(a.User) == identity.Email()
}

// VisibleTo reports whether the identity may see the address.
func (a *Address) VisibleTo(identity Identity) bool {
	return a.IsPublic || a.OwnedBy(identity)
}

// Validate checks the fields every displayable address must have.
func (a *Address) Validate() error {
	switch {
	case a.ID == "":
		return errors.Wrap(ErrMalformedRecord, "missing id")
	case strings.TrimSpace(a.Name) == "":
		return errors.Wrap(ErrMalformedRecord, "missing name")
	case strings.TrimSpace(a.User) == "":
		return errors.Wrap(ErrMalformedRecord, "missing owner")
	}

	if err := ValidateCoordinates(a.Latitude, a.Longitude); err != nil {
		return errors.Wrap(ErrMalformedRecord, err.Error())
	}

	return nil
}

// ValidateCoordinates checks that the pair is a valid geographic coordinate.
func ValidateCoordinates(latitude, longitude float64) error {
	if math.IsNaN(latitude) || math.IsNaN(longitude) {
		return errors.New("missing coordinates")
	}
	if latitude < -90 || latitude > 90 {
		return errors.Errorf("latitude %v out of range", latitude)
	}
	if longitude < -180 || longitude > 180 {
		return errors.Errorf("longitude %v out of range", longitude)
	}

	return nil
}
