package firestore

import (
	"math"
	"strconv"
	"strings"
	"time"

	"mapbook/internal/domain/entity"
)

// Stored document keys. Addresses and comments share the names the mobile client writes.
const (
	keyName        = "name"
	keyDescription = "description"
	keyLatitude    = "latitude"
	keyLongitude   = "longitude"
	keyImageURL    = "imageUrl"
	keyIsPublic    = "isPublic"
	keyUser        = "user"
	keyCreatedAt   = "createdAt"
	keyText        = "text"
	keyRating      = "rating"
	keyEmail       = "email"
	keyAvatarURL   = "avatarUrl"
)

// decodeAddress reads an address document leniently. Missing coordinates
// become NaN so Validate rejects them; a missing isPublic is false.
func decodeAddress(id string, data map[string]any) *entity.Address {
	return &entity.Address{
		ID:          id,
		Name:        stringField(data, keyName),
		Description: stringField(data, keyDescription),
		Latitude:    floatField(data, keyLatitude),
		Longitude:   floatField(data, keyLongitude),
		ImageURL:    stringField(data, keyImageURL),
		IsPublic:    boolField(data, keyIsPublic),
		User:        stringField(data, keyUser),
		CreatedAt:   timeField(data, keyCreatedAt),
	}
}

func encodeAddress(address *entity.Address) map[string]any {
	return map[string]any{
		keyName:        address.Name,
		keyDescription: address.Description,
		keyLatitude:    address.Latitude,
		keyLongitude:   address.Longitude,
		keyImageURL:    address.ImageURL,
		keyIsPublic:    address.IsPublic,
		keyUser:        address.User,
		keyCreatedAt:   address.CreatedAt,
	}
}

func decodeComment(id string, data map[string]any) *entity.Comment {
	return &entity.Comment{
		ID:        id,
		Text:      stringField(data, keyText),
		Rating:    ratingField(data, keyRating),
		ImageURL:  stringField(data, keyImageURL),
		User:      stringField(data, keyUser),
		CreatedAt: timeField(data, keyCreatedAt),
	}
}

// ratingField reads a stored rating. Values that are unparseable or outside
// MinRating..MaxRating read as 0, the same as a rating that was never given.
func ratingField(data map[string]any, key string) int {
	switch v := data[key].(type) {
	case int64:
		if v >= entity.MinRating && v <= entity.MaxRating {
			return int(v)
		}
	case float64:
		if v >= entity.MinRating && v <= entity.MaxRating {
			return int(v)
		}
	case string:
		if rating, err := entity.ParseRating(v); err == nil {
			return rating
		}
	}

	return 0
}

func encodeComment(comment *entity.Comment) map[string]any {
	return map[string]any{
		keyText:      comment.Text,
		keyRating:    comment.Rating,
		keyImageURL:  comment.ImageURL,
		keyUser:      comment.User,
		keyCreatedAt: comment.CreatedAt,
	}
}

func decodeProfile(id string, data map[string]any) *entity.Profile {
	email := stringField(data, keyEmail)
	if email == "" {
		email = id
	}

	return &entity.Profile{
		Email:     entity.NormalizeEmail(email),
		AvatarURL: stringField(data, keyAvatarURL),
	}
}

func stringField(data map[string]any, key string) string {
	if s, ok := data[key].(string); ok {
		return s
	}

	return ""
}

func boolField(data map[string]any, key string) bool {
	b, _ := data[key].(bool)

	return b
}

// floatField accepts numbers and numeric strings; anything else is NaN.
func floatField(data map[string]any, key string) float64 {
	switch v := data[key].(type) {
	case float64:
		return v
	case int64:
		return float64(v)
	case string:
		f, err := strconv.ParseFloat(strings.TrimSpace(v), 64)
		if err == nil {
			return f
		}
	}

	return math.NaN()
}

func timeField(data map[string]any, key string) time.Time {
	if t, ok := data[key].(time.Time); ok {
		return t
	}

	return time.Time{}
}
