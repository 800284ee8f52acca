package firestore

import (
	"math"
	"testing"
	"time"

	"mapbook/internal/domain/entity"
	"mapbook/internal/domain/repository"
	"mapbook/internal/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

func TestDecodeAddress(t *testing.T) {
	created := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)

	address := decodeAddress("a1", map[string]any{
		keyName:      "Cafe",
		keyLatitude:  25.03,
		keyLongitude: int64(121),
		keyIsPublic:  true,
		keyUser:      "Owner@Example.com",
		keyImageURL:  "https://cdn.example.com/images/1.jpg",
		keyCreatedAt: created,
	})

	assert.Equal(t, "a1", address.ID)
	assert.Equal(t, "Cafe", address.Name)
	assert.InDelta(t, 25.03, address.Latitude, 1e-9)
	assert.InDelta(t, 121.0, address.Longitude, 1e-9)
	assert.True(t, address.IsPublic)
	assert.Equal(t, "Owner@Example.com", address.User)
	assert.Equal(t, created, address.CreatedAt)
	assert.NoError(t, address.Validate())
}

func TestDecodeAddress_Lenient(t *testing.T) {
	address := decodeAddress("a2", map[string]any{
		keyName:      "Legacy",
		keyLatitude:  " 10.5 ",
		keyIsPublic:  "yes",
		keyUser:      42,
		keyCreatedAt: "yesterday",
	})

	assert.InDelta(t, 10.5, address.Latitude, 1e-9)
	assert.True(t, math.IsNaN(address.Longitude))
	assert.False(t, address.IsPublic)
	assert.Empty(t, address.User)
	assert.True(t, address.CreatedAt.IsZero())
	assert.ErrorIs(t, address.Validate(), entity.ErrMalformedRecord)
}

func TestEncodeDecodeAddress_RoundTrip(t *testing.T) {
	original := &entity.Address{
		ID:        "a3",
		Name:      "Park",
		Latitude:  -33.86,
		Longitude: 151.2,
		IsPublic:  false,
		User:      "me@example.com",
	}

	decoded := decodeAddress(original.ID, encodeAddress(original))
	assert.Equal(t, original, decoded)
}

func TestDecodeComment_Ratings(t *testing.T) {
	tests := []struct {
		name  string
		value any
		want  int
	}{
		{name: "int64", value: int64(4), want: 4},
		{name: "float", value: 3.0, want: 3},
		{name: "string", value: "5 stars", want: 5},
		{name: "bad string", value: "nope", want: 0},
		{name: "missing", value: nil, want: 0},
		{name: "int64 above range", value: int64(7), want: 0},
		{name: "int64 below range", value: int64(-1), want: 0},
		{name: "float above range", value: 5.5, want: 0},
		{name: "string above range", value: "9", want: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			comment := decodeComment("c1", map[string]any{keyText: "nice", keyRating: tt.value})
			assert.Equal(t, tt.want, comment.Rating)
			assert.Equal(t, "nice", comment.Text)
		})
	}
}

func TestDecodeProfile_FallsBackToDocumentID(t *testing.T) {
	profile := decodeProfile("Someone@Example.com", map[string]any{keyAvatarURL: "https://cdn/a.jpg"})

	assert.Equal(t, "someone@example.com", profile.Email)
	assert.Equal(t, "https://cdn/a.jpg", profile.AvatarURL)
}

func TestSortComments(t *testing.T) {
	base := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	comments := []*entity.Comment{
		{ID: "undated"},
		{ID: "late", CreatedAt: base.Add(time.Hour)},
		{ID: "early", CreatedAt: base},
	}

	sortComments(comments)

	ids := make([]string, 0, len(comments))
	for _, c := range comments {
		ids = append(ids, c.ID)
	}
	assert.Equal(t, []string{"early", "late", "undated"}, ids)
}

func TestMapQueryError(t *testing.T) {
	filter := repository.Filter{repository.Eq(repository.FieldUser, "a@b.c"), repository.Eq(repository.FieldIsPublic, false)}

	err := mapQueryError(status.Error(codes.FailedPrecondition, "The query requires an index"), filter)
	assert.ErrorIs(t, err, repository.ErrUnsupportedQuery)

	err = mapQueryError(status.Error(codes.Unavailable, "backend down"), filter)
	require.Error(t, err)
	assert.False(t, errors.Is(err, repository.ErrUnsupportedQuery))
	assert.Contains(t, err.Error(), "backend down")
}
