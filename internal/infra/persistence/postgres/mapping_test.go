package postgres

import (
	"testing"
	"time"

	"mapbook/internal/domain/entity"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

func TestAddressMapping_RoundTrip(t *testing.T) {
	address := &entity.Address{
		ID:          "a1",
		Name:        "Cafe",
		Description: "corner",
		Latitude:    25.03,
		Longitude:   121.56,
		ImageURL:    "https://cdn.example.com/images/1.jpg",
		IsPublic:    true,
		User:        "owner@example.com",
		CreatedAt:   time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC),
	}

	addressM := fromAddressDomain(address)
	assert.Equal(t, "owner@example.com", addressM.UserEmail)
	assert.Equal(t, address, toAddressDomain(addressM))
}

func TestCommentMapping_CarriesAddressID(t *testing.T) {
	comment := &entity.Comment{ID: "c1", Text: "good", Rating: 4, User: "a@example.com"}

	commentM := fromCommentDomain("a1", comment)
	assert.Equal(t, "a1", commentM.AddressID)
	assert.Equal(t, comment, toCommentDomain(commentM))
}

func TestConstraintViolations(t *testing.T) {
	assert.True(t, isForeignKeyConstraintViolation(gorm.ErrForeignKeyViolated))
	assert.True(t, isForeignKeyConstraintViolation(errors.New(`ERROR: insert violates foreign key (SQLSTATE 23503)`)))
	assert.True(t, isCheckConstraintViolation(errors.Wrap(gorm.ErrCheckConstraintViolated, "insert")))
	assert.True(t, isNotNullConstraintViolation(errors.New(`null value in column "name" violates not-null constraint`)))
	assert.False(t, isNotNullConstraintViolation(errors.New("connection refused")))
}
