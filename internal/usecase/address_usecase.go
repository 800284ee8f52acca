package usecase

import (
	"context"

	"mapbook/internal/domain/entity"

	"github.com/paulmach/orb"
)

// Upload kinds accepted by ImageUploadSlot.
const (
	UploadKindAddress = "address"
	UploadKindComment = "comment"
	UploadKindAvatar  = "avatar"
)

// AddressUsecase defines the address screens' operations
type AddressUsecase interface {
	// ListVisible returns the resolved visible set, optionally limited to a map viewport.
	ListVisible(ctx context.Context, identity entity.Identity, input *ListVisibleInput) ([]*entity.Address, error)

	// ListPublic returns every public address annotated with its owner's avatar.
	ListPublic(ctx context.Context) ([]*PublicAddress, error)

	// ListPrivate returns the identity's private addresses.
	ListPrivate(ctx context.Context, identity entity.Identity) ([]*entity.Address, error)

	// ListOwned returns every address the identity owns.
	ListOwned(ctx context.Context, identity entity.Identity) ([]*entity.Address, error)

	Create(ctx context.Context, identity entity.Identity, input *CreateAddressInput) (*entity.Address, error)
	Delete(ctx context.Context, identity entity.Identity, id string) error

	// Get returns the address when it is visible to the identity.
	Get(ctx context.Context, identity entity.Identity, id string) (*entity.Address, error)

	// ShareQR renders a PNG QR code that opens the address on the map.
	ShareQR(ctx context.Context, identity entity.Identity, id string) ([]byte, error)

	// ImageUploadSlot names the storage object for a new photo and signs an upload URL for it.
	ImageUploadSlot(ctx context.Context, identity entity.Identity, input *UploadSlotInput) (*UploadSlot, error)
}

// --- Input DTOs ---

// ListVisibleInput narrows the visible set.
type ListVisibleInput struct {
	// Bounds limits results to a map viewport. Nil means no limit.
	Bounds *orb.Bound
}

// CreateAddressInput defines the data required to create an address.
type CreateAddressInput struct {
	Name        string  `json:"name" validate:"required,max=200"`
	Description string  `json:"description" validate:"max=2000"`
	Latitude    float64 `json:"latitude" validate:"latitude"`
	Longitude   float64 `json:"longitude" validate:"longitude"`
	ImageURL    string  `json:"imageUrl" validate:"omitempty,url"`
	IsPublic    bool    `json:"isPublic"`
}

// UploadSlotInput identifies what a photo is for.
type UploadSlotInput struct {
	Kind        string `json:"kind" validate:"required,oneof=address comment avatar"`
	AddressID   string `json:"addressId" validate:"required_if=Kind comment"`
	ContentType string `json:"contentType"`
}

// --- Output DTOs ---

// PublicAddress is a public address with its owner's avatar.
type PublicAddress struct {
	*entity.Address
	OwnerAvatarURL string `json:"ownerAvatarUrl"`
}

// UploadSlot tells the client where to put a photo and how to refer to it afterwards.
type UploadSlot struct {
	Key       string `json:"key"`
	PublicURL string `json:"publicUrl"`
	// UploadURL is empty when the bucket cannot sign URLs.
	UploadURL string `json:"uploadUrl,omitempty"`
	ExpiresIn int64  `json:"expiresIn,omitempty"` // Seconds
}
