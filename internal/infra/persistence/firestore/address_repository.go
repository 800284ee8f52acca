package firestore

import (
	"context"
	"strings"
	"time"

	"mapbook/internal/domain/constants"
	"mapbook/internal/domain/entity"
	"mapbook/internal/domain/repository"
	"mapbook/internal/errors"

	"cloud.google.com/go/firestore"
)

// addressRepository implements the domain.AddressRepository interface.
type addressRepository struct {
	client   *firestore.Client
	compound bool
}

// NewAddressRepository is the constructor for addressRepository.
func NewAddressRepository(client *firestore.Client, compoundFilters bool) repository.AddressRepository {
	return &addressRepository{
		client:   client,
		compound: compoundFilters,
	}
}

func (repo *addressRepository) collection() *firestore.CollectionRef {
	return repo.client.Collection(constants.CollectionAddresses)
}

// doc returns nil for IDs that cannot name a document.
func (repo *addressRepository) doc(id string) *firestore.DocumentRef {
	if id == "" || strings.Contains(id, "/") {
		return nil
	}

	return repo.collection().Doc(id)
}

// Create adds a document with a generated ID.
func (repo *addressRepository) Create(ctx context.Context, address *entity.Address) error {
	address.CreatedAt = time.Now().UTC()

	ref, _, err := repo.collection().Add(ctx, encodeAddress(address))
	if err != nil {
		return errors.Wrap(err, "failed to add address document")
	}
	address.ID = ref.ID

	return nil
}

// FindByID retrieves an address document.
func (repo *addressRepository) FindByID(ctx context.Context, id string) (*entity.Address, error) {
	ref := repo.doc(id)
	if ref == nil {
		return nil, repository.ErrAddressNotFound
	}

	snap, err := ref.Get(ctx)
	if err != nil {
		if isNotFound(err) {
			return nil, repository.ErrAddressNotFound
		}

		return nil, errors.Wrap(err, "failed to get address document")
	}

	return decodeAddress(snap.Ref.ID, snap.Data()), nil
}

// FindWhere chains one equality Where per clause.
func (repo *addressRepository) FindWhere(ctx context.Context, filter repository.Filter) ([]*entity.Address, error) {
	query := repo.collection().Query
	for _, clause := range filter {
		if clause.Field != repository.FieldUser && clause.Field != repository.FieldIsPublic {
			return nil, errors.Wrapf(repository.ErrUnsupportedQuery, "unknown field %q", clause.Field)
		}
		query = query.Where(clause.Field, "==", clause.Value)
	}

	snaps, err := query.Documents(ctx).GetAll()
	if err != nil {
		return nil, mapQueryError(err, filter)
	}

	addresses := make([]*entity.Address, 0, len(snaps))
	for _, snap := range snaps {
		addresses = append(addresses, decodeAddress(snap.Ref.ID, snap.Data()))
	}

	return addresses, nil
}

// SetOwner rewrites the user field.
func (repo *addressRepository) SetOwner(ctx context.Context, id, user string) error {
	ref := repo.doc(id)
	if ref == nil {
		return repository.ErrAddressNotFound
	}

	if _, err := ref.Update(ctx, []firestore.Update{{Path: keyUser, Value: user}}); err != nil {
		if isNotFound(err) {
			return repository.ErrAddressNotFound
		}

		return errors.Wrap(err, "failed to update address owner")
	}

	return nil
}

// Delete removes the address document. The comments subcollection is not removed.
func (repo *addressRepository) Delete(ctx context.Context, id string) error {
	ref := repo.doc(id)
	if ref == nil {
		return repository.ErrAddressNotFound
	}

	if _, err := ref.Delete(ctx, firestore.Exists); err != nil {
		if isNotFound(err) {
			return repository.ErrAddressNotFound
		}

		return errors.Wrap(err, "failed to delete address document")
	}

	return nil
}

func (repo *addressRepository) Capabilities() repository.QueryCapabilities {
	return repository.QueryCapabilities{CompoundFilter: repo.compound}
}
