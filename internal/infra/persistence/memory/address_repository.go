package memory

import (
	"context"
	"slices"

	"mapbook/internal/domain/entity"
	"mapbook/internal/domain/repository"
	"mapbook/internal/errors"

	"github.com/google/uuid"
)

// addressRepository implements the domain.AddressRepository interface.
type addressRepository struct {
	store *Store
}

// NewAddressRepository is the constructor for addressRepository.
func NewAddressRepository(store *Store) repository.AddressRepository {
	return &addressRepository{store: store}
}

// Create persists a new address.
func (repo *addressRepository) Create(_ context.Context, address *entity.Address) error {
	repo.store.mu.Lock()
	defer repo.store.mu.Unlock()

	address.ID = uuid.New().String()
	address.CreatedAt = repo.store.now().UTC()

	copied := *address
	repo.store.addresses = append(repo.store.addresses, &copied)

	return nil
}

// FindByID retrieves an address by its ID.
func (repo *addressRepository) FindByID(_ context.Context, id string) (*entity.Address, error) {
	repo.store.mu.RLock()
	defer repo.store.mu.RUnlock()

	i := repo.store.indexOf(id)
	if i < 0 {
		return nil, repository.ErrAddressNotFound
	}

	copied := *repo.store.addresses[i]

	return &copied, nil
}

// FindWhere returns matching addresses in insertion order.
func (repo *addressRepository) FindWhere(_ context.Context, filter repository.Filter) ([]*entity.Address, error) {
	if filter.IsCompound() && !repo.store.acceptCompound {
		return nil, errors.Wrapf(repository.ErrUnsupportedQuery, "compound filter %s", filter)
	}

	repo.store.mu.RLock()
	defer repo.store.mu.RUnlock()

	result := make([]*entity.Address, 0)
	for _, address := range repo.store.addresses {
		ok, err := matches(address, filter)
		if err != nil {
			return nil, err
		}
		if ok {
			copied := *address
			result = append(result, &copied)
		}
	}

	return result, nil
}

// SetOwner rewrites the owner field of an address.
func (repo *addressRepository) SetOwner(_ context.Context, id, user string) error {
	repo.store.mu.Lock()
	defer repo.store.mu.Unlock()

	i := repo.store.indexOf(id)
	if i < 0 {
		return repository.ErrAddressNotFound
	}
	repo.store.addresses[i].User = user

	return nil
}

// Delete removes an address. Its comments are left in place, as in the document store.
func (repo *addressRepository) Delete(_ context.Context, id string) error {
	repo.store.mu.Lock()
	defer repo.store.mu.Unlock()

	i := repo.store.indexOf(id)
	if i < 0 {
		return repository.ErrAddressNotFound
	}
	repo.store.addresses = slices.Delete(repo.store.addresses, i, i+1)

	return nil
}

// Capabilities reports whether compound filters are advertised.
func (repo *addressRepository) Capabilities() repository.QueryCapabilities {
	return repository.QueryCapabilities{CompoundFilter: repo.store.advertiseCompound}
}

// matches evaluates the filter against an address. Owner comparison is case-insensitive.
func matches(address *entity.Address, filter repository.Filter) (bool, error) {
	for _, clause := range filter {
		switch clause.Field {
		case repository.FieldUser:
			user, ok := clause.Value.(string)
			if !ok {
				return false, errors.Wrapf(repository.ErrUnsupportedQuery, "user must be a string, got %T", clause.Value)
			}
			if entity.NormalizeEmail(address.User) != entity.NormalizeEmail(user) {
				return false, nil
			}
		case repository.FieldIsPublic:
			isPublic, ok := clause.Value.(bool)
			if !ok {
				return false, errors.Wrapf(repository.ErrUnsupportedQuery, "isPublic must be a bool, got %T", clause.Value)
			}
			if address.IsPublic != isPublic {
				return false, nil
			}
		default:
			return false, errors.Wrapf(repository.ErrUnsupportedQuery, "unknown field %q", clause.Field)
		}
	}

	return true, nil
}
