package postgres

import (
	"context"
	"time"

	"mapbook/internal/domain/entity"
	domainerrors "mapbook/internal/domain/errors"
	"mapbook/internal/domain/repository"
	"mapbook/internal/infra/persistence/postgres/query"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gen"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// addressRepository implements the domain.AddressRepository interface.
type addressRepository struct {
	q        *query.Query
	compound bool
}

// NewAddressRepository is the constructor for addressRepository.
func NewAddressRepository(db *gorm.DB, compoundFilters bool) repository.AddressRepository {
	return &addressRepository{
		q:        query.Use(db),
		compound: compoundFilters,
	}
}

// Create persists a new address with a generated ID.
func (repo *addressRepository) Create(ctx context.Context, address *entity.Address) error {
	address.ID = uuid.NewString()
	address.CreatedAt = time.Now().UTC()

	if err := repo.q.AddressModel.WithContext(ctx).Create(fromAddressDomain(address)); err != nil {
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrInvalidAddress.WrapMessage("missing required address information")
		}

		return domainerrors.NewStoreExecuteError(err, "failed to create address")
	}

	return nil
}

// FindByID retrieves an address by its unique ID.
func (repo *addressRepository) FindByID(ctx context.Context, id string) (*entity.Address, error) {
	addressM, err := repo.q.AddressModel.WithContext(ctx).
		Where(repo.q.AddressModel.ID.Eq(id)).
		First()
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrAddressNotFound
		}

		return nil, errors.Wrap(err, "failed to find address by ID")
	}

	return toAddressDomain(addressM), nil
}

// FindWhere translates the filter into a WHERE clause. Owners compare case-insensitively.
func (repo *addressRepository) FindWhere(ctx context.Context, filter repository.Filter) ([]*entity.Address, error) {
	conds, err := repo.whereConds(filter)
	if err != nil {
		return nil, err
	}

	addressModels, err := repo.q.AddressModel.WithContext(ctx).
		Where(conds...).
		Order(repo.q.AddressModel.CreatedAt, repo.q.AddressModel.ID).
		Find()
	if err != nil {
		return nil, errors.Wrapf(err, "failed to query addresses where %s", filter)
	}

	addresses := make([]*entity.Address, 0, len(addressModels))
	for _, addressM := range addressModels {
		addresses = append(addresses, toAddressDomain(addressM))
	}

	return addresses, nil
}

// whereConds maps filter clauses onto address columns.
func (repo *addressRepository) whereConds(filter repository.Filter) ([]gen.Condition, error) {
	conds := make([]gen.Condition, 0, len(filter))
	for _, c := range filter {
		switch c.Field {
		case repository.FieldUser:
			user, ok := c.Value.(string)
			if !ok {
				return nil, errors.Wrapf(repository.ErrUnsupportedQuery, "%s expects a string", c.Field)
			}
			conds = append(conds, gen.Cond(clause.Expr{SQL: "LOWER(user_email) = ?", Vars: []any{entity.NormalizeEmail(user)}})...)
		case repository.FieldIsPublic:
			isPublic, ok := c.Value.(bool)
			if !ok {
				return nil, errors.Wrapf(repository.ErrUnsupportedQuery, "%s expects a bool", c.Field)
			}
			conds = append(conds, repo.q.AddressModel.IsPublic.Is(isPublic))
		default:
			return nil, errors.Wrapf(repository.ErrUnsupportedQuery, "unknown field %q", c.Field)
		}
	}

	return conds, nil
}

// SetOwner rewrites the owner of an address.
func (repo *addressRepository) SetOwner(ctx context.Context, id, user string) error {
	result, err := repo.q.AddressModel.WithContext(ctx).
		Where(repo.q.AddressModel.ID.Eq(id)).
		Update(repo.q.AddressModel.UserEmail, user)
	if err != nil {
		return errors.Wrap(err, "failed to update address owner")
	}
	if result.RowsAffected == 0 {
		return repository.ErrAddressNotFound
	}

	return nil
}

// Delete removes an address and its comments in one transaction.
func (repo *addressRepository) Delete(ctx context.Context, id string) error {
	return repo.q.Transaction(func(tx *query.Query) error {
		if _, err := tx.CommentModel.WithContext(ctx).
			Where(tx.CommentModel.AddressID.Eq(id)).
			Delete(); err != nil {
			return errors.Wrap(err, "failed to delete address comments")
		}

		result, err := tx.AddressModel.WithContext(ctx).
			Where(tx.AddressModel.ID.Eq(id)).
			Delete()
		if err != nil {
			return errors.Wrap(err, "failed to delete address")
		}
		if result.RowsAffected == 0 {
			return repository.ErrAddressNotFound
		}

		return nil
	})
}

func (repo *addressRepository) Capabilities() repository.QueryCapabilities {
	return repository.QueryCapabilities{CompoundFilter: repo.compound}
}
