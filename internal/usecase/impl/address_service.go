package impl

import (
	"context"
	"fmt"
	"log/slog"
	"strconv"
	"strings"
	"time"

	"mapbook/config"
	deliverycontext "mapbook/internal/delivery/context"
	"mapbook/internal/domain/entity"
	domainerrors "mapbook/internal/domain/errors"
	"mapbook/internal/domain/repository"
	"mapbook/internal/domain/service"
	"mapbook/internal/errors"
	"mapbook/internal/usecase"

	"github.com/google/uuid"
	"github.com/paulmach/orb"
	"go.uber.org/fx"
)

const (
	defaultUploadContentType = "image/jpeg"
	addressImagePrefix       = "images/"
	imageExtension           = ".jpg"
)

// addressService implements the AddressUsecase interface.
type addressService struct {
	addressRepo         repository.AddressRepository
	resolver            usecase.VisibilityUsecase
	profiles            usecase.ProfileUsecase
	blobs               service.BlobStorage
	events              service.EventPublisher
	qrcodes             service.QRCodeService
	anonymousSeesPublic bool
	uploadExpiry        time.Duration
	now                 func() time.Time
	logger              *slog.Logger
}

// AddressServiceParams holds dependencies for AddressService, injected by Fx.
type AddressServiceParams struct {
	fx.In

	AddressRepo repository.AddressRepository
	Resolver    usecase.VisibilityUsecase
	Profiles    usecase.ProfileUsecase
	Blobs       service.BlobStorage
	Events      service.EventPublisher
	QRCodes     service.QRCodeService
	Config      *config.Config
	Logger      *slog.Logger
}

// NewAddressService creates a new address service instance
func NewAddressService(params AddressServiceParams) usecase.AddressUsecase {
	srv := &addressService{
		addressRepo: params.AddressRepo,
		resolver:    params.Resolver,
		profiles:    params.Profiles,
		blobs:       params.Blobs,
		events:      params.Events,
		qrcodes:     params.QRCodes,
		now:         time.Now,
		logger:      params.Logger,
	}
	if params.Config != nil {
		if params.Config.Visibility != nil {
			srv.anonymousSeesPublic = params.Config.Visibility.AnonymousSeesPublic
		}
		if params.Config.Storage != nil {
			srv.uploadExpiry = params.Config.Storage.SignedURLExpiry
		}
	}

	return srv
}

func (srv *addressService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// ListVisible returns the resolved visible set, limited to the viewport when one is given.
func (srv *addressService) ListVisible(ctx context.Context, identity entity.Identity, input *usecase.ListVisibleInput) ([]*entity.Address, error) {
	visible, err := srv.resolver.Resolve(ctx, identity)
	if err != nil {
		return nil, err
	}

	if input == nil || input.Bounds == nil {
		return visible, nil
	}

	inView := make([]*entity.Address, 0, len(visible))
	for _, address := range visible {
		if input.Bounds.Contains(orb.Point{address.Longitude, address.Latitude}) {
			inView = append(inView, address)
		}
	}

	return inView, nil
}

// ListPublic returns every public address with its owner's avatar.
func (srv *addressService) ListPublic(ctx context.Context) ([]*usecase.PublicAddress, error) {
	public, err := findPublic(ctx, srv.addressRepo, srv.log(ctx))
	if err != nil {
		return nil, err
	}

	owners := make([]string, 0, len(public))
	for _, address := range public {
		owners = append(owners, address.User)
	}
	avatars := srv.profiles.AvatarsFor(ctx, owners)

	result := make([]*usecase.PublicAddress, 0, len(public))
	for _, address := range public {
		result = append(result, &usecase.PublicAddress{
			Address:        address,
			OwnerAvatarURL: avatars[entity.NormalizeEmail(address.User)],
		})
	}

	return result, nil
}

// ListPrivate returns the identity's private addresses.
func (srv *addressService) ListPrivate(ctx context.Context, identity entity.Identity) ([]*entity.Address, error) {
	if identity.IsAnonymous() {
		return nil, domainerrors.ErrUnauthenticated
	}

	return findPrivate(ctx, srv.addressRepo, identity, srv.log(ctx))
}

// ListOwned returns every address the identity owns, public or not.
func (srv *addressService) ListOwned(ctx context.Context, identity entity.Identity) ([]*entity.Address, error) {
	if identity.IsAnonymous() {
		return nil, domainerrors.ErrUnauthenticated
	}

	records, err := srv.addressRepo.FindWhere(ctx, repository.Filter{repository.Eq(repository.FieldUser, identity.Email())})
	if err != nil {
		return nil, domainerrors.NewStoreExecuteError(err, "failed to list owned addresses")
	}

	return keepRecords(srv.log(ctx), records, func(a *entity.Address) bool {
		return a.OwnedBy(identity)
	}), nil
}

// Create stores a new address owned by the identity.
func (srv *addressService) Create(ctx context.Context, identity entity.Identity, input *usecase.CreateAddressInput) (*entity.Address, error) {
	if identity.IsAnonymous() {
		return nil, domainerrors.ErrUnauthenticated
	}

	name := strings.TrimSpace(input.Name)
	if name == "" {
		return nil, domainerrors.ErrInvalidAddress.WithDetails("name is required")
	}
	if err := entity.ValidateCoordinates(input.Latitude, input.Longitude); err != nil {
		return nil, domainerrors.ErrInvalidAddress.WithDetails(err.Error())
	}
	if input.ImageURL != "" {
		if key, ok := srv.blobs.KeyFromURL(input.ImageURL); ok && !issuedImageKey(key, identity) {
			return nil, domainerrors.ErrInvalidAddress.WithDetails("imageUrl must be an address photo uploaded by the caller")
		}
	}

	address := &entity.Address{
		Name:        name,
		Description: strings.TrimSpace(input.Description),
		Latitude:    input.Latitude,
		Longitude:   input.Longitude,
		ImageURL:    input.ImageURL,
		IsPublic:    input.IsPublic,
		User:        identity.Email(),
	}

	if err := srv.addressRepo.Create(ctx, address); err != nil {
		return nil, domainerrors.NewStoreExecuteError(err, "failed to create address")
	}

	srv.log(ctx).Info("Address created",
		slog.String("address_id", address.ID),
		slog.Bool("is_public", address.IsPublic),
	)

	srv.publish(ctx, service.EventAddressCreated, address, identity)

	return address, nil
}

// Delete removes an address owned by the identity, then its photo on a best-effort basis.
func (srv *addressService) Delete(ctx context.Context, identity entity.Identity, id string) error {
	if identity.IsAnonymous() {
		return domainerrors.ErrUnauthenticated
	}

	address, err := srv.addressRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrAddressNotFound) {
			return domainerrors.ErrAddressNotFound
		}

		return domainerrors.NewStoreExecuteError(err, "failed to find address")
	}

	if !address.OwnedBy(identity) {
		if !address.IsPublic {
			// Do not reveal that someone else's private address exists.
			return domainerrors.ErrAddressNotFound
		}

		return domainerrors.ErrAddressOwnershipViolation
	}

	if err := srv.addressRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrAddressNotFound) {
			return domainerrors.ErrAddressNotFound
		}

		return domainerrors.NewStoreExecuteError(err, "failed to delete address")
	}

	srv.deleteImage(ctx, address, identity)
	srv.publish(ctx, service.EventAddressDeleted, address, identity)

	return nil
}

// deleteImage removes the address photo when it is a slot issued to the owner.
// Records written before uploads were checked may point at any object in the bucket.
func (srv *addressService) deleteImage(ctx context.Context, address *entity.Address, owner entity.Identity) {
	if address.ImageURL == "" {
		return
	}

	logger := srv.log(ctx)

	key, ok := srv.blobs.KeyFromURL(address.ImageURL)
	if !ok {
		logger.Warn("Address image is not in the configured bucket, leaving it in place",
			slog.String("address_id", address.ID),
			slog.String("image_url", address.ImageURL),
		)

		return
	}
	if !issuedImageKey(key, owner) {
		logger.Warn("Address image was not uploaded by its owner, leaving it in place",
			slog.String("address_id", address.ID),
			slog.String("key", key),
		)

		return
	}

	if err := srv.blobs.Delete(ctx, key); err != nil {
		logger.Warn("Failed to delete address image",
			slog.String("address_id", address.ID),
			slog.String("key", key),
			slog.Any("error", err),
		)
	}
}

// Get returns the address when the identity may see it. Hidden and missing addresses look the same.
func (srv *addressService) Get(ctx context.Context, identity entity.Identity, id string) (*entity.Address, error) {
	address, err := srv.addressRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrAddressNotFound) {
			return nil, domainerrors.ErrAddressNotFound
		}

		return nil, domainerrors.NewStoreExecuteError(err, "failed to find address")
	}

	if err := address.Validate(); err != nil {
		srv.log(ctx).Warn("Skipping malformed address record",
			slog.String("address_id", id),
			slog.String("reason", err.Error()),
		)

		return nil, domainerrors.ErrAddressNotFound
	}

	if !srv.canSee(identity, address) {
		return nil, domainerrors.ErrAddressNotFound
	}

	return address, nil
}

func (srv *addressService) canSee(identity entity.Identity, address *entity.Address) bool {
	if identity.IsAnonymous() {
		return srv.anonymousSeesPublic && address.IsPublic
	}

	return address.VisibleTo(identity)
}

// ShareQR renders a QR code opening the address on the map.
func (srv *addressService) ShareQR(ctx context.Context, identity entity.Identity, id string) ([]byte, error) {
	address, err := srv.Get(ctx, identity, id)
	if err != nil {
		return nil, err
	}

	png, err := srv.qrcodes.GenerateMapLinkQR(address.Latitude, address.Longitude, address.Name)
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate QR code")
	}

	return png, nil
}

// ImageUploadSlot names the object for a new photo and signs an upload URL when the bucket can.
func (srv *addressService) ImageUploadSlot(ctx context.Context, identity entity.Identity, input *usecase.UploadSlotInput) (*usecase.UploadSlot, error) {
	if identity.IsAnonymous() {
		return nil, domainerrors.ErrUnauthenticated
	}

	uid := uploaderID(identity)
	millis := srv.now().UnixMilli()

	var key string
	switch input.Kind {
	case usecase.UploadKindAddress:
		key = fmt.Sprintf("%s%d_%s%s", addressImagePrefix, millis, uid, imageExtension)
	case usecase.UploadKindComment:
		if _, err := srv.Get(ctx, identity, input.AddressID); err != nil {
			return nil, err
		}
		key = fmt.Sprintf("comments/%s/%d_%s.jpg", input.AddressID, millis, uid)
	case usecase.UploadKindAvatar:
		key = fmt.Sprintf("avatars/%s.jpg", uid)
	default:
		return nil, domainerrors.ErrInvalidUploadKind
	}

	contentType := input.ContentType
	if contentType == "" {
		contentType = defaultUploadContentType
	}

	slot := &usecase.UploadSlot{
		Key:       key,
		PublicURL: srv.blobs.PublicURL(key),
	}

	uploadURL, err := srv.blobs.SignedUploadURL(ctx, key, contentType, srv.uploadExpiry)
	switch {
	case err == nil:
		slot.UploadURL = uploadURL
		slot.ExpiresIn = int64(srv.uploadExpiry / time.Second)
	case errors.Is(err, service.ErrSigningUnsupported):
		srv.log(ctx).Debug("Bucket cannot sign upload URLs", slog.String("key", key))
	default:
		return nil, domainerrors.NewStoreExecuteError(err, "failed to sign upload URL")
	}

	return slot, nil
}

// publish emits an address event. Failures are logged and never fail the caller.
func (srv *addressService) publish(ctx context.Context, eventType string, address *entity.Address, actor entity.Identity) {
	publishAddressEvent(ctx, srv.events, srv.log(ctx), &service.AddressEvent{
		Type:       eventType,
		AddressID:  address.ID,
		User:       actor.Email(),
		IsPublic:   address.IsPublic,
		Latitude:   address.Latitude,
		Longitude:  address.Longitude,
		OccurredAt: srv.now().UTC(),
	})
}

// publishAddressEvent stamps the event with an ID and the request ID, then publishes it.
func publishAddressEvent(ctx context.Context, events service.EventPublisher, logger *slog.Logger, event *service.AddressEvent) {
	event.EventID = uuid.New().String()
	event.RequestID = deliverycontext.GetRequestIDFromContext(ctx)

	if err := events.PublishAddressEvent(ctx, event); err != nil {
		logger.Warn("Failed to publish address event",
			slog.String("type", event.Type),
			slog.String("address_id", event.AddressID),
			slog.Any("error", err),
		)
	}
}

// uploaderID names the caller in object keys. Callers without a uid get one derived from their email,
// so their keys stay attributable across uploads.
func uploaderID(identity entity.Identity) string {
	if uid := identity.UID(); uid != "" {
		return uid
	}

	return uuid.NewSHA1(uuid.NameSpaceURL, []byte("mailto:"+identity.Email())).String()
}

// issuedImageKey reports whether key has the shape of an address photo slot handed to identity:
// images/{millis}_{uploader}.jpg
func issuedImageKey(key string, identity entity.Identity) bool {
	name, ok := strings.CutPrefix(key, addressImagePrefix)
	if !ok || strings.Contains(name, "/") {
		return false
	}

	millis, ok := strings.CutSuffix(name, "_"+uploaderID(identity)+imageExtension)
	if !ok {
		return false
	}
	_, err := strconv.ParseInt(millis, 10, 64)

	return err == nil
}
