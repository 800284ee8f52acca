// Package handler contains the echo handlers of the address API.
package handler

import (
	"encoding/json"
	"log/slog"
	"math"
	"net/http"
	"strconv"
	"strings"

	"mapbook/internal/delivery/api/middleware"
	"mapbook/internal/delivery/api/response"
	"mapbook/internal/domain/entity"
	domainerrors "mapbook/internal/domain/errors"
	"mapbook/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geojson"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

const mimeGeoJSON = "application/geo+json"

// AddressHandlerParams holds dependencies for AddressHandler, injected by Fx.
type AddressHandlerParams struct {
	fx.In

	AddressUC usecase.AddressUsecase
	Logger    *slog.Logger
}

// AddressHandler holds dependencies for address-related handlers
type AddressHandler struct {
	addressUC usecase.AddressUsecase
	logger    *slog.Logger
}

// NewAddressHandler is the constructor for AddressHandler
func NewAddressHandler(params AddressHandlerParams) *AddressHandler {
	return &AddressHandler{
		addressUC: params.AddressUC,
		logger:    params.Logger,
	}
}

// ListVisible handles GET /addresses: every public address plus the caller's private ones
func (h *AddressHandler) ListVisible(c echo.Context) error {
	input, err := listVisibleInput(c)
	if err != nil {
		return err
	}

	addresses, err := h.addressUC.ListVisible(c.Request().Context(), middleware.GetIdentity(c), input)
	if err != nil {
		return err
	}

	return response.List(c, addresses)
}

// GeoJSON handles GET /addresses/geojson: the visible set as a FeatureCollection
func (h *AddressHandler) GeoJSON(c echo.Context) error {
	input, err := listVisibleInput(c)
	if err != nil {
		return err
	}

	addresses, err := h.addressUC.ListVisible(c.Request().Context(), middleware.GetIdentity(c), input)
	if err != nil {
		return err
	}

	body, err := json.Marshal(toFeatureCollection(addresses))
	if err != nil {
		return errors.WithStack(err)
	}

	return c.Blob(http.StatusOK, mimeGeoJSON, body)
}

// ListPublic handles GET /addresses/public
func (h *AddressHandler) ListPublic(c echo.Context) error {
	addresses, err := h.addressUC.ListPublic(c.Request().Context())
	if err != nil {
		return err
	}

	return response.List(c, addresses)
}

// ListPrivate handles GET /addresses/private
func (h *AddressHandler) ListPrivate(c echo.Context) error {
	addresses, err := h.addressUC.ListPrivate(c.Request().Context(), middleware.GetIdentity(c))
	if err != nil {
		return err
	}

	return response.List(c, addresses)
}

// ListOwned handles GET /addresses/mine
func (h *AddressHandler) ListOwned(c echo.Context) error {
	addresses, err := h.addressUC.ListOwned(c.Request().Context(), middleware.GetIdentity(c))
	if err != nil {
		return err
	}

	return response.List(c, addresses)
}

// Create handles POST /addresses
func (h *AddressHandler) Create(c echo.Context) error {
	var input usecase.CreateAddressInput
	if err := c.Bind(&input); err != nil {
		return domainerrors.ErrValidationFailed.WithDetails("invalid address body")
	}
	if err := c.Validate(&input); err != nil {
		return err
	}

	address, err := h.addressUC.Create(c.Request().Context(), middleware.GetIdentity(c), &input)
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusCreated, address)
}

// Get handles GET /addresses/:id
func (h *AddressHandler) Get(c echo.Context) error {
	address, err := h.addressUC.Get(c.Request().Context(), middleware.GetIdentity(c), c.Param("id"))
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, address)
}

// Delete handles DELETE /addresses/:id
func (h *AddressHandler) Delete(c echo.Context) error {
	if err := h.addressUC.Delete(c.Request().Context(), middleware.GetIdentity(c), c.Param("id")); err != nil {
		return err
	}

	return c.NoContent(http.StatusNoContent)
}

// ShareQR handles GET /addresses/:id/qr
func (h *AddressHandler) ShareQR(c echo.Context) error {
	png, err := h.addressUC.ShareQR(c.Request().Context(), middleware.GetIdentity(c), c.Param("id"))
	if err != nil {
		return err
	}

	return c.Blob(http.StatusOK, "image/png", png)
}

func listVisibleInput(c echo.Context) (*usecase.ListVisibleInput, error) {
	bounds, err := parseBBox(c.QueryParam("bbox"))
	if err != nil {
		return nil, err
	}

	return &usecase.ListVisibleInput{Bounds: bounds}, nil
}

// parseBBox reads "minLon,minLat,maxLon,maxLat". An empty value means no viewport.
func parseBBox(raw string) (*orb.Bound, error) {
	if strings.TrimSpace(raw) == "" {
		return nil, nil
	}

	parts := strings.Split(raw, ",")
	if len(parts) != 4 {
		return nil, domainerrors.ErrInvalidBounds.WithDetails("bbox must be minLon,minLat,maxLon,maxLat")
	}

	values := make([]float64, 4)
	for i, part := range parts {
		value, err := strconv.ParseFloat(strings.TrimSpace(part), 64)
		if err != nil || math.IsNaN(value) || math.IsInf(value, 0) {
			return nil, domainerrors.ErrInvalidBounds.WithDetails("bbox values must be numbers")
		}
		values[i] = value
	}

	bound := orb.Bound{
		Min: orb.Point{values[0], values[1]},
		Max: orb.Point{values[2], values[3]},
	}
	if err := entity.ValidateCoordinates(bound.Min.Lat(), bound.Min.Lon()); err != nil {
		return nil, domainerrors.ErrInvalidBounds.WithDetails(err.Error())
	}
	if err := entity.ValidateCoordinates(bound.Max.Lat(), bound.Max.Lon()); err != nil {
		return nil, domainerrors.ErrInvalidBounds.WithDetails(err.Error())
	}
	if bound.Min.Lon() > bound.Max.Lon() || bound.Min.Lat() > bound.Max.Lat() {
		return nil, domainerrors.ErrInvalidBounds.WithDetails("bbox minimum exceeds maximum")
	}

	return &bound, nil
}

func toFeatureCollection(addresses []*entity.Address) *geojson.FeatureCollection {
	fc := geojson.NewFeatureCollection()
	for _, address := range addresses {
		feature := geojson.NewFeature(orb.Point{address.Longitude, address.Latitude})
		feature.ID = address.ID
		feature.Properties["name"] = address.Name
		feature.Properties["description"] = address.Description
		feature.Properties["imageUrl"] = address.ImageURL
		feature.Properties["isPublic"] = address.IsPublic
		feature.Properties["user"] = address.User
		fc.Append(feature)
	}

	return fc
}
