package qrcode

import (
	"fmt"
	"net/url"
	"strconv"

	"mapbook/internal/domain/entity"
	"mapbook/internal/domain/service"

	"github.com/skip2/go-qrcode"
)

// Deep link query parameters read by the app's map screen.
const (
	paramLatitude  = "latitude"
	paramLongitude = "longitude"
	paramName      = "name"
)

type qrcodeService struct {
	size                 int
	errorCorrectionLevel qrcode.RecoveryLevel
	deepLinkBase         *url.URL
}

// NewQRCodeService creates a new QR code service instance
func NewQRCodeService(size int, errorCorrectionLevel, deepLinkBase string) (service.QRCodeService, error) {
	// Set error correction level
	var level qrcode.RecoveryLevel
	switch errorCorrectionLevel {
	case "L":
		level = qrcode.Low
	case "M":
		level = qrcode.Medium
	case "Q":
		level = qrcode.High
	case "H":
		level = qrcode.Highest
	default:
		level = qrcode.Medium
	}

	base, err := url.Parse(deepLinkBase)
	if err != nil || base.Scheme == "" {
		return nil, fmt.Errorf("invalid deep link base %q", deepLinkBase)
	}

	return &qrcodeService{
		size:                 size,
		errorCorrectionLevel: level,
		deepLinkBase:         base,
	}, nil
}

// GenerateMapLinkQR encodes the map deep link as a PNG
func (s *qrcodeService) GenerateMapLinkQR(latitude, longitude float64, name string) ([]byte, error) {
	if err := entity.ValidateCoordinates(latitude, longitude); err != nil {
		return nil, fmt.Errorf("failed to build map link: %w", err)
	}

	qrCode, err := qrcode.New(s.mapLink(latitude, longitude, name), s.errorCorrectionLevel)
	if err != nil {
		return nil, fmt.Errorf("failed to create QR code: %w", err)
	}

	pngBytes, err := qrCode.PNG(s.size)
	if err != nil {
		return nil, fmt.Errorf("failed to generate PNG: %w", err)
	}

	return pngBytes, nil
}

func (s *qrcodeService) mapLink(latitude, longitude float64, name string) string {
	link := *s.deepLinkBase
	query := link.Query()
	query.Set(paramLatitude, strconv.FormatFloat(latitude, 'f', -1, 64))
	query.Set(paramLongitude, strconv.FormatFloat(longitude, 'f', -1, 64))
	query.Set(paramName, name)
	link.RawQuery = query.Encode()

	return link.String()
}

// ParseMapLinkQR reads a scanned map deep link back into a point and name
func (s *qrcodeService) ParseMapLinkQR(link string) (latitude, longitude float64, name string, err error) {
	parsed, err := url.Parse(link)
	if err != nil {
		return 0, 0, "", fmt.Errorf("failed to parse map link: %w", err)
	}

	if parsed.Scheme != s.deepLinkBase.Scheme || parsed.Host != s.deepLinkBase.Host || parsed.Path != s.deepLinkBase.Path {
		return 0, 0, "", fmt.Errorf("not a map link: %s", link)
	}

	query := parsed.Query()
	latitude, err = strconv.ParseFloat(query.Get(paramLatitude), 64)
	if err != nil {
		return 0, 0, "", fmt.Errorf("failed to parse latitude: %w", err)
	}
	longitude, err = strconv.ParseFloat(query.Get(paramLongitude), 64)
	if err != nil {
		return 0, 0, "", fmt.Errorf("failed to parse longitude: %w", err)
	}
	if err := entity.ValidateCoordinates(latitude, longitude); err != nil {
		return 0, 0, "", fmt.Errorf("invalid map link point: %w", err)
	}

	return latitude, longitude, query.Get(paramName), nil
}
