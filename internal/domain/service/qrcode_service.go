package service

// QRCodeService defines the interface for QR code generation and parsing services
type QRCodeService interface {
	// GenerateMapLinkQR encodes a deep link that opens the app's map at the given point
	GenerateMapLinkQR(latitude, longitude float64, name string) ([]byte, error)

	// ParseMapLinkQR extracts the point and name from a scanned deep link
	ParseMapLinkQR(link string) (latitude, longitude float64, name string, err error)
}
