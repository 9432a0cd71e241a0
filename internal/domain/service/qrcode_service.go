package service

import "github.com/google/uuid"

// QRCodeService generates scannable share codes for property listings.
type QRCodeService interface {
	// GenerateShareQR renders a PNG QR code pointing at the public share
	// link of the property.
	GenerateShareQR(propertyID uuid.UUID) ([]byte, error)
}
