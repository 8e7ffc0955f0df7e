package qrcode

import (
	"encoding/json"
	"fmt"

	"smartdine/config"
	"smartdine/internal/domain/service"

	"github.com/skip2/go-qrcode"
)

const (
	defaultSize         = 256
	reservationCodeType = "reservation"
)

type qrcodeService struct {
	size                 int
	errorCorrectionLevel qrcode.RecoveryLevel
}

// New creates the QR code service from configuration
func New(cfg *config.Config) service.QRCodeService {
	if cfg.QRCode == nil {
		return NewQRCodeService(defaultSize, "")
	}

	return NewQRCodeService(cfg.QRCode.Size, cfg.QRCode.ErrorCorrectionLevel)
}

// NewQRCodeService creates a new QR code service instance
func NewQRCodeService(size int, errorCorrectionLevel string) service.QRCodeService {
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

	if size <= 0 {
		size = defaultSize
	}

	return &qrcodeService{
		size:                 size,
		errorCorrectionLevel: level,
	}
}

// GenerateReservationQR generates a confirmation QR code for a reservation
func (s *qrcodeService) GenerateReservationQR(payload service.ReservationQRPayload) ([]byte, error) {
	payload.Type = reservationCodeType

	jsonData, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal QR code data: %w", err)
	}

	// Generate QR code
	qrCode, err := qrcode.New(string(jsonData), s.errorCorrectionLevel)
	if err != nil {
		return nil, fmt.Errorf("failed to create QR code: %w", err)
	}

	// Generate PNG image
	pngBytes, err := qrCode.PNG(s.size)
	if err != nil {
		return nil, fmt.Errorf("failed to generate PNG: %w", err)
	}

	return pngBytes, nil
}

// ParseReservationQR parses QR code data back into a reservation payload
func (s *qrcodeService) ParseReservationQR(qrData string) (*service.ReservationQRPayload, error) {
	var data service.ReservationQRPayload
	if err := json.Unmarshal([]byte(qrData), &data); err != nil {
		return nil, fmt.Errorf("failed to unmarshal QR code data: %w", err)
	}

	// Validate type
	if data.Type != reservationCodeType {
		return nil, fmt.Errorf("invalid QR code type: %s", data.Type)
	}

	if data.ReservationID <= 0 || data.RestaurantID <= 0 {
		return nil, fmt.Errorf("QR code is missing reservation or restaurant ID")
	}

	return &data, nil
}
