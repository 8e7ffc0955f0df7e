package service

// ReservationQRPayload is the content encoded in a reservation confirmation code
type ReservationQRPayload struct {
	Type          string `json:"type"`
	ReservationID int64  `json:"reservation_id"`
	RestaurantID  int64  `json:"restaurant_id"`
	Date          string `json:"date"`
	Time          string `json:"time"`
}

// QRCodeService defines the interface for QR code generation and parsing services
type QRCodeService interface {
	// GenerateReservationQR renders a PNG confirmation code for a reservation
	GenerateReservationQR(payload ReservationQRPayload) ([]byte, error)

	// ParseReservationQR parses QR code data back into its payload
	ParseReservationQR(qrData string) (*ReservationQRPayload, error)
}
