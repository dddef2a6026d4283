package service

// QRCodeService renders event share links as QR codes.
type QRCodeService interface {
	// GenerateShareQR generates a PNG QR code pointing at an event's share link
	GenerateShareQR(eventID, link string) ([]byte, error)
}
