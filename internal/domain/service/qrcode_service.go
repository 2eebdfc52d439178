package service

// QRCodeService renders URLs as QR code images for printed invitations.
type QRCodeService interface {
	// GenerateURLQR encodes the given URL as a PNG image.
	GenerateURLQR(url string) ([]byte, error)
}
