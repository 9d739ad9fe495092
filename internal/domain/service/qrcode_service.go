package service

// QRCodeService defines the interface for generating QR codes.
type QRCodeService interface {
	// GenerateCouponQR creates a QR code image encoding the coupon code and
	// returns the PNG bytes.
	GenerateCouponQR(code string) ([]byte, error)
}
