package service

// QRCodeService generates and parses referral share QR codes.
type QRCodeService interface {
	// GenerateReferralQR renders a PNG QR code embedding the referral code.
	GenerateReferralQR(referralCode string) ([]byte, error)

	// ParseReferralQR extracts the referral code from scanned QR payload.
	ParseReferralQR(qrData string) (string, error)
}
