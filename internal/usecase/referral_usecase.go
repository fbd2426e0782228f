package usecase

import "context"

// ReferralUsecase defines the interface for referral sharing use cases
type ReferralUsecase interface {
	// GenerateShareQR renders a scannable QR code image for the referral code.
	GenerateShareQR(ctx context.Context, referralCode string) ([]byte, error)

	// ParseShareQR extracts the referral code from scanned QR payload data.
	ParseShareQR(ctx context.Context, qrData string) (string, error)
}
