package impl

import (
	"context"
	"strings"

	domainerrors "laundrify/internal/domain/errors"
	"laundrify/internal/domain/service"
	"laundrify/internal/usecase"
)

type referralService struct {
	qrcode service.QRCodeService
}

// NewReferralService creates a new referral sharing service instance
func NewReferralService(qrcode service.QRCodeService) usecase.ReferralUsecase {
	return &referralService{qrcode: qrcode}
}

func (s *referralService) GenerateShareQR(_ context.Context, referralCode string) ([]byte, error) {
	referralCode = strings.TrimSpace(referralCode)
	if referralCode == "" {
		return nil, domainerrors.ErrReferralNotFound.WithDetails("empty referral code")
	}

	return s.qrcode.GenerateReferralQR(referralCode)
}

func (s *referralService) ParseShareQR(_ context.Context, qrData string) (string, error) {
	code, err := s.qrcode.ParseReferralQR(qrData)
	if err != nil {
		return "", domainerrors.ErrReferralNotFound.WrapMessage(err.Error())
	}

	return code, nil
}
