package impl

import (
	"context"
	"testing"

	domainerrors "laundrify/internal/domain/errors"
	mockService "laundrify/internal/mocks/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReferralService_GenerateShareQR(t *testing.T) {
	mockQR := mockService.NewMockQRCodeService(t)
	svc := NewReferralService(mockQR)

	mockQR.EXPECT().
		GenerateReferralQR("LAUNDRY50").
		Return([]byte("png-bytes"), nil)

	png, err := svc.GenerateShareQR(context.Background(), "LAUNDRY50")
	require.NoError(t, err)
	assert.Equal(t, []byte("png-bytes"), png)
}

func TestReferralService_GenerateShareQR_EmptyCode(t *testing.T) {
	mockQR := mockService.NewMockQRCodeService(t)
	svc := NewReferralService(mockQR)

	_, err := svc.GenerateShareQR(context.Background(), "   ")
	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrReferralNotFound)
}

func TestReferralService_ParseShareQR(t *testing.T) {
	mockQR := mockService.NewMockQRCodeService(t)
	svc := NewReferralService(mockQR)

	mockQR.EXPECT().
		ParseReferralQR(`{"referral_code":"LAUNDRY50"}`).
		Return("LAUNDRY50", nil)

	code, err := svc.ParseShareQR(context.Background(), `{"referral_code":"LAUNDRY50"}`)
	require.NoError(t, err)
	assert.Equal(t, "LAUNDRY50", code)
}

func TestReferralService_ParseShareQR_Invalid(t *testing.T) {
	mockQR := mockService.NewMockQRCodeService(t)
	svc := NewReferralService(mockQR)

	mockQR.EXPECT().
		ParseReferralQR("not-json").
		Return("", assert.AnError)

	_, err := svc.ParseShareQR(context.Background(), "not-json")
	require.Error(t, err)
}
