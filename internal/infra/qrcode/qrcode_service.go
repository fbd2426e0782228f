package qrcode

import (
	"encoding/json"
	"fmt"
	"strings"

	"laundrify/internal/domain/service"

	"github.com/skip2/go-qrcode"
)

type qrcodeService struct {
	size                 int
	errorCorrectionLevel qrcode.RecoveryLevel
	baseURL              string
}

// QRCodeData represents the QR code data structure
type QRCodeData struct {
	ReferralCode string `json:"referral_code"`
	ShareURL     string `json:"share_url,omitempty"`
	Type         string `json:"type"`
}

// NewQRCodeService creates a new QR code service instance
func NewQRCodeService(size int, errorCorrectionLevel string, baseURL string) service.QRCodeService {
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
		size = 256
	}

	return &qrcodeService{
		size:                 size,
		errorCorrectionLevel: level,
		baseURL:              strings.TrimRight(baseURL, "/"),
	}
}

// GenerateReferralQR generates a PNG QR code embedding the referral code
func (s *qrcodeService) GenerateReferralQR(referralCode string) ([]byte, error) {
	data := QRCodeData{
		ReferralCode: referralCode,
		Type:         "referral",
	}
	if s.baseURL != "" {
		data.ShareURL = s.baseURL + "/refer/" + referralCode
	}

	jsonData, err := json.Marshal(data)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal QR code data: %w", err)
	}

	qrCode, err := qrcode.New(string(jsonData), s.errorCorrectionLevel)
	if err != nil {
		return nil, fmt.Errorf("failed to create QR code: %w", err)
	}

	pngBytes, err := qrCode.PNG(s.size)
	if err != nil {
		return nil, fmt.Errorf("failed to generate PNG: %w", err)
	}

	return pngBytes, nil
}

// ParseReferralQR parses QR code data and returns the referral code
func (s *qrcodeService) ParseReferralQR(qrData string) (string, error) {
	var data QRCodeData
	if err := json.Unmarshal([]byte(qrData), &data); err != nil {
		return "", fmt.Errorf("failed to unmarshal QR code data: %w", err)
	}

	// Validate type
	if data.Type != "referral" {
		return "", fmt.Errorf("invalid QR code type: %s", data.Type)
	}

	if data.ReferralCode == "" {
		return "", fmt.Errorf("referral code is empty")
	}

	return data.ReferralCode, nil
}
