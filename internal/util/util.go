package util

import (
	"crypto/sha256"
	"fmt"
	"time"
)

// RequestFingerprint keys an in-flight HTTP request by method, URL and body
// so identical concurrent calls can be collapsed into one.
func RequestFingerprint(method, url string, body []byte) string {
	sha256Hash := sha256.New()
	sha256Hash.Write([]byte(method))
	sha256Hash.Write([]byte{0})
	sha256Hash.Write([]byte(url))
	sha256Hash.Write([]byte{0})
	sha256Hash.Write(body)

	return fmt.Sprintf("%x", sha256Hash.Sum(nil))
}

// FormatDuration formats duration into human readable format (e.g., "1h30m", "5m10s", "45s").
func FormatDuration(duration time.Duration) string {
	duration = duration.Round(time.Second)

	if duration < time.Minute {
		return fmt.Sprintf("%ds", int(duration.Seconds()))
	}

	if duration < time.Hour {
		m := int(duration.Minutes())
		s := int(duration.Seconds()) % 60

		return fmt.Sprintf("%dm%ds", m, s)
	}

	h := int(duration.Hours())
	m := int(duration.Minutes()) % 60

	return fmt.Sprintf("%dh%dm", h, m)
}
