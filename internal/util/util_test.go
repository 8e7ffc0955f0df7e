package util

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestDigestBytes(t *testing.T) {
	digest := DigestBytes([]byte("[]"))

	assert.EqualValues(t, 2, digest.Size)
	// sha256 of "[]"
	assert.Equal(t, "4f53cda18c2baa0c0354bb5f9a3ecbe5ed12ab4d8e11ba873c2f11161202b945", digest.SHA256)
}

func TestFileDigest_HumanSize(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		size     int64
		expected string
	}{
		{name: "zero bytes", size: 0, expected: "0 B"},
		{name: "bytes under kilobyte", size: 512, expected: "512 B"},
		{name: "exact kilobyte", size: 1024, expected: "1.0 KB"},
		{name: "fractional kilobyte", size: 1536, expected: "1.5 KB"},
		{name: "megabyte", size: 1024 * 1024, expected: "1.0 MB"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tt.expected, FileDigest{Size: tt.size}.HumanSize())
		})
	}
}

func TestFormatElapsed(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "250ms", FormatElapsed(250*time.Millisecond))
	assert.Equal(t, "45s", FormatElapsed(45*time.Second+200*time.Millisecond))
	assert.Equal(t, "5m10s", FormatElapsed(5*time.Minute+10*time.Second))
}
