// Package util holds small helpers shared by the command line tools.
package util

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"time"
)

// FileDigest identifies a file's content for logs.
type FileDigest struct {
	Size   int64
	SHA256 string
}

// DigestBytes describes content already read into memory.
func DigestBytes(data []byte) FileDigest {
	sum := sha256.Sum256(data)

	return FileDigest{Size: int64(len(data)), SHA256: hex.EncodeToString(sum[:])}
}

// HumanSize renders the size with a binary unit, e.g. "1.5 KB".
func (d FileDigest) HumanSize() string {
	const unit = 1024
	if d.Size < unit {
		return fmt.Sprintf("%d B", d.Size)
	}

	const units = "KMGTPE"
	div, exp := int64(unit), 0
	for n := d.Size / unit; n >= unit && exp < len(units)-1; n /= unit {
		div *= unit
		exp++
	}

	return fmt.Sprintf("%.1f %cB", float64(d.Size)/float64(div), units[exp])
}

// FormatElapsed renders a run time for CLI summaries: milliseconds below a second,
// otherwise rounded to the second ("5m10s").
func FormatElapsed(elapsed time.Duration) string {
	if elapsed < time.Second {
		return fmt.Sprintf("%dms", elapsed.Milliseconds())
	}

	return elapsed.Round(time.Second).String()
}
