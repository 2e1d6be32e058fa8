// internal/daily/daily.go
//
// Deterministic word selection for the daily challenge. Every player
// gets the same secret word on a given date without the server storing
// a schedule: the word index is HMAC-SHA256(salt, YYYY-MM-DD) reduced
// modulo the answer pool size.

package daily

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/binary"
	"time"
)

// DateKey returns YYYY-MM-DD in UTC.
func DateKey(t time.Time) string {
	return t.UTC().Format("2006-01-02")
}

// WordIndex returns the answer-pool index for a date. The salt keeps
// the schedule unpredictable across deployments.
func WordIndex(date time.Time, salt string, answersLen int) int {
	if answersLen <= 0 {
		return 0
	}
	h := hmac.New(sha256.New, []byte(salt))
	h.Write([]byte(DateKey(date)))
	sum := h.Sum(nil)
	// First 8 bytes as uint64 for the modulus.
	n := binary.BigEndian.Uint64(sum[:8])
	return int(n % uint64(answersLen))
}
