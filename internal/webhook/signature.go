package webhook

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"strings"
	"time"
)

// Header names carried on signed service-to-service requests
const (
	HeaderSignature = "X-Origin-Signature"
	HeaderTimestamp = "X-Origin-Timestamp"
	HeaderEventID   = "X-Origin-Event-Id"
)

// DefaultMaxSkew is the default tolerance between the signed timestamp and
// the receiver's clock
const DefaultMaxSkew = 5 * time.Minute

var (
	// ErrBadSignature indicates the signature does not match the payload
	ErrBadSignature = errors.New("signature mismatch")
	// ErrStaleTimestamp indicates the signed timestamp is outside the
	// accepted window, suggesting a replayed or long-delayed request
	ErrStaleTimestamp = errors.New("timestamp outside accepted window")
)

// Sign computes the HMAC-SHA256 signature over a request payload.
//
// The signed material is "{timestamp}.{event_id}.{body}" so the receiver can
// check the timestamp against replays, use the event ID for deduplication,
// and verify the payload integrity in one pass. The result is formatted as
// "sha256=<hex>".
func Sign(secret string, eventID string, payload []byte, timestamp int64) string {
	material := fmt.Sprintf("%d.%s.%s", timestamp, eventID, string(payload))

	h := hmac.New(sha256.New, []byte(secret))
	h.Write([]byte(material))

	return "sha256=" + hex.EncodeToString(h.Sum(nil))
}

// Verify checks a signed payload against the shared secret.
// Returns ErrStaleTimestamp when the timestamp falls outside maxSkew of now,
// and ErrBadSignature when the signature does not match.
func Verify(secret string, eventID string, payload []byte, timestamp int64, signature string, maxSkew time.Duration, now time.Time) error {
	if maxSkew <= 0 {
		maxSkew = DefaultMaxSkew
	}

	signedAt := time.Unix(timestamp, 0)
	drift := now.Sub(signedAt)
	if drift < 0 {
		drift = -drift
	}
	if drift > maxSkew {
		return ErrStaleTimestamp
	}

	if !strings.HasPrefix(signature, "sha256=") {
		return ErrBadSignature
	}

	expected := Sign(secret, eventID, payload, timestamp)
	if !hmac.Equal([]byte(expected), []byte(signature)) {
		return ErrBadSignature
	}
	return nil
}
