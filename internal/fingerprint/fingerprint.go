package fingerprint

import (
	"bytes"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/gabriel-vasile/mimetype"
	"github.com/gowebpki/jcs"

	"github.com/origin-platform/rights-ledger/internal/domain"
)

// DefaultMaxContentSize bounds accepted submissions at 32 MiB
const DefaultMaxContentSize = 32 << 20

var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// Result is the outcome of fingerprinting a submission
type Result struct {
	// ContentID is the content-addressed identifier (oc1:<hex digest>)
	ContentID domain.ContentID
	// Digest is the hex SHA-256 of the normalized bytes
	Digest string
	// MimeType is the sniffed media type of the original bytes
	MimeType string
	// NormalizedSize is the byte length after normalization
	NormalizedSize int64
}

// Fingerprinter derives stable content identifiers from submitted bytes.
// Identical content always yields the identical ID, so duplicate submissions
// are detectable upstream without comparing payloads.
type Fingerprinter struct {
	maxSize int64
}

// New creates a fingerprinter; maxSize <= 0 falls back to the default limit
func New(maxSize int64) *Fingerprinter {
	if maxSize <= 0 {
		maxSize = DefaultMaxContentSize
	}
	return &Fingerprinter{maxSize: maxSize}
}

// Fingerprint normalizes the submission and returns its content identifier.
// Pure function: no side effects, deterministic for identical input.
func (f *Fingerprinter) Fingerprint(data []byte) (*Result, error) {
	if len(data) == 0 {
		return nil, fmt.Errorf("%w: empty submission", domain.ErrInvalidContent)
	}
	if int64(len(data)) > f.maxSize {
		return nil, fmt.Errorf("%w: %d bytes exceeds limit %d", domain.ErrInvalidContent, len(data), f.maxSize)
	}

	mime := mimetype.Detect(data)

	normalized, err := normalize(data, mime)
	if err != nil {
		return nil, err
	}
	if len(normalized) == 0 {
		return nil, fmt.Errorf("%w: submission is blank after normalization", domain.ErrInvalidContent)
	}

	digest := sha256.Sum256(normalized)
	hexDigest := hex.EncodeToString(digest[:])

	return &Result{
		ContentID:      domain.ContentID(domain.ContentIDPrefix + hexDigest),
		Digest:         hexDigest,
		MimeType:       mime.String(),
		NormalizedSize: int64(len(normalized)),
	}, nil
}

// normalize maps equivalent submissions onto identical bytes. JSON payloads
// are canonicalized (RFC 8785), other text gets whitespace and line-ending
// normalization, binary passes through untouched.
func normalize(data []byte, mime *mimetype.MIME) ([]byte, error) {
	trimmed := bytes.TrimPrefix(data, utf8BOM)

	if isJSON(trimmed) {
		canonical, err := jcs.Transform(trimmed)
		if err != nil {
			return nil, fmt.Errorf("%w: malformed JSON payload", domain.ErrInvalidContent)
		}
		return canonical, nil
	}

	if isText(mime) {
		return normalizeText(trimmed), nil
	}

	return data, nil
}

// isJSON reports whether the payload parses as a JSON object or array.
// Detection by parsing rather than mime sniffing: small JSON documents are
// routinely sniffed as plain text.
func isJSON(data []byte) bool {
	body := bytes.TrimSpace(data)
	if len(body) == 0 || (body[0] != '{' && body[0] != '[') {
		return false
	}
	return json.Valid(body)
}

func isText(mime *mimetype.MIME) bool {
	for m := mime; m != nil; m = m.Parent() {
		if strings.HasPrefix(m.String(), "text/") {
			return true
		}
	}
	return false
}

// normalizeText applies the text normalization pipeline: CRLF and bare CR
// become LF, trailing whitespace is trimmed per line, and leading/trailing
// blank line runs are dropped.
func normalizeText(data []byte) []byte {
	s := string(data)
	s = strings.ReplaceAll(s, "\r\n", "\n")
	s = strings.ReplaceAll(s, "\r", "\n")

	lines := strings.Split(s, "\n")
	for i, line := range lines {
		lines[i] = strings.TrimRight(line, " \t")
	}

	start := 0
	for start < len(lines) && lines[start] == "" {
		start++
	}
	end := len(lines)
	for end > start && lines[end-1] == "" {
		end--
	}

	return []byte(strings.Join(lines[start:end], "\n"))
}
