package fingerprint

import (
	"bytes"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/origin-platform/rights-ledger/internal/domain"
)

func TestFingerprintDeterminism(t *testing.T) {
	f := New(0)

	first, err := f.Fingerprint([]byte("a quiet morning in the studio\n"))
	require.NoError(t, err)
	second, err := f.Fingerprint([]byte("a quiet morning in the studio\n"))
	require.NoError(t, err)

	assert.Equal(t, first.ContentID, second.ContentID)
	assert.Equal(t, first.Digest, second.Digest)
	assert.True(t, first.ContentID.Valid())
}

func TestFingerprintNormalization(t *testing.T) {
	f := New(0)

	canonical, err := f.Fingerprint([]byte("line one\nline two"))
	require.NoError(t, err)

	tests := []struct {
		name  string
		input []byte
	}{
		{
			name:  "crlf line endings",
			input: []byte("line one\r\nline two"),
		},
		{
			name:  "bare cr line endings",
			input: []byte("line one\rline two"),
		},
		{
			name:  "trailing whitespace per line",
			input: []byte("line one  \t\nline two   "),
		},
		{
			name:  "leading and trailing blank lines",
			input: []byte("\n\nline one\nline two\n\n\n"),
		},
		{
			name:  "utf-8 bom",
			input: append([]byte{0xEF, 0xBB, 0xBF}, []byte("line one\nline two")...),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := f.Fingerprint(tt.input)
			require.NoError(t, err)
			assert.Equal(t, canonical.ContentID, result.ContentID)
		})
	}
}

func TestFingerprintJSONCanonicalization(t *testing.T) {
	f := New(0)

	a, err := f.Fingerprint([]byte(`{"title":"sunrise","creator":"c1"}`))
	require.NoError(t, err)
	b, err := f.Fingerprint([]byte(`{ "creator": "c1", "title": "sunrise" }`))
	require.NoError(t, err)

	assert.Equal(t, a.ContentID, b.ContentID)
}

func TestFingerprintDistinctContent(t *testing.T) {
	f := New(0)

	a, err := f.Fingerprint([]byte("first work"))
	require.NoError(t, err)
	b, err := f.Fingerprint([]byte("second work"))
	require.NoError(t, err)

	assert.NotEqual(t, a.ContentID, b.ContentID)
}

func TestFingerprintBinaryPassthrough(t *testing.T) {
	f := New(0)

	// PNG magic followed by bytes that would change under text normalization
	payload := append([]byte{0x89, 'P', 'N', 'G', '\r', '\n', 0x1A, '\n'}, []byte("chunk \r\n data  ")...)

	a, err := f.Fingerprint(payload)
	require.NoError(t, err)
	b, err := f.Fingerprint(bytes.Clone(payload))
	require.NoError(t, err)

	assert.Equal(t, a.ContentID, b.ContentID)
	assert.Equal(t, int64(len(payload)), a.NormalizedSize)
}

func TestFingerprintInvalidContent(t *testing.T) {
	f := New(16)

	tests := []struct {
		name  string
		input []byte
	}{
		{name: "empty", input: nil},
		{name: "over size limit", input: []byte("this payload is longer than sixteen bytes")},
		{name: "blank after normalization", input: []byte("   \n\t\n  ")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := f.Fingerprint(tt.input)
			assert.True(t, errors.Is(err, domain.ErrInvalidContent))
		})
	}
}

func TestFingerprintMimeType(t *testing.T) {
	f := New(0)

	result, err := f.Fingerprint([]byte("plain words about a painting"))
	require.NoError(t, err)
	assert.Contains(t, result.MimeType, "text/plain")
}
