package validation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sampleRecord struct {
	Title  string  `json:"title" validate:"required,max=10"`
	Magnet string  `json:"magnet" validate:"required,magnet"`
	Imdb   *string `json:"imdbId" validate:"omitempty,imdbid"`
	Hash   *string `json:"sha256Hash" validate:"omitempty,sha256hex"`
}

const validMagnet = "magnet:?xt=urn:btih:0123456789abcdef0123456789abcdef01234567&dn=example&tr=udp://tracker.example/announce"

func strPtr(s string) *string { return &s }

func TestStructValid(t *testing.T) {
	err := Struct(&sampleRecord{
		Title:  "ok",
		Magnet: validMagnet,
		Imdb:   strPtr("tt1234567"),
		Hash:   strPtr("a3f1c2d4e5f60718293a4b5c6d7e8f90a1b2c3d4e5f60718293a4b5c6d7e8f90"),
	})
	assert.NoError(t, err)
}

func TestStructCollectsEveryViolation(t *testing.T) {
	err := Struct(&sampleRecord{
		Title:  "",
		Magnet: "not-a-magnet",
		Imdb:   strPtr("nm0000001"),
		Hash:   strPtr("short"),
	})
	require.Error(t, err)

	verr, ok := err.(*Error)
	require.True(t, ok)
	assert.Len(t, verr.Fields, 4)

	fields := map[string]string{}
	for _, f := range verr.Fields {
		fields[f.Field] = f.Message
	}
	assert.Contains(t, fields, "title")
	assert.Equal(t, "Invalid magnet link format", fields["magnet"])
	assert.Equal(t, "Invalid IMDB ID format", fields["imdbId"])
	assert.Equal(t, "Invalid SHA256 hash", fields["sha256Hash"])
	assert.Contains(t, verr.Error(), "Validation failed.")
}

func TestMagnetTag(t *testing.T) {
	tests := []struct {
		name   string
		magnet string
		valid  bool
	}{
		{"btih hash with name and tracker", validMagnet, true},
		{"missing display name", "magnet:?xt=urn:btih:0123456789abcdef0123456789abcdef01234567&tr=udp://t", false},
		{"missing tracker", "magnet:?xt=urn:btih:0123456789abcdef0123456789abcdef01234567&dn=example", false},
		{"hash too short", "magnet:?xt=urn:btih:abc123&dn=example&tr=udp://t", false},
		{"not a magnet at all", "https://example.com/file.torrent", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Struct(&sampleRecord{Title: "x", Magnet: tt.magnet})
			if tt.valid {
				assert.NoError(t, err)
			} else {
				assert.Error(t, err)
			}
		})
	}
}

func TestExtractInfoHash(t *testing.T) {
	assert.Equal(t, "0123456789abcdef0123456789abcdef01234567", ExtractInfoHash(validMagnet))
	assert.Equal(t, "", ExtractInfoHash("https://example.com"))
}

func TestCanonicalHash(t *testing.T) {
	upper := "A3F1C2D4E5F60718293A4B5C6D7E8F90A1B2C3D4E5F60718293A4B5C6D7E8F90"
	assert.Equal(t, "a3f1c2d4e5f60718293a4b5c6d7e8f90a1b2c3d4e5f60718293a4b5c6d7e8f90", CanonicalHash("movies", upper))

	assert.Nil(t, CanonicalHashPtr("movies", nil))
	got := CanonicalHashPtr("movies", &upper)
	require.NotNil(t, got)
	assert.Equal(t, "a3f1c2d4e5f60718293a4b5c6d7e8f90a1b2c3d4e5f60718293a4b5c6d7e8f90", *got)
}
