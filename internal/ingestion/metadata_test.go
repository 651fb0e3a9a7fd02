package ingestion

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMetadata_JSONMarshaling(t *testing.T) {
	metadata := &Metadata{
		URL:       "https://example.com/job",
		Title:     "Senior Go Engineer",
		Platform:  "greenhouse",
		Timestamp: "2026-01-01T00:00:00Z",
		Hash:      "abcd1234",
	}

	jsonBytes, err := metadata.ToJSON()
	require.NoError(t, err)
	assert.NotEmpty(t, jsonBytes)

	var unmarshaled Metadata
	err = json.Unmarshal(jsonBytes, &unmarshaled)
	require.NoError(t, err)
	assert.Equal(t, metadata.URL, unmarshaled.URL)
	assert.Equal(t, metadata.Title, unmarshaled.Title)
	assert.Equal(t, metadata.Platform, unmarshaled.Platform)
	assert.Equal(t, metadata.Timestamp, unmarshaled.Timestamp)
	assert.Equal(t, metadata.Hash, unmarshaled.Hash)
}

func TestMetadata_OmitsEmptyOptionalFields(t *testing.T) {
	metadata := &Metadata{Timestamp: "2026-01-01T00:00:00Z", Hash: "abcd"}

	jsonBytes, err := metadata.ToJSON()
	require.NoError(t, err)
	assert.NotContains(t, string(jsonBytes), "url")
	assert.NotContains(t, string(jsonBytes), "title")
	assert.NotContains(t, string(jsonBytes), "platform")
}

func TestComputeHash(t *testing.T) {
	content1 := "test content"
	content2 := "different content"

	hash1 := computeHash(content1)
	hash2 := computeHash(content2)

	// SHA256 hex digest is 64 characters
	assert.Len(t, hash1, 64)
	assert.Len(t, hash2, 64)

	assert.NotEqual(t, hash1, hash2)
	assert.Equal(t, hash1, computeHash(content1))
}

func TestNewMetadata(t *testing.T) {
	content := "test content"
	url := "https://example.com/job"

	metadata := NewMetadata(content, url)

	assert.Equal(t, url, metadata.URL)
	assert.NotEmpty(t, metadata.Timestamp)
	assert.Len(t, metadata.Hash, 64)

	_, err := time.Parse(time.RFC3339, metadata.Timestamp)
	assert.NoError(t, err)

	assert.Equal(t, computeHash(content), metadata.Hash)
}

func TestNewMetadata_EmptyURL(t *testing.T) {
	metadata := NewMetadata("test content", "")

	assert.Empty(t, metadata.URL)
	assert.NotEmpty(t, metadata.Timestamp)
	assert.NotEmpty(t, metadata.Hash)
}
