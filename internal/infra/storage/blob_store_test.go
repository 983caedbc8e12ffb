package storage

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gocloud.dev/blob/fileblob"
)

func testStore(t *testing.T) *blobStore {
	t.Helper()

	bucket, err := fileblob.OpenBucket(t.TempDir(), nil)
	require.NoError(t, err)
	t.Cleanup(func() { _ = bucket.Close() })

	return &blobStore{
		bucket:        bucket,
		publicBaseURL: "https://cdn.closecart.example.com/uploads",
	}
}

func TestBlobStore_SaveReturnsPublicURL(t *testing.T) {
	store := testStore(t)

	url, err := store.Save(context.Background(), "shops/logo.png", "image/png", strings.NewReader("fake-png-bytes"))
	require.NoError(t, err)
	assert.Equal(t, "https://cdn.closecart.example.com/uploads/shops/logo.png", url)

	data, err := store.bucket.ReadAll(context.Background(), "shops/logo.png")
	require.NoError(t, err)
	assert.Equal(t, "fake-png-bytes", string(data))
}

func TestBlobStore_SaveOverwritesExistingKey(t *testing.T) {
	store := testStore(t)

	_, err := store.Save(context.Background(), "shops/logo.png", "image/png", strings.NewReader("old"))
	require.NoError(t, err)

	_, err = store.Save(context.Background(), "shops/logo.png", "image/png", strings.NewReader("new"))
	require.NoError(t, err)

	data, err := store.bucket.ReadAll(context.Background(), "shops/logo.png")
	require.NoError(t, err)
	assert.Equal(t, "new", string(data))
}
