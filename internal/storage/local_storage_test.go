package storage

import (
	"context"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLocalStorageService(t *testing.T) {
	ctx := context.Background()
	svc, err := NewLocalStorageService("http://localhost:8080", t.TempDir())
	if err != nil {
		t.Fatalf("creating storage: %v", err)
	}

	t.Run("SaveAndOpen", func(t *testing.T) {
		url, err := svc.Save(ctx, "receipts/rental-1/a.jpg", "image/jpeg", strings.NewReader("image bytes"))
		assert.NoError(t, err)
		assert.Contains(t, url, "http://localhost:8080/files/")

		file, err := svc.Open(ctx, "receipts/rental-1/a.jpg")
		assert.NoError(t, err)
		defer file.Close()
		data, err := io.ReadAll(file)
		assert.NoError(t, err)
		assert.Equal(t, "image bytes", string(data))

		exists, size, err := svc.Exists(ctx, "receipts/rental-1/a.jpg")
		assert.NoError(t, err)
		assert.True(t, exists)
		assert.Equal(t, int64(len("image bytes")), size)
	})

	t.Run("Delete", func(t *testing.T) {
		_, err := svc.Save(ctx, "receipts/rental-2/b.png", "image/png", strings.NewReader("x"))
		assert.NoError(t, err)
		assert.NoError(t, svc.Delete(ctx, "receipts/rental-2/b.png"))

		exists, _, err := svc.Exists(ctx, "receipts/rental-2/b.png")
		assert.NoError(t, err)
		assert.False(t, exists)
	})

	t.Run("TraversalKeyStaysInsideUploadsDir", func(t *testing.T) {
		_, err := svc.Save(ctx, "../../escape.txt", "text/plain", strings.NewReader("x"))
		assert.NoError(t, err)

		// The cleaned key lands inside the uploads dir, not two levels up.
		exists, _, err := svc.Exists(ctx, "escape.txt")
		assert.NoError(t, err)
		assert.True(t, exists)
	})
}
