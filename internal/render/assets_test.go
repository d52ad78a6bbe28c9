package render

import (
	"bytes"
	"image"
	"image/png"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func pngBytes(t *testing.T) []byte {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, image.NewRGBA(image.Rect(0, 0, 4, 4))))
	return buf.Bytes()
}

func TestAssetSetSettlesSuccessAndFailure(t *testing.T) {
	assets := NewAssetSet()
	assets.Add("avatar", bytes.NewReader(pngBytes(t)))
	assets.Add("broken", strings.NewReader("definitely not an image"))

	// Wait must return even though one decode fails: failure counts as
	// settled.
	assets.Wait()

	img, ok := assets.Image("avatar")
	require.True(t, ok)
	assert.Equal(t, 4, img.Bounds().Dx())

	_, ok = assets.Image("broken")
	assert.False(t, ok)

	_, ok = assets.Image("never-added")
	assert.False(t, ok)
}

func TestAssetSetEmptyWaitReturnsImmediately(t *testing.T) {
	NewAssetSet().Wait()
}

func TestAssetSetManyConcurrentDecodes(t *testing.T) {
	assets := NewAssetSet()
	data := pngBytes(t)
	for i := 0; i < 32; i++ {
		assets.Add("a", bytes.NewReader(data))
	}
	assets.Wait()

	_, ok := assets.Image("a")
	assert.True(t, ok)
}
