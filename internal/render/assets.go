package render

import (
	"image"
	_ "image/gif"  // register GIF decoding for uploaded avatars
	_ "image/jpeg" // register JPEG decoding for uploaded avatars
	_ "image/png"  // register PNG decoding for uploaded avatars
	"io"
	"log"
	"sync"
)

// AssetSet is the image-readiness barrier in front of a capture.  Each
// added resource is decoded in its own goroutine (fan-out) and Wait
// joins until every decode has settled (fan-in).  A failed decode
// counts as settled: the slot simply stays empty and the renderer
// falls back to a placeholder.  There is no timeout — a reader that
// never returns stalls the export indefinitely, which is an accepted
// limitation rather than something to mask with a timer.
type AssetSet struct {
	mu     sync.Mutex
	wg     sync.WaitGroup
	images map[string]image.Image
}

// NewAssetSet returns an empty asset set.
func NewAssetSet() *AssetSet {
	return &AssetSet{images: make(map[string]image.Image)}
}

// Add schedules the named resource for decoding.  It returns
// immediately; call Wait before reading any image back out.
func (s *AssetSet) Add(name string, r io.Reader) {
	s.wg.Add(1)
	go func() {
		defer s.wg.Done()
		img, _, err := image.Decode(r)
		if err != nil {
			log.Printf("render: decoding asset %q failed: %v", name, err)
			return
		}
		s.mu.Lock()
		s.images[name] = img
		s.mu.Unlock()
	}()
}

// Wait blocks until every added resource has settled, successfully or
// not.
func (s *AssetSet) Wait() {
	s.wg.Wait()
}

// Image returns the decoded image for name.  The second result is
// false when the resource was never added or failed to decode.
func (s *AssetSet) Image(name string) (image.Image, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	img, ok := s.images[name]
	return img, ok
}
