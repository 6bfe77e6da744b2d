//go:build !noebiten

package render

import (
	"context"
	"errors"
	"image"
	"image/color"
	"sync"
	"testing"

	"github.com/hajimehoshi/ebiten/v2"
)

func solidImage(w, h int, c color.RGBA) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.SetRGBA(x, y, c)
		}
	}
	return img
}

func TestPreviewLayout(t *testing.T) {
	p := NewPreview("test", 320, 200)
	w, h := p.Layout(1024, 768)
	if w != 320 || h != 200 {
		t.Errorf("Layout() = %dx%d, want 320x200", w, h)
	}
}

func TestPreviewSetFrame(t *testing.T) {
	p := NewPreview("test", 8, 8)

	p.SetFrame(nil)
	if err := p.Update(); err != nil {
		t.Fatalf("Update failed: %v", err)
	}
	if p.Frames() != 0 {
		t.Errorf("nil frames should be ignored, got %d", p.Frames())
	}

	p.SetFrame(solidImage(8, 8, color.RGBA{R: 255, A: 255}))
	if err := p.Update(); err != nil {
		t.Fatalf("Update failed: %v", err)
	}
	if p.Frames() != 1 {
		t.Errorf("Frames() = %d, want 1", p.Frames())
	}
	first := p.frame

	// Same size reuses the texture.
	p.SetFrame(solidImage(8, 8, color.RGBA{G: 255, A: 255}))
	if err := p.Update(); err != nil {
		t.Fatal(err)
	}
	if p.frame != first {
		t.Error("expected the frame image to be reused")
	}

	// A new size replaces it.
	p.SetFrame(solidImage(4, 4, color.RGBA{B: 255, A: 255}))
	if err := p.Update(); err != nil {
		t.Fatal(err)
	}
	if p.frame == first {
		t.Error("expected a new frame image after a size change")
	}

	// No pending frame, no upload.
	if err := p.Update(); err != nil {
		t.Fatal(err)
	}
	if p.Frames() != 3 {
		t.Errorf("Frames() = %d, want 3", p.Frames())
	}
}

func TestPreviewDraw(t *testing.T) {
	p := NewPreview("test", 16, 16)
	screen := ebiten.NewImage(16, 16)

	// Drawing before any frame only fills the background.
	p.Draw(screen)

	p.SetFrame(solidImage(16, 16, color.RGBA{R: 255, A: 255}))
	if err := p.Update(); err != nil {
		t.Fatal(err)
	}
	p.Draw(screen)
}

func TestPreviewUpdateWithCancelledContext(t *testing.T) {
	p := NewPreview("test", 8, 8)
	ctx, cancel := context.WithCancel(context.Background())
	p.SetContext(ctx)

	if err := p.Update(); err != nil {
		t.Errorf("Update before cancel = %v", err)
	}
	cancel()
	if err := p.Update(); !errors.Is(err, ErrPreviewClosed) {
		t.Errorf("Update after cancel = %v, want ErrPreviewClosed", err)
	}
}

func TestPreviewConcurrentFrames(t *testing.T) {
	p := NewPreview("test", 4, 4)
	img := solidImage(4, 4, color.RGBA{A: 255})

	var wg sync.WaitGroup
	for i := 0; i < 10; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 20; j++ {
				p.SetFrame(img)
				p.IsRunning()
			}
		}()
	}
	for i := 0; i < 20; i++ {
		if err := p.Update(); err != nil {
			t.Fatal(err)
		}
	}
	wg.Wait()
}

func TestPreviewIsRunning(t *testing.T) {
	p := NewPreview("test", 8, 8)
	if p.IsRunning() {
		t.Error("preview should not be running before Run")
	}
}
