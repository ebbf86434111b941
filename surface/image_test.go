// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package surface

import (
	"image"
	"testing"

	"github.com/gogpu/gputypes"
)

func TestImage_Dimensions(t *testing.T) {
	s := NewImage(64, 32)
	if s.Width() != 64 || s.Height() != 32 {
		t.Errorf("expected 64x32, got %dx%d", s.Width(), s.Height())
	}
	if s.Format() != gputypes.TextureFormatR8Unorm {
		t.Errorf("expected R8Unorm, got %v", s.Format())
	}
	if s.Stride() < 64 {
		t.Errorf("expected stride >= width, got %d", s.Stride())
	}
	if len(s.Pixels()) < 64*32 {
		t.Errorf("expected at least %d pixel bytes, got %d", 64*32, len(s.Pixels()))
	}
}

func TestImage_WriteMask(t *testing.T) {
	s := NewImage(16, 16)

	mask := image.NewAlpha(image.Rect(0, 0, 4, 4))
	for i := range mask.Pix {
		mask.Pix[i] = 0xFF
	}
	s.WriteMask(5, 6, mask)

	pix := s.Pixels()
	stride := s.Stride()
	for y := 0; y < 16; y++ {
		for x := 0; x < 16; x++ {
			inside := x >= 5 && x < 9 && y >= 6 && y < 10
			got := pix[y*stride+x]
			if inside && got != 0xFF {
				t.Fatalf("pixel (%d,%d): expected opaque, got %d", x, y, got)
			}
			if !inside && got != 0 {
				t.Fatalf("pixel (%d,%d): expected clear, got %d", x, y, got)
			}
		}
	}
}

func TestImage_WriteMaskClips(t *testing.T) {
	s := NewImage(8, 8)

	mask := image.NewAlpha(image.Rect(0, 0, 4, 4))
	for i := range mask.Pix {
		mask.Pix[i] = 0xFF
	}

	// Partially outside: only the overlapping region is written.
	s.WriteMask(6, 6, mask)
	pix := s.Pixels()
	stride := s.Stride()
	if pix[7*stride+7] != 0xFF {
		t.Error("expected in-bounds corner to be written")
	}

	// Entirely outside and nil masks are no-ops.
	s.WriteMask(100, 100, mask)
	s.WriteMask(0, 0, nil)
}

func TestImage_DirtyTracking(t *testing.T) {
	s := NewImage(32, 32).(*Image)

	if _, ok := s.Dirty(); ok {
		t.Error("expected fresh surface to be clean")
	}

	mask := image.NewAlpha(image.Rect(0, 0, 2, 2))
	s.WriteMask(1, 1, mask)
	s.WriteMask(10, 10, mask)

	dirty, ok := s.Dirty()
	if !ok {
		t.Fatal("expected dirty region after writes")
	}
	want := image.Rect(1, 1, 12, 12)
	if dirty != want {
		t.Errorf("expected dirty %v, got %v", want, dirty)
	}

	s.MarkClean()
	if _, ok := s.Dirty(); ok {
		t.Error("expected clean surface after MarkClean")
	}
}

func TestTextureDescriptorFor(t *testing.T) {
	s := NewImage(256, 128)
	desc := TextureDescriptorFor(s, "atlas-page-0")

	if desc.Label != "atlas-page-0" {
		t.Errorf("expected label to pass through, got %q", desc.Label)
	}
	if desc.Width != 256 || desc.Height != 128 {
		t.Errorf("expected 256x128, got %dx%d", desc.Width, desc.Height)
	}
	if desc.MipLevelCount != 1 || desc.SampleCount != 1 {
		t.Errorf("expected single mip and sample, got %d/%d",
			desc.MipLevelCount, desc.SampleCount)
	}
	if desc.Format != gputypes.TextureFormatR8Unorm {
		t.Errorf("expected R8Unorm, got %v", desc.Format)
	}
}

func TestNullDeviceHandle(t *testing.T) {
	var h NullDeviceHandle
	if h.Device() != nil || h.Queue() != nil || h.Adapter() != nil {
		t.Error("expected nil device, queue and adapter")
	}
	if h.SurfaceFormat() != gputypes.TextureFormatUndefined {
		t.Errorf("expected undefined format, got %v", h.SurfaceFormat())
	}
}
