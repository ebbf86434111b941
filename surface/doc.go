// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package surface abstracts the pixel memory that backs an atlas page.
//
// The atlas only needs to copy glyph masks into a rectangular pixel grid;
// where those pixels physically live is the host's concern. Image is the
// CPU implementation backed by an *image.Alpha. A GPU host keeps using
// Image as a shadow buffer and uploads dirty regions to its own texture,
// described by TextureDescriptorFor and created through the device the
// host exposes via DeviceHandle.
//
// The package deliberately does not talk to the GPU itself: it mirrors
// the layering where rendering code depends only on gpucontext/gputypes
// interfaces and the backend that implements them lives in the host.
package surface
