// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package surface

import (
	"github.com/gogpu/gpucontext"
	"github.com/gogpu/gputypes"
)

// DeviceHandle provides GPU device access from the host application.
//
// The atlas never creates a device: a host that wants GPU-resident pages
// implements DeviceHandle (or reuses its gpucontext provider), creates one
// texture per page from TextureDescriptorFor, and uploads the dirty region
// of the page's Image surface after each batch of insertions.
//
// DeviceHandle is an alias for gpucontext.DeviceProvider so any provider
// from the gpucontext ecosystem plugs in unchanged.
type DeviceHandle = gpucontext.DeviceProvider

// NullDeviceHandle is a DeviceHandle with nil implementations, for
// CPU-only use where no GPU is available.
type NullDeviceHandle struct{}

// Device returns nil for the null device.
func (NullDeviceHandle) Device() gpucontext.Device { return nil }

// Queue returns nil for the null device.
func (NullDeviceHandle) Queue() gpucontext.Queue { return nil }

// Adapter returns nil for the null device.
func (NullDeviceHandle) Adapter() gpucontext.Adapter { return nil }

// SurfaceFormat returns undefined format for the null device.
func (NullDeviceHandle) SurfaceFormat() gputypes.TextureFormat {
	return gputypes.TextureFormatUndefined
}

// AdapterInfo returns unknown adapter metadata for the null device.
func (NullDeviceHandle) AdapterInfo() gpucontext.AdapterInfo {
	return gpucontext.AdapterInfo{Type: gpucontext.AdapterTypeUnknown}
}

// Ensure NullDeviceHandle implements DeviceHandle.
var _ DeviceHandle = NullDeviceHandle{}

// TextureDescriptor describes the GPU texture backing one page.
// This mirrors the WebGPU GPUTextureDescriptor specification.
type TextureDescriptor struct {
	// Label is an optional debug label for the texture.
	Label string

	// Width is the texture width in pixels.
	Width uint32

	// Height is the texture height in pixels.
	Height uint32

	// MipLevelCount is the number of mipmap levels. Atlas pages use 1.
	MipLevelCount uint32

	// SampleCount is the number of samples. Atlas pages use 1.
	SampleCount uint32

	// Format is the texture pixel format.
	Format gputypes.TextureFormat
}

// TextureDescriptorFor describes a texture suitable for uploading the
// given surface. The host creates the texture through its own device and
// binds it for sampling.
func TextureDescriptorFor(s Surface, label string) TextureDescriptor {
	return TextureDescriptor{
		Label:         label,
		Width:         uint32(s.Width()),  //nolint:gosec // page dimensions are validated positive
		Height:        uint32(s.Height()), //nolint:gosec // page dimensions are validated positive
		MipLevelCount: 1,
		SampleCount:   1,
		Format:        s.Format(),
	}
}
