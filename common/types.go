// package common contains common types that are used throughout this module. They are not interface-wrapped structs, just plain structs that express
// commonly used data-types.
package common

import (
	"github.com/cogentcore/webgpu/wgpu"
)

// SamplerParameters holds the non-byte-range sampling configuration of a
// texture resource. Changing any of these on a texture marks its dirty
// state's parameters flag rather than a pixel region, since no image bytes
// are affected.
type SamplerParameters struct {
	// AddressModeU, AddressModeV, AddressModeW specify the addressing mode for texture coordinates outside the [0, 1] range in each dimension (U, V, W).
	AddressModeU, AddressModeV, AddressModeW wgpu.AddressMode
	// MagFilter and MinFilter specify the filtering mode for magnification and minification.
	MagFilter, MinFilter wgpu.FilterMode
	// MipmapFilter specifies the filtering mode for mipmap level selection.
	MipmapFilter wgpu.MipmapFilterMode
	// LodMinClamp and LodMaxClamp specify the minimum and maximum level of detail (LOD) for mipmapping.
	LodMinClamp, LodMaxClamp float32
	// Compare specifies the comparison function for comparison samplers, used in shadow mapping and similar techniques.
	Compare wgpu.CompareFunction
	// MaxAnisotropy specifies the maximum anisotropy level for anisotropic filtering, which can improve texture quality at oblique viewing angles.
	MaxAnisotropy uint16
}

// DefaultSamplerParameters returns the sampler configuration a texture starts
// with: clamp-to-edge addressing, linear filtering, full LOD range.
//
// Returns:
//   - SamplerParameters: the default configuration
func DefaultSamplerParameters() SamplerParameters {
	return SamplerParameters{
		AddressModeU:  wgpu.AddressModeClampToEdge,
		AddressModeV:  wgpu.AddressModeClampToEdge,
		AddressModeW:  wgpu.AddressModeClampToEdge,
		MagFilter:     wgpu.FilterModeLinear,
		MinFilter:     wgpu.FilterModeLinear,
		MipmapFilter:  wgpu.MipmapFilterModeLinear,
		LodMinClamp:   0,
		LodMaxClamp:   32,
		MaxAnisotropy: 1,
	}
}
