package resource

import (
	"github.com/cogentcore/webgpu/wgpu"
	"github.com/lhkbob/ferox-sub010/common"
)

// ArrayTextureBuilderOption is a functional option for configuring an ArrayTexture via NewArrayTexture.
type ArrayTextureBuilderOption func(*arrayTexture)

// WithArrayTextureFormat is an option builder that sets the GPU texel format of the array texture.
// Defaults to wgpu.TextureFormatRGBA8Unorm.
//
// Parameters:
//   - format: the texel format to set
//
// Returns:
//   - ArrayTextureBuilderOption: a function that applies the format option to an array texture
func WithArrayTextureFormat(format wgpu.TextureFormat) ArrayTextureBuilderOption {
	return func(a *arrayTexture) {
		a.format = format
	}
}

// WithArrayTextureSamplerParameters is an option builder that sets the
// initial sampling configuration of the array texture without marking it dirty.
//
// Parameters:
//   - params: the sampler configuration to start with
//
// Returns:
//   - ArrayTextureBuilderOption: a function that applies the sampler option to an array texture
func WithArrayTextureSamplerParameters(params common.SamplerParameters) ArrayTextureBuilderOption {
	return func(a *arrayTexture) {
		a.params = params
	}
}
