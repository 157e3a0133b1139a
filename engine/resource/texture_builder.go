package resource

import (
	"github.com/cogentcore/webgpu/wgpu"
	"github.com/lhkbob/ferox-sub010/common"
)

// TextureBuilderOption is a functional option for configuring a Texture via NewTexture.
type TextureBuilderOption func(*texture)

// WithTextureFormat is an option builder that sets the GPU texel format of the texture.
// Defaults to wgpu.TextureFormatRGBA8Unorm.
//
// Parameters:
//   - format: the texel format to set
//
// Returns:
//   - TextureBuilderOption: a function that applies the format option to a texture
func WithTextureFormat(format wgpu.TextureFormat) TextureBuilderOption {
	return func(t *texture) {
		t.format = format
	}
}

// WithSamplerParameters is an option builder that sets the initial sampling
// configuration of the texture. Unlike SetSamplerParameters this does not
// mark the parameters dirty, since a freshly constructed texture has no
// consumer-visible prior configuration.
//
// Parameters:
//   - params: the sampler configuration to start with
//
// Returns:
//   - TextureBuilderOption: a function that applies the sampler option to a texture
func WithSamplerParameters(params common.SamplerParameters) TextureBuilderOption {
	return func(t *texture) {
		t.params = params
	}
}
