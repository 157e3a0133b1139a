package resource

import (
	"github.com/cogentcore/webgpu/wgpu"
	"github.com/lhkbob/ferox-sub010/common"
)

// CubeMapBuilderOption is a functional option for configuring a CubeMap via NewCubeMap.
type CubeMapBuilderOption func(*cubeMap)

// WithCubeMapFormat is an option builder that sets the GPU texel format of the cube map.
// Defaults to wgpu.TextureFormatRGBA8Unorm.
//
// Parameters:
//   - format: the texel format to set
//
// Returns:
//   - CubeMapBuilderOption: a function that applies the format option to a cube map
func WithCubeMapFormat(format wgpu.TextureFormat) CubeMapBuilderOption {
	return func(c *cubeMap) {
		c.format = format
	}
}

// WithCubeMapSamplerParameters is an option builder that sets the initial
// sampling configuration of the cube map without marking it dirty.
//
// Parameters:
//   - params: the sampler configuration to start with
//
// Returns:
//   - CubeMapBuilderOption: a function that applies the sampler option to a cube map
func WithCubeMapSamplerParameters(params common.SamplerParameters) CubeMapBuilderOption {
	return func(c *cubeMap) {
		c.params = params
	}
}
