package resource

import (
	"github.com/cogentcore/webgpu/wgpu"
)

// GeometryBuilderOption is a functional option for configuring a Geometry via NewGeometry.
type GeometryBuilderOption func(*geometry)

// WithIndexFormat is an option builder that sets the GPU index format of the geometry.
// Defaults to wgpu.IndexFormatUint16.
//
// Parameters:
//   - format: the index format to set
//
// Returns:
//   - GeometryBuilderOption: a function that applies the index format option to a geometry
func WithIndexFormat(format wgpu.IndexFormat) GeometryBuilderOption {
	return func(g *geometry) {
		g.indexFormat = format
	}
}
