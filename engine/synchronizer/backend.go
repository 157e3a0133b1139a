package synchronizer

import (
	"github.com/lhkbob/ferox-sub010/common"
	"github.com/lhkbob/ferox-sub010/engine/dirty"
	"github.com/lhkbob/ferox-sub010/engine/region"
	"github.com/lhkbob/ferox-sub010/engine/resource"
)

// Backend is the GPU-facing collaborator a Synchronizer drives. It receives
// the minimal set of changed ranges each pass and applies them to its cached
// copies of the resources. Implementations own all GPU API interaction; this
// module never touches bytes or devices itself.
//
// Texture-family uploads receive the Region with its (layer, level) tag set:
// plain textures use layer 0, cube maps encode the face index as the layer,
// array textures the array layer.
type Backend interface {
	// UploadTextureRegion re-uploads one dirty sub-region of a texture-family
	// resource (Texture, CubeMap, or ArrayTexture).
	//
	// Parameters:
	//   - res: the resource the region belongs to
	//   - r: the dirty region, tagged with its layer and mipmap level
	//
	// Returns:
	//   - error: error if the upload fails
	UploadTextureRegion(res resource.Resource, r region.Region) error

	// UploadSamplerParameters re-applies a texture-family resource's sampling
	// configuration.
	//
	// Parameters:
	//   - res: the resource whose parameters changed
	//   - params: the new configuration
	//
	// Returns:
	//   - error: error if the update fails
	UploadSamplerParameters(res resource.Resource, params common.SamplerParameters) error

	// UploadAttribute re-uploads the dirty range of one named geometry
	// attribute, allocating the attribute first if it was newly added.
	//
	// Parameters:
	//   - geom: the owning geometry
	//   - name: the attribute name
	//   - r: the dirty element range
	//
	// Returns:
	//   - error: error if the upload fails
	UploadAttribute(geom resource.Geometry, name string, r region.BufferRange) error

	// DetachAttribute releases the cached copy of a removed geometry attribute.
	//
	// Parameters:
	//   - geom: the owning geometry
	//   - name: the removed attribute name
	//
	// Returns:
	//   - error: error if the release fails
	DetachAttribute(geom resource.Geometry, name string) error

	// UploadIndices re-uploads the dirty range of a geometry's index buffer.
	//
	// Parameters:
	//   - geom: the owning geometry
	//   - r: the dirty index range
	//
	// Returns:
	//   - error: error if the upload fails
	UploadIndices(geom resource.Geometry, r region.BufferRange) error

	// CompileShaderStage recompiles one stage of a shader program from its
	// current source.
	//
	// Parameters:
	//   - prog: the owning program
	//   - stage: the dirty stage
	//   - source: the stage's current source code
	//
	// Returns:
	//   - error: error if compilation fails
	CompileShaderStage(prog resource.ShaderProgram, stage dirty.ShaderStage, source string) error

	// RelinkShader rebuilds a shader program after a shading-language version
	// change, which invalidates every stage at once.
	//
	// Parameters:
	//   - prog: the program to relink
	//
	// Returns:
	//   - error: error if the relink fails
	RelinkShader(prog resource.ShaderProgram) error

	// UploadBufferRange re-uploads one changed range of a vertex buffer.
	//
	// Parameters:
	//   - buf: the owning buffer
	//   - r: the changed element range
	//
	// Returns:
	//   - error: error if the upload fails
	UploadBufferRange(buf resource.VertexBuffer, r region.BufferRange) error

	// UploadFullBuffer re-uploads a vertex buffer in its entirety. Called on
	// first sync and whenever change history was lost.
	//
	// Parameters:
	//   - buf: the buffer to upload
	//
	// Returns:
	//   - error: error if the upload fails
	UploadFullBuffer(buf resource.VertexBuffer) error
}
