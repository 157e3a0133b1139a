package resource

import (
	"github.com/cogentcore/webgpu/wgpu"
)

// VertexBufferBuilderOption is a functional option for configuring a VertexBuffer via NewVertexBuffer.
type VertexBufferBuilderOption func(*vertexBuffer)

// WithBufferUsage is an option builder that sets the intended GPU usage flags
// for the buffer. Defaults to Vertex|CopyDst; element buffers should pass
// Index|CopyDst.
//
// Parameters:
//   - usage: the usage flags to set
//
// Returns:
//   - VertexBufferBuilderOption: a function that applies the usage option to a buffer
func WithBufferUsage(usage wgpu.BufferUsage) VertexBufferBuilderOption {
	return func(b *vertexBuffer) {
		b.usage = usage
	}
}
