package resource

// ShaderProgramBuilderOption is a functional option for configuring a ShaderProgram via NewShaderProgram.
type ShaderProgramBuilderOption func(*shaderProgram)

// WithLanguageVersion is an option builder that sets the initial
// shading-language version string without marking the program dirty.
//
// Parameters:
//   - version: the version string to start with
//
// Returns:
//   - ShaderProgramBuilderOption: a function that applies the version option to a program
func WithLanguageVersion(version string) ShaderProgramBuilderOption {
	return func(p *shaderProgram) {
		p.languageVersion = version
	}
}
