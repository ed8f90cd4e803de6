package render

// 2d positions, in normalized device coordinates.
var TriangleVertices = []float32{
	0.0, 0.5,
	0.5, -0.5,
	-0.5, -0.5,
}

var VertexShaderSrc = []byte(`
#version 150
in vec2 position;
void main() {
	gl_Position = vec4(position, 0.0, 1.0);
}
`)

var FragmentShaderSrc = []byte(`
#version 150
out vec4 out_color;
void main() {
	out_color = vec4(1.0, 1.0, 1.0, 1.0);
}
`)

// Names used to locate the sources on disk (hot reload).
const (
	VertexShaderFile   = "triangle.vert"
	FragmentShaderFile = "triangle.frag"

	PositionAttrib = "position"
	ColorOutput    = "out_color"
)

// Built-in triangle sources and vertices, validated.
func Triangle() (vs, fs *ShaderSource, vd *VertexData, _ error) {
	vs, err := NewShaderSource(VertexShaderFile, VertexShaderSrc)
	if err != nil {
		return nil, nil, nil, err
	}
	fs, err = NewShaderSource(FragmentShaderFile, FragmentShaderSrc)
	if err != nil {
		return nil, nil, nil, err
	}
	vd, err = NewVertexData(2, TriangleVertices)
	if err != nil {
		return nil, nil, nil, err
	}
	return vs, fs, vd, nil
}
