package render

import (
	"bufio"
	"bytes"
	"fmt"
	"os"
	"strings"
)

// ShaderSource is an owned copy of GLSL source, checked once before being
// handed to the graphics api.
type ShaderSource struct {
	name string
	b    []byte
}

func NewShaderSource(name string, b []byte) (*ShaderSource, error) {
	if len(bytes.TrimSpace(b)) == 0 {
		return nil, fmt.Errorf("shader %v: empty source", name)
	}
	if i := bytes.IndexByte(b, 0); i >= 0 {
		return nil, fmt.Errorf("shader %v: nul byte at %v", name, i)
	}
	if !hasVersionLine(b) {
		return nil, fmt.Errorf("shader %v: missing #version directive", name)
	}
	u := make([]byte, len(b))
	copy(u, b)
	return &ShaderSource{name: name, b: u}, nil
}

func ReadShaderSource(filename string) (*ShaderSource, error) {
	b, err := os.ReadFile(filename)
	if err != nil {
		return nil, err
	}
	return NewShaderSource(filename, b)
}

// The directive must be the first non blank line.
func hasVersionLine(b []byte) bool {
	sc := bufio.NewScanner(bytes.NewReader(b))
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" {
			continue
		}
		return strings.HasPrefix(line, "#version")
	}
	return false
}

func (s *ShaderSource) Name() string { return s.name }
func (s *ShaderSource) Len() int     { return len(s.b) }

// Nul terminated copy of the source.
func (s *ShaderSource) CString() string {
	return string(s.b) + "\x00"
}

//----------

// VertexData is an owned float32 buffer with a fixed number of components
// per vertex.
type VertexData struct {
	comps int
	v     []float32
}

func NewVertexData(components int, v []float32) (*VertexData, error) {
	if components < 1 || components > 4 {
		return nil, fmt.Errorf("bad vertex components: %v", components)
	}
	if len(v) == 0 {
		return nil, fmt.Errorf("empty vertex data")
	}
	if len(v)%components != 0 {
		return nil, fmt.Errorf("vertex data length %v not a multiple of %v", len(v), components)
	}
	u := make([]float32, len(v))
	copy(u, v)
	return &VertexData{comps: components, v: u}, nil
}

func (vd *VertexData) Components() int   { return vd.comps }
func (vd *VertexData) Count() int        { return len(vd.v) / vd.comps }
func (vd *VertexData) Floats() []float32 { return vd.v }
func (vd *VertexData) ByteLen() int      { return len(vd.v) * 4 }

// Vertex i as a slice of Components() floats.
func (vd *VertexData) Vertex(i int) []float32 {
	return vd.v[i*vd.comps : (i+1)*vd.comps]
}
