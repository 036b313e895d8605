package opengl

import "github.com/go-gl/gl/v3.3-core/gl"

// Two triangles covering clip space.
var quadVertices = []float32{
	-1, -1,
	1, -1,
	1, 1,
	1, 1,
	-1, 1,
	-1, -1,
}

type fullScreenQuad struct {
	vao uint32
	vbo uint32
}

func newFullScreenQuad() *fullScreenQuad {
	q := &fullScreenQuad{}

	gl.GenVertexArrays(1, &q.vao)
	gl.BindVertexArray(q.vao)

	gl.GenBuffers(1, &q.vbo)
	gl.BindBuffer(gl.ARRAY_BUFFER, q.vbo)
	gl.BufferData(gl.ARRAY_BUFFER, len(quadVertices)*4, gl.Ptr(quadVertices), gl.STATIC_DRAW)
	gl.EnableVertexAttribArray(vertexAttribLocation)
	gl.VertexAttribPointer(vertexAttribLocation, 2, gl.FLOAT, false, 0, gl.PtrOffset(0))

	gl.BindBuffer(gl.ARRAY_BUFFER, 0)
	gl.BindVertexArray(0)
	return q
}

func (q *fullScreenQuad) draw() {
	gl.BindVertexArray(q.vao)
	gl.DrawArrays(gl.TRIANGLES, 0, int32(len(quadVertices)/2))
	gl.BindVertexArray(0)
}

func (q *fullScreenQuad) release() {
	if q.vbo != 0 {
		gl.DeleteBuffers(1, &q.vbo)
		q.vbo = 0
	}
	if q.vao != 0 {
		gl.DeleteVertexArrays(1, &q.vao)
		q.vao = 0
	}
}
