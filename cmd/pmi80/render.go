package main

import (
	"sync"

	"github.com/go-gl/gl/v4.6-core/gl"

	"github.com/hexaflex/pmi80/devices/tesla/segled"
)

// Display dimensions in unscaled pixels.
const (
	CellWidth     = 64
	CellHeight    = 96
	DisplayWidth  = segled.DigitCount * CellWidth
	DisplayHeight = CellHeight
)

// Segment colors. Dark segments stay faintly visible, the way a real
// LED digit does.
var (
	litColor  = [3]float32{1.0, 0.25, 0.1}
	darkColor = [3]float32{0.13, 0.04, 0.02}
)

// segRects defines each segment's rectangle in a unit digit cell,
// indexed by segment number a through g. Coordinates run left to
// right, bottom to top.
var segRects = [segled.SegmentCount][4]float32{
	{0.20, 0.85, 0.80, 0.95}, // a: top bar.
	{0.80, 0.55, 0.90, 0.85}, // b: top right.
	{0.80, 0.15, 0.90, 0.45}, // c: bottom right.
	{0.20, 0.05, 0.80, 0.15}, // d: bottom bar.
	{0.10, 0.15, 0.20, 0.45}, // e: bottom left.
	{0.10, 0.55, 0.20, 0.85}, // f: top left.
	{0.20, 0.45, 0.80, 0.55}, // g: middle bar.
}

// floatsPerVertex is position plus color.
const floatsPerVertex = 5

// renderer draws the nine digits as segment quads. Segment state
// arrives from the scheduler tick goroutine through paint; drawing
// happens on the main thread, hence the lock.
type renderer struct {
	m           sync.Mutex
	segs        [segled.DigitCount][segled.SegmentCount]bool
	dirty       bool
	verts       []float32
	shader      uint32
	vao         uint32
	vbo         uint32
	initialized bool
}

func newRenderer() *renderer {
	r := &renderer{}
	r.verts = make([]float32, segled.DigitCount*segled.SegmentCount*6*floatsPerVertex)
	r.dirty = true
	return r
}

// paint implements segled.SegmentFunc.
func (r *renderer) paint(digit, segment int, on bool) {
	r.m.Lock()
	if r.segs[digit][segment] != on {
		r.segs[digit][segment] = on
		r.dirty = true
	}
	r.m.Unlock()
}

// init compiles the shader pipeline and allocates the vertex buffer.
// Requires a current GL context.
func (r *renderer) init() error {
	var err error

	r.shader, err = compileProgram(vertex, fragment)
	if err != nil {
		return err
	}

	gl.UseProgram(r.shader)

	gl.GenVertexArrays(1, &r.vao)
	gl.BindVertexArray(r.vao)

	gl.GenBuffers(1, &r.vbo)
	gl.BindBuffer(gl.ARRAY_BUFFER, r.vbo)
	gl.BufferData(gl.ARRAY_BUFFER, len(r.verts)*4, nil, gl.DYNAMIC_DRAW)

	posAttrib := uint32(gl.GetAttribLocation(r.shader, glStr("vertPos")))
	colAttrib := uint32(gl.GetAttribLocation(r.shader, glStr("vertColor")))

	gl.EnableVertexAttribArray(posAttrib)
	gl.VertexAttribPointer(posAttrib, 2, gl.FLOAT, false, floatsPerVertex*4, gl.PtrOffset(0))

	gl.EnableVertexAttribArray(colAttrib)
	gl.VertexAttribPointer(colAttrib, 3, gl.FLOAT, false, floatsPerVertex*4, gl.PtrOffset(2*4))

	r.initialized = true
	return nil
}

// draw renders the display contents.
func (r *renderer) draw() {
	if !r.initialized {
		return
	}

	gl.UseProgram(r.shader)
	gl.BindVertexArray(r.vao)

	r.m.Lock()
	if r.dirty {
		r.rebuild()
		r.dirty = false
		gl.BindBuffer(gl.ARRAY_BUFFER, r.vbo)
		gl.BufferSubData(gl.ARRAY_BUFFER, 0, len(r.verts)*4, gl.Ptr(r.verts))
	}
	r.m.Unlock()

	gl.DrawArrays(gl.TRIANGLES, 0, int32(len(r.verts)/floatsPerVertex))
}

// dispose cleans up GL resources.
func (r *renderer) dispose() {
	if !r.initialized {
		return
	}
	r.initialized = false
	gl.DeleteBuffers(1, &r.vbo)
	gl.DeleteVertexArrays(1, &r.vao)
	gl.DeleteProgram(r.shader)
}

// rebuild refills the vertex slice from the current segment states.
// Caller holds the lock.
func (r *renderer) rebuild() {
	const cellW = 2.0 / float32(segled.DigitCount)

	i := 0
	for digit := 0; digit < segled.DigitCount; digit++ {
		x := -1 + float32(digit)*cellW

		for seg := 0; seg < segled.SegmentCount; seg++ {
			rect := segRects[seg]

			color := darkColor
			if r.segs[digit][seg] {
				color = litColor
			}

			x0 := x + rect[0]*cellW
			y0 := rect[1]*2 - 1
			x1 := x + rect[2]*cellW
			y1 := rect[3]*2 - 1

			i = r.quad(i, x0, y0, x1, y1, color)
		}
	}
}

// quad emits two triangles into the vertex slice at index i and
// returns the next free index.
func (r *renderer) quad(i int, x0, y0, x1, y1 float32, color [3]float32) int {
	corners := [6][2]float32{
		{x0, y0}, {x1, y0}, {x0, y1},
		{x1, y0}, {x1, y1}, {x0, y1},
	}

	for _, c := range corners {
		r.verts[i+0] = c[0]
		r.verts[i+1] = c[1]
		r.verts[i+2] = color[0]
		r.verts[i+3] = color[1]
		r.verts[i+4] = color[2]
		i += floatsPerVertex
	}
	return i
}
