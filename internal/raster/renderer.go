package raster

import (
	"mathlibrary/colour"
	"mathlibrary/mathutil"
)

// Mesh is an indexed triangle list with one flat colour per triangle.
type Mesh struct {
	Verts   []mathutil.Vec3
	Tris    [][3]int
	Colours []colour.Colour // len = len(Tris)
}

// Cube returns an axis-aligned cube of the given half-extent centred on the
// origin. Each face has its own colour, two triangles per face.
func Cube(half float32) Mesh {
	h := half
	verts := []mathutil.Vec3{
		{-h, -h, -h}, {h, -h, -h}, {h, h, -h}, {-h, h, -h},
		{-h, -h, h}, {h, -h, h}, {h, h, h}, {-h, h, h},
	}
	faces := [][4]int{
		{4, 5, 6, 7}, // +z
		{1, 0, 3, 2}, // -z
		{5, 1, 2, 6}, // +x
		{0, 4, 7, 3}, // -x
		{7, 6, 2, 3}, // +y
		{0, 1, 5, 4}, // -y
	}
	palette := []colour.Colour{
		colour.New(220, 60, 60, 255),
		colour.New(60, 220, 60, 255),
		colour.New(60, 60, 220, 255),
		colour.New(220, 220, 60, 255),
		colour.New(60, 220, 220, 255),
		colour.New(220, 60, 220, 255),
	}

	m := Mesh{Verts: verts}
	for i, f := range faces {
		m.Tris = append(m.Tris, [3]int{f[0], f[1], f[2]}, [3]int{f[0], f[2], f[3]})
		m.Colours = append(m.Colours, palette[i], palette[i])
	}
	return m
}

// Viewport maps world coordinates in [-span/2, span/2] onto a size×size
// pixel grid with y pointing down. Depth is scaled with x and y.
func Viewport(size int, span float32) mathutil.Mat4 {
	s := float32(size) / span
	half := float32(size) / 2
	return mathutil.FromMat3Translation(mathutil.Mat3Diag(s, -s, s), mathutil.Vec3{half, half, 0})
}

// Render draws mesh transformed by model into fb. view maps world space to
// screen space, usually a Viewport.
func Render(fb *FrameBuffer, mesh Mesh, model, view mathutil.Mat4, lc *LightConfig) {
	world := make([]mathutil.Vec3, len(mesh.Verts))
	screen := make([]mathutil.Vec3, len(mesh.Verts))
	for i, v := range mesh.Verts {
		world[i] = model.MulPoint(v)
		screen[i] = view.MulPoint(world[i])
	}

	for t, tri := range mesh.Tris {
		if tri[0] >= len(world) || tri[1] >= len(world) || tri[2] >= len(world) {
			continue
		}
		a, b, c := world[tri[0]], world[tri[1]], world[tri[2]]

		// Face normal for flat shading
		n := b.Sub(a).Cross(c.Sub(a))
		if n.Magnitude() < 1e-8 {
			continue
		}
		n.Normalize()

		col := mesh.Colours[t].Scale(lc.Shade(n))
		FillTriangle(fb, screen[tri[0]], screen[tri[1]], screen[tri[2]], col)
	}
}
