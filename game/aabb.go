package game

import (
	"github.com/chewxy/math32"
	"github.com/ethaniccc/float32-cube/cube"
	"github.com/go-gl/mathgl/mgl32"
)

// CenteredBox returns a cube of the given edge length centered on the origin.
func CenteredBox(size float32) cube.BBox {
	h := math32.Abs(size) / 2
	return cube.Box(-h, -h, -h, h, h, h)
}

// BoxAround returns box translated so that its local origin sits at pos.
func BoxAround(box cube.BBox, pos mgl32.Vec3) cube.BBox {
	return box.Translate(pos)
}

