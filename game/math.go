package game

import (
	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
)

// MatrixElements is the amount of values a serialised 4x4 matrix holds.
const MatrixElements = 16

// degenerateEpsilon is the squared length below which a basis vector is treated as zero.
const degenerateEpsilon = 1e-12

// Mat4FromRowMajor builds a matrix from 16 values laid out row by row. mgl32 stores matrices
// column by column, so the values are transposed on the way in. It returns false if vals does
// not hold exactly 16 values.
func Mat4FromRowMajor(vals []float32) (mgl32.Mat4, bool) {
	if len(vals) != MatrixElements {
		return mgl32.Mat4{}, false
	}
	var m mgl32.Mat4
	for row := 0; row < 4; row++ {
		for col := 0; col < 4; col++ {
			m[col*4+row] = vals[row*4+col]
		}
	}
	return m, true
}

// RowMajor flattens the matrix back into 16 values laid out row by row.
func RowMajor(m mgl32.Mat4) []float32 {
	vals := make([]float32, MatrixElements)
	for row := 0; row < 4; row++ {
		for col := 0; col < 4; col++ {
			vals[row*4+col] = m[col*4+row]
		}
	}
	return vals
}

// Vec3FromSlice returns the vector held by vals, or false if vals does not hold exactly 3 values.
func Vec3FromSlice(vals []float32) (mgl32.Vec3, bool) {
	if len(vals) != 3 {
		return mgl32.Vec3{}, false
	}
	return mgl32.Vec3{vals[0], vals[1], vals[2]}, true
}

// QuatFromSlice returns the quaternion held by vals in x, y, z, w order, or false if vals
// does not hold exactly 4 values.
func QuatFromSlice(vals []float32) (mgl32.Quat, bool) {
	if len(vals) != 4 {
		return mgl32.Quat{}, false
	}
	return mgl32.Quat{W: vals[3], V: mgl32.Vec3{vals[0], vals[1], vals[2]}}, true
}

// LookRotation returns the rotation that maps +Z onto forward and +Y as close to up as
// possible. It returns false when forward or up is zero-length or the two are parallel.
func LookRotation(forward, up mgl32.Vec3) (mgl32.Quat, bool) {
	if forward.Dot(forward) < degenerateEpsilon || up.Dot(up) < degenerateEpsilon {
		return mgl32.QuatIdent(), false
	}
	f := forward.Normalize()
	right := up.Cross(f)
	if right.Dot(right) < degenerateEpsilon {
		return mgl32.QuatIdent(), false
	}
	right = right.Normalize()
	u := f.Cross(right)

	return mgl32.Mat4ToQuat(mgl32.Mat3FromCols(right, u, f).Mat4()).Normalize(), true
}

// CalibrationRotation returns the look rotation built from the forward (third) and up
// (second) basis columns of a calibration matrix.
func CalibrationRotation(m mgl32.Mat4) (mgl32.Quat, bool) {
	return LookRotation(m.Col(2).Vec3(), m.Col(1).Vec3())
}

// MultiplyPoint transforms v as a point by m, including translation and the projective divide.
func MultiplyPoint(m mgl32.Mat4, v mgl32.Vec3) mgl32.Vec3 {
	return mgl32.TransformCoordinate(v, m)
}

// Float32ApproxEq determines whether two floating point numbers are close enough to each other
// by a threshold of 1e-5.
func Float32ApproxEq(a, b float32) bool {
	return math32.Abs(a-b) <= 1e-5
}

// Vec3ApproxEq compares two vectors component-wise using Float32ApproxEq.
func Vec3ApproxEq(a, b mgl32.Vec3) bool {
	return Float32ApproxEq(a[0], b[0]) && Float32ApproxEq(a[1], b[1]) && Float32ApproxEq(a[2], b[2])
}

// Mat4ApproxEq compares two matrices element-wise using Float32ApproxEq.
func Mat4ApproxEq(a, b mgl32.Mat4) bool {
	for i := range a {
		if !Float32ApproxEq(a[i], b[i]) {
			return false
		}
	}
	return true
}

// DistSqr returns the squared distance between two points.
func DistSqr(a, b mgl32.Vec3) float32 {
	d := a.Sub(b)
	return d.Dot(d)
}

// YawMatrix returns a rotation of deg degrees around the vertical axis.
func YawMatrix(deg float32) mgl32.Mat4 {
	return mgl32.HomogRotate3DY(mgl32.DegToRad(deg))
}
