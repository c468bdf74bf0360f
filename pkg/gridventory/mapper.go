package gridventory

import (
	"math"

	"gonum.org/v1/gonum/num/quat"
	"gonum.org/v1/gonum/spatial/r2"
	"gonum.org/v1/gonum/spatial/r3"

	"github.com/gravitas-games/gridventory/pkg/geom"
)

// parallelEpsilon is the smallest |cos| between a ray and the grid normal that
// still counts as a hit.
const parallelEpsilon = 1e-6

// Mapper converts between world space and grid tile space for an inventory
// whose tile centers are Separation world units apart. The zero Mapper is not
// usable; build one with NewMapper.
type Mapper struct {
	separation float64
}

// NewMapper validates the tile pitch and returns a Mapper for it.
func NewMapper(separation float64) (Mapper, error) {
	if !(separation > 0) || math.IsInf(separation, 1) {
		return Mapper{}, validationErrorf("separation must be a positive finite number, got %v", separation)
	}
	return Mapper{separation: separation}, nil
}

// Separation is the world distance between adjacent tile centers.
func (m Mapper) Separation() float64 { return m.separation }

// RayToInventoryPosition intersects ray with the inventory plane and returns
// the hit in the pose's local 2D basis, origin at the lower-left corner.
//
// ok is false when the ray runs parallel to the plane, in which case the ray
// origin is projected instead, or when the plane lies behind the ray origin,
// in which case the point behind is still returned.
func (m Mapper) RayToInventoryPosition(ray geom.Ray, pose geom.Pose) (pos r2.Vec, ok bool) {
	n := pose.Normal()
	var enter float64
	if r3.Norm(n) > 0 && r3.Norm(ray.Direction) > 0 {
		n = r3.Unit(n)
		dir := r3.Unit(ray.Direction)
		if denom := r3.Dot(dir, n); math.Abs(denom) > parallelEpsilon {
			enter = r3.Dot(r3.Sub(pose.Position, ray.Origin), n) / denom
			ok = enter > 0
		}
		ray.Direction = dir
	}
	d := r3.Sub(ray.At(enter), pose.Position)
	return r2.Vec{X: r3.Dot(d, pose.Right), Y: r3.Dot(d, pose.Up)}, ok
}

// LocalPositionToTile returns the tile under an inventory-space position.
// NaN maps to 0 and values past the int range saturate. The zero Mapper
// always returns the zero tile.
func (m Mapper) LocalPositionToTile(pos r2.Vec) geom.Point {
	if m.separation == 0 {
		return geom.Point{}
	}
	return geom.Pt(floorToInt(pos.X/m.separation), floorToInt(pos.Y/m.separation))
}

func floorToInt(v float64) int {
	v = math.Floor(v)
	switch {
	case math.IsNaN(v):
		return 0
	case v >= math.MaxInt:
		return math.MaxInt
	case v <= math.MinInt:
		return math.MinInt
	}
	return int(v)
}

// RootTileForCenteredItem returns the root tile of an item footprint centered
// on pos, clamped so the whole footprint stays inside gridSize. Halfway
// positions round to the even tile. A footprint larger than the grid returns
// a *BoundsError.
func (m Mapper) RootTileForCenteredItem(pos r2.Vec, itemSize geom.Point, rotation int, gridSize geom.Point) (geom.Point, error) {
	size := RotatedSize(itemSize, rotation)
	if size.X <= 0 || size.Y <= 0 || size.X > gridSize.X || size.Y > gridSize.Y {
		return geom.Point{}, &BoundsError{Rect: geom.RectAt(geom.Point{}, size), Size: gridSize}
	}

	corner := r2.Sub(pos, r2.Scale(0.5*m.separation, r2.Vec{X: float64(size.X), Y: float64(size.Y)}))
	return geom.Pt(
		clampRound(corner.X/m.separation, gridSize.X-size.X),
		clampRound(corner.Y/m.separation, gridSize.Y-size.Y),
	), nil
}

func clampRound(v float64, hi int) int {
	v = math.RoundToEven(v)
	if math.IsNaN(v) || v < 0 {
		return 0
	}
	if v > float64(hi) {
		return hi
	}
	return int(v)
}

// RectCenterToWorldPosition returns the world position of the center of r.
func (m Mapper) RectCenterToWorldPosition(r geom.Rect, pose geom.Pose) r3.Vec {
	c := r2.Scale(m.separation, r.Center())
	return r3.Add(pose.Position, r3.Add(r3.Scale(c.X, pose.Right), r3.Scale(c.Y, pose.Up)))
}

// TileCenterToWorldPosition returns the world position of a tile center.
func (m Mapper) TileCenterToWorldPosition(tile geom.Point, pose geom.Pose) r3.Vec {
	return m.RectCenterToWorldPosition(geom.RectAt(tile, geom.Pt(1, 1)), pose)
}

// RotationToWorldRotation returns the world orientation of an item lying in
// the inventory: its forward axis along the pose's up, its up axis along the
// grid normal Right × -Up, then turned rotation quarter turns about that
// normal.
func (m Mapper) RotationToWorldRotation(rotation int, pose geom.Pose) r3.Rotation {
	normal := r3.Unit(r3.Cross(pose.Right, r3.Scale(-1, pose.Up)))
	base := LookRotation(pose.Up, normal)

	rotation = NormalizeRotation(rotation)
	if rotation == 0 {
		return base
	}
	spin := r3.NewRotation(float64(rotation)*math.Pi/2, normal)
	return r3.Rotation(quat.Mul(quat.Number(spin), quat.Number(base)))
}

// LookRotation returns the rotation that maps local +Z onto forward and local
// +Y as close to up as possible. A zero forward gives the identity.
func LookRotation(forward, up r3.Vec) r3.Rotation {
	if r3.Norm(forward) == 0 {
		return r3.Rotation{Real: 1}
	}
	z := r3.Unit(forward)
	x := r3.Cross(up, z)
	if r3.Norm(x) < parallelEpsilon {
		// up is parallel to forward; any perpendicular axis will do.
		x = r3.Cross(r3.Vec{Y: 1}, z)
		if r3.Norm(x) < parallelEpsilon {
			x = r3.Cross(r3.Vec{X: 1}, z)
		}
	}
	x = r3.Unit(x)
	y := r3.Cross(z, x)
	return basisToRotation(x, y, z)
}

// basisToRotation converts an orthonormal basis (the columns of a rotation
// matrix) to a unit quaternion.
func basisToRotation(x, y, z r3.Vec) r3.Rotation {
	m00, m01, m02 := x.X, y.X, z.X
	m10, m11, m12 := x.Y, y.Y, z.Y
	m20, m21, m22 := x.Z, y.Z, z.Z

	var q quat.Number
	switch trace := m00 + m11 + m22; {
	case trace > 0:
		s := math.Sqrt(trace+1) * 2
		q = quat.Number{Real: 0.25 * s, Imag: (m21 - m12) / s, Jmag: (m02 - m20) / s, Kmag: (m10 - m01) / s}
	case m00 > m11 && m00 > m22:
		s := math.Sqrt(1+m00-m11-m22) * 2
		q = quat.Number{Real: (m21 - m12) / s, Imag: 0.25 * s, Jmag: (m01 + m10) / s, Kmag: (m02 + m20) / s}
	case m11 > m22:
		s := math.Sqrt(1+m11-m00-m22) * 2
		q = quat.Number{Real: (m02 - m20) / s, Imag: (m01 + m10) / s, Jmag: 0.25 * s, Kmag: (m12 + m21) / s}
	default:
		s := math.Sqrt(1+m22-m00-m11) * 2
		q = quat.Number{Real: (m10 - m01) / s, Imag: (m02 + m20) / s, Jmag: (m12 + m21) / s, Kmag: 0.25 * s}
	}
	return r3.Rotation(q)
}
