package geom

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"gonum.org/v1/gonum/spatial/r2"
	"gonum.org/v1/gonum/spatial/r3"
)

func TestRectContainsUsesExclusiveMax(t *testing.T) {
	r := RectAt(Pt(1, 1), Pt(2, 3))

	assert.True(t, r.Contains(Pt(1, 1)))
	assert.True(t, r.Contains(Pt(2, 3)))
	assert.False(t, r.Contains(Pt(3, 1)))
	assert.False(t, r.Contains(Pt(1, 4)))
	assert.False(t, r.Contains(Pt(0, 1)))
}

func TestRectCells(t *testing.T) {
	got := Rect{X: 2, Y: 0, W: 2, H: 1}.Cells()
	want := []Point{{X: 2, Y: 0}, {X: 3, Y: 0}}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("cells mismatch (-want +got):\n%s", diff)
	}
	assert.Nil(t, Rect{W: 0, H: 3}.Cells())
}

func TestRectCenter(t *testing.T) {
	assert.Equal(t, r2.Vec{X: 3, Y: 1.5}, Rect{X: 2, Y: 1, W: 2, H: 1}.Center())
}

func TestRayAtAndPoseNormal(t *testing.T) {
	ray := Ray{Origin: r3.Vec{X: 1}, Direction: r3.Vec{Z: 2}}
	assert.Equal(t, r3.Vec{X: 1, Z: 4}, ray.At(2))

	pose := Pose{Up: r3.Vec{Y: 1}, Right: r3.Vec{X: 1}}
	assert.Equal(t, r3.Vec{Z: -1}, pose.Normal())
}
