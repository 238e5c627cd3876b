package geometry

import (
	"testing"
)

func TestBoundingBoxExtend(t *testing.T) {
	bbox := NewBoundingBox()

	bbox.Extend(NewVector3(1, 2, 3))
	bbox.Extend(NewVector3(4, 5, 6))
	bbox.Extend(NewVector3(-1, 0, 2))

	expectedMin := NewVector3(-1, 0, 2)
	expectedMax := NewVector3(4, 5, 6)

	if bbox.Min != expectedMin {
		t.Errorf("Min failed: expected %v, got %v", expectedMin, bbox.Min)
	}
	if bbox.Max != expectedMax {
		t.Errorf("Max failed: expected %v, got %v", expectedMax, bbox.Max)
	}
}

func TestBoundsOfSegments(t *testing.T) {
	segments := []Segment{
		NewSegment(NewVector3(0, 0, 0), NewVector3(0, 3000, 0)),
		NewSegment(NewVector3(1000, 0, 0), NewVector3(1000, 3000, 0)),
	}

	bbox := BoundsOf(segments)
	expected := NewVector3(1000, 3000, 0)
	if bbox.Size() != expected {
		t.Errorf("Size failed: expected %v, got %v", expected, bbox.Size())
	}
	if bbox.Center() != NewVector3(500, 1500, 0) {
		t.Errorf("Center failed: got %v", bbox.Center())
	}
}

func TestBoundingBoxEmpty(t *testing.T) {
	bbox := BoundsOf(nil)

	if !bbox.IsEmpty() {
		t.Error("IsEmpty failed: expected empty box")
	}
	if bbox.Size() != (Vector3{}) {
		t.Errorf("Size of empty box failed: got %v", bbox.Size())
	}
	if bbox.Diagonal() != 0 {
		t.Errorf("Diagonal of empty box failed: got %v", bbox.Diagonal())
	}
}
