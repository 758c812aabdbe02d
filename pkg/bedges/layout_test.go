package bedges

import (
	"errors"
	"reflect"
	"testing"
)

func TestToLayout(t *testing.T) {
	features, err := Detect(gradientImage(7, 6), 2)
	if err != nil {
		t.Fatalf("Detect failed: %v", err)
	}

	tests := []struct {
		name     string
		single   bool
		lastAxis bool
		shape    []int
	}{
		{"batch-first", false, false, []int{1, 8, 7, 6}},
		{"batch-last", false, true, []int{1, 7, 6, 8}},
		{"single-first", true, false, []int{8, 7, 6}},
		{"single-last", true, true, []int{7, 6, 8}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := ToLayout(features, tt.single, tt.lastAxis)
			if err != nil {
				t.Fatalf("ToLayout failed: %v", err)
			}
			if !reflect.DeepEqual(out.Shape(), tt.shape) {
				t.Fatalf("Expected shape %v, got %v", tt.shape, out.Shape())
			}
			if out.Count() != features.Count() {
				t.Errorf("Layout changed the number of features: %d != %d", out.Count(), features.Count())
			}
			for _, d := range Directions {
				for r := 0; r < 7; r++ {
					for c := 0; c < 6; c++ {
						if out.At(0, d, r, c) != features.At(0, d, r, c) {
							t.Fatalf("Feature %v at (%d, %d) moved", d, r, c)
						}
					}
				}
			}

			back, err := out.Canonical()
			if err != nil {
				t.Fatalf("Canonical failed: %v", err)
			}
			if !back.Equal(features) {
				t.Errorf("Canonical did not restore the original volume")
			}
		})
	}
}

// TestToLayoutLastAxisOrder checks the raw memory order of a last-axis volume
func TestToLayoutLastAxisOrder(t *testing.T) {
	vol := newVolume(1, 2, 3)
	vol.Data[vol.offset(0, East, 1, 2)] = 1

	out, err := ToLayout(vol, true, true)
	if err != nil {
		t.Fatalf("ToLayout failed: %v", err)
	}
	idx := (1*3+2)*NumDirections + int(East)
	for i, b := range out.Data {
		if (i == idx) != (b == 1) {
			t.Fatalf("Expected the only set bit at index %d, found %d at %d", idx, b, i)
		}
	}
}

func TestToLayoutRejectsCollapsingBatch(t *testing.T) {
	features, err := Detect(stack(stepImage(), stepImage()), 6)
	if err != nil {
		t.Fatalf("Detect failed: %v", err)
	}
	if _, err := ToLayout(features, true, false); !errors.Is(err, ErrShapeMismatch) {
		t.Errorf("Expected ErrShapeMismatch, got %v", err)
	}
}

// TestNilVolumeRejected checks that volume operations return an error for nil input
func TestNilVolumeRejected(t *testing.T) {
	if _, err := ToLayout(nil, false, true); !errors.Is(err, ErrInvalidShape) {
		t.Errorf("ToLayout: expected ErrInvalidShape, got %v", err)
	}
	var v *Volume
	if _, err := v.Canonical(); !errors.Is(err, ErrInvalidShape) {
		t.Errorf("Canonical: expected ErrInvalidShape, got %v", err)
	}
	if _, err := (&Inflator{Mode: InflateBox, Radius: 1}).Inflate(nil); !errors.Is(err, ErrInvalidShape) {
		t.Errorf("Inflate: expected ErrInvalidShape, got %v", err)
	}
	if _, err := OrVolumes(newVolume(1, 4, 4), nil); !errors.Is(err, ErrInvalidShape) {
		t.Errorf("OrVolumes: expected ErrInvalidShape, got %v", err)
	}
}
