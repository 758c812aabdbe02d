package bedges

import (
	"errors"
	"reflect"
	"testing"
)

// TestDetectStepEdge verifies the conservative edges of a horizontal step
func TestDetectStepEdge(t *testing.T) {
	img := stepImage()
	vol, err := Detect(img, 6)
	if err != nil {
		t.Fatalf("Detect failed: %v", err)
	}

	if got, want := vol.Shape(), []int{1, 8, 6, 5}; !reflect.DeepEqual(got, want) {
		t.Fatalf("Expected shape %v, got %v", want, got)
	}

	for _, d := range Directions {
		plane, err := vol.Plane(0, d)
		if err != nil {
			t.Fatalf("Plane failed: %v", err)
		}
		got := setPixels(plane, 5)
		var want [][2]int
		if d == South {
			want = [][2]int{{2, 1}, {2, 2}, {2, 3}}
		}
		if !reflect.DeepEqual(got, want) {
			t.Errorf("Direction %v: expected edges at %v, got %v", d, want, got)
		}
	}
}

// TestDetectRelaxedThreshold checks that lowering k admits the diagonal edges
func TestDetectRelaxedThreshold(t *testing.T) {
	vol, err := Detect(stepImage(), 4)
	if err != nil {
		t.Fatalf("Detect failed: %v", err)
	}

	expected := map[Direction][][2]int{
		South:     {{2, 1}, {2, 2}, {2, 3}},
		SouthEast: {{2, 1}, {2, 2}},
		SouthWest: {{2, 2}, {2, 3}},
	}
	for _, d := range Directions {
		plane, _ := vol.Plane(0, d)
		if got := setPixels(plane, 5); !reflect.DeepEqual(got, expected[d]) {
			t.Errorf("Direction %v: expected edges at %v, got %v", d, expected[d], got)
		}
	}

	// Five satisfied comparisons are not reached by the diagonals
	vol5, _ := Detect(stepImage(), 5)
	if vol5.Count() != 3 {
		t.Errorf("Expected 3 edges at k=5, got %d", vol5.Count())
	}
}

// TestDetectPolarity verifies that an inverted step fires North instead of South
func TestDetectPolarity(t *testing.T) {
	img := stepImage()
	for i := range img.Data {
		img.Data[i] = 1 - img.Data[i]
	}

	vol, err := Detect(img, 6)
	if err != nil {
		t.Fatalf("Detect failed: %v", err)
	}
	north, _ := vol.Plane(0, North)
	want := [][2]int{{3, 1}, {3, 2}, {3, 3}}
	if got := setPixels(north, 5); !reflect.DeepEqual(got, want) {
		t.Errorf("Expected North edges at %v, got %v", want, got)
	}
	if vol.Count() != 3 {
		t.Errorf("Expected only the 3 North edges, got %d", vol.Count())
	}
}

func TestDetectUniformImage(t *testing.T) {
	for k := 0; k <= NumChecks; k++ {
		vol, err := Detect(uniformImage(8, 8, 0.5), k)
		if err != nil {
			t.Fatalf("Detect failed: %v", err)
		}
		if vol.Count() != 0 {
			t.Errorf("Expected no edges on a uniform image at k=%d, got %d", k, vol.Count())
		}
	}
}

// TestDetectBorderPolicy verifies that pixels whose neighbourhood leaves the image never fire
func TestDetectBorderPolicy(t *testing.T) {
	rows, cols := 9, 11
	vol, err := Detect(gradientImage(rows, cols), 0)
	if err != nil {
		t.Fatalf("Detect failed: %v", err)
	}

	interior := 0
	for _, d := range Directions {
		v, w := edgeSteps[d].v, edgeSteps[d].w
		needed := []step{
			{-v.dr, -v.dc},
			{2 * v.dr, 2 * v.dc},
			{w.dr, w.dc},
			{-w.dr, -w.dc},
			{v.dr + w.dr, v.dc + w.dc},
			{v.dr - w.dr, v.dc - w.dc},
		}
		for r := 0; r < rows; r++ {
			for c := 0; c < cols; c++ {
				outside := false
				for _, s := range needed {
					rr, cc := r+s.dr, c+s.dc
					if rr < 0 || rr >= rows || cc < 0 || cc >= cols {
						outside = true
					}
				}
				if !outside {
					interior += int(vol.At(0, d, r, c))
					continue
				}
				if vol.At(0, d, r, c) != 0 {
					t.Errorf("Direction %v fired at border pixel (%d, %d)", d, r, c)
				}
			}
		}
	}
	if interior == 0 {
		t.Errorf("Expected some interior edges on a textured image")
	}
}

// TestDetectThresholdMonotonicity checks that a stricter k never adds edges
func TestDetectThresholdMonotonicity(t *testing.T) {
	img := gradientImage(16, 12)
	prev, err := Detect(img, 0)
	if err != nil {
		t.Fatalf("Detect failed: %v", err)
	}
	for k := 1; k <= NumChecks; k++ {
		cur, err := Detect(img, k)
		if err != nil {
			t.Fatalf("Detect failed: %v", err)
		}
		for i := range cur.Data {
			if cur.Data[i] == 1 && prev.Data[i] == 0 {
				t.Fatalf("Edge at index %d present for k=%d but not for k=%d", i, k, k-1)
			}
		}
		prev = cur
	}
}

func TestDetectBatch(t *testing.T) {
	batch := stack(uniformImage(6, 5, 0), stepImage())
	vol, err := Detect(batch, 6)
	if err != nil {
		t.Fatalf("Detect failed: %v", err)
	}
	if got, want := vol.Shape(), []int{2, 8, 6, 5}; !reflect.DeepEqual(got, want) {
		t.Fatalf("Expected shape %v, got %v", want, got)
	}
	first, _ := vol.Plane(0, South)
	second, _ := vol.Plane(1, South)
	if len(setPixels(first, 5)) != 0 {
		t.Errorf("Expected no edges in the uniform image")
	}
	if len(setPixels(second, 5)) != 3 {
		t.Errorf("Expected 3 South edges in the step image, got %d", len(setPixels(second, 5)))
	}
}

func TestDetectInvalidInput(t *testing.T) {
	if _, err := Detect(&Array{Shape: []int{4}, Data: make([]float64, 4)}, 6); !errors.Is(err, ErrInvalidRank) {
		t.Errorf("Expected ErrInvalidRank for 1D input, got %v", err)
	}
	if _, err := Detect(&Array{Shape: []int{1, 2, 3, 4}, Data: make([]float64, 24)}, 6); !errors.Is(err, ErrInvalidRank) {
		t.Errorf("Expected ErrInvalidRank for 4D input, got %v", err)
	}
	if _, err := Detect(&Array{Shape: []int{3, 3}, Data: make([]float64, 8)}, 6); !errors.Is(err, ErrInvalidShape) {
		t.Errorf("Expected ErrInvalidShape for short data, got %v", err)
	}
	for _, k := range []int{-1, 7} {
		if _, err := Detect(stepImage(), k); !errors.Is(err, ErrInvalidThreshold) {
			t.Errorf("Expected ErrInvalidThreshold for k=%d, got %v", k, err)
		}
	}
}
