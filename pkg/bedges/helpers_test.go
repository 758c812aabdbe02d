package bedges

// stepImage returns a 6x5 image whose rows 0-2 are bright (1) and rows 3-5 dark (0).
//
// With k=6 only South fires, at row 2, columns 1-3. With k<=4 SouthEast fires at
// (2,1) and (2,2) and SouthWest at (2,2) and (2,3) as well.
func stepImage() *Array {
	rows, cols := 6, 5
	data := make([]float64, rows*cols)
	for r := 0; r < 3; r++ {
		for c := 0; c < cols; c++ {
			data[r*cols+c] = 1
		}
	}
	return &Array{Shape: []int{rows, cols}, Data: data}
}

// uniformImage returns a rows x cols image filled with value.
func uniformImage(rows, cols int, value float64) *Array {
	data := make([]float64, rows*cols)
	for i := range data {
		data[i] = value
	}
	return &Array{Shape: []int{rows, cols}, Data: data}
}

// gradientImage returns a deterministic textured image.
func gradientImage(rows, cols int) *Array {
	data := make([]float64, rows*cols)
	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			data[r*cols+c] = float64((r*7+c*13)%11) + float64((r*c)%5)*0.5
		}
	}
	return &Array{Shape: []int{rows, cols}, Data: data}
}

// stack builds a batch from images of equal size.
func stack(images ...*Array) *Array {
	rows, cols := images[0].Shape[0], images[0].Shape[1]
	var data []float64
	for _, img := range images {
		data = append(data, img.Data...)
	}
	return &Array{Shape: []int{len(images), rows, cols}, Data: data}
}

// setPixels lists the (row, col) positions set in a plane.
func setPixels(plane []uint8, cols int) [][2]int {
	var out [][2]int
	for i, b := range plane {
		if b != 0 {
			out = append(out, [2]int{i / cols, i % cols})
		}
	}
	return out
}
