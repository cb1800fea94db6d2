package table

// SampleMatrix returns the numbers 1 to 9 as a 3x3 table.
func SampleMatrix() (*Table, error) {
	grid, err := Reshape(Range(1, 10), 3, 3)
	if err != nil {
		return nil, err
	}
	return FromMatrix(grid)
}

// SampleGrades returns a small gradebook of maths and science marks.
func SampleGrades() (*Table, error) {
	return FromColumns(
		[]string{"Name", "Maths", "Science"},
		map[string][]any{
			"Name":    {"Martha", "Tim", "Rob", "Georgia"},
			"Maths":   {87, 91, 97, 95},
			"Science": {83, 99, 84, 76},
		},
	)
}
