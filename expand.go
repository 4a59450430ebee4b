package tsvnorm

// combinations returns every row formed by choosing one value from
// each cell's value list, in order: the accumulated combinations form
// the outer loop and the current cell's values the inner one, so
// earlier cells vary slowest. A cell with an empty value list zeroes
// out the whole row.
func combinations(cells [][]string) [][]string {
	result := [][]string{{}}
	for _, values := range cells {
		next := make([][]string, 0, len(result)*len(values))
		for _, combo := range result {
			for _, v := range values {
				row := make([]string, len(combo), len(combo)+1)
				copy(row, combo)
				next = append(next, append(row, v))
			}
		}
		result = next
	}
	return result
}
