package bingo

// GridSize is the number of cells on a ticket, laid out row-major on a 3x3
// grid.
const GridSize = 9

var (
	gridRows    = [3][3]int{{0, 1, 2}, {3, 4, 5}, {6, 7, 8}}
	gridColumns = [3][3]int{{0, 3, 6}, {1, 4, 7}, {2, 5, 8}}
	gridCrosses = [2][3]int{{0, 4, 8}, {2, 4, 6}}
)

// Score is derived purely from a crossed-off grid and never mutated
// independently of it.
type Score struct {
	NoCrossedOff int `json:"no_crossed_off"`
	NoRows       int `json:"no_rows"`
	NoColumns    int `json:"no_columns"`
	NoCrosses    int `json:"no_crosses"`
	Total        int `json:"total"`
}

// ComputeScore scores a crossed-off grid: one point per marked cell plus a
// three-point bonus per completed row, column or diagonal. Input that is not
// exactly nine entries is treated as an all-false grid rather than rejected.
func ComputeScore(crossedOff []bool) Score {
	if len(crossedOff) != GridSize {
		crossedOff = make([]bool, GridSize)
	}

	var score Score
	for _, crossed := range crossedOff {
		if crossed {
			score.NoCrossedOff++
		}
	}

	for _, row := range gridRows {
		if lineComplete(crossedOff, row) {
			score.NoRows++
		}
	}
	for _, column := range gridColumns {
		if lineComplete(crossedOff, column) {
			score.NoColumns++
		}
	}
	for _, cross := range gridCrosses {
		if lineComplete(crossedOff, cross) {
			score.NoCrosses++
		}
	}

	score.Total = score.NoCrossedOff + 3*(score.NoRows+score.NoColumns+score.NoCrosses)
	return score
}

func lineComplete(crossedOff []bool, line [3]int) bool {
	return crossedOff[line[0]] && crossedOff[line[1]] && crossedOff[line[2]]
}
