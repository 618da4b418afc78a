package povel

// Patterns from Povel (1985), expressed as beat durations, and the values the
// model is expected to derive from them with an inter-beat interval of 1.
var povelPatterns = []struct {
	pattern   []int
	clusters  []int
	accents   []int
	best      Hypothesis[int]
	bestScore int
}{
	{[]int{1, 1, 2, 3, 1, 3, 1, 4}, []int{3, 1, 2, 2}, []int{0, 2, 4, 8, 12}, Hypothesis[int]{0, 4}, 0},
	{[]int{2, 1, 1, 1, 3, 3, 1, 4}, []int{1, 4, 1, 2}, []int{0, 2, 5, 8, 12}, Hypothesis[int]{0, 4}, 1},
	{[]int{1, 2, 1, 1, 3, 3, 1, 4}, []int{2, 3, 1, 2}, []int{1, 3, 5, 8, 12}, Hypothesis[int]{0, 4}, 2},
	{[]int{1, 2, 1, 1, 3, 1, 3, 4}, []int{2, 3, 2, 1}, []int{1, 3, 5, 9, 12}, Hypothesis[int]{0, 4}, 3},
	{[]int{1, 1, 1, 1, 2, 3, 3, 4}, []int{5, 1, 1, 1}, []int{0, 4, 6, 9, 12}, Hypothesis[int]{0, 4}, 4},
	{[]int{3, 1, 1, 2, 3, 1, 1, 4}, []int{1, 3, 1, 3}, []int{0, 3, 5, 7, 10, 12}, Hypothesis[int]{0, 4}, 5},
	{[]int{1, 1, 1, 2, 1, 3, 3, 4}, []int{4, 2, 1, 1}, []int{0, 3, 6, 9, 12}, Hypothesis[int]{1, 4}, 6},
	{[]int{1, 1, 1, 3, 1, 2, 3, 4}, []int{4, 2, 1, 1}, []int{0, 3, 7, 9, 12}, Hypothesis[int]{0, 4}, 8},
}

// beats turns durations into onsets; the total length itself is not an onset.
func beats(ibi int, durations []int) []int {
	onsets := make([]int, len(durations))
	for i := 1; i < len(durations); i++ {
		onsets[i] = onsets[i-1] + durations[i-1]*ibi
	}
	return onsets
}
