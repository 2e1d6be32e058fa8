// internal/board/classify.go
//
// Guess classification: the duplicate-letter-aware comparison of a
// submitted row against the answer.
//
// The algorithm works per distinct letter rather than per position:
//   1. Group guess positions and answer positions by letter.
//   2. For each letter in the guess, award Correct to exact-position
//      matches first, then hand out Present left to right while
//      unmatched occurrences of that letter remain in the answer.
//      Everything past the answer's count is Absent.
//
// This caps Correct+Present for a letter at its count in the answer and
// makes the left-to-right tie-break for duplicate letters deterministic.

package board

// finalize classifies every cell of the row against answer, moving each
// cell from Pending to Absent/Present/Correct.
//
// Panics if any cell is not Pending: classification of a partial row is
// a programming error, never a silently wrong result.
func (r *Row) finalize(answer string) {
	for _, c := range r.cells {
		if c.State != CellPending {
			panic("board: classify called on a row that is not fully pending")
		}
	}

	states := Classify(r.word(), answer)
	for i := range r.cells {
		r.cells[i].State = states[i]
	}
}

// Classify scores guess against answer, both lowercase 5-letter words,
// returning a state for every guess position.
func Classify(guess, answer string) [Cols]CellState {
	var states [Cols]CellState

	guessPos := positionsByLetter(guess)
	answerPos := positionsByLetter(answer)

	for letter, gps := range guessPos {
		aps, inAnswer := answerPos[letter]
		if !inAnswer {
			for _, i := range gps {
				states[i] = CellAbsent
			}
			continue
		}

		// Pass 1: exact positions win first.
		consumed := 0
		var remaining []int
		for _, i := range gps {
			if answer[i] == letter {
				states[i] = CellCorrect
				consumed++
			} else {
				remaining = append(remaining, i)
			}
		}

		// Pass 2: hand out Present left to right until the answer's
		// occurrences of this letter are used up.
		for _, i := range remaining {
			if consumed < len(aps) {
				states[i] = CellPresent
				consumed++
			} else {
				states[i] = CellAbsent
			}
		}
	}
	return states
}

// positionsByLetter maps each letter of w to the ascending list of
// positions where it occurs.
func positionsByLetter(w string) map[byte][]int {
	m := make(map[byte][]int, len(w))
	for i := 0; i < len(w); i++ {
		m[w[i]] = append(m[w[i]], i)
	}
	return m
}
