package game

// Summary aggregates a finished game for the end screen.
type Summary struct {
	Rounds        int           `json:"rounds"`
	Score         int           `json:"score"`
	PerfectRounds int           `json:"perfect_rounds"`
	Correct       int           `json:"correct"`
	Guessable     int           `json:"guessable"`
	HintsUsed     int           `json:"hints_used"`
	Accuracy      float64       `json:"accuracy"` // 0.0-1.0, 0 when nothing was guessable
	Results       []RoundResult `json:"results"`
}

// BuildSummary totals the round history.
func BuildSummary(history []RoundResult) Summary {
	s := Summary{
		Rounds:  len(history),
		Results: append([]RoundResult(nil), history...),
	}
	for _, r := range history {
		s.Score += r.Earned
		s.Correct += r.Correct
		s.Guessable += r.Guessable
		s.HintsUsed += r.HintsUsed
		if r.Perfect {
			s.PerfectRounds++
		}
	}
	if s.Guessable > 0 {
		s.Accuracy = float64(s.Correct) / float64(s.Guessable)
	}
	return s
}
