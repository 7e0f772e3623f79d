package tracker

import "math"

// Counts always satisfies All == Completed + Pending.
type Counts struct {
	All       int
	Completed int
	Pending   int
}

func (s State) Counts() Counts {
	c := Counts{All: len(s.tasks)}
	for _, t := range s.tasks {
		if t.Completed {
			c.Completed++
		}
	}
	c.Pending = c.All - c.Completed
	return c
}

type Stats struct {
	Total          int
	Completed      int
	Pending        int
	CompletionRate int
}

// Stats adds the rounded completion percentage shown in the header.
func (s State) Stats() Stats {
	c := s.Counts()
	rate := 0
	if c.All > 0 {
		rate = int(math.Round(float64(c.Completed) * 100 / float64(c.All)))
	}
	return Stats{
		Total:          c.All,
		Completed:      c.Completed,
		Pending:        c.Pending,
		CompletionRate: rate,
	}
}
