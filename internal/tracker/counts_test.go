package tracker

import (
	"fmt"
	"testing"

	"github.com/sandeepkv93/tasktracker/internal/model"
	"github.com/stretchr/testify/require"
)

func TestCountsInvariantAcrossMutations(t *testing.T) {
	s := newTestState(t)
	check := func() {
		c := s.Counts()
		require.Equal(t, c.All, c.Completed+c.Pending)
		require.Equal(t, s.Len(), c.All)
	}
	check()

	ids := make([]string, 0, 10)
	for i := 0; i < 10; i++ {
		var task model.Task
		s, task = mustAdd(t, s, model.AddDraft{Title: fmt.Sprintf("t%d", i)})
		ids = append(ids, task.ID)
		check()
	}
	for i, id := range ids {
		if i%3 == 0 {
			s, _ = s.ToggleComplete(id)
			check()
		}
	}
	s, _ = s.DeleteTask(ids[0])
	check()
	s, _ = s.DeleteTask(ids[1])
	check()

	c := s.Counts()
	require.Equal(t, Counts{All: 8, Completed: 3, Pending: 5}, c)
}

func TestStatsCompletionRate(t *testing.T) {
	s := newTestState(t)
	require.Equal(t, Stats{}, s.Stats())

	s, a := mustAdd(t, s, model.AddDraft{Title: "a"})
	s, _ = mustAdd(t, s, model.AddDraft{Title: "b"})
	s, _ = mustAdd(t, s, model.AddDraft{Title: "c"})
	s, _ = s.ToggleComplete(a.ID)

	st := s.Stats()
	require.Equal(t, 3, st.Total)
	require.Equal(t, 1, st.Completed)
	require.Equal(t, 2, st.Pending)
	require.Equal(t, 33, st.CompletionRate)
}
