package session

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecord_AppendsPairsInOrder(t *testing.T) {
	s := &Session{}

	s.Record("q1", "a1")
	s.Record("q2", "a2")

	entries := s.History()
	require.Len(t, entries, 4)
	assert.Equal(t, Entry{Role: RoleUser, Content: "q1"}, entries[0])
	assert.Equal(t, Entry{Role: RoleAssistant, Content: "a1"}, entries[1])
	assert.Equal(t, Entry{Role: RoleUser, Content: "q2"}, entries[2])
	assert.Equal(t, Entry{Role: RoleAssistant, Content: "a2"}, entries[3])
}

func TestHistory_ReturnsCopy(t *testing.T) {
	s := &Session{}
	s.Record("q", "a")

	entries := s.History()
	entries[0].Content = "mutated"

	assert.Equal(t, "q", s.History()[0].Content)
}

func TestStore_CreateAndGet(t *testing.T) {
	st := NewStore()

	s := st.Create()
	require.NotEmpty(t, s.ID)

	got, ok := st.Get(s.ID)
	require.True(t, ok)
	assert.Same(t, s, got)

	_, ok = st.Get("missing")
	assert.False(t, ok)
}

func TestStore_DistinctIDs(t *testing.T) {
	st := NewStore()
	assert.NotEqual(t, st.Create().ID, st.Create().ID)
}
