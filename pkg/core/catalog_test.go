package core_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aretw0/advisor/pkg/core"
)

func sampleCatalog() *core.Catalog {
	return core.NewCatalog(
		core.Course{ID: "CSCI300", Title: "Introduction to Algorithms", Prerequisites: []string{"CSCI200", "MATH201"}},
		core.Course{ID: "CSCI100", Title: "Introduction to Computer Science"},
		core.Course{ID: "MATH201", Title: "Discrete Mathematics"},
		core.Course{ID: "CSCI200", Title: "Data Structures", Prerequisites: []string{"CSCI101"}},
	)
}

func TestCatalog_Get(t *testing.T) {
	cat := sampleCatalog()

	t.Run("Exact Match", func(t *testing.T) {
		c, err := cat.Get("CSCI300")
		require.NoError(t, err)
		assert.Equal(t, "Introduction to Algorithms", c.Title)
		assert.Equal(t, []string{"CSCI200", "MATH201"}, c.Prerequisites)
	})

	t.Run("No Partial Match", func(t *testing.T) {
		for _, id := range []string{"CSCI30", "csci300", "CSCI300 ", ""} {
			_, err := cat.Get(id)
			assert.True(t, errors.Is(err, core.ErrNotFound), "id %q: expected ErrNotFound, got %v", id, err)
		}
	})

	t.Run("Returned Course Is a Copy", func(t *testing.T) {
		c, err := cat.Get("CSCI300")
		require.NoError(t, err)
		c.Prerequisites[0] = "MUTATED"

		again, err := cat.Get("CSCI300")
		require.NoError(t, err)
		assert.Equal(t, "CSCI200", again.Prerequisites[0])
	})
}

func TestCatalog_Sorted(t *testing.T) {
	cat := core.NewCatalog(
		core.Course{ID: "b", Title: "B"},
		core.Course{ID: "CSCI10", Title: "Ten"},
		core.Course{ID: "CSCI9", Title: "Nine"},
		core.Course{ID: "A", Title: "A"},
		core.Course{ID: "CSCI100", Title: "Hundred"},
	)

	sorted := cat.Sorted()
	require.Len(t, sorted, 5)

	ids := make([]string, len(sorted))
	for i, c := range sorted {
		ids[i] = c.ID
	}
	// Byte order: upper case before lower case, no numeric collation.
	assert.Equal(t, []string{"A", "CSCI10", "CSCI100", "CSCI9", "b"}, ids)

	for i := 1; i < len(ids); i++ {
		assert.LessOrEqual(t, strings.Compare(ids[i-1], ids[i]), 0)
	}
}

func TestCatalog_List(t *testing.T) {
	cat := sampleCatalog()
	assert.Len(t, cat.List(), 4)
	assert.ElementsMatch(t, cat.Sorted(), cat.List())
	assert.Equal(t, 4, cat.Len())
	assert.False(t, cat.Empty())

	empty := core.NewCatalog()
	assert.True(t, empty.Empty())
	assert.Empty(t, empty.List())
	assert.Empty(t, empty.Sorted())
}

func TestCatalog_Match(t *testing.T) {
	cat := sampleCatalog()

	got, err := cat.Match("CSCI*")
	require.NoError(t, err)
	require.Len(t, got, 3)
	assert.Equal(t, "CSCI100", got[0].ID)
	assert.Equal(t, "CSCI300", got[2].ID)

	got, err = cat.Match("MATH20?")
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "MATH201", got[0].ID)

	got, err = cat.Match("BIO*")
	require.NoError(t, err)
	assert.Empty(t, got)

	_, err = cat.Match("CSCI[")
	assert.Error(t, err)
}

func TestNewCatalog_LastOneWins(t *testing.T) {
	cat := core.NewCatalog(
		core.Course{ID: "CSCI100", Title: "Old Title", Prerequisites: []string{"X"}},
		core.Course{ID: "CSCI100", Title: "New Title"},
		core.Course{ID: "", Title: "Orphan"},
		core.Course{ID: "CSCI999"},
	)

	assert.Equal(t, 1, cat.Len())
	c, err := cat.Get("CSCI100")
	require.NoError(t, err)
	assert.Equal(t, "New Title", c.Title)
	assert.Empty(t, c.Prerequisites)
	assert.Equal(t, 1, cat.Stats().Overwritten)
}

func TestCourse_Validate(t *testing.T) {
	tests := []struct {
		name    string
		course  core.Course
		wantErr bool
	}{
		{name: "Valid", course: core.Course{ID: "CSCI100", Title: "Intro"}},
		{name: "Valid With Unknown Prerequisite", course: core.Course{ID: "CSCI100", Title: "Intro", Prerequisites: []string{"NOPE"}}},
		{name: "Missing ID", course: core.Course{Title: "Intro"}, wantErr: true},
		{name: "Missing Title", course: core.Course{ID: "CSCI100"}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.course.Validate()
			if tt.wantErr {
				assert.ErrorIs(t, err, core.ErrInvalidRecord)
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestBuilder(t *testing.T) {
	b := core.NewBuilder("courses.csv")
	assert.False(t, b.Add(core.Course{ID: "A", Title: "First"}))
	assert.True(t, b.Add(core.Course{ID: "A", Title: "Second"}))
	assert.False(t, b.Add(core.Course{ID: "B", Title: "Other"}))

	cat := b.Build(core.LoadStats{Lines: 4, Blank: 1})
	assert.Equal(t, "courses.csv", cat.Source())
	assert.Equal(t, core.LoadStats{Lines: 4, Blank: 1, Loaded: 2, Overwritten: 1}, cat.Stats())

	state, ok := cat.State().(core.CatalogState)
	require.True(t, ok)
	assert.Equal(t, 2, state.Size)
	assert.Equal(t, "catalog", cat.ComponentType())

	// The builder starts over after Build; the sealed catalog is untouched.
	b.Add(core.Course{ID: "C", Title: "Late"})
	assert.Equal(t, 2, cat.Len())
}
