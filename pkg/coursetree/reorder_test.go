package coursetree

import (
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
)

func lessonsN(n int) []Lesson {
	out := make([]Lesson, n)
	for i := range out {
		out[i] = Lesson{ID: NewLessonID(strconv.Itoa(i)), Title: "l" + strconv.Itoa(i), Order: i}
	}
	return out
}

func TestMoveAssignsPositionalOrder(t *testing.T) {
	const n = 6
	for from := 0; from < n; from++ {
		for to := 0; to < n; to++ {
			items := lessonsN(n)
			got := Move(items, from, DropAt(to))

			assert.Len(t, got, n)
			for i, l := range got {
				assert.Equal(t, i, l.Order, "from=%d to=%d", from, to)
			}
			assert.Equal(t, items[from].ID, got[to].ID, "from=%d to=%d", from, to)

			seen := map[ID]bool{}
			for _, l := range got {
				seen[l.ID] = true
			}
			assert.Len(t, seen, n)
		}
	}
}

func TestMoveDoesNotMutateInput(t *testing.T) {
	items := lessonsN(3)
	_ = Move(items, 0, DropAt(2))

	for i, l := range items {
		assert.Equal(t, i, l.Order)
		assert.Equal(t, "l"+strconv.Itoa(i), l.Title)
	}
}

func TestMoveNoOp(t *testing.T) {
	items := lessonsN(3)
	items[1].Order = 7

	cases := map[string][]Lesson{
		"same index":   Move(items, 1, DropAt(1)),
		"dropped away": Move(items, 1, NoTarget),
		"out of range": Move(items, 1, DropAt(5)),
		"bad source":   Move(items, -1, DropAt(0)),
	}
	for name, got := range cases {
		assert.Equal(t, items, got, name)
	}
}

func TestMoveSessions(t *testing.T) {
	sessions := []Session{
		{ID: NewSessionID("a"), Order: 0},
		{ID: NewSessionID("b"), Order: 1},
		{ID: NewSessionID("c"), Order: 2},
	}

	got := Move(sessions, 2, DropAt(0))
	assert.Equal(t, []ID{NewSessionID("c"), NewSessionID("a"), NewSessionID("b")},
		[]ID{got[0].ID, got[1].ID, got[2].ID})
	assert.Equal(t, []int{0, 1, 2}, []int{got[0].Order, got[1].Order, got[2].Order})
}
