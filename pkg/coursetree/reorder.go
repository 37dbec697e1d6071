package coursetree

// DropTarget - позиция, куда отпустили перетаскиваемый элемент.
// Valid == false означает, что элемент бросили мимо списка.
type DropTarget struct {
	Index int
	Valid bool
}

var NoTarget = DropTarget{}

func DropAt(index int) DropTarget {
	return DropTarget{Index: index, Valid: true}
}

type orderable[T any] interface {
	*T
	setOrder(int)
}

func (s *Session) setOrder(i int) { s.Order = i }
func (l *Lesson) setOrder(i int)  { l.Order = i }

// Move переносит элемент from на позицию to и перенумеровывает order = индекс.
// Возвращает новый срез; при from == to, отсутствии цели или выходе за границы
// элементы не переставляются.
func Move[T any, P orderable[T]](items []T, from int, to DropTarget) []T {
	out := make([]T, len(items))
	copy(out, items)

	n := len(out)
	if !to.Valid || from == to.Index || from < 0 || from >= n || to.Index < 0 || to.Index >= n {
		return out
	}

	moved := out[from]
	if from < to.Index {
		copy(out[from:to.Index], out[from+1:to.Index+1])
	} else {
		copy(out[to.Index+1:from+1], out[to.Index:from])
	}
	out[to.Index] = moved

	for i := range out {
		P(&out[i]).setOrder(i)
	}
	return out
}
