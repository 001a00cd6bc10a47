package dllist

import (
	"fmt"
	"io"
	"strings"

	"github.com/sirkon/errors"
)

// Render строковое представление списка вида "[e0, e1, ..., en-1]".
// Элементы форматируются с помощью format, а если он не задан, то через fmt.Sprint.
func (l *List[T]) Render(format func(v T) string) string {
	var b strings.Builder
	b.WriteByte('[')

	var i int
	for c := l.ForwardBegin(); !c.AtEnd(); c.Next() {
		if i > 0 {
			b.WriteString(", ")
		}
		i++

		if format != nil {
			b.WriteString(format(c.Value()))
			continue
		}
		_, _ = fmt.Fprint(&b, c.Value())
	}

	b.WriteByte(']')
	return b.String()
}

// String для реализации fmt.Stringer.
func (l *List[T]) String() string {
	return l.Render(nil)
}

// Println вывод строкового представления списка с переводом строки.
func (l *List[T]) Println(w io.Writer, format func(v T) string) error {
	if _, err := io.WriteString(w, l.Render(format)+"\n"); err != nil {
		return errors.Wrap(err, "write list rendering")
	}

	return nil
}
