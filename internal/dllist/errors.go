package dllist

import "github.com/sirkon/errors"

const (
	// ErrorIndexOutOfRange индекс вне допустимого для операции диапазона.
	ErrorIndexOutOfRange errors.Const = "index out of range"
	// ErrorInvalidCursorDereference попытка получить значение курсора стоящего на страже.
	ErrorInvalidCursorDereference errors.Const = "dereference of a cursor pointing to a sentinel"
	// ErrorCursorInvalidated курсор использован после удаления из списка другого узла.
	ErrorCursorInvalidated errors.Const = "cursor was invalidated by a list mutation"
	// ErrorCursorExhausted попытка сдвинуть курсор за пределы списка.
	ErrorCursorExhausted errors.Const = "cursor moved beyond the list boundary"
)

// NotFound индекс отдаваемый при отсутствии искомого элемента.
const NotFound = -1

func errorIndexOutOfRange(op string, index, size int) error {
	return errors.Wrap(ErrorIndexOutOfRange, op).Int("invalid-index", index).Int("list-size", size)
}
