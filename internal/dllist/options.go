package dllist

import "github.com/sirkon/dlseq/internal/logging"

// Option определение опции списка.
type Option[T any] func(l *List[T], _ optionRestriction)

type optionRestriction struct{}

// WithDisposer устанавливает политику освобождения данных, которая будет
// вызвана перед удалением всех узлов списка.
func WithDisposer[T any](d Disposer[T]) Option[T] {
	return func(l *List[T], _ optionRestriction) {
		l.disposer = d
	}
}

// WithDisposerFunc то же самое, что и WithDisposer, но для функции.
func WithDisposerFunc[T any](f func(l *List[T])) Option[T] {
	return WithDisposer[T](DisposerFunc[T](f))
}

// WithEqualer устанавливает политику сравнения элементов используемую
// при поиске. По-умолчанию используется встроенное сравнение.
func WithEqualer[T any](eq Equaler[T]) Option[T] {
	return func(l *List[T], _ optionRestriction) {
		l.equaler = eq
	}
}

// WithEqualFunc то же самое, что и WithEqualer, но для функции.
func WithEqualFunc[T any](f func(a, b T) bool) Option[T] {
	return WithEqualer[T](EqualFunc[T](f))
}

// WithLogger устанавливает логгер событий жизненного цикла.
func WithLogger[T any](log logging.Logger) Option[T] {
	return func(l *List[T], _ optionRestriction) {
		l.log = log
	}
}

// WithCapacity резервирует место в арене под n элементов.
func WithCapacity[T any](n int) Option[T] {
	return func(l *List[T], _ optionRestriction) {
		if n > 0 {
			l.capacity = n
		}
	}
}
