package dllist

import (
	"github.com/sirkon/dlseq/internal/logging"
)

//go:generate mockgen -destination internal/mocks/logger_mock.go -package mocks -mock_names Logger=LoggerMock github.com/sirkon/dlseq/internal/logging Logger

// New конструктор пустого двусвязного списка.
func New[T any](opts ...Option[T]) *List[T] {
	l := &List[T]{}
	for _, opt := range opts {
		opt(l, optionRestriction{})
	}
	l.initArena(l.capacity)

	return l
}

// List двусвязный список ограниченный двумя стражами, которые никогда
// не содержат пользовательских данных. Нулевое значение является пустым
// списком готовым к работе.
// WARNING: Не предоставляет гарантий безопасности при многопоточном доступе.
type List[T any] struct {
	nodes []*node[T]
	free  []int
	count int
	gen   uint64

	capacity int
	equaler  Equaler[T]
	disposer Disposer[T]
	log      logging.Logger
}

// Len количество элементов в списке.
func (l *List[T]) Len() int {
	return l.count
}

// Empty проверка, что список пуст.
func (l *List[T]) Empty() bool {
	return l.count == 0
}

// SetDisposer замена политики освобождения данных. nil отключает политику.
func (l *List[T]) SetDisposer(d Disposer[T]) {
	l.disposer = d
}

// Clear удаление всех элементов списка. Если задана политика освобождения
// данных, то она вызывается ровно один раз до удаления узлов.
func (l *List[T]) Clear() {
	if l.count > 0 {
		l.removeInternalData()
	}
}

// Destroy удаление всех элементов и стражей списка. Список можно использовать
// и после этого, стражи будут созданы заново при первом обращении.
func (l *List[T]) Destroy() {
	if l.count > 0 {
		l.removeInternalData()
	}

	l.nodes = nil
	l.free = nil
	l.gen++
}

// removeInternalData отдаёт список политике освобождения данных, после чего
// удаляет все узлы. Сами значения здесь не трогаются, это делает политика.
func (l *List[T]) removeInternalData() {
	if l.disposer != nil {
		if l.log != nil {
			l.log.DebugDispose(l.count)
		}
		l.disposer.Dispose(l)
	}

	var released int
	for slot := l.nodes[headSlot].next; slot != tailSlot; {
		next := l.nodes[slot].next
		l.nodes[slot] = nil
		slot = next
		released++
	}

	// Все ячейки за стражами теперь пусты, арену можно сжать.
	l.nodes = l.nodes[:sentinels]
	l.free = l.free[:0]

	l.linkSentinels()
	l.count = 0
	l.gen++

	if l.log != nil {
		l.log.DebugRelease(released)
	}
}
