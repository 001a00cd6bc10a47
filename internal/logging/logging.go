package logging

// Logger абстракция предназначенная для логирования событий жизненного цикла списка.
// Реализация логирования должна делаться пользователями библиотеки.
type Logger interface {
	// DebugDispose вызывается прямо перед передачей списка из size элементов
	// политике освобождения данных.
	DebugDispose(size int)
	// DebugRelease вызывается после освобождения released узлов списка.
	DebugRelease(released int)
	// DebugCopy вызывается после поэлементного копирования size элементов
	// из другого списка.
	DebugCopy(size int)
}
