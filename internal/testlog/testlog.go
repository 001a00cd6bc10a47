// Package testlog вывод ошибок со структурированным контекстом в тестах.
package testlog

import (
	"fmt"
	"strings"

	"github.com/sirkon/errors"
)

const (
	bold  = "\033[1m"
	red   = "\033[1;31m"
	reset = "\033[0m"
)

// Printer подмножество методов *testing.T нужное для вывода.
type Printer interface {
	Helper()
	Log(a ...any)
	Error(a ...any)
}

// Log вывод ошибки без провала теста.
func Log(t Printer, err error) {
	t.Helper()
	t.Log(render(err, bold))
}

// Error вывод ошибки с провалом теста.
func Error(t Printer, err error) {
	t.Helper()
	t.Error(render(err, red))
}

// Check ничего не делает и возвращает false для пустой ошибки.
// Иначе проваливает тест с выводом ошибки и возвращает true.
func Check(t Printer, err error) bool {
	if err == nil {
		return false
	}

	t.Helper()
	t.Error(render(err, red))
	return true
}

func render(err error, highlight string) string {
	if err == nil {
		return "<nil>"
	}

	var b strings.Builder
	b.WriteString(highlight)
	b.WriteString(err.Error())
	b.WriteString(reset)
	b.WriteByte('\n')

	d := errors.GetContextDeliverer(err)
	if d == nil {
		return b.String()
	}

	var c consumer
	d.Deliver(&c)

	var width int
	for _, v := range c.vars {
		if len(v.name) > width {
			width = len(v.name)
		}
	}

	for _, v := range c.vars {
		b.WriteString("    ")
		b.WriteString(bold)
		b.WriteString(v.name)
		b.WriteString(reset)
		b.WriteString(": ")
		b.WriteString(strings.Repeat(" ", width-len(v.name)))
		_, _ = fmt.Fprintln(&b, v.value)
	}

	return b.String()
}
