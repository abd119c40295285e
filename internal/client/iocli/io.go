// Package iocli абстрагирует ввод/вывод CLI от терминала.
package iocli

// IO
type IO interface {
	Println(a ...any)
	Printf(format string, a ...any)
	ReadInput(prompt string) (string, error)
	// ReadPassword читает строку без эха, если ввод идёт с терминала
	ReadPassword(prompt string) (string, error)
	Write(p []byte) (n int, err error)
	// Interactive сообщает, подключены ли ввод и вывод к терминалу
	Interactive() bool
	// Color сообщает, можно ли раскрашивать вывод
	Color() bool
}
