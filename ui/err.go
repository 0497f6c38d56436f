package ui

import (
	"strings"

	"github.com/mattn/go-runewidth"
)

// ErrBox is the one-line error area under the slider.
type ErrBox struct {
	width int
	err   error
}

func NewErrBox() *ErrBox {
	return &ErrBox{}
}

func (e *ErrBox) SetError(err error) {
	e.err = err
}

func (e *ErrBox) Clear() {
	e.err = nil
}

func (e *ErrBox) HasError() bool {
	return e.err != nil
}

func (e *ErrBox) SetSize(width int) {
	e.width = width
}

// Message returns the first line of the error, or "".
func (e *ErrBox) Message() string {
	if e.err == nil {
		return ""
	}
	msg, _, _ := strings.Cut(e.err.Error(), "\n")
	return msg
}

func (e *ErrBox) String() string {
	msg := e.Message()
	if e.width > 0 {
		msg = runewidth.Truncate(msg, e.width, "...")
	}
	return ErrorStyle.Render(msg)
}
