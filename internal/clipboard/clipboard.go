// Package clipboard copies generated output to the host clipboard.
package clipboard

import (
	"errors"
	"fmt"

	"github.com/atotto/clipboard"
)

// ErrUnavailable indicates the clipboard could not be opened or written.
var ErrUnavailable = errors.New("clipboard unavailable")

// Writer replaces the clipboard contents.
type Writer interface {
	WriteAll(text string) error
}

type systemClipboard struct{}

func (systemClipboard) WriteAll(text string) error {
	if clipboard.Unsupported {
		return errors.New("no clipboard utility found on this system")
	}
	return clipboard.WriteAll(text)
}

// System returns the host clipboard.
func System() Writer {
	return systemClipboard{}
}

// Copy writes text to w. Any failure is reported as ErrUnavailable.
func Copy(w Writer, text string) error {
	if w == nil {
		return ErrUnavailable
	}
	if err := w.WriteAll(text); err != nil {
		return fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	return nil
}
