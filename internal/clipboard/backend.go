// Package clipboard wraps the system clipboard behind a small capability
// interface and provides the poll loop that feeds the history store.
package clipboard

import (
	"fmt"

	"github.com/atotto/clipboard"
)

// Backend is the clipboard capability consumed by the monitor and the app.
// Tests substitute fakes; production uses System.
type Backend interface {
	Read() (string, error)
	Write(text string) error
}

// System is the real OS clipboard via atotto/clipboard.
type System struct{}

// NewSystem returns the system clipboard backend.
func NewSystem() System { return System{} }

func (System) Read() (string, error) {
	text, err := clipboard.ReadAll()
	if err != nil {
		return "", fmt.Errorf("reading clipboard: %w", err)
	}
	return text, nil
}

func (System) Write(text string) error {
	if err := clipboard.WriteAll(text); err != nil {
		return fmt.Errorf("writing clipboard: %w", err)
	}
	return nil
}
