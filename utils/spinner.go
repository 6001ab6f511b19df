package utils

import (
	"fmt"
	"os"
	"time"

	"golang.org/x/term"
)

// Spinner initializes the process indicator.
type Spinner struct {
	stopChan chan struct{}
}

// NewSpinner instantiates a new Spinner struct.
func NewSpinner() *Spinner {
	return &Spinner{}
}

// Start starts the process indicator. The indicator is suppressed when
// stderr is not attached to a terminal.
func (s *Spinner) Start(message string) {
	s.stopChan = make(chan struct{}, 1)

	if !term.IsTerminal(int(os.Stderr.Fd())) {
		return
	}

	go func() {
		for {
			for _, r := range `-\|/` {
				select {
				case <-s.stopChan:
					return
				default:
					fmt.Fprintf(os.Stderr, "\r%s%s %c%s", message, SuccessColor, r, DefaultColor)
					time.Sleep(time.Millisecond * 100)
				}
			}
		}
	}()
}

// Stop stops the process indicator.
func (s *Spinner) Stop() {
	if !term.IsTerminal(int(os.Stderr.Fd())) {
		return
	}
	s.stopChan <- struct{}{}
	fmt.Fprint(os.Stderr, "\r")
}
