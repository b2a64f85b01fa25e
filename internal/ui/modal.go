// Package ui holds presentation state shared by controllers and views.
package ui

import (
	"errors"
	"fmt"
	"sync"
)

// ModalState is the lifecycle stage of a modal dialog.
type ModalState int

const (
	Closed ModalState = iota
	Open
	Closing
)

func (s ModalState) String() string {
	switch s {
	case Closed:
		return "closed"
	case Open:
		return "open"
	case Closing:
		return "closing"
	default:
		return fmt.Sprintf("ModalState(%d)", int(s))
	}
}

// ErrInvalidTransition is returned when a modal is asked to move to a state
// not reachable from its current one.
var ErrInvalidTransition = errors.New("invalid modal transition")

// Modal is a dialog with the lifecycle Closed -> Open -> Closing -> Closed.
// The zero value is a closed modal.
type Modal struct {
	mu    sync.Mutex
	state ModalState
	title string
}

// State returns the current state.
func (m *Modal) State() ModalState {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.state
}

// Title returns the title given to the last Open.
func (m *Modal) Title() string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.title
}

// Open shows the modal. Only a closed modal can be opened.
func (m *Modal) Open(title string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.state != Closed {
		return fmt.Errorf("%w: open from %s", ErrInvalidTransition, m.state)
	}
	m.state = Open
	m.title = title
	return nil
}

// RequestClose starts closing an open modal.
func (m *Modal) RequestClose() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.state != Open {
		return fmt.Errorf("%w: close from %s", ErrInvalidTransition, m.state)
	}
	m.state = Closing
	return nil
}

// Finish completes a close.
func (m *Modal) Finish() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.state != Closing {
		return fmt.Errorf("%w: finish from %s", ErrInvalidTransition, m.state)
	}
	m.state = Closed
	m.title = ""
	return nil
}

// Dismiss runs RequestClose then Finish. Dismissing a modal that is not
// open is a no-op.
func (m *Modal) Dismiss() {
	if m.RequestClose() == nil {
		_ = m.Finish()
	}
}
