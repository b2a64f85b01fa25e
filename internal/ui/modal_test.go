package ui

import (
	"errors"
	"testing"
)

func TestModalTransitions(t *testing.T) {
	type step struct {
		op      string
		wantErr bool
		want    ModalState
	}
	tests := []struct {
		name  string
		steps []step
	}{
		{"full_cycle", []step{
			{"open", false, Open},
			{"close", false, Closing},
			{"finish", false, Closed},
			{"open", false, Open},
		}},
		{"double_open", []step{
			{"open", false, Open},
			{"open", true, Open},
		}},
		{"close_when_closed", []step{
			{"close", true, Closed},
		}},
		{"finish_when_open", []step{
			{"open", false, Open},
			{"finish", true, Open},
		}},
		{"open_while_closing", []step{
			{"open", false, Open},
			{"close", false, Closing},
			{"open", true, Closing},
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var m Modal
			for i, s := range tt.steps {
				var err error
				switch s.op {
				case "open":
					err = m.Open("Edit")
				case "close":
					err = m.RequestClose()
				case "finish":
					err = m.Finish()
				}
				if (err != nil) != s.wantErr {
					t.Fatalf("step %d %s: err = %v, wantErr %v", i, s.op, err, s.wantErr)
				}
				if err != nil && !errors.Is(err, ErrInvalidTransition) {
					t.Fatalf("step %d %s: err = %v, want ErrInvalidTransition", i, s.op, err)
				}
				if got := m.State(); got != s.want {
					t.Fatalf("step %d %s: state = %s, want %s", i, s.op, got, s.want)
				}
			}
		})
	}
}

func TestModalDismiss(t *testing.T) {
	var m Modal
	m.Dismiss()
	if m.State() != Closed {
		t.Fatalf("Dismiss on closed modal changed state to %s", m.State())
	}

	if err := m.Open("Delete expense"); err != nil {
		t.Fatal(err)
	}
	if m.Title() != "Delete expense" {
		t.Errorf("Title() = %q", m.Title())
	}
	m.Dismiss()
	if m.State() != Closed || m.Title() != "" {
		t.Errorf("after Dismiss: state %s, title %q", m.State(), m.Title())
	}
}
