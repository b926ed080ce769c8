package errors

import (
	stderrors "errors"
	"strings"
	"testing"
)

func TestNewOperationalErrorNilCause(t *testing.T) {
	if err := NewOperationalError("placing node", "primary", "agent", nil); err != nil {
		t.Errorf("expected nil for nil cause, got %v", err)
	}
}

func TestOperationalErrorMessage(t *testing.T) {
	cause := stderrors.New("boom")

	tests := []struct {
		name     string
		canvas   string
		nodeKind string
		contains []string
		omits    []string
	}{
		{
			name:     "full context",
			canvas:   "primary",
			nodeKind: "agent",
			contains: []string{"placing node", "canvas=primary", "kind=agent", "boom"},
		},
		{
			name:     "no node kind",
			canvas:   "single",
			contains: []string{"canvas=single", "boom"},
			omits:    []string{"kind="},
		},
		{
			name:     "no canvas",
			contains: []string{"placing node", "boom"},
			omits:    []string{"canvas=", "kind="},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := NewOperationalError("placing node", tt.canvas, tt.nodeKind, cause)
			msg := err.Error()
			for _, want := range tt.contains {
				if !strings.Contains(msg, want) {
					t.Errorf("message %q missing %q", msg, want)
				}
			}
			for _, unwanted := range tt.omits {
				if strings.Contains(msg, unwanted) {
					t.Errorf("message %q should not contain %q", msg, unwanted)
				}
			}
		})
	}
}

func TestOperationalErrorUnwrap(t *testing.T) {
	cause := stderrors.New("underlying")
	err := NewOperationalError("loading preset", "", "", cause)

	if !stderrors.Is(err, cause) {
		t.Errorf("errors.Is failed to find the cause")
	}
}

func TestOperationalErrorWithAttrs(t *testing.T) {
	cause := stderrors.New("boom")
	err := NewOperationalErrorWithAttrs("planning crew", "primary", "", cause,
		map[string]interface{}{"agents": 3, "tasks": 2})

	if err.Attributes["agents"] != 3 {
		t.Errorf("Attributes[agents] = %v, want 3", err.Attributes["agents"])
	}
}
