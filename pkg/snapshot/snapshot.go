// Package snapshot ingests canvas exports produced by the crew
// builder. An export carries the node list (id, kind, position) and
// optionally the chrome state at export time, which is enough to
// replay any layout decision offline.
package snapshot

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/tidwall/gjson"

	"github.com/crewstudio/crewcanvas/pkg/canvas"
)

// Sentinel errors for snapshot parsing
var (
	ErrEmptyInput  = errors.New("empty snapshot input")
	ErrInvalidJSON = errors.New("snapshot is not valid JSON")
)

// Snapshot is a parsed canvas export.
type Snapshot struct {
	// Version is the export format version, if present
	Version string
	// Nodes are the existing nodes in export order
	Nodes []canvas.ExistingNode
	// Chrome is the chrome state at export time, nil if absent
	Chrome *canvas.ChromeState
}

// Parse extracts a Snapshot from export JSON. Unknown kinds are kept
// as-is; the engine falls back to default dimensions for them. Nodes
// missing an id, kind, or position are rejected.
func Parse(data []byte) (*Snapshot, error) {
	if len(data) == 0 {
		return nil, ErrEmptyInput
	}
	if !gjson.ValidBytes(data) {
		return nil, ErrInvalidJSON
	}

	root := gjson.ParseBytes(data)

	snap := &Snapshot{
		Version: root.Get("version").String(),
	}

	var parseErr error
	root.Get("nodes").ForEach(func(_, value gjson.Result) bool {
		id := value.Get("id")
		kind := value.Get("kind")
		pos := value.Get("position")
		if !id.Exists() || id.String() == "" {
			parseErr = fmt.Errorf("node %d: missing id", len(snap.Nodes))
			return false
		}
		if !kind.Exists() {
			parseErr = fmt.Errorf("node %q: missing kind", id.String())
			return false
		}
		if !pos.Get("x").Exists() || !pos.Get("y").Exists() {
			parseErr = fmt.Errorf("node %q: missing position", id.String())
			return false
		}
		snap.Nodes = append(snap.Nodes, canvas.ExistingNode{
			ID:   id.String(),
			Kind: canvas.NodeKind(kind.String()),
			Position: canvas.Point{
				X: pos.Get("x").Float(),
				Y: pos.Get("y").Float(),
			},
		})
		return true
	})
	if parseErr != nil {
		return nil, parseErr
	}

	if chrome := root.Get("chrome"); chrome.Exists() {
		var state canvas.ChromeState
		if err := json.Unmarshal([]byte(chrome.Raw), &state); err != nil {
			return nil, fmt.Errorf("failed to parse chrome state: %w", err)
		}
		snap.Chrome = &state
	}

	return snap, nil
}
