package editor

import (
	"github.com/alexisbeaulieu97/designtools/internal/fields"
)

// Status tracks whether the inspector sidebar is shown.
type Status string

const (
	StatusOpen   Status = "open"
	StatusClosed Status = "closed"
)

// Form keys for the two free-text inputs that are not style fields.
const (
	FormClassName = "className"
	FormText      = "text"
)

// Node is the externally supplied handle for the selected element.
type Node struct {
	ID        int    `json:"id" yaml:"id"`
	Type      string `json:"type,omitempty" yaml:"type,omitempty"`
	ClassName string `json:"className" yaml:"className"`
	Text      string `json:"text,omitempty" yaml:"text,omitempty"`
}

// State is the single authoritative editor state.
type State struct {
	SelectedNode         *Node
	ClassName            string
	Text                 string
	Values               fields.Values
	Form                 map[string]string
	CurrentField         string
	Status               Status
	LayersRefreshCounter int
}

// NewState returns the initial state: nothing selected, sidebar open.
func NewState() State {
	return State{
		Values: make(fields.Values),
		Form:   make(map[string]string),
		Status: StatusOpen,
	}
}

// SelectedIDs lists the IDs of the selected nodes.
func (s State) SelectedIDs() []int {
	if s.SelectedNode == nil {
		return []int{}
	}
	return []int{s.SelectedNode.ID}
}

// Clone returns a deep copy so callers cannot reach into the store.
func (s State) Clone() State {
	out := s
	if s.SelectedNode != nil {
		node := *s.SelectedNode
		out.SelectedNode = &node
	}
	out.Values = make(fields.Values, len(s.Values))
	for f, v := range s.Values {
		out.Values[f] = v
	}
	out.Form = make(map[string]string, len(s.Form))
	for k, v := range s.Form {
		out.Form[k] = v
	}
	return out
}
