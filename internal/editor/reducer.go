package editor

import (
	"fmt"

	"github.com/alexisbeaulieu97/designtools/internal/classname"
	"github.com/alexisbeaulieu97/designtools/internal/fields"
	designerrors "github.com/alexisbeaulieu97/designtools/pkg/errors"
)

// Reduce applies action to state and returns the next state. It never mutates
// its input; field values are re-derived from the class name through table.
func Reduce(table *fields.Table, state State, action Action) (State, error) {
	next := state.Clone()

	switch action.Type {
	case ActionSelectNode:
		next.SelectedNode = nil
		next.ClassName = ""
		next.Text = ""
		if action.Node != nil {
			node := *action.Node
			node.ClassName = classname.Normalize(node.ClassName)
			next.SelectedNode = &node
			next.ClassName = node.ClassName
			next.Text = node.Text
		}
		next.CurrentField = ""
		syncForm(table, &next)

	case ActionUpdateClassName:
		if next.SelectedNode == nil {
			return state, ErrNoSelection
		}
		next.ClassName = classname.Normalize(action.ClassName)
		next.SelectedNode.ClassName = next.ClassName
		syncForm(table, &next)

	case ActionUpdateText:
		if next.SelectedNode == nil {
			return state, ErrNoSelection
		}
		next.Text = action.Text
		next.SelectedNode.Text = action.Text
		next.Form[FormText] = action.Text

	case ActionUpdateFormValue:
		if err := validateFormKey(action.Key, false); err != nil {
			return state, err
		}
		next.Form[action.Key] = action.Value

	case ActionSetCurrentField:
		if err := validateFormKey(action.Key, true); err != nil {
			return state, err
		}
		next.CurrentField = action.Key

	case ActionToggleDesignTools:
		if next.Status == StatusClosed {
			next.Status = StatusOpen
		} else {
			next.Status = StatusClosed
		}

	case ActionRefreshLayers:
		next.LayersRefreshCounter++

	case ActionCreateElement:
		if next.SelectedNode == nil {
			return state, ErrNoSelection
		}
		next.LayersRefreshCounter++

	default:
		return state, fmt.Errorf("%w: %q", ErrUnknownAction, action.Type)
	}

	return next, nil
}

// syncForm re-derives field values from the class name and resets the form to match.
func syncForm(table *fields.Table, state *State) {
	state.Values = table.Extract(state.ClassName)
	state.Form = make(map[string]string, len(state.Values)+2)
	for f, v := range state.Values {
		state.Form[string(f)] = v
	}
	state.Form[FormClassName] = state.ClassName
	state.Form[FormText] = state.Text
}

func validateFormKey(key string, allowEmpty bool) error {
	switch key {
	case FormClassName, FormText:
		return nil
	case "":
		if allowEmpty {
			return nil
		}
	}
	if !fields.Field(key).Valid() {
		return designerrors.NewFieldError(key, nil)
	}
	return nil
}
