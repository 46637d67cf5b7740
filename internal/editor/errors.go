package editor

import "errors"

var (
	// ErrNoSelection is returned by actions that edit the selected node when nothing is selected.
	ErrNoSelection = errors.New("no node selected")
	// ErrNoCurrentField is returned by Submit when no form input has focus.
	ErrNoCurrentField = errors.New("no form field has focus")
	// ErrUnknownAction is returned for action types the reducer does not handle.
	ErrUnknownAction = errors.New("unknown action")
)
