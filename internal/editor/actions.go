package editor

// ActionType names a state transition.
type ActionType string

const (
	ActionSelectNode        ActionType = "UPDATE_SELECTED_NODE"
	ActionUpdateClassName   ActionType = "UPDATE_CLASS_NAME"
	ActionUpdateText        ActionType = "UPDATE_TEXT"
	ActionUpdateFormValue   ActionType = "UPDATE_FORM_VALUE"
	ActionSetCurrentField   ActionType = "UPDATE_CURRENT_FIELD"
	ActionToggleDesignTools ActionType = "TOGGLE_DESIGN_TOOLS"
	ActionRefreshLayers     ActionType = "REFRESH_LAYERS"
	ActionCreateElement     ActionType = "CREATE_ELEMENT"
)

// Action is a dispatchable state change. Only the fields relevant to Type are read.
type Action struct {
	Type        ActionType
	Node        *Node
	ClassName   string
	Text        string
	Key         string
	Value       string
	ElementType string
}

// SelectNode selects node, or clears the selection when node is nil.
func SelectNode(node *Node) Action {
	return Action{Type: ActionSelectNode, Node: node}
}

// UpdateClassName replaces the class name of the selection.
func UpdateClassName(className string) Action {
	return Action{Type: ActionUpdateClassName, ClassName: className}
}

// UpdateText replaces the text content of the selection.
func UpdateText(text string) Action {
	return Action{Type: ActionUpdateText, Text: text}
}

// UpdateFormValue records a pending form edit that Submit commits later.
func UpdateFormValue(key, value string) Action {
	return Action{Type: ActionUpdateFormValue, Key: key, Value: value}
}

// SetCurrentField marks the form input with focus.
func SetCurrentField(key string) Action {
	return Action{Type: ActionSetCurrentField, Key: key}
}

// ToggleDesignTools opens or closes the sidebar.
func ToggleDesignTools() Action {
	return Action{Type: ActionToggleDesignTools}
}

// RefreshLayers forces the layer tree to rebuild.
func RefreshLayers() Action {
	return Action{Type: ActionRefreshLayers}
}

// CreateElement asks for a new child element under the selection.
func CreateElement(elementType string) Action {
	return Action{Type: ActionCreateElement, ElementType: elementType}
}
