package editor

import (
	"github.com/alexisbeaulieu97/designtools/internal/ports"
)

// NodeChangeEvent tells the host application what to write back to source.
type NodeChangeEvent struct {
	Type        string `json:"type"`
	Node        *Node  `json:"node,omitempty"`
	ClassName   string `json:"className,omitempty"`
	Text        string `json:"text,omitempty"`
	ElementType string `json:"elementType,omitempty"`
}

// EventType implements ports.DomainEvent.
func (e NodeChangeEvent) EventType() string {
	return e.Type
}

// Payload implements ports.DomainEvent.
func (e NodeChangeEvent) Payload() interface{} {
	payload := map[string]interface{}{}
	if e.Node != nil {
		payload["node_id"] = e.Node.ID
	}
	switch e.Type {
	case ports.EventUpdateFileClassName:
		payload["class_name"] = e.ClassName
	case ports.EventUpdateFileText:
		payload["text"] = e.Text
	case ports.EventCreateFileElement:
		payload["element_type"] = e.ElementType
	}
	return payload
}

// changeEvents derives the node change events produced by moving from prev to next.
func changeEvents(prev, next State, action Action, elementType string) []NodeChangeEvent {
	var out []NodeChangeEvent
	node := next.SelectedNode

	switch action.Type {
	case ActionSelectNode:
		// Selecting reads from source; nothing needs writing back.
		return nil
	case ActionCreateElement:
		if action.ElementType != "" {
			elementType = action.ElementType
		}
		return []NodeChangeEvent{{
			Type:        ports.EventCreateFileElement,
			Node:        cloneNode(node),
			ElementType: elementType,
		}}
	}

	if prev.ClassName != next.ClassName {
		out = append(out, NodeChangeEvent{
			Type:      ports.EventUpdateFileClassName,
			Node:      cloneNode(node),
			ClassName: next.ClassName,
		})
	}
	if prev.Text != next.Text {
		out = append(out, NodeChangeEvent{
			Type: ports.EventUpdateFileText,
			Node: cloneNode(node),
			Text: next.Text,
		})
	}
	return out
}

func cloneNode(node *Node) *Node {
	if node == nil {
		return nil
	}
	copied := *node
	return &copied
}

var _ ports.DomainEvent = NodeChangeEvent{}
