// Package session replays scripted inspector edits against an editor store.
//
// A script names the node to select and a list of steps, each holding exactly
// one action. Steps mirror what the panel UI does: typing into a form input,
// focusing it, pressing enter, picking a value from a select.
package session

import (
	"errors"
	"fmt"
	"os"
	"regexp"

	"gopkg.in/yaml.v3"

	"github.com/alexisbeaulieu97/designtools/internal/config"
	"github.com/alexisbeaulieu97/designtools/internal/editor"
	designerrors "github.com/alexisbeaulieu97/designtools/pkg/errors"
)

var yamlLineRegex = regexp.MustCompile(`line (\d+)`)

// Script is a recorded editing session.
type Script struct {
	Node    *editor.Node `yaml:"node" validate:"required"`
	Actions []Step       `yaml:"actions" validate:"required,min=1,dive"`
}

// Step holds exactly one action.
type Step struct {
	Set       *FieldValue  `yaml:"set,omitempty" validate:"omitempty"`
	Form      *FieldValue  `yaml:"form,omitempty" validate:"omitempty"`
	Focus     *string      `yaml:"focus,omitempty"`
	Submit    bool         `yaml:"submit,omitempty"`
	Text      *string      `yaml:"text,omitempty"`
	ClassName *string      `yaml:"className,omitempty"`
	Replace   *TokenChange `yaml:"replace,omitempty" validate:"omitempty"`
	Toggle    bool         `yaml:"toggle,omitempty"`
	Refresh   bool         `yaml:"refresh,omitempty"`
	Create    *string      `yaml:"create,omitempty"`
}

// FieldValue names a field and the value to give it.
type FieldValue struct {
	Field string `yaml:"field" validate:"required"`
	Value string `yaml:"value"`
}

// TokenChange swaps one class token for another.
type TokenChange struct {
	Old string `yaml:"old"`
	New string `yaml:"new"`
}

// Kind names the step's action, or returns an error when the step holds zero
// or several actions.
func (s Step) Kind() (string, error) {
	var kinds []string
	if s.Set != nil {
		kinds = append(kinds, "set")
	}
	if s.Form != nil {
		kinds = append(kinds, "form")
	}
	if s.Focus != nil {
		kinds = append(kinds, "focus")
	}
	if s.Submit {
		kinds = append(kinds, "submit")
	}
	if s.Text != nil {
		kinds = append(kinds, "text")
	}
	if s.ClassName != nil {
		kinds = append(kinds, "className")
	}
	if s.Replace != nil {
		kinds = append(kinds, "replace")
	}
	if s.Toggle {
		kinds = append(kinds, "toggle")
	}
	if s.Refresh {
		kinds = append(kinds, "refresh")
	}
	if s.Create != nil {
		kinds = append(kinds, "create")
	}

	switch len(kinds) {
	case 1:
		return kinds[0], nil
	case 0:
		return "", errors.New("step has no action")
	default:
		return "", fmt.Errorf("step has %d actions %v, expected exactly one", len(kinds), kinds)
	}
}

// Load reads and validates a script file.
func Load(path string) (*Script, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, designerrors.NewParseError(path, 0, err)
	}
	return Parse(path, data)
}

// Parse decodes and validates a script; path is used for error reporting only.
func Parse(path string, data []byte) (*Script, error) {
	var script Script
	if err := yaml.Unmarshal(data, &script); err != nil {
		return nil, designerrors.NewParseError(path, extractLine(err), err)
	}

	if err := config.GetValidator().Struct(&script); err != nil {
		return nil, designerrors.NewValidationError("session", err.Error(), err)
	}

	for i, step := range script.Actions {
		if _, err := step.Kind(); err != nil {
			return nil, designerrors.NewValidationError(fmt.Sprintf("actions[%d]", i), err.Error(), nil)
		}
	}

	return &script, nil
}

func extractLine(err error) int {
	matches := yamlLineRegex.FindStringSubmatch(err.Error())
	if len(matches) != 2 {
		return 0
	}

	var line int
	if _, scanErr := fmt.Sscanf(matches[1], "%d", &line); scanErr != nil {
		return 0
	}
	return line
}
