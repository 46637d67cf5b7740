package session

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/alexisbeaulieu97/designtools/internal/editor"
	"github.com/alexisbeaulieu97/designtools/internal/infrastructure/events"
	logginginfra "github.com/alexisbeaulieu97/designtools/internal/infrastructure/logging"
	"github.com/alexisbeaulieu97/designtools/internal/ports"
	designerrors "github.com/alexisbeaulieu97/designtools/pkg/errors"
)

const sampleScript = `node:
  id: 7
  type: div
  className: "p-2 w-4"
  text: Hello
actions:
  - set: {field: marginTop, value: "-2"}
  - form: {field: width, value: "8"}
  - focus: width
  - submit: true
  - replace: {old: p-2, new: p-4}
  - text: Hi
  - toggle: true
  - create: li
`

func TestParseScript(t *testing.T) {
	t.Parallel()

	script, err := Parse("session.yaml", []byte(sampleScript))
	require.NoError(t, err)
	require.Equal(t, 7, script.Node.ID)
	require.Len(t, script.Actions, 8)

	kind, err := script.Actions[3].Kind()
	require.NoError(t, err)
	require.Equal(t, "submit", kind)
}

func TestParseScriptRejectsAmbiguousStep(t *testing.T) {
	t.Parallel()

	_, err := Parse("session.yaml", []byte(`node: {id: 1}
actions:
  - submit: true
    toggle: true
`))
	var validationErr *designerrors.ValidationError
	require.ErrorAs(t, err, &validationErr)
	require.Equal(t, "actions[0]", validationErr.Field)
}

func TestParseScriptRejectsEmptyStep(t *testing.T) {
	t.Parallel()

	_, err := Parse("session.yaml", []byte(`node: {id: 1}
actions:
  - submit: false
`))
	require.Error(t, err)
	require.Contains(t, err.Error(), "no action")
}

func TestParseScriptRequiresNodeAndActions(t *testing.T) {
	t.Parallel()

	_, err := Parse("session.yaml", []byte(`actions: []`))
	var validationErr *designerrors.ValidationError
	require.ErrorAs(t, err, &validationErr)
}

func TestParseScriptReportsYAMLLine(t *testing.T) {
	t.Parallel()

	_, err := Parse("session.yaml", []byte("node: {id: 1}\nactions:\n  - set: [\n"))
	var parseErr *designerrors.ParseError
	require.ErrorAs(t, err, &parseErr)
	require.Equal(t, "session.yaml", parseErr.Path)
}

func TestLoadScriptFromDisk(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "session.yaml")
	require.NoError(t, os.WriteFile(path, []byte(sampleScript), 0o644))

	script, err := Load(path)
	require.NoError(t, err)
	require.Equal(t, "p-2 w-4", script.Node.ClassName)
}

func TestRunnerReplaysScript(t *testing.T) {
	t.Parallel()

	publisher := events.NewLoggingPublisher(logginginfra.NewNoOpLogger())
	var got []editor.NodeChangeEvent
	for _, eventType := range []string{ports.EventUpdateFileClassName, ports.EventUpdateFileText, ports.EventCreateFileElement} {
		_, err := publisher.Subscribe(eventType, func(_ context.Context, event ports.DomainEvent) error {
			got = append(got, event.(editor.NodeChangeEvent))
			return nil
		})
		require.NoError(t, err)
	}

	store := editor.NewStore(nil, editor.WithPublisher(publisher))
	script, err := Parse("session.yaml", []byte(sampleScript))
	require.NoError(t, err)

	state, err := NewRunner(store, nil).Run(context.Background(), script)
	require.NoError(t, err)
	require.Equal(t, "p-4 w-8 -mt-2", state.ClassName)
	require.Equal(t, "Hi", state.Text)
	require.Equal(t, editor.StatusClosed, state.Status)
	require.Equal(t, 1, state.LayersRefreshCounter)

	require.Len(t, got, 5)
	require.Equal(t, "p-2 w-4 -mt-2", got[0].ClassName)
	require.Equal(t, "p-2 w-8 -mt-2", got[1].ClassName)
	require.Equal(t, "p-4 w-8 -mt-2", got[2].ClassName)
	require.Equal(t, ports.EventUpdateFileText, got[3].Type)
	require.Equal(t, ports.EventCreateFileElement, got[4].Type)
	require.Equal(t, "li", got[4].ElementType)
}

func TestRunnerStopsAtFailingStep(t *testing.T) {
	t.Parallel()

	script, err := Parse("session.yaml", []byte(`node: {id: 1, className: "w-4"}
actions:
  - set: {field: width, value: "8"}
  - submit: true
  - set: {field: width, value: "12"}
`))
	require.NoError(t, err)

	store := editor.NewStore(nil)
	state, err := NewRunner(store, nil).Run(context.Background(), script)

	var sessionErr *designerrors.SessionError
	require.ErrorAs(t, err, &sessionErr)
	require.Equal(t, 2, sessionErr.Index)
	require.Equal(t, "submit", sessionErr.Action)
	require.ErrorIs(t, err, editor.ErrNoCurrentField)
	require.Equal(t, "w-8", state.ClassName)
}

func TestRunnerRejectsUnknownField(t *testing.T) {
	t.Parallel()

	script, err := Parse("session.yaml", []byte(`node: {id: 1}
actions:
  - set: {field: zIndex, value: "10"}
`))
	require.NoError(t, err)

	_, err = NewRunner(editor.NewStore(nil), nil).Run(context.Background(), script)
	var fieldErr *designerrors.FieldError
	require.ErrorAs(t, err, &fieldErr)
	require.Equal(t, "zIndex", fieldErr.Field)
}
