package session

import (
	"context"

	"github.com/alexisbeaulieu97/designtools/internal/editor"
	"github.com/alexisbeaulieu97/designtools/internal/fields"
	logginginfra "github.com/alexisbeaulieu97/designtools/internal/infrastructure/logging"
	"github.com/alexisbeaulieu97/designtools/internal/ports"
	designerrors "github.com/alexisbeaulieu97/designtools/pkg/errors"
)

// Runner replays scripts against a store.
type Runner struct {
	store  *editor.Store
	logger ports.Logger
}

// NewRunner creates a Runner bound to store.
func NewRunner(store *editor.Store, logger ports.Logger) *Runner {
	if logger == nil {
		logger = logginginfra.NewNoOpLogger()
	}
	return &Runner{store: store, logger: logger}
}

// Run selects the script's node and applies each step in order, stopping at
// the first failure. It returns the final state.
func (r *Runner) Run(ctx context.Context, script *Script) (editor.State, error) {
	node := *script.Node
	state, err := r.store.Dispatch(ctx, editor.SelectNode(&node))
	if err != nil {
		return state, designerrors.NewSessionError(0, "select", err)
	}
	r.logger.Info(ctx, "session started", "node_id", node.ID, "steps", len(script.Actions))

	for i, step := range script.Actions {
		kind, err := step.Kind()
		if err != nil {
			return state, designerrors.NewSessionError(i+1, "", err)
		}

		state, err = r.apply(ctx, kind, step)
		if err != nil {
			r.logger.Error(ctx, "session step failed", "index", i+1, "action", kind, "error", err)
			return state, designerrors.NewSessionError(i+1, kind, err)
		}
		r.logger.Debug(ctx, "session step applied", "index", i+1, "action", kind, "class_name", state.ClassName)
	}

	r.logger.Info(ctx, "session finished", "node_id", node.ID, "class_name", state.ClassName)
	return state, nil
}

func (r *Runner) apply(ctx context.Context, kind string, step Step) (editor.State, error) {
	switch kind {
	case "set":
		field, err := fields.Parse(step.Set.Field)
		if err != nil {
			return r.store.Snapshot(), err
		}
		return r.store.SetField(ctx, field, step.Set.Value)
	case "form":
		return r.store.Dispatch(ctx, editor.UpdateFormValue(step.Form.Field, step.Form.Value))
	case "focus":
		return r.store.Dispatch(ctx, editor.SetCurrentField(*step.Focus))
	case "submit":
		return r.store.Submit(ctx)
	case "text":
		return r.store.Dispatch(ctx, editor.UpdateText(*step.Text))
	case "className":
		return r.store.Dispatch(ctx, editor.UpdateClassName(*step.ClassName))
	case "replace":
		return r.store.UpdateClassNameValue(ctx, step.Replace.Old, step.Replace.New)
	case "toggle":
		return r.store.Dispatch(ctx, editor.ToggleDesignTools())
	case "refresh":
		return r.store.Dispatch(ctx, editor.RefreshLayers())
	default:
		return r.store.Dispatch(ctx, editor.CreateElement(*step.Create))
	}
}
