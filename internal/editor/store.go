package editor

import (
	"context"
	"fmt"
	"sync"

	"github.com/alexisbeaulieu97/designtools/internal/classname"
	"github.com/alexisbeaulieu97/designtools/internal/fields"
	logginginfra "github.com/alexisbeaulieu97/designtools/internal/infrastructure/logging"
	"github.com/alexisbeaulieu97/designtools/internal/ports"
	designerrors "github.com/alexisbeaulieu97/designtools/pkg/errors"
)

const defaultElementType = "p"

// Store owns the editor state. Views hold a reference to one Store and change
// state only through Dispatch and the helpers built on it.
type Store struct {
	mu          sync.Mutex
	state       State
	table       *fields.Table
	publisher   ports.EventPublisher
	logger      ports.Logger
	elementType string
}

// Option customises a Store.
type Option func(*Store)

// WithPublisher routes node change events to publisher.
func WithPublisher(publisher ports.EventPublisher) Option {
	return func(s *Store) {
		s.publisher = publisher
	}
}

// WithLogger sets the store's logger.
func WithLogger(logger ports.Logger) Option {
	return func(s *Store) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// WithElementType sets the element type used by CreateElement when the action names none.
func WithElementType(elementType string) Option {
	return func(s *Store) {
		if elementType != "" {
			s.elementType = elementType
		}
	}
}

// NewStore creates a store over table. A nil table uses fields.DefaultTable.
func NewStore(table *fields.Table, opts ...Option) *Store {
	if table == nil {
		table = fields.DefaultTable()
	}
	s := &Store{
		state:       NewState(),
		table:       table,
		logger:      logginginfra.NewNoOpLogger(),
		elementType: defaultElementType,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Table returns the field table the store derives values with.
func (s *Store) Table() *fields.Table {
	return s.table
}

// Snapshot returns a copy of the current state.
func (s *Store) Snapshot() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state.Clone()
}

// Dispatch applies action and publishes the resulting node change events.
func (s *Store) Dispatch(ctx context.Context, action Action) (State, error) {
	return s.apply(ctx, func(State) (Action, error) {
		return action, nil
	})
}

// UpdateClassNameValue swaps oldToken for newToken in the selection's class name.
func (s *Store) UpdateClassNameValue(ctx context.Context, oldToken, newToken string) (State, error) {
	return s.apply(ctx, func(state State) (Action, error) {
		return UpdateClassName(classname.Replace(state.ClassName, oldToken, newToken)), nil
	})
}

// SetField sets field to value, replacing the token for its current value.
func (s *Store) SetField(ctx context.Context, field fields.Field, value string) (State, error) {
	return s.apply(ctx, func(state State) (Action, error) {
		return s.fieldEdit(state.ClassName, state, field, value)
	})
}

// Submit commits the pending form value of the focused field. A field edit is
// applied to the pending class name in the form, so an uncommitted className
// edit survives it.
func (s *Store) Submit(ctx context.Context) (State, error) {
	return s.apply(ctx, func(state State) (Action, error) {
		switch state.CurrentField {
		case "":
			return Action{}, ErrNoCurrentField
		case FormText:
			return UpdateText(state.Form[FormText]), nil
		case FormClassName:
			return UpdateClassName(state.Form[FormClassName]), nil
		default:
			base, ok := state.Form[FormClassName]
			if !ok {
				base = state.ClassName
			}
			return s.fieldEdit(base, state, fields.Field(state.CurrentField), state.Form[state.CurrentField])
		}
	})
}

func (s *Store) fieldEdit(className string, state State, field fields.Field, value string) (Action, error) {
	if !field.Valid() {
		return Action{}, designerrors.NewFieldError(string(field), nil)
	}
	if value != "" && !s.table.Catalog().Allows(field, value) {
		return Action{}, designerrors.NewFieldError(string(field), fmt.Errorf("value %q is not offered", value))
	}

	oldToken, err := s.table.Token(field, state.Values[field])
	if err != nil {
		return Action{}, err
	}
	newToken, err := s.table.Token(field, value)
	if err != nil {
		return Action{}, err
	}
	return UpdateClassName(classname.Replace(className, oldToken, newToken)), nil
}

func (s *Store) apply(ctx context.Context, build func(State) (Action, error)) (State, error) {
	s.mu.Lock()
	prev := s.state
	action, err := build(prev.Clone())
	if err == nil {
		var next State
		next, err = Reduce(s.table, prev, action)
		if err == nil {
			s.state = next
		}
	}
	if err != nil {
		s.mu.Unlock()
		s.logger.Warn(ctx, "action rejected", "action", string(action.Type), "error", err)
		return prev.Clone(), err
	}
	next := s.state
	events := changeEvents(prev, next, action, s.elementType)
	snapshot := next.Clone()
	s.mu.Unlock()

	s.logger.Debug(ctx, "action applied", "action", string(action.Type), "class_name", snapshot.ClassName)

	if s.publisher == nil {
		return snapshot, nil
	}
	for _, event := range events {
		if err := s.publisher.Publish(ctx, event); err != nil {
			return snapshot, fmt.Errorf("publish %s: %w", event.Type, err)
		}
	}
	return snapshot, nil
}
