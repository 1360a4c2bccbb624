package context

import (
	"context"
	"fmt"
)

// Action is a staged write. Rollback must undo Execute as far as the
// underlying store allows.
type Action interface {
	Execute(ctx context.Context) error
	Rollback(ctx context.Context) error

	// Description labels the action in errors and logs.
	Description() string
}

// AddAction stages an action. Fails once the context has committed.
func (rc *RequestContext) AddAction(action Action) error {
	rc.mu.Lock()
	defer rc.mu.Unlock()

	if rc.committed {
		return ErrAlreadyCommitted
	}

	rc.actions = append(rc.actions, action)
	return nil
}

// Commit executes staged actions in order. If one fails, previously
// executed actions are rolled back in reverse order and the failing
// action's error is returned. A context commits at most once.
func (rc *RequestContext) Commit(ctx context.Context) error {
	rc.mu.Lock()
	defer rc.mu.Unlock()

	if rc.committed {
		return ErrAlreadyCommitted
	}

	for i, action := range rc.actions {
		if err := action.Execute(ctx); err != nil {
			rollback(ctx, rc.actions[:i])
			return fmt.Errorf("action %q failed: %w", action.Description(), err)
		}
	}

	rc.committed = true
	return nil
}

// rollback undoes executed actions in reverse order. Rollback failures
// are swallowed; the original error matters more.
func rollback(ctx context.Context, executed []Action) {
	for i := len(executed) - 1; i >= 0; i-- {
		_ = executed[i].Rollback(ctx)
	}
}

// Actions returns a snapshot of the staged actions.
func (rc *RequestContext) Actions() []Action {
	rc.mu.Lock()
	defer rc.mu.Unlock()

	result := make([]Action, len(rc.actions))
	copy(result, rc.actions)
	return result
}
