package userdata

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/janisto/widget-playground/internal/service/guard"
	"github.com/janisto/widget-playground/internal/validation"
)

// Form is the in-memory controller behind the user-data form: it owns the
// draft, the last validation result and the unsaved-changes guard.
type Form struct {
	mu        sync.Mutex
	repo      *Repository
	guard     *guard.Guard
	draft     Profile
	committed *Profile
	errors    validation.Result
}

// NewForm creates a form over repo using g to track unsaved changes.
func NewForm(repo *Repository, g *guard.Guard) *Form {
	if g == nil {
		g = guard.New()
	}
	return &Form{repo: repo, guard: g}
}

// Open loads the draft and committed record from storage and resets the guard.
func (f *Form) Open(ctx context.Context) {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.draft = f.repo.Load(ctx)
	f.committed = nil
	if c, ok := f.repo.LoadCommitted(ctx); ok {
		f.committed = &c
	}
	f.errors = validation.Result{}
	f.guard.MarkClean()
}

// FieldEdit is a single draft field change.
type FieldEdit struct {
	Field string
	Value string
}

// SetField edits one draft field, writes the draft through and marks the guard dirty.
//
// The in-memory edit is kept even when the write fails; the returned error
// wraps storage.ErrUnavailable in that case.
func (f *Form) SetField(ctx context.Context, field, value string) (Profile, error) {
	return f.SetFields(ctx, FieldEdit{Field: field, Value: value})
}

// SetFields applies edits to the draft and writes it through once. An unknown
// field rejects the whole batch without touching the draft or the guard.
func (f *Form) SetFields(ctx context.Context, edits ...FieldEdit) (Profile, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	next := f.draft
	for _, e := range edits {
		var err error
		if next, err = next.With(e.Field, e.Value); err != nil {
			return f.draft, fmt.Errorf("%w: %q", err, e.Field)
		}
	}
	f.draft = next
	f.guard.MarkDirty()

	if err := f.repo.SaveDraft(ctx, f.draft); err != nil {
		return f.draft, fmt.Errorf("save draft: %w", err)
	}
	return f.draft, nil
}

// Submit submits the current draft. On success the draft takes the new ID,
// becomes the committed record and the guard turns clean. Validation and
// duplicate failures leave the guard untouched.
func (f *Form) Submit(ctx context.Context) (Profile, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	record, err := f.repo.Submit(ctx, f.draft)
	if err != nil {
		var verr *ValidationError
		if errors.As(err, &verr) {
			f.errors = verr.Result
		} else {
			f.errors = validation.Result{}
		}
		return Profile{}, err
	}

	f.errors = validation.Result{}
	f.draft = record
	f.committed = &record
	f.guard.MarkClean()
	return record, nil
}

// Draft returns the current draft.
func (f *Form) Draft() Profile {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.draft
}

// Committed returns the committed record, if any.
func (f *Form) Committed() (Profile, bool) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.committed == nil {
		return Profile{}, false
	}
	return *f.committed, true
}

// Errors returns the validation result of the last submission attempt.
func (f *Form) Errors() validation.Result {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.errors
}

// Guard returns the unsaved-changes guard.
func (f *Form) Guard() *guard.Guard {
	return f.guard
}
