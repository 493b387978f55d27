// Package userdata loads, validates and commits the user-data record.
package userdata

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"

	applog "github.com/janisto/widget-playground/internal/platform/logging"
	"github.com/janisto/widget-playground/internal/storage"
	"github.com/janisto/widget-playground/internal/validation"
)

// Repository persists the draft and committed user-data records.
type Repository struct {
	store storage.Store
	ids   IDGenerator
}

// NewRepository creates a repository. A nil ids uses UUIDGenerator.
func NewRepository(store storage.Store, ids IDGenerator) *Repository {
	if ids == nil {
		ids = UUIDGenerator{}
	}
	return &Repository{store: store, ids: ids}
}

// Load returns the stored draft, or an empty Profile when none is readable.
func (r *Repository) Load(ctx context.Context) Profile {
	p, _ := r.read(ctx, storage.KeyUserData)
	return p
}

// LoadCommitted returns the last successfully submitted record. A stored
// record without an ID never came from Submit and is reported as absent.
func (r *Repository) LoadCommitted(ctx context.Context) (Profile, bool) {
	p, ok := r.read(ctx, storage.KeySubmittedUserData)
	if ok && p.ID == "" {
		applog.LogWarn(ctx, "stored user data is malformed, using default",
			zap.String("key", storage.KeySubmittedUserData), zap.String("reason", "missing id"))
		return Profile{}, false
	}
	return p, ok
}

// read decodes key. Read failures and malformed values are logged and
// reported as absent.
func (r *Repository) read(ctx context.Context, key string) (Profile, bool) {
	raw, ok, err := r.store.Get(ctx, key)
	if err != nil {
		applog.LogWarn(ctx, "user data read failed, using default",
			zap.String("key", key), zap.Error(err))
		return Profile{}, false
	}
	if !ok {
		return Profile{}, false
	}
	p, err := storage.DecodeJSON[Profile](raw)
	if err != nil {
		applog.LogWarn(ctx, "stored user data is malformed, using default",
			zap.String("key", key), zap.Error(err))
		return Profile{}, false
	}
	return p, true
}

// SaveDraft persists p as the draft without touching the committed record.
func (r *Repository) SaveDraft(ctx context.Context, p Profile) error {
	return r.write(ctx, storage.KeyUserData, p)
}

func (r *Repository) write(ctx context.Context, key string, p Profile) error {
	raw, err := storage.EncodeJSON(p)
	if err != nil {
		return fmt.Errorf("encode %s: %w", key, err)
	}
	return r.store.Set(ctx, key, raw)
}

// Submit validates draft and commits it under a new ID.
//
// It returns a *ValidationError when any field is invalid and ErrDuplicate
// when the committed record already holds the same data; neither case writes
// anything. With no committed record the submission always proceeds.
func (r *Repository) Submit(ctx context.Context, draft Profile) (Profile, error) {
	if result := validation.Validate(draft.validationInput()); !result.Valid() {
		return Profile{}, &ValidationError{Result: result}
	}

	if committed, ok := r.LoadCommitted(ctx); ok && committed.SameFields(draft) {
		applog.LogAuditEvent(ctx, "submit", "userData", storage.KeySubmittedUserData, "failure",
			map[string]any{"error": "duplicate"})
		return Profile{}, ErrDuplicate
	}

	id, err := r.ids.NewID()
	if err != nil {
		return Profile{}, fmt.Errorf("generate id: %w", err)
	}
	record := draft
	record.ID = id

	prevDraft, hadDraft, err := r.store.Get(ctx, storage.KeyUserData)
	if err != nil {
		r.auditFailure(ctx, err)
		return Profile{}, fmt.Errorf("read draft: %w", err)
	}
	if err := r.write(ctx, storage.KeyUserData, record); err != nil {
		r.auditFailure(ctx, err)
		return Profile{}, fmt.Errorf("save draft: %w", err)
	}
	if err := r.write(ctx, storage.KeySubmittedUserData, record); err != nil {
		r.restoreDraft(ctx, prevDraft, hadDraft)
		r.auditFailure(ctx, err)
		return Profile{}, fmt.Errorf("save committed record: %w", err)
	}

	applog.LogAuditEvent(ctx, "submit", "userData", storage.KeySubmittedUserData, "success",
		map[string]any{"id": id})
	return record, nil
}

// restoreDraft puts back the draft overwritten by a failed submission.
func (r *Repository) restoreDraft(ctx context.Context, raw string, existed bool) {
	var err error
	if existed {
		err = r.store.Set(ctx, storage.KeyUserData, raw)
	} else {
		err = r.store.Remove(ctx, storage.KeyUserData)
	}
	if err != nil {
		applog.LogError(ctx, "failed to restore draft after aborted submission", err)
	}
}

func (r *Repository) auditFailure(ctx context.Context, err error) {
	category := "internal_error"
	if errors.Is(err, storage.ErrUnavailable) {
		category = "store_unavailable"
	}
	applog.LogAuditEvent(ctx, "submit", "userData", storage.KeySubmittedUserData, "failure",
		map[string]any{"error": category})
}
