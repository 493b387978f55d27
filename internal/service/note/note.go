// Package note persists the rich-text note widget.
package note

import (
	"context"
	"fmt"
	"html"
	"strings"

	"go.uber.org/zap"

	applog "github.com/janisto/widget-playground/internal/platform/logging"
	"github.com/janisto/widget-playground/internal/service/userdata"
	"github.com/janisto/widget-playground/internal/storage"
)

// Editor reads and writes the note HTML. The content is stored verbatim.
type Editor struct {
	store storage.Store
	users *userdata.Repository
}

// NewEditor creates an editor. users may be nil, in which case Load never
// falls back to a profile summary.
func NewEditor(store storage.Store, users *userdata.Repository) *Editor {
	return &Editor{store: store, users: users}
}

// Load returns the stored note. When no note is stored it returns a summary
// of the committed user-data record, or "" when there is none. A failed read
// returns "".
func (e *Editor) Load(ctx context.Context) string {
	raw, ok, err := e.store.Get(ctx, storage.KeyRichText)
	if err != nil {
		// A note may still be stored; a summary here could overwrite it on the next save.
		applog.LogWarn(ctx, "note read failed, using empty note", zap.Error(err))
		return ""
	}
	if ok {
		return raw
	}
	if e.users == nil {
		return ""
	}
	if p, found := e.users.LoadCommitted(ctx); found {
		return Summary(p)
	}
	return ""
}

// Save stores content as the note.
func (e *Editor) Save(ctx context.Context, content string) error {
	if err := e.store.Set(ctx, storage.KeyRichText, content); err != nil {
		applog.LogAuditEvent(ctx, "save", "note", storage.KeyRichText, "failure", nil)
		return fmt.Errorf("save note: %w", err)
	}
	applog.LogAuditEvent(ctx, "save", "note", storage.KeyRichText, "success",
		map[string]any{"bytes": len(content)})
	return nil
}

// Clear removes the stored note.
func (e *Editor) Clear(ctx context.Context) error {
	if err := e.store.Remove(ctx, storage.KeyRichText); err != nil {
		applog.LogAuditEvent(ctx, "clear", "note", storage.KeyRichText, "failure", nil)
		return fmt.Errorf("clear note: %w", err)
	}
	applog.LogAuditEvent(ctx, "clear", "note", storage.KeyRichText, "success", nil)
	return nil
}

// Summary renders p as one paragraph per field with escaped values.
func Summary(p userdata.Profile) string {
	var b strings.Builder
	for _, row := range [][2]string{
		{"ID", p.ID},
		{"Name", p.Name},
		{"Address", p.Address},
		{"Email", p.Email},
		{"Phone", p.Phone},
	} {
		fmt.Fprintf(&b, "<p><strong>%s:</strong> %s</p>", row[0], html.EscapeString(row[1]))
	}
	return b.String()
}
