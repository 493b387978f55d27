package note

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/janisto/widget-playground/internal/service/userdata"
	"github.com/janisto/widget-playground/internal/storage"
)

// noteReadFailStore fails reads of the note key only.
type noteReadFailStore struct {
	*storage.MemoryStore
}

func (s noteReadFailStore) Get(ctx context.Context, key string) (string, bool, error) {
	if key == storage.KeyRichText {
		return "", false, fmt.Errorf("get %s: %w", key, storage.ErrUnavailable)
	}
	return s.MemoryStore.Get(ctx, key)
}

type fixedID string

func (f fixedID) NewID() (string, error) { return string(f), nil }

func TestLoadEmpty(t *testing.T) {
	store := storage.NewMemoryStore()
	e := NewEditor(store, userdata.NewRepository(store, nil))
	if got := e.Load(context.Background()); got != "" {
		t.Fatalf("expected empty note, got %q", got)
	}
}

func TestSaveLoadClear(t *testing.T) {
	ctx := context.Background()
	store := storage.NewMemoryStore()
	e := NewEditor(store, nil)

	content := `<p>Hello <em>world</em> & "friends"</p>`
	if err := e.Save(ctx, content); err != nil {
		t.Fatalf("save: %v", err)
	}
	if got := e.Load(ctx); got != content {
		t.Fatalf("expected %q, got %q", content, got)
	}
	if err := e.Clear(ctx); err != nil {
		t.Fatalf("clear: %v", err)
	}
	if got := e.Load(ctx); got != "" {
		t.Fatalf("expected empty note after clear, got %q", got)
	}
	if _, ok := store.Snapshot()[storage.KeyRichText]; ok {
		t.Fatal("expected key to be removed")
	}
}

func TestLoadFallsBackToCommittedSummary(t *testing.T) {
	ctx := context.Background()
	store := storage.NewMemoryStore()
	users := userdata.NewRepository(store, fixedID("abc"))
	_, err := users.Submit(ctx, userdata.Profile{
		Name: "Ann <script>", Address: "1 Rd", Email: "a@b.co", Phone: "1234567890",
	})
	if err != nil {
		t.Fatalf("submit: %v", err)
	}

	got := NewEditor(store, users).Load(ctx)
	want := "<p><strong>ID:</strong> abc</p>" +
		"<p><strong>Name:</strong> Ann &lt;script&gt;</p>" +
		"<p><strong>Address:</strong> 1 Rd</p>" +
		"<p><strong>Email:</strong> a@b.co</p>" +
		"<p><strong>Phone:</strong> 1234567890</p>"
	if got != want {
		t.Fatalf("unexpected summary:\n got %q\nwant %q", got, want)
	}
}

func TestStoredNoteWinsOverSummary(t *testing.T) {
	ctx := context.Background()
	store := storage.NewMemoryStore()
	users := userdata.NewRepository(store, fixedID("abc"))
	if _, err := users.Submit(ctx, userdata.Profile{
		Name: "Ann", Address: "1 Rd", Email: "a@b.co", Phone: "1234567890",
	}); err != nil {
		t.Fatalf("submit: %v", err)
	}
	e := NewEditor(store, users)
	if err := e.Save(ctx, "<p>mine</p>"); err != nil {
		t.Fatalf("save: %v", err)
	}
	if got := e.Load(ctx); got != "<p>mine</p>" {
		t.Fatalf("expected stored note, got %q", got)
	}
}

func TestWriteFailures(t *testing.T) {
	ctx := context.Background()
	store := storage.NewMemoryStore()
	e := NewEditor(store, nil)
	store.FailWrites(true)

	if err := e.Save(ctx, "x"); !errors.Is(err, storage.ErrUnavailable) {
		t.Fatalf("expected ErrUnavailable from Save, got %v", err)
	}
	if err := e.Clear(ctx); !errors.Is(err, storage.ErrUnavailable) {
		t.Fatalf("expected ErrUnavailable from Clear, got %v", err)
	}
}

func TestLoadReadFailure(t *testing.T) {
	store := storage.NewMemoryStore()
	store.FailReads(true)
	if got := NewEditor(store, nil).Load(context.Background()); got != "" {
		t.Fatalf("expected empty note, got %q", got)
	}
}

func TestLoadReadFailureSkipsSummary(t *testing.T) {
	ctx := context.Background()
	mem := storage.NewMemoryStore()
	users := userdata.NewRepository(mem, fixedID("abc"))
	if _, err := users.Submit(ctx, userdata.Profile{
		Name: "Ann", Address: "1 Rd", Email: "a@b.co", Phone: "1234567890",
	}); err != nil {
		t.Fatalf("submit: %v", err)
	}
	_ = mem.Set(ctx, storage.KeyRichText, "<p>mine</p>")

	store := noteReadFailStore{MemoryStore: mem}
	if got := NewEditor(store, userdata.NewRepository(store, nil)).Load(ctx); got != "" {
		t.Fatalf("expected empty note when the note cannot be read, got %q", got)
	}
}

func TestSummaryEscapesEveryField(t *testing.T) {
	s := Summary(userdata.Profile{ID: "<i>", Name: "&", Address: `"`, Email: "'", Phone: ">"})
	for _, raw := range []string{"<i>", " &<", ` "<`, " '<", " ></"} {
		if strings.Contains(s, raw) {
			t.Fatalf("summary contains unescaped %q: %s", raw, s)
		}
	}
}
