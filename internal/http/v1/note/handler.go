package note

import (
	"context"
	"errors"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/janisto/widget-playground/internal/platform/respond"
	notesvc "github.com/janisto/widget-playground/internal/service/note"
	"github.com/janisto/widget-playground/internal/storage"
)

// Register registers note endpoints.
func Register(api huma.API, editor *notesvc.Editor) {
	huma.Register(api, huma.Operation{
		OperationID: "get-note",
		Method:      http.MethodGet,
		Path:        "/note",
		Summary:     "Get note",
		Description: "Returns the stored note HTML, or a summary of the committed user data when no note is stored.",
		Tags:        []string{"Note"},
	}, func(ctx context.Context, _ *NoteGetInput) (*NoteOutput, error) {
		return &NoteOutput{Body: Note{HTML: editor.Load(ctx)}}, nil
	})

	huma.Register(api, huma.Operation{
		OperationID: "put-note",
		Method:      http.MethodPut,
		Path:        "/note",
		Summary:     "Save note",
		Description: "Stores the note HTML as-is.",
		Tags:        []string{"Note"},
	}, func(ctx context.Context, input *NotePutInput) (*NoteOutput, error) {
		if err := editor.Save(ctx, input.Body.HTML); err != nil {
			return nil, mapServiceError(err)
		}
		return &NoteOutput{Body: Note{HTML: input.Body.HTML}}, nil
	})

	huma.Register(api, huma.Operation{
		OperationID:   "clear-note",
		Method:        http.MethodDelete,
		Path:          "/note",
		Summary:       "Clear note",
		Description:   "Removes the stored note.",
		Tags:          []string{"Note"},
		DefaultStatus: http.StatusNoContent,
	}, func(ctx context.Context, _ *NoteGetInput) (*struct{}, error) {
		if err := editor.Clear(ctx); err != nil {
			return nil, mapServiceError(err)
		}
		return nil, nil
	})
}

func mapServiceError(err error) error {
	if errors.Is(err, storage.ErrUnavailable) {
		return respond.Unavailable("note could not be saved")
	}
	return huma.Error500InternalServerError("internal error")
}
