package routes

import (
	"context"

	"github.com/danielgtaylor/huma/v2"

	counterhandler "github.com/janisto/widget-playground/internal/http/v1/counter"
	guardhandler "github.com/janisto/widget-playground/internal/http/v1/guard"
	notehandler "github.com/janisto/widget-playground/internal/http/v1/note"
	userdatahandler "github.com/janisto/widget-playground/internal/http/v1/userdata"
	countersvc "github.com/janisto/widget-playground/internal/service/counter"
	guardsvc "github.com/janisto/widget-playground/internal/service/guard"
	notesvc "github.com/janisto/widget-playground/internal/service/note"
	userdatasvc "github.com/janisto/widget-playground/internal/service/userdata"
	"github.com/janisto/widget-playground/internal/storage"
)

// Services holds the widget state served by the API.
type Services struct {
	Counter *countersvc.Cell
	Form    *userdatasvc.Form
	Note    *notesvc.Editor
}

// NewServices builds every widget over store and loads its persisted state.
func NewServices(ctx context.Context, store storage.Store, ids userdatasvc.IDGenerator) Services {
	repo := userdatasvc.NewRepository(store, ids)

	cell := countersvc.NewCell(store)
	cell.Load(ctx)

	form := userdatasvc.NewForm(repo, guardsvc.New())
	form.Open(ctx)

	return Services{
		Counter: cell,
		Form:    form,
		Note:    notesvc.NewEditor(store, repo),
	}
}

// Register wires all HTTP routes into the provided API router.
func Register(api huma.API, svc Services) {
	counterhandler.Register(api, svc.Counter)
	userdatahandler.Register(api, svc.Form)
	notehandler.Register(api, svc.Note)
	guardhandler.Register(api, svc.Form.Guard())
}
