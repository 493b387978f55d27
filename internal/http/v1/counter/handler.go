package counter

import (
	"context"
	"errors"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/janisto/widget-playground/internal/platform/respond"
	countersvc "github.com/janisto/widget-playground/internal/service/counter"
	"github.com/janisto/widget-playground/internal/storage"
)

// Register registers counter endpoints.
func Register(api huma.API, cell *countersvc.Cell) {
	huma.Register(api, huma.Operation{
		OperationID: "get-counter",
		Method:      http.MethodGet,
		Path:        "/counter",
		Summary:     "Get counter",
		Description: "Returns the current counter value with its display intensity and color.",
		Tags:        []string{"Counter"},
	}, func(_ context.Context, _ *CounterGetInput) (*CounterOutput, error) {
		return &CounterOutput{Body: toHTTPCounter(cell.Value())}, nil
	})

	mutations := []struct {
		id, path, summary string
		apply             func(context.Context) (int, error)
	}{
		{"increment-counter", "/counter/increment", "Increment counter", cell.Increment},
		{"decrement-counter", "/counter/decrement", "Decrement counter (never below zero)", cell.Decrement},
		{"reset-counter", "/counter/reset", "Reset counter to zero", cell.Reset},
	}
	for _, m := range mutations {
		huma.Register(api, huma.Operation{
			OperationID: m.id,
			Method:      http.MethodPost,
			Path:        m.path,
			Summary:     m.summary,
			Description: "Applies the change and persists the new value immediately.",
			Tags:        []string{"Counter"},
		}, func(ctx context.Context, _ *CounterMutateInput) (*CounterOutput, error) {
			v, err := m.apply(ctx)
			if err != nil {
				return nil, mapServiceError(err)
			}
			return &CounterOutput{Body: toHTTPCounter(v)}, nil
		})
	}
}

func mapServiceError(err error) error {
	if errors.Is(err, storage.ErrUnavailable) {
		return respond.Unavailable("counter could not be saved")
	}
	return huma.Error500InternalServerError("internal error")
}

func toHTTPCounter(v int) Counter {
	return Counter{
		Value:     v,
		Intensity: countersvc.Intensity(v),
		Color:     countersvc.Color(v),
	}
}
