package guard

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/janisto/widget-playground/internal/platform/timeutil"
	guardsvc "github.com/janisto/widget-playground/internal/service/guard"
)

// Register registers unsaved-changes guard endpoints.
func Register(api huma.API, g *guardsvc.Guard) {
	huma.Register(api, huma.Operation{
		OperationID: "get-guard",
		Method:      http.MethodGet,
		Path:        "/guard",
		Summary:     "Get unsaved-changes state",
		Description: "Returns whether the user-data draft has unsaved changes and what to do on page leave.",
		Tags:        []string{"Guard"},
	}, func(_ context.Context, _ *GuardGetInput) (*GuardOutput, error) {
		return &GuardOutput{Body: toHTTPGuard(g)}, nil
	})

	huma.Register(api, huma.Operation{
		OperationID: "leave",
		Method:      http.MethodPost,
		Path:        "/guard/leave",
		Summary:     "Ask to leave the page",
		Description: "Returns 200 when leaving is fine. Returns 409 with the confirmation prompt while " +
			"changes are unsaved, unless confirm=true.",
		Tags: []string{"Guard"},
	}, func(_ context.Context, input *GuardLeaveInput) (*GuardOutput, error) {
		d := g.BeforeLeave()
		if d.Block && !input.Confirm {
			return nil, huma.Error409Conflict(d.Message)
		}
		return &GuardOutput{Body: toHTTPGuard(g)}, nil
	})
}

func toHTTPGuard(g *guardsvc.Guard) Guard {
	status := g.Status()
	d := g.BeforeLeave()
	return Guard{
		State:   string(status.State),
		Block:   d.Block,
		Message: d.Message,
		Since:   timeutil.NewTime(status.Since),
	}
}
