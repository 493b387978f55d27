package userdata

import (
	"context"
	"errors"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/janisto/widget-playground/internal/platform/respond"
	userdatasvc "github.com/janisto/widget-playground/internal/service/userdata"
	"github.com/janisto/widget-playground/internal/storage"
	"github.com/janisto/widget-playground/internal/validation"
)

// Register registers user-data form endpoints.
func Register(api huma.API, form *userdatasvc.Form) {
	huma.Register(api, huma.Operation{
		OperationID: "get-user-data",
		Method:      http.MethodGet,
		Path:        "/user-data",
		Summary:     "Get user-data form state",
		Description: "Returns the current draft, the committed record if any, and whether there are unsaved changes.",
		Tags:        []string{"User data"},
	}, func(_ context.Context, _ *UserDataGetInput) (*UserDataStateOutput, error) {
		return &UserDataStateOutput{Body: toHTTPState(form)}, nil
	})

	huma.Register(api, huma.Operation{
		OperationID: "update-user-data-field",
		Method:      http.MethodPatch,
		Path:        "/user-data",
		Summary:     "Edit draft fields",
		Description: "Updates the provided draft fields and saves the draft. Only provided fields are changed.",
		Tags:        []string{"User data"},
	}, func(ctx context.Context, input *UserDataUpdateInput) (*UserDataStateOutput, error) {
		edits := input.edits()
		if len(edits) == 0 {
			return nil, huma.Error422UnprocessableEntity("at least one field must be provided")
		}
		if _, err := form.SetFields(ctx, edits...); err != nil {
			return nil, mapServiceError(err)
		}
		return &UserDataStateOutput{Body: toHTTPState(form)}, nil
	})

	huma.Register(api, huma.Operation{
		OperationID: "submit-user-data",
		Method:      http.MethodPost,
		Path:        "/user-data/submit",
		Summary:     "Submit the draft",
		Description: "Validates the draft and commits it under a new ID unless it matches the committed record.",
		Tags:        []string{"User data"},
	}, func(ctx context.Context, _ *UserDataSubmitInput) (*UserDataRecordOutput, error) {
		record, err := form.Submit(ctx)
		if err != nil {
			return nil, mapServiceError(err)
		}
		return &UserDataRecordOutput{Body: toHTTPProfile(record)}, nil
	})

	huma.Register(api, huma.Operation{
		OperationID: "get-submitted-user-data",
		Method:      http.MethodGet,
		Path:        "/user-data/submitted",
		Summary:     "Get committed record",
		Description: "Returns the last successfully submitted record.",
		Tags:        []string{"User data"},
	}, func(_ context.Context, _ *UserDataGetInput) (*UserDataRecordOutput, error) {
		record, ok := form.Committed()
		if !ok {
			return nil, huma.Error404NotFound("no submitted user data")
		}
		return &UserDataRecordOutput{Body: toHTTPProfile(record)}, nil
	})
}

func mapServiceError(err error) error {
	var verr *userdatasvc.ValidationError
	switch {
	case errors.As(err, &verr):
		return huma.Error422UnprocessableEntity("validation failed", fieldErrors(verr.Result)...)
	case errors.Is(err, userdatasvc.ErrDuplicate):
		return huma.Error409Conflict("user already exists")
	case errors.Is(err, userdatasvc.ErrUnknownField):
		return huma.Error422UnprocessableEntity("unknown field")
	case errors.Is(err, storage.ErrUnavailable):
		return respond.Unavailable("user data could not be saved")
	default:
		return huma.Error500InternalServerError("internal error")
	}
}

func fieldErrors(r validation.Result) []error {
	invalid := r.Invalid()
	out := make([]error, 0, len(invalid))
	for _, field := range invalid {
		out = append(out, &huma.ErrorDetail{
			Message:  validation.Message(field),
			Location: "body." + field,
		})
	}
	return out
}

func toHTTPProfile(p userdatasvc.Profile) Profile {
	return Profile{
		ID:      p.ID,
		Name:    p.Name,
		Address: p.Address,
		Email:   p.Email,
		Phone:   p.Phone,
	}
}

func toHTTPState(form *userdatasvc.Form) State {
	s := State{
		Draft:  toHTTPProfile(form.Draft()),
		Dirty:  form.Guard().IsDirty(),
		Errors: form.Errors().Messages(),
	}
	if c, ok := form.Committed(); ok {
		committed := toHTTPProfile(c)
		s.Committed = &committed
	}
	return s
}
