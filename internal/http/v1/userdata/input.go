package userdata

import (
	userdatasvc "github.com/janisto/widget-playground/internal/service/userdata"
	"github.com/janisto/widget-playground/internal/validation"
)

// UserDataGetInput for GET /user-data and GET /user-data/submitted (no parameters)
type UserDataGetInput struct{}

// UserDataUpdateInput for PATCH /user-data
type UserDataUpdateInput struct {
	Body struct {
		Name    *string `json:"name,omitempty"    maxLength:"200" doc:"Name"                 example:"Ann"`
		Address *string `json:"address,omitempty" maxLength:"500" doc:"Address"              example:"1 Rd"`
		Email   *string `json:"email,omitempty"   maxLength:"254" doc:"Email address"        example:"a@b.co"`
		Phone   *string `json:"phone,omitempty"   maxLength:"32"  doc:"Phone number, 10 digits" example:"1234567890"`
	}
}

// edits lists the provided fields in display order.
func (in *UserDataUpdateInput) edits() []userdatasvc.FieldEdit {
	var out []userdatasvc.FieldEdit
	for _, f := range []struct {
		name  string
		value *string
	}{
		{validation.FieldName, in.Body.Name},
		{validation.FieldAddress, in.Body.Address},
		{validation.FieldEmail, in.Body.Email},
		{validation.FieldPhone, in.Body.Phone},
	} {
		if f.value != nil {
			out = append(out, userdatasvc.FieldEdit{Field: f.name, Value: *f.value})
		}
	}
	return out
}

// UserDataSubmitInput for POST /user-data/submit (submits the stored draft, no body)
type UserDataSubmitInput struct{}
