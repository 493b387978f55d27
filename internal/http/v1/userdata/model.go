package userdata

// Profile is a user-data record. ID is empty until the first successful submission.
type Profile struct {
	ID      string `json:"id"      doc:"Record identifier"  example:"3f1c2d4e-8b7a-4c1d-9e2f-0a1b2c3d4e5f"`
	Name    string `json:"name"    doc:"Name"               example:"Ann"`
	Address string `json:"address" doc:"Address"            example:"1 Rd"`
	Email   string `json:"email"   doc:"Email address"      example:"a@b.co"`
	Phone   string `json:"phone"   doc:"Phone number"       example:"1234567890"`
}

// State is the user-data form as the UI sees it.
type State struct {
	Draft     Profile           `json:"draft"               doc:"Current draft"`
	Committed *Profile          `json:"committed,omitempty" doc:"Last committed record"`
	Dirty     bool              `json:"dirty"               doc:"Whether the draft has unsaved changes"`
	Errors    map[string]string `json:"errors,omitempty"    doc:"Helper text per invalid field from the last submission"`
}
