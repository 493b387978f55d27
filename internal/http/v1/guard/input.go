package guard

// GuardGetInput for GET /guard (no parameters)
type GuardGetInput struct{}

// GuardLeaveInput for POST /guard/leave
type GuardLeaveInput struct {
	Confirm bool `query:"confirm" doc:"The user confirmed leaving despite unsaved changes" example:"true"`
}
