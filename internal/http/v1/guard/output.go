package guard

// GuardOutput for GET /guard and POST /guard/leave
type GuardOutput struct {
	Body Guard
}
