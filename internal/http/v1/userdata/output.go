package userdata

// UserDataStateOutput for GET and PATCH /user-data
type UserDataStateOutput struct {
	Body State
}

// UserDataRecordOutput for POST /user-data/submit and GET /user-data/submitted
type UserDataRecordOutput struct {
	Body Profile
}
