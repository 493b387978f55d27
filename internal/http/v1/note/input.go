package note

// NoteGetInput for GET and DELETE /note (no parameters)
type NoteGetInput struct{}

// NotePutInput for PUT /note
type NotePutInput struct {
	Body Note
}
