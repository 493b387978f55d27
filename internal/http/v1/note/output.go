package note

// NoteOutput for GET and PUT /note
type NoteOutput struct {
	Body Note
}
