package note

// Note is the rich-text note. The HTML is opaque to the server.
type Note struct {
	HTML string `json:"html" required:"true" doc:"Note content as HTML" example:"<p>Hello <strong>world</strong></p>"`
}
