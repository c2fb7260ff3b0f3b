package models

// NotesRequest is the body of POST /optimize. Notes is a pointer so that an
// empty string is accepted while a missing field is still rejected.
type NotesRequest struct {
	Notes *string `json:"notes" binding:"required"`
}
