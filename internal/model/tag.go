package model

// Tag is a user-defined label with a display color. Transactions carry
// tag names directly; the tag collection only backs label reuse and
// backup round-trips.
type Tag struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Color string `json:"color"`
}
