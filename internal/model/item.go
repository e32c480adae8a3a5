package model

import "time"

// Collection identifies one of the server's content collections.
type Collection string

const (
	Board      Collection = "board"
	Activities Collection = "activities"
	Japanese   Collection = "japanese"
	Special    Collection = "special"
)

// Item is a single piece of user-generated content.
// Identity is the server-assigned ID; all other fields are mutable by the owner.
type Item struct {
	ID        int64     `json:"id"`
	Owner     string    `json:"owner"` // email of the creating user
	CreatedAt time.Time `json:"createdAt"`
	Title     string    `json:"title,omitempty"`
	Body      string    `json:"body,omitempty"`
	MediaRef  string    `json:"mediaRef,omitempty"` // URL of attached media, if any
}

// OwnedBy reports whether the item belongs to the given identity.
func (i Item) OwnedBy(identity string) bool {
	return i.Owner != "" && i.Owner == identity
}
