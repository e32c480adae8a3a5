package model

// Question is a quiz entry from the special collection: a Japanese prompt
// and the Korean translation accepted as the answer.
type Question struct {
	ID     int64  `json:"id"`
	Prompt string `json:"question"`
	Answer string `json:"answer"`
	Author string `json:"author"` // email of the creating user
}
