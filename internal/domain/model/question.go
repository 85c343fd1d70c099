package model

import "time"

// Question represents a multiple-choice quiz question for a grade.
// Options keep insertion order; the comma-joined storage form exists
// only at the persistence boundary.
type Question struct {
	ID            int       `json:"id"`
	Grade         int       `json:"grade"`
	QuestionText  string    `json:"question_text"`
	Options       []string  `json:"options"`
	CorrectOption string    `json:"correct_option"`
	CreatedAt     time.Time `json:"created_at"`
}

// HasOption reports whether option is one of the question's options,
// compared with exact string equality.
func (q *Question) HasOption(option string) bool {
	for _, o := range q.Options {
		if o == option {
			return true
		}
	}
	return false
}
