package entity

import "time"

// Question is an immutable quiz question. Id is the auto-increment primary key
// and defines the sequential order within a topic.
type Question struct {
	Id            int64
	Topic         string
	Question      string
	OptionA       string
	OptionB       string
	OptionC       string
	OptionD       string
	CorrectAnswer string // "A" | "B" | "C" | "D"
	Explanation   string
	Difficulty    string
	CreatedAt     time.Time
}

// Options returns the four answer options in A-D order.
func (q *Question) Options() [4]string {
	return [4]string{q.OptionA, q.OptionB, q.OptionC, q.OptionD}
}
