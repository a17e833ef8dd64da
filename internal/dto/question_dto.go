package dto

import "time"

type AddQuestionRequest struct {
	Topic         string `json:"topic" validate:"required"`
	Question      string `json:"question" validate:"required"`
	OptionA       string `json:"option_a" validate:"required"`
	OptionB       string `json:"option_b" validate:"required"`
	OptionC       string `json:"option_c" validate:"required"`
	OptionD       string `json:"option_d" validate:"required"`
	CorrectAnswer string `json:"correct_answer" validate:"required,oneof=A B C D a b c d"`
	Explanation   string `json:"explanation" validate:"required"`
	Difficulty    string `json:"difficulty" validate:"omitempty,oneof=easy medium hard"`
}

type AddQuestionResponse struct {
	Id int64 `json:"id"`
}

type TopicsResponse struct {
	Topics []string         `json:"topics"`
	Counts map[string]int64 `json:"counts"`
}

type QuestionResponse struct {
	Id          int64     `json:"id"`
	Topic       string    `json:"topic"`
	Question    string    `json:"question"`
	Options     []string  `json:"options"`
	Explanation string    `json:"explanation"`
	Difficulty  string    `json:"difficulty"`
	CreatedAt   time.Time `json:"created_at"`
}
