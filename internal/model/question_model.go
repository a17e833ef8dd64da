package model

import "time"

type Question struct {
	Id            int64     `gorm:"primaryKey;autoIncrement"`
	Topic         string    `gorm:"type:text;not null;index"`
	Question      string    `gorm:"type:text;not null"`
	OptionA       string    `gorm:"column:option_a;type:text;not null"`
	OptionB       string    `gorm:"column:option_b;type:text;not null"`
	OptionC       string    `gorm:"column:option_c;type:text;not null"`
	OptionD       string    `gorm:"column:option_d;type:text;not null"`
	CorrectAnswer string    `gorm:"type:text;not null"`
	Explanation   string    `gorm:"type:text;not null"`
	Difficulty    string    `gorm:"type:text;not null;default:medium"`
	CreatedAt     time.Time `gorm:"autoCreateTime"`
}

func (Question) TableName() string {
	return "questions"
}
