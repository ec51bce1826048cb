// Package model defines the Go record types stored in declared tables.
// Message mirrors db.Message for gorm consumers.
package model

import "time"

// Message is a single row of the Message table.
type Message struct {
	ID      int64     `json:"id" gorm:"primaryKey;column:id"`
	Created time.Time `json:"created" gorm:"column:created;not null"`
	Content string    `json:"content" gorm:"column:content;type:text;not null"`
}

// TableName overrides the table name used by GORM
func (Message) TableName() string {
	return "Message"
}
