package models

import (
	"time"

	"github.com/theeman05/keypost/internal/domain/messages"
)

// MessageRecord is the GORM database model for stored messages
// (infrastructure concern). One record exists per recipient email.
type MessageRecord struct {
	Email           string    `gorm:"primaryKey;type:varchar(255)"`
	Content         string    `gorm:"not null;type:text"`
	DateTimeCreated time.Time `gorm:"not null"`
}

// TableName specifies the table name for GORM
func (MessageRecord) TableName() string {
	return "messages"
}

// ToDomain converts GORM model to domain entity
func (m *MessageRecord) ToDomain() *messages.Message {
	return &messages.Message{
		Email:           m.Email,
		Content:         m.Content,
		DateTimeCreated: m.DateTimeCreated,
	}
}

// FromDomain converts domain entity to GORM model
func (m *MessageRecord) FromDomain(email string, msg *messages.Message) {
	m.Email = email
	m.Content = msg.Content
	m.DateTimeCreated = msg.DateTimeCreated
}
