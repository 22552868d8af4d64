package models

import (
	"github.com/theeman05/keypost/internal/domain/keys"
)

// KeyRecord is the GORM database model for published public keys
// (infrastructure concern)
type KeyRecord struct {
	Email string `gorm:"primaryKey;type:varchar(255)"`
	Key   string `gorm:"not null;type:text"`
}

// TableName specifies the table name for GORM
func (KeyRecord) TableName() string {
	return "public_keys"
}

// ToDomain converts GORM model to domain entity
func (m *KeyRecord) ToDomain() *keys.PublicKey {
	return &keys.PublicKey{
		Key:   m.Key,
		Email: m.Email,
	}
}

// FromDomain converts domain entity to GORM model
func (m *KeyRecord) FromDomain(email string, k *keys.PublicKey) {
	m.Email = email
	m.Key = k.Key
}
