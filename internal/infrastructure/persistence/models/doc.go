// Package models contains the GORM database models backing the remote key
// and message store, kept separate from the domain entities they map to.
package models
