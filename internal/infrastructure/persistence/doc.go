// Package persistence provides the storage implementations of keypost: the
// JSON key files kept in the user's working directory and the GORM-backed
// repositories behind the remote key and message store.
package persistence
