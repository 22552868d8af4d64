// Package messages defines the encrypted message model and the contracts
// for exchanging messages through the remote store.
package messages
