// Package remote implements the HTTP client side of the shared key and
// message store protocol.
package remote
