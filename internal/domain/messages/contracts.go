package messages

import "context"

// RemoteMessageDirectory is the message half of the shared remote store.
// Like the key half it is unauthenticated; one message slot exists per
// recipient email and PUT overwrites it.
type RemoteMessageDirectory interface {
	// GetMessage fetches the message stored for email. It returns
	// (nil, nil) when no message is stored.
	GetMessage(ctx context.Context, email string) (*Message, error)

	// PutMessage stores or overwrites the message for email.
	PutMessage(ctx context.Context, email string, message *Message) error
}

// MessageRepository is the store-side persistence contract backing the
// message half of the remote directory. Put overwrites; Get returns
// (nil, nil) when no message is stored for email.
type MessageRepository interface {
	Get(ctx context.Context, email string) (*Message, error)
	Put(ctx context.Context, email string, message *Message) error
}

// MessageService covers the message-side operations of the CLI.
type MessageService interface {
	// Send encrypts plaintext with the locally stored public key of email
	// and uploads the resulting message for that identity.
	Send(ctx context.Context, email string, plaintext string) error

	// Read downloads the message stored for email and decrypts it with the
	// local private key. The private key must have been published for email
	// first. It returns ("", nil) when no message is stored.
	Read(ctx context.Context, email string) (string, error)
}
