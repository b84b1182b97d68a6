package contract

import (
	"context"
	"io"
)

// IHasher hashes and verifies passwords and token strings.
type IHasher interface {
	HashPassword(password string) (string, error)
	ComparePasswordHash(password, hashedPassword string) error
	HashString(s string) string
	CheckHash(s, hash string) bool
}

// IUUIDGenerator produces document identifiers.
type IUUIDGenerator interface {
	NewUUID() string
}

// IRandomGenerator produces opaque random tokens.
type IRandomGenerator interface {
	GenerateRandomToken(n int) (string, error)
}

// IEmailService delivers plain-text email.
type IEmailService interface {
	SendEmail(ctx context.Context, to, subject, body string) error
}

// StoredFile describes a file persisted in external storage.
type StoredFile struct {
	StorageID string
	URL       string
	Size      int64
}

// IFileStorage is the object-storage collaborator for event attachments
// and initiative media. Delete failures are logged by callers, never
// retried, and do not block the primary operation.
type IFileStorage interface {
	Save(ctx context.Context, fileName string, r io.Reader) (*StoredFile, error)
	Delete(ctx context.Context, storageID string) error
}
