package internal

import (
	"context"
	"errors"
)

// ErrNotFound is returned for operations on ids that do not exist.
var ErrNotFound = errors.New("not found")

// Store is the persistence boundary. Nothing below it knows about HTTP.
type Store interface {
	GetUserByUsername(ctx context.Context, username string) (User, error)
	UpsertUser(ctx context.Context, username, passHash string) error

	CreateRegistration(ctx context.Context, r Registration) (Registration, error)
	GetRegistration(ctx context.Context, id int) (Registration, error)
	ListRegistrations(ctx context.Context) ([]Registration, error)
	UpdateRegistration(ctx context.Context, r Registration) (Registration, error)
	DeleteRegistration(ctx context.Context, id int) error

	CreatePhoto(ctx context.Context, p Photo) (Photo, error)
	GetPhoto(ctx context.Context, id int) (Photo, error)
	ListPhotos(ctx context.Context) ([]Photo, error)
	DeletePhoto(ctx context.Context, id int) error

	CreateDocument(ctx context.Context, d Document) (Document, error)
	GetDocument(ctx context.Context, id int) (Document, error)
	ListDocuments(ctx context.Context) ([]Document, error)
	DeleteDocument(ctx context.Context, id int) error

	AppendLog(ctx context.Context, actor, action, details string) error
	ListLogs(ctx context.Context, limit int) ([]LogEntry, error)
}
