package internal

import (
	"context"
	"sync"
	"time"
)

// MemStore is an in-memory Store used by tests, behind the same interface
// as PGStore.
type MemStore struct {
	mu sync.Mutex

	users map[string]User

	nextRegID int
	regs      map[int]Registration

	nextPhotoID int
	photos      map[int]Photo

	nextDocID int
	docs      map[int]Document

	nextLogID int64
	logs      []LogEntry
}

func NewMemStore() *MemStore {
	return &MemStore{
		users:       map[string]User{},
		nextRegID:   1,
		regs:        map[int]Registration{},
		nextPhotoID: 1,
		photos:      map[int]Photo{},
		nextDocID:   1,
		docs:        map[int]Document{},
		nextLogID:   1,
	}
}

func (s *MemStore) GetUserByUsername(ctx context.Context, username string) (User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	u, ok := s.users[username]
	if !ok {
		return User{}, ErrNotFound
	}
	return u, nil
}

func (s *MemStore) UpsertUser(ctx context.Context, username, passHash string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	u, ok := s.users[username]
	if !ok {
		u = User{ID: len(s.users) + 1, Username: username}
	}
	u.PassHash = passHash
	s.users[username] = u
	return nil
}

func (s *MemStore) CreateRegistration(ctx context.Context, r Registration) (Registration, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	r.ID = s.nextRegID
	s.nextRegID++
	r.CreatedAt = time.Now().UTC()
	s.regs[r.ID] = r
	return r, nil
}

func (s *MemStore) GetRegistration(ctx context.Context, id int) (Registration, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	r, ok := s.regs[id]
	if !ok {
		return Registration{}, ErrNotFound
	}
	return r, nil
}

func (s *MemStore) ListRegistrations(ctx context.Context) ([]Registration, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]Registration, 0, len(s.regs))
	for id := 1; id < s.nextRegID; id++ {
		if r, ok := s.regs[id]; ok {
			out = append(out, r)
		}
	}
	return out, nil
}

func (s *MemStore) UpdateRegistration(ctx context.Context, r Registration) (Registration, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	old, ok := s.regs[r.ID]
	if !ok {
		return Registration{}, ErrNotFound
	}
	r.CreatedAt = old.CreatedAt
	s.regs[r.ID] = r
	return r, nil
}

func (s *MemStore) DeleteRegistration(ctx context.Context, id int) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.regs[id]; !ok {
		return ErrNotFound
	}
	delete(s.regs, id)
	return nil
}

func (s *MemStore) CreatePhoto(ctx context.Context, p Photo) (Photo, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	p.ID = s.nextPhotoID
	s.nextPhotoID++
	p.UploadedAt = time.Now().UTC()
	s.photos[p.ID] = p
	return p, nil
}

func (s *MemStore) GetPhoto(ctx context.Context, id int) (Photo, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	p, ok := s.photos[id]
	if !ok {
		return Photo{}, ErrNotFound
	}
	return p, nil
}

func (s *MemStore) ListPhotos(ctx context.Context) ([]Photo, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]Photo, 0, len(s.photos))
	for id := s.nextPhotoID - 1; id >= 1; id-- {
		if p, ok := s.photos[id]; ok {
			out = append(out, p)
		}
	}
	return out, nil
}

func (s *MemStore) DeletePhoto(ctx context.Context, id int) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.photos[id]; !ok {
		return ErrNotFound
	}
	delete(s.photos, id)
	return nil
}

func (s *MemStore) CreateDocument(ctx context.Context, d Document) (Document, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	d.ID = s.nextDocID
	s.nextDocID++
	d.UploadedAt = time.Now().UTC()
	s.docs[d.ID] = d
	return d, nil
}

func (s *MemStore) GetDocument(ctx context.Context, id int) (Document, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	d, ok := s.docs[id]
	if !ok {
		return Document{}, ErrNotFound
	}
	return d, nil
}

func (s *MemStore) ListDocuments(ctx context.Context) ([]Document, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]Document, 0, len(s.docs))
	for id := s.nextDocID - 1; id >= 1; id-- {
		if d, ok := s.docs[id]; ok {
			out = append(out, d)
		}
	}
	return out, nil
}

func (s *MemStore) DeleteDocument(ctx context.Context, id int) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.docs[id]; !ok {
		return ErrNotFound
	}
	delete(s.docs, id)
	return nil
}

func (s *MemStore) AppendLog(ctx context.Context, actor, action, details string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.logs = append(s.logs, LogEntry{
		ID:        s.nextLogID,
		Actor:     actor,
		Action:    action,
		Details:   details,
		CreatedAt: time.Now().UTC(),
	})
	s.nextLogID++
	return nil
}

func (s *MemStore) ListLogs(ctx context.Context, limit int) ([]LogEntry, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]LogEntry, 0, limit)
	for i := len(s.logs) - 1; i >= 0 && len(out) < limit; i-- {
		out = append(out, s.logs[i])
	}
	return out, nil
}
