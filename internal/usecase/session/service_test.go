package session

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/interview-coach-team/interview-coach/internal/domain/entities"
)

type memSessionRepo struct {
	sessions map[uuid.UUID]*entities.Session
}

func (r *memSessionRepo) Create(ctx context.Context, s *entities.Session) error {
	r.sessions[s.ID] = s
	return nil
}

func (r *memSessionRepo) FindByID(ctx context.Context, id uuid.UUID) (*entities.Session, error) {
	s, ok := r.sessions[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return s, nil
}

func (r *memSessionRepo) List(ctx context.Context, limit, offset int) ([]*entities.Session, int64, error) {
	out := make([]*entities.Session, 0, len(r.sessions))
	for _, s := range r.sessions {
		out = append(out, s)
	}
	return out, int64(len(out)), nil
}

func (r *memSessionRepo) Delete(ctx context.Context, id uuid.UUID) error {
	delete(r.sessions, id)
	return nil
}

type memClipStore struct {
	objects []string
	removed []string
	listErr error
}

func (s *memClipStore) ListFiles(ctx context.Context, prefix string) ([]string, error) {
	if s.listErr != nil {
		return nil, s.listErr
	}
	var out []string
	for _, key := range s.objects {
		if strings.HasPrefix(key, prefix) {
			out = append(out, key)
		}
	}
	return out, nil
}

func (s *memClipStore) RemoveFile(ctx context.Context, objectName string) error {
	s.removed = append(s.removed, objectName)
	return nil
}

func TestCreateSessionTrimsInput(t *testing.T) {
	repo := &memSessionRepo{sessions: map[uuid.UUID]*entities.Session{}}
	svc := NewSessionService(repo, nil, nil)

	session, err := svc.CreateSession(context.Background(), CreateSessionInput{
		Candidate:  "  Ada  ",
		TargetRole: " Backend Engineer ",
		Notes:      " second mock round ",
	})
	if err != nil {
		t.Fatalf("CreateSession: %v", err)
	}
	if session.Candidate != "Ada" || session.TargetRole != "Backend Engineer" {
		t.Fatalf("got candidate %q role %q, want trimmed values", session.Candidate, session.TargetRole)
	}
	if session.Notes != "second mock round" {
		t.Fatalf("notes = %q, want trimmed", session.Notes)
	}
	if _, ok := repo.sessions[session.ID]; !ok {
		t.Fatal("session was not persisted")
	}
}

func TestCreateSessionEmptyCandidate(t *testing.T) {
	repo := &memSessionRepo{sessions: map[uuid.UUID]*entities.Session{}}
	svc := NewSessionService(repo, nil, nil)

	_, err := svc.CreateSession(context.Background(), CreateSessionInput{Candidate: "   "})
	if !errors.Is(err, entities.ErrEmptyCandidate) {
		t.Fatalf("err = %v, want ErrEmptyCandidate", err)
	}
}

func TestDeleteSessionRemovesClips(t *testing.T) {
	session := entities.NewSession("Ada", "Backend Engineer")
	other := entities.NewSession("Grace", "SRE")
	repo := &memSessionRepo{sessions: map[uuid.UUID]*entities.Session{
		session.ID: session,
		other.ID:   other,
	}}
	store := &memClipStore{objects: []string{
		fmt.Sprintf("audio/%s/first.webm", session.ID),
		fmt.Sprintf("audio/%s/second.webm", session.ID),
		fmt.Sprintf("audio/%s/keep.webm", other.ID),
	}}
	svc := NewSessionService(repo, store, nil)

	if err := svc.DeleteSession(context.Background(), session.ID); err != nil {
		t.Fatalf("DeleteSession: %v", err)
	}
	if _, ok := repo.sessions[session.ID]; ok {
		t.Fatal("session row still present after delete")
	}
	if len(store.removed) != 2 {
		t.Fatalf("removed %d objects, want 2: %v", len(store.removed), store.removed)
	}
	for _, key := range store.removed {
		if !strings.HasPrefix(key, fmt.Sprintf("audio/%s/", session.ID)) {
			t.Fatalf("removed object %q belongs to another session", key)
		}
	}
}

func TestDeleteSessionUnknown(t *testing.T) {
	repo := &memSessionRepo{sessions: map[uuid.UUID]*entities.Session{}}
	store := &memClipStore{}
	svc := NewSessionService(repo, store, nil)

	err := svc.DeleteSession(context.Background(), uuid.New())
	if !errors.Is(err, entities.ErrSessionNotFound) {
		t.Fatalf("err = %v, want ErrSessionNotFound", err)
	}
	if len(store.removed) != 0 {
		t.Fatalf("removed %v for an unknown session", store.removed)
	}
}

func TestDeleteSessionClipCleanupIsBestEffort(t *testing.T) {
	session := entities.NewSession("Ada", "Backend Engineer")
	repo := &memSessionRepo{sessions: map[uuid.UUID]*entities.Session{session.ID: session}}
	store := &memClipStore{listErr: errors.New("bucket offline")}
	svc := NewSessionService(repo, store, nil)

	if err := svc.DeleteSession(context.Background(), session.ID); err != nil {
		t.Fatalf("DeleteSession: %v", err)
	}
	if _, ok := repo.sessions[session.ID]; ok {
		t.Fatal("session row still present after delete")
	}
}
