package store

import (
	"context"
	"errors"
	"testing"

	"agrimoga/internal/repository"
)

type memRepo struct {
	data   map[string][]byte
	getErr error
	putErr error
	puts   int
}

func newMemRepo() *memRepo { return &memRepo{data: map[string][]byte{}} }

func (m *memRepo) Get(_ context.Context, key string) ([]byte, error) {
	if m.getErr != nil {
		return nil, m.getErr
	}
	b, ok := m.data[key]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return b, nil
}

func (m *memRepo) Put(_ context.Context, key string, value []byte) error {
	m.puts++
	if m.putErr != nil {
		return m.putErr
	}
	m.data[key] = value
	return nil
}

type form struct {
	Crop string  `json:"crop"`
	Area float64 `json:"area"`
}

func TestLoad_MissingKeyReturnsFallback(t *testing.T) {
	s := New(newMemRepo(), nil, nil)
	got := Load(context.Background(), s, "agrimoga:form:irrigation", form{Crop: "strawberry"})
	if got.Crop != "strawberry" {
		t.Fatalf("got %+v", got)
	}
}

func TestSaveThenLoad_RoundTrip(t *testing.T) {
	ctx := context.Background()
	s := New(newMemRepo(), nil, nil)

	Save(ctx, s, "k", form{Crop: "avocado", Area: 120})
	got := Load(ctx, s, "k", form{})
	if got.Crop != "avocado" || got.Area != 120 {
		t.Fatalf("got %+v", got)
	}
}

func TestLoad_MalformedReturnsFallback(t *testing.T) {
	repo := newMemRepo()
	repo.data["k"] = []byte("{not json")
	s := New(repo, nil, nil)

	got := Load(context.Background(), s, "k", form{Crop: "raspberry"})
	if got.Crop != "raspberry" {
		t.Fatalf("got %+v", got)
	}
}

func TestLoad_WrongShapeReturnsFallback(t *testing.T) {
	repo := newMemRepo()
	repo.data["k"] = []byte(`["a","b"]`)
	s := New(repo, nil, nil)

	got := Load(context.Background(), s, "k", form{Crop: "raspberry"})
	if got.Crop != "raspberry" {
		t.Fatalf("got %+v", got)
	}
}

func TestLoad_RepoErrorReturnsFallback(t *testing.T) {
	repo := newMemRepo()
	repo.getErr = errors.New("database is locked")
	s := New(repo, nil, nil)

	if got := Load(context.Background(), s, "k", 7); got != 7 {
		t.Fatalf("got %d", got)
	}
}

func TestSave_SwallowsErrors(t *testing.T) {
	repo := newMemRepo()
	repo.putErr = errors.New("read-only")
	s := New(repo, nil, nil)

	Save(context.Background(), s, "k", form{Crop: "avocado"})
	if repo.puts != 1 {
		t.Fatalf("puts = %d", repo.puts)
	}
}

func TestLoadRaw_FallbackOnMissing(t *testing.T) {
	s := New(newMemRepo(), nil, nil)
	got := s.LoadRaw(context.Background(), "nope", []byte("{}"))
	if string(got) != "{}" {
		t.Fatalf("got %s", got)
	}
}
