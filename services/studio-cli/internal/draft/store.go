package draft

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"courseplatform/pkg/coursetree"

	"github.com/google/uuid"
)

var ErrNoDraft = errors.New("no local draft, run `structure pull` first")

// Store хранит черновики структуры курсов в каталоге, по файлу на курс.
type Store struct {
	dir string
}

func NewStore(dir string) *Store {
	return &Store{dir: dir}
}

func (s *Store) path(courseID string) (string, error) {
	id, err := uuid.Parse(courseID)
	if err != nil {
		return "", fmt.Errorf("invalid course id %q", courseID)
	}
	return filepath.Join(s.dir, id.String()+".json"), nil
}

func (s *Store) Load(courseID string) (coursetree.Snapshot, error) {
	p, err := s.path(courseID)
	if err != nil {
		return coursetree.Snapshot{}, err
	}
	data, err := os.ReadFile(p)
	if errors.Is(err, os.ErrNotExist) {
		return coursetree.Snapshot{}, ErrNoDraft
	}
	if err != nil {
		return coursetree.Snapshot{}, err
	}

	var snap coursetree.Snapshot
	if err := json.Unmarshal(data, &snap); err != nil {
		return coursetree.Snapshot{}, fmt.Errorf("corrupt draft %s: %w", p, err)
	}
	return snap, nil
}

// Save пишет через временный файл, чтобы оборванная запись не испортила черновик.
func (s *Store) Save(courseID string, snap coursetree.Snapshot) error {
	p, err := s.path(courseID)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return err
	}
	if snap.Sessions == nil {
		snap.Sessions = []coursetree.Session{}
	}
	data, err := json.MarshalIndent(snap, "", "  ")
	if err != nil {
		return err
	}

	tmp := p + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return err
	}
	return os.Rename(tmp, p)
}

func (s *Store) Remove(courseID string) error {
	p, err := s.path(courseID)
	if err != nil {
		return err
	}
	if err := os.Remove(p); err != nil && !errors.Is(err, os.ErrNotExist) {
		return err
	}
	return nil
}

const tokenFile = "token"

// SaveToken запоминает access-токен после login.
func (s *Store) SaveToken(token string) error {
	if err := os.MkdirAll(s.dir, 0o700); err != nil {
		return err
	}
	return os.WriteFile(filepath.Join(s.dir, tokenFile), []byte(token), 0o600)
}

func (s *Store) Token() string {
	data, err := os.ReadFile(filepath.Join(s.dir, tokenFile))
	if err != nil {
		return ""
	}
	return strings.TrimSpace(string(data))
}
