package snapshot

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/ksz8863/ksz8863-go/pkg/register"
)

// FileVersion is the current version of the snapshot file format.
const FileVersion = 1

// ErrTierMismatch is returned when an entry is restored into a map of
// another tier.
var ErrTierMismatch = errors.New("snapshot tier mismatch")

// File contains the saved register maps.
type File struct {
	// Version is the snapshot file format version.
	Version int `json:"version"`

	// SavedAt is when the snapshot was last saved.
	SavedAt time.Time `json:"saved_at"`

	// Maps holds one entry per saved map.
	Maps []Entry `json:"maps,omitempty"`
}

// Entry is one saved register map.
type Entry struct {
	// Tier is the name of the register bank ("smi" or "miim").
	Tier string `json:"tier"`

	// Scope is the PHY address of a PHY register map.
	Scope *uint8 `json:"scope,omitempty"`

	// Words holds the register words in ascending address order.
	Words []uint16 `json:"words"`
}

// Put adds e to the file, replacing an entry of the same tier and scope.
func (f *File) Put(e Entry) {
	for i := range f.Maps {
		if f.Maps[i].matches(e.Tier, e.Scope) {
			f.Maps[i] = e
			return
		}
	}
	f.Maps = append(f.Maps, e)
}

// Find returns the entry of tier and scope.
func (f *File) Find(tier string, scope *uint8) (Entry, bool) {
	for _, e := range f.Maps {
		if e.matches(tier, scope) {
			return e, true
		}
	}
	return Entry{}, false
}

func (e Entry) matches(tier string, scope *uint8) bool {
	if e.Tier != tier || (e.Scope == nil) != (scope == nil) {
		return false
	}
	return scope == nil || *e.Scope == *scope
}

// Capture returns the words of m as an entry. scope is nil for SMI maps.
func Capture[A register.Code, W register.Word](m *register.Map[A, W], scope *uint8) Entry {
	words := m.Words()
	e := Entry{
		Tier:  m.Bank().Name(),
		Words: make([]uint16, len(words)),
	}
	if scope != nil {
		s := *scope
		e.Scope = &s
	}
	for i, w := range words {
		e.Words[i] = uint16(w)
	}
	return e
}

// Restore loads the words of e into m. It fails with ErrTierMismatch if e
// was captured from another tier and with register.ErrSnapshotLength if the
// word count differs. m is left untouched on error.
func Restore[A register.Code, W register.Word](e Entry, m *register.Map[A, W]) error {
	bank := m.Bank()
	if e.Tier != bank.Name() {
		return fmt.Errorf("%w: entry is %q, map is %q", ErrTierMismatch, e.Tier, bank.Name())
	}
	words := make([]W, len(e.Words))
	mask := bank.Width().Mask()
	for i, w := range e.Words {
		if w&^mask != 0 {
			return fmt.Errorf("word %d (%#x) exceeds %s", i, w, bank.Width())
		}
		words[i] = W(w)
	}
	return m.LoadWords(words)
}

// Store manages persistence of a snapshot to a JSON file.
type Store struct {
	mu   sync.Mutex
	path string
}

// NewStore creates a new snapshot store.
func NewStore(path string) *Store {
	return &Store{path: path}
}

// Path returns the snapshot file path.
func (s *Store) Path() string { return s.path }

// Save persists the snapshot to disk.
func (s *Store) Save(f *File) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}

	f.Version = FileVersion
	if f.SavedAt.IsZero() {
		f.SavedAt = time.Now()
	}

	data, err := json.MarshalIndent(f, "", "  ")
	if err != nil {
		return err
	}

	return os.WriteFile(s.path, data, 0644)
}

// Load reads the snapshot from disk.
// Returns nil, nil if the file doesn't exist.
func (s *Store) Load() (*File, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := os.ReadFile(s.path)
	if os.IsNotExist(err) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	f := &File{}
	if err := json.Unmarshal(data, f); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", s.path, err)
	}
	if f.Version > FileVersion {
		return nil, fmt.Errorf("%s: unsupported snapshot version %d", s.path, f.Version)
	}

	return f, nil
}

// Clear removes the snapshot file.
func (s *Store) Clear() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	err := os.Remove(s.path)
	if os.IsNotExist(err) {
		return nil
	}
	return err
}
