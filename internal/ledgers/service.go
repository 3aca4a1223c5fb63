package ledgers

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/cleared-dev/ledgertree/internal/model"
)

// File is the workspace-relative path of the tenant ledger file.
var File = filepath.Join("ledgers", "ledgers.csv")

var (
	// ErrNotFound is returned when a referenced ledger does not exist.
	ErrNotFound = errors.New("ledger not found")
	// ErrInvalid is returned when a new ledger fails validation.
	ErrInvalid = errors.New("invalid ledger")
)

// Service is an in-memory arena of tenant ledgers keyed by id. Parent
// references are resolved by lookup, never by pointer.
type Service struct {
	ledgers []model.TenantLedger
	byID    map[int64]model.TenantLedger
}

// NewService creates a Service from a slice of ledgers. The first ledger
// wins when ids repeat.
func NewService(ledgers []model.TenantLedger) *Service {
	byID := make(map[int64]model.TenantLedger, len(ledgers))
	for _, l := range ledgers {
		if _, dup := byID[l.ID]; !dup {
			byID[l.ID] = l
		}
	}
	return &Service{ledgers: ledgers, byID: byID}
}

// Load reads ledgers/ledgers.csv from a workspace root. A missing file is an
// empty ledger set.
func Load(root string) (*Service, error) {
	f, err := os.Open(filepath.Join(root, File))
	if errors.Is(err, fs.ErrNotExist) {
		return NewService(nil), nil
	}
	if err != nil {
		return nil, fmt.Errorf("opening ledgers: %w", err)
	}
	defer f.Close()

	ledgers, err := ReadLedgers(f)
	if err != nil {
		return nil, fmt.Errorf("reading ledgers: %w", err)
	}
	return NewService(ledgers), nil
}

// All returns all ledgers in file order.
func (s *Service) All() []model.TenantLedger {
	return s.ledgers
}

// Get returns a ledger by id.
func (s *Service) Get(id int64) (model.TenantLedger, bool) {
	l, ok := s.byID[id]
	return l, ok
}

// Exists reports whether a ledger id exists.
func (s *Service) Exists(id int64) bool {
	_, ok := s.byID[id]
	return ok
}

// Children returns the ledgers that declare id as their parent.
func (s *Service) Children(id int64) []model.TenantLedger {
	var result []model.TenantLedger
	for _, l := range s.ledgers {
		if l.ParentLedgerID != nil && *l.ParentLedgerID == id {
			result = append(result, l)
		}
	}
	return result
}

// NextID returns one past the largest id in the arena.
func (s *Service) NextID() int64 {
	var maxID int64
	for id := range s.byID {
		if id > maxID {
			maxID = id
		}
	}
	return maxID + 1
}

// Add assigns the next id to n and appends it. The parent, when given, must
// already exist.
func (s *Service) Add(n model.NewLedger) (model.TenantLedger, error) {
	n.Name = strings.TrimSpace(n.Name)
	if n.Name == "" {
		return model.TenantLedger{}, fmt.Errorf("%w: name is required", ErrInvalid)
	}
	if n.ParentLedgerID != nil && !s.Exists(*n.ParentLedgerID) {
		return model.TenantLedger{}, fmt.Errorf("parent %d: %w", *n.ParentLedgerID, ErrNotFound)
	}

	l := n.Ledger(s.NextID())
	s.ledgers = append(s.ledgers, l)
	s.byID[l.ID] = l
	return l, nil
}

// Save writes the arena to ledgers/ledgers.csv under root.
func (s *Service) Save(root string) error {
	path := filepath.Join(root, File)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("creating ledgers dir: %w", err)
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating ledgers file: %w", err)
	}
	defer f.Close()

	if err := WriteLedgers(f, s.ledgers); err != nil {
		return fmt.Errorf("writing ledgers: %w", err)
	}
	return nil
}
