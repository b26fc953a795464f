// Package save persists player progression: best stars per level, XP and
// the unlocked-level frontier.
//
// The store does a plain read-modify-write against its backend. It assumes
// one active player session per backend and does not guard against two
// callers completing levels at the same time.
package save

import (
	"encoding/json"
	"fmt"
	"io"
	"log"
	"strings"
)

// Key is the backend key holding the serialized State.
const Key = "mathbuilder_save"

const (
	DefaultLevelCount = 10
	DefaultXPPerStar  = 10
)

// Completion is the outcome of finishing a level.
type Completion struct {
	Stars int   `json:"stars"`
	Save  State `json:"save"`
}

type Store struct {
	backend    Backend
	key        string
	levelCount int
	xpPerStar  int
	logger     *log.Logger
}

type Option func(*Store)

// WithLevelCount sets the number of levels; it bounds levelsUnlocked and
// the accepted levelStars keys.
func WithLevelCount(n int) Option {
	return func(s *Store) {
		if n > 0 {
			s.levelCount = n
		}
	}
}

func WithKey(key string) Option {
	return func(s *Store) {
		if key != "" {
			s.key = key
		}
	}
}

func WithXPPerStar(xp int) Option {
	return func(s *Store) {
		if xp > 0 {
			s.xpPerStar = xp
		}
	}
}

func WithLogger(l *log.Logger) Option {
	return func(s *Store) {
		if l != nil {
			s.logger = l
		}
	}
}

func NewStore(backend Backend, opts ...Option) *Store {
	s := &Store{
		backend:    backend,
		key:        Key,
		levelCount: DefaultLevelCount,
		xpPerStar:  DefaultXPPerStar,
		logger:     log.New(io.Discard, "", 0),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// LevelCount returns the configured number of levels.
func (s *Store) LevelCount() int { return s.levelCount }

// Load returns the persisted state. A missing, unparsable or tampered blob
// never fails: bad fields fall back to their defaults.
func (s *Store) Load() State {
	raw, ok := s.backend.Get(s.key)
	if !ok || raw == "" {
		return DefaultState()
	}
	state, rejected := sanitize(raw, limits{levelCount: s.levelCount})
	if len(rejected) > 0 {
		s.logger.Printf("save: discarded stored fields: %s", strings.Join(rejected, ", "))
	}
	return state
}

// Write replaces the persisted blob with st.
func (s *Store) Write(st State) error {
	if st.LevelStars == nil {
		st.LevelStars = map[string]int{}
	}
	b, err := json.Marshal(st)
	if err != nil {
		return fmt.Errorf("save: marshal: %w", err)
	}
	if err := s.backend.Set(s.key, string(b)); err != nil {
		return fmt.Errorf("save: write: %w", err)
	}
	return nil
}

// Clear deletes the persisted blob.
func (s *Store) Clear() error {
	if err := s.backend.Remove(s.key); err != nil {
		return fmt.Errorf("save: clear: %w", err)
	}
	return nil
}

// CalculateStars rates a level by wrong answers: none earns 3 stars, one or
// two earn 2, more earn 1. Negative counts are treated as zero.
func CalculateStars(wrongAttempts int) int {
	switch {
	case wrongAttempts <= 0:
		return 3
	case wrongAttempts <= 2:
		return 2
	default:
		return 1
	}
}

// CompleteLevel records a finished level. The best star count per level is
// kept, the next level is unlocked when level is the frontier, and XP is
// awarded for this attempt's stars whether or not they improved the record.
func (s *Store) CompleteLevel(level, wrongAttempts int) (Completion, error) {
	if level < 1 || level > s.levelCount {
		return Completion{}, fmt.Errorf("save: level %d out of range 1..%d", level, s.levelCount)
	}

	st := s.Load()
	stars := CalculateStars(wrongAttempts)

	key := LevelKey(level)
	if stars > st.LevelStars[key] {
		st.LevelStars[key] = stars
	}
	st.TotalStars = sumStars(st.LevelStars)

	if level >= st.LevelsUnlocked {
		st.LevelsUnlocked = level + 1
	}

	st.XP += stars * s.xpPerStar

	if err := s.Write(st); err != nil {
		return Completion{}, err
	}
	s.logger.Printf("save: level %d complete: %d stars, %d xp total", level, stars, st.XP)
	return Completion{Stars: stars, Save: st}, nil
}
