// Package session tracks one attempt at a level: which gaps have been
// bridged, how many wrong answers were given, and the result once the goal
// is reached.
package session

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/milk9111/mathbuilder/grid"
	"github.com/milk9111/mathbuilder/levels"
	"github.com/milk9111/mathbuilder/save"
	"github.com/milk9111/mathbuilder/titles"
)

type Verdict int

const (
	// VerdictIgnored means the input was not an answer (blank, not a
	// number, below 1) or the gap was not open. It does not count.
	VerdictIgnored Verdict = iota
	VerdictCorrect
	VerdictTooShort
	VerdictTooLong
)

func (v Verdict) Message() string {
	switch v {
	case VerdictCorrect:
		return "Correct!"
	case VerdictTooShort:
		return "Too Short! Try again."
	case VerdictTooLong:
		return "Too Long! Try again."
	default:
		return ""
	}
}

func (v Verdict) String() string {
	switch v {
	case VerdictCorrect:
		return "correct"
	case VerdictTooShort:
		return "too_short"
	case VerdictTooLong:
		return "too_long"
	default:
		return "ignored"
	}
}

// Summary is what the level-complete screen shows.
type Summary struct {
	Level    int
	Stars    int
	XPEarned int
	TotalXP  int
	Title    string
	Save     save.State
}

type Session struct {
	level   *levels.Level
	number  int
	mapper  grid.Mapper
	solved  []bool
	wrong   int
	summary *Summary

	// FallMargin is how far below the grid, in pixels, the player may drop
	// before the level restarts.
	FallMargin float64
}

func New(level *levels.Level, number int) *Session {
	return &Session{
		level:      level,
		number:     number,
		mapper:     grid.New(grid.TileSize),
		solved:     make([]bool, len(level.Gaps)),
		FallMargin: 100,
	}
}

// WithMapper replaces the coordinate mapper, e.g. for a non-default tile size.
func (s *Session) WithMapper(m grid.Mapper) *Session {
	s.mapper = m
	return s
}

func (s *Session) Level() *levels.Level { return s.level }

func (s *Session) Number() int { return s.number }

func (s *Session) WrongAttempts() int { return s.wrong }

func (s *Session) Solved(gap int) bool {
	return gap >= 0 && gap < len(s.solved) && s.solved[gap]
}

func (s *Session) AllSolved() bool {
	for _, ok := range s.solved {
		if !ok {
			return false
		}
	}
	return true
}

// NextUnsolved returns the first gap, in level order, still needing an answer.
func (s *Session) NextUnsolved() (int, bool) {
	for i, ok := range s.solved {
		if !ok {
			return i, true
		}
	}
	return 0, false
}

// Submit checks an answer typed for gap. Wrong answers count against the
// star rating; ignored input does not.
func (s *Session) Submit(gap int, input string) Verdict {
	if s.summary != nil || gap < 0 || gap >= len(s.solved) || s.solved[gap] {
		return VerdictIgnored
	}
	answer, ok := parseAnswer(input)
	if !ok || answer < 1 {
		return VerdictIgnored
	}

	correct := s.level.Gaps[gap].CorrectAnswer
	switch {
	case answer == correct:
		s.solved[gap] = true
		return VerdictCorrect
	case answer < correct:
		s.wrong++
		return VerdictTooShort
	default:
		s.wrong++
		return VerdictTooLong
	}
}

// parseAnswer reads the integer at the start of input, after leading
// space and an optional sign. Anything after the digits is ignored, so
// "3abc" and "3.5" both read as 3.
func parseAnswer(input string) (int, bool) {
	s := strings.TrimSpace(input)
	end := 0
	if end < len(s) && (s[end] == '+' || s[end] == '-') {
		end++
	}
	digits := end
	for end < len(s) && s[end] >= '0' && s[end] <= '9' {
		end++
	}
	if end == digits {
		return 0, false
	}
	n, err := strconv.Atoi(s[:end])
	if err != nil {
		return 0, false
	}
	return n, true
}

// FellOut reports whether a player at pixel height y has dropped below the level.
func (s *Session) FellOut(y float64) bool {
	return y > s.mapper.TileToPixel(s.level.GridHeight)+s.FallMargin
}

// Complete records the result in store. Later calls return the first
// summary without writing again.
func (s *Session) Complete(store *save.Store) (Summary, error) {
	if s.summary != nil {
		return *s.summary, nil
	}
	if !s.AllSolved() {
		return Summary{}, fmt.Errorf("session: level %d has unsolved gaps", s.number)
	}

	res, err := store.CompleteLevel(s.number, s.wrong)
	if err != nil {
		return Summary{}, fmt.Errorf("session: complete level %d: %w", s.number, err)
	}

	s.summary = &Summary{
		Level:    s.number,
		Stars:    res.Stars,
		XPEarned: len(s.level.Gaps)*10 + res.Stars*5,
		TotalXP:  res.Save.XP,
		Title:    titles.ForXP(res.Save.XP),
		Save:     res.Save,
	}
	return *s.summary, nil
}
