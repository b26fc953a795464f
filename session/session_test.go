package session

import (
	"testing"

	"github.com/milk9111/mathbuilder/grid"
	"github.com/milk9111/mathbuilder/levels"
	"github.com/milk9111/mathbuilder/prefabs"
	"github.com/milk9111/mathbuilder/save"
)

func twoGapLevel() *levels.Level {
	return &levels.Level{
		Name:       "Two Gaps",
		GridWidth:  20,
		GridHeight: 9,
		Platforms: []levels.Platform{
			{GridX: 0, GridY: 8, Width: 4, Tile: "grass-top"},
			{GridX: 7, GridY: 8, Width: 4, Tile: "grass-top"},
			{GridX: 13, GridY: 8, Width: 7, Tile: "grass-top"},
		},
		Gaps: []levels.Gap{
			{GridX: 4, GridY: 8, Width: 3, CorrectAnswer: 3},
			{GridX: 11, GridY: 8, Width: 2, CorrectAnswer: 2},
		},
		Start: levels.GridPos{GridX: 1, GridY: 7},
		Goal:  levels.GridPos{GridX: 18, GridY: 7},
	}
}

func TestSubmitVerdicts(t *testing.T) {
	cases := []struct {
		name      string
		input     string
		want      Verdict
		wrongSeen int
	}{
		{"blank", "", VerdictIgnored, 0},
		{"letters", "abc", VerdictIgnored, 0},
		{"zero", "0", VerdictIgnored, 0},
		{"negative", "-3", VerdictIgnored, 0},
		{"too_short", "2", VerdictTooShort, 1},
		{"too_long", "7", VerdictTooLong, 1},
		{"correct_padded", " 3 ", VerdictCorrect, 0},
		{"trailing_letters", "3abc", VerdictCorrect, 0},
		{"decimal_truncated", "3.5", VerdictCorrect, 0},
		{"leading_plus", "+2", VerdictTooShort, 1},
		{"trailing_letters_short", "2x", VerdictTooShort, 1},
		{"sign_only", "-", VerdictIgnored, 0},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			s := New(twoGapLevel(), 1)
			if got := s.Submit(0, c.input); got != c.want {
				t.Fatalf("Submit(%q) = %v, want %v", c.input, got, c.want)
			}
			if s.WrongAttempts() != c.wrongSeen {
				t.Fatalf("wrong attempts = %d, want %d", s.WrongAttempts(), c.wrongSeen)
			}
		})
	}
}

func TestParseAnswer(t *testing.T) {
	cases := []struct {
		input string
		want  int
		ok    bool
	}{
		{"12", 12, true},
		{"  7  ", 7, true},
		{"4.9", 4, true},
		{"5 blocks", 5, true},
		{"-3", -3, true},
		{"x5", 0, false},
		{"", 0, false},
		{"99999999999999999999999", 0, false},
	}
	for _, c := range cases {
		got, ok := parseAnswer(c.input)
		if got != c.want || ok != c.ok {
			t.Fatalf("parseAnswer(%q) = %d, %v, want %d, %v", c.input, got, ok, c.want, c.ok)
		}
	}
}

func TestSubmitToSolvedOrMissingGap(t *testing.T) {
	s := New(twoGapLevel(), 1)
	if s.Submit(0, "3") != VerdictCorrect {
		t.Fatalf("expected correct answer")
	}
	if s.Submit(0, "1") != VerdictIgnored {
		t.Fatalf("solved gap should ignore further answers")
	}
	if s.Submit(5, "1") != VerdictIgnored || s.Submit(-1, "1") != VerdictIgnored {
		t.Fatalf("out of range gap should be ignored")
	}
	if s.WrongAttempts() != 0 {
		t.Fatalf("ignored submissions must not count")
	}
	if next, ok := s.NextUnsolved(); !ok || next != 1 {
		t.Fatalf("NextUnsolved = %d, %v", next, ok)
	}
}

func TestVerdictMessages(t *testing.T) {
	cases := map[Verdict]string{
		VerdictCorrect:  "Correct!",
		VerdictTooShort: "Too Short! Try again.",
		VerdictTooLong:  "Too Long! Try again.",
		VerdictIgnored:  "",
	}
	for v, want := range cases {
		if got := v.Message(); got != want {
			t.Fatalf("%v.Message() = %q, want %q", v, got, want)
		}
	}
}

func TestCompleteRequiresAllGaps(t *testing.T) {
	store := save.NewStore(save.NewMemoryBackend())
	s := New(twoGapLevel(), 1)
	s.Submit(0, "3")
	if _, err := s.Complete(store); err == nil {
		t.Fatalf("expected error completing with an unsolved gap")
	}
	if st := store.Load(); st.XP != 0 {
		t.Fatalf("nothing should be saved, got %+v", st)
	}
}

func TestCompletePersistsAndIsIdempotent(t *testing.T) {
	store := save.NewStore(save.NewMemoryBackend())
	s := New(twoGapLevel(), 1)

	s.Submit(0, "4")
	s.Submit(0, "3")
	s.Submit(1, "2")
	if !s.AllSolved() {
		t.Fatalf("expected all gaps solved")
	}
	if _, ok := s.NextUnsolved(); ok {
		t.Fatalf("NextUnsolved should report none left")
	}

	sum, err := s.Complete(store)
	if err != nil {
		t.Fatalf("Complete: %v", err)
	}
	if sum.Stars != 2 || sum.TotalXP != 20 || sum.XPEarned != 2*10+2*5 || sum.Title != "Newbie" {
		t.Fatalf("unexpected summary %+v", sum)
	}
	if sum.Save.LevelsUnlocked != 2 || sum.Save.StarsFor(1) != 2 {
		t.Fatalf("unexpected saved state %+v", sum.Save)
	}

	again, err := s.Complete(store)
	if err != nil {
		t.Fatalf("second Complete: %v", err)
	}
	if again.TotalXP != sum.TotalXP || store.Load().XP != 20 {
		t.Fatalf("second Complete must not award XP again")
	}
	if s.Submit(1, "9") != VerdictIgnored {
		t.Fatalf("completed session should ignore answers")
	}
}

func TestCompleteLevelWithoutGaps(t *testing.T) {
	lvl := twoGapLevel()
	lvl.Gaps = nil
	store := save.NewStore(save.NewMemoryBackend())
	sum, err := New(lvl, 2).Complete(store)
	if err != nil {
		t.Fatalf("Complete: %v", err)
	}
	if sum.Stars != 3 || sum.XPEarned != 15 || sum.Save.LevelsUnlocked != 3 {
		t.Fatalf("unexpected summary %+v", sum)
	}
}

func TestFellOut(t *testing.T) {
	s := New(twoGapLevel(), 1)
	limit := 9*grid.TileSize + 100.0
	if s.FellOut(limit) {
		t.Fatalf("exactly at the limit is still in bounds")
	}
	if !s.FellOut(limit + 1) {
		t.Fatalf("below the limit should count as a fall")
	}
	s.WithMapper(grid.New(32))
	if !s.FellOut(9*32 + 101) {
		t.Fatalf("custom mapper should change the fall limit")
	}
}

func TestBridgeAnimation(t *testing.T) {
	gap := levels.Gap{GridX: 4, GridY: 8, Width: 3, CorrectAnswer: 3}
	spec := prefabs.BridgeSpec{BlockDuration: 0.2, BlockStagger: 0.08, Ease: "linear"}
	b := NewBridge(gap, grid.New(grid.TileSize), spec)

	if len(b.Blocks) != 3 {
		t.Fatalf("expected 3 blocks, got %d", len(b.Blocks))
	}
	if b.Blocks[0].Center.X != grid.TileToPixelCenter(4) || b.Blocks[0].Center.Y != grid.TileToPixelCenter(8) {
		t.Fatalf("unexpected first block center %+v", b.Blocks[0].Center)
	}

	if b.Update(0.1) {
		t.Fatalf("bridge should still be animating")
	}
	if b.Blocks[0].Scale <= b.Blocks[1].Scale || b.Blocks[2].Scale != 0 {
		t.Fatalf("blocks should pop in left to right, got %+v", b.Blocks)
	}

	if !b.Update(1) || !b.Done() {
		t.Fatalf("bridge should be finished")
	}
	for i, blk := range b.Blocks {
		if blk.Scale != 1 {
			t.Fatalf("block %d scale = %v, want 1", i, blk.Scale)
		}
	}
}

func TestEasingFallback(t *testing.T) {
	if Easing("nope") == nil || Easing("linear") == nil {
		t.Fatalf("Easing must always return a function")
	}
}
