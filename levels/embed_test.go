package levels

import (
	"strings"
	"testing"
)

func TestEmbeddedLevelsValidate(t *testing.T) {
	names, err := Names()
	if err != nil {
		t.Fatalf("Names: %v", err)
	}
	if len(names) != LevelCount {
		t.Fatalf("expected %d embedded levels, got %d", LevelCount, len(names))
	}
	for _, name := range names {
		t.Run(name, func(t *testing.T) {
			data, err := Read(name)
			if err != nil {
				t.Fatalf("Read: %v", err)
			}
			if res := ValidateJSON(data); !res.Valid {
				t.Fatalf("%s is invalid: %v", name, res.Errors)
			}
			lvl, err := Parse(data)
			if err != nil {
				t.Fatalf("Parse: %v", err)
			}
			if warnings := Lint(lvl); len(warnings) != 0 {
				t.Fatalf("%s has lint warnings: %v", name, warnings)
			}
		})
	}
}

func TestLoadByNumber(t *testing.T) {
	lvl, err := Load(1)
	if err != nil {
		t.Fatalf("Load(1): %v", err)
	}
	if lvl.Name == "" || len(lvl.Platforms) == 0 {
		t.Fatalf("unexpected level 1: %+v", lvl)
	}
	for _, g := range lvl.Gaps {
		if g.CorrectAnswer != g.Width {
			t.Fatalf("gap answer %d != width %d", g.CorrectAnswer, g.Width)
		}
	}

	for _, n := range []int{0, -1, LevelCount + 1} {
		if _, err := Load(n); err == nil || !strings.Contains(err.Error(), "invalid level number") {
			t.Fatalf("Load(%d) should fail with invalid level number, got %v", n, err)
		}
	}
}

func TestFileName(t *testing.T) {
	cases := map[int]string{
		1:  "world1/level01.json",
		10: "world1/level10.json",
	}
	for n, want := range cases {
		if got := FileName(n); got != want {
			t.Fatalf("FileName(%d) = %q, want %q", n, got, want)
		}
	}
	if got := cleanLevelPath("levels/world1/level02.json"); got != "world1/level02.json" {
		t.Fatalf("cleanLevelPath = %q", got)
	}
}

func TestReadMissing(t *testing.T) {
	if _, err := Read("world1/level99.json"); err == nil {
		t.Fatalf("expected error reading a missing level")
	}
}
