package board

import (
	"strings"
	"testing"

	"dragchess/src/logx"
)

func newBuiltBoard(t *testing.T) *Board {
	t.Helper()
	b := NewBoard(logx.NewNop())
	if err := b.Build(); err != nil {
		t.Fatal(err)
	}
	return b
}

func TestBuild(t *testing.T) {
	b := newBuiltBoard(t)

	if !b.Built() {
		t.Fatal("board not marked built")
	}
	seen := map[string]bool{}
	for idx, sq := range b.Squares() {
		if sq == nil {
			t.Fatalf("square %d missing", idx)
		}
		if sq.Index != idx {
			t.Errorf("square %d has index %d", idx, sq.Index)
		}
		if seen[sq.ID] {
			t.Errorf("duplicate square id %q", sq.ID)
		}
		seen[sq.ID] = true
		if !strings.Contains(sq.Tooltip, sq.ID) {
			t.Errorf("tooltip %q misses id %q", sq.Tooltip, sq.ID)
		}
	}

	cases := []struct {
		id    string
		index int
		light bool
	}{
		{"a1", 0, false},
		{"e4", 28, true},
		{"h8", 63, false},
	}
	for _, c := range cases {
		sq, err := b.SquareByID(c.id)
		if err != nil {
			t.Fatal(err)
		}
		if sq.Index != c.index || sq.Light != c.light {
			t.Errorf("%s: got index %d light %v", c.id, sq.Index, sq.Light)
		}
	}
}

func TestBuildTwice(t *testing.T) {
	b := newBuiltBoard(t)
	if err := b.Build(); err != ErrBoardBuilt {
		t.Fatalf("want ErrBoardBuilt, got %v", err)
	}
}

func TestSquareByIDUnknown(t *testing.T) {
	b := newBuiltBoard(t)
	if _, err := b.SquareByID("z9"); err == nil {
		t.Fatal("expected error for unknown square")
	}
}

func TestSyncRequiresBuild(t *testing.T) {
	b := NewBoard(logx.NewNop())
	if err := b.Sync(nil); err != ErrBoardNotBuilt {
		t.Fatalf("want ErrBoardNotBuilt, got %v", err)
	}
	if err := b.MarkMovable(nil); err != ErrBoardNotBuilt {
		t.Fatalf("want ErrBoardNotBuilt, got %v", err)
	}
}
