package history

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/robalobadob/wordgrid/internal/game"
)

func openTemp(t *testing.T, name string) (*SQLite, string) {
	t.Helper()
	dsn := filepath.Join(t.TempDir(), name)
	j, err := Open(context.Background(), dsn)
	if err != nil {
		t.Fatalf("open journal: %v", err)
	}
	t.Cleanup(func() { _ = j.Close() })
	return j, dsn
}

func TestJournalLeaderboard(t *testing.T) {
	ctx := context.Background()
	j, _ := openTemp(t, "wordgrid.db")

	board := []string{"A", "B", "C", "D", "E", "F", "G", "H", "I", "J", "K", "L", "M", "N", "O", "P"}
	for id := 0; id < 3; id++ {
		if err := j.RecordGame(ctx, id, board); err != nil {
			t.Fatalf("record game %d: %v", id, err)
		}
	}
	if err := j.RecordDictionary(ctx, 1, 10); err != nil {
		t.Fatalf("record dictionary: %v", err)
	}
	moves := []struct {
		game, move int
		m          game.Move
	}{
		{1, 0, game.Move{Tiles: []int{1, 2, 3}, Word: "ABC", Points: 1}},
		{1, 1, game.Move{Tiles: []int{1, 2, 3, 4}, Word: "ABCD", Points: 2}},
		{2, 0, game.Move{Tiles: []int{5, 6, 7, 8, 12}, Word: "EFGHL", Points: 4}},
	}
	for _, mv := range moves {
		if err := j.RecordMove(ctx, mv.game, mv.move, mv.m); err != nil {
			t.Fatalf("record move: %v", err)
		}
	}

	rows, err := j.Leaderboard(ctx, 0)
	if err != nil {
		t.Fatalf("leaderboard: %v", err)
	}
	if len(rows) != 3 {
		t.Fatalf("expected 3 rows, got %d", len(rows))
	}
	want := []LBRow{
		{RunID: j.RunID(), GameID: 2, Moves: 1, Points: 4},
		{RunID: j.RunID(), GameID: 1, Moves: 2, Points: 3},
		{RunID: j.RunID(), GameID: 0, Moves: 0, Points: 0},
	}
	for i := range want {
		if rows[i] != want[i] {
			t.Fatalf("row %d: expected %+v, got %+v", i, want[i], rows[i])
		}
	}

	top, err := j.Leaderboard(ctx, 1)
	if err != nil || len(top) != 1 || top[0].GameID != 2 {
		t.Fatalf("expected only game 2, got %+v %v", top, err)
	}
}

func TestLeaderboardClampsLimit(t *testing.T) {
	ctx := context.Background()
	j, _ := openTemp(t, "clamp.db")
	for id := 0; id < maxLeaderboardLimit+5; id++ {
		if err := j.RecordGame(ctx, id, []string{"A"}); err != nil {
			t.Fatalf("record game %d: %v", id, err)
		}
	}
	for _, limit := range []int{1 << 62, 100000000, maxLeaderboardLimit + 1} {
		rows, err := j.Leaderboard(ctx, limit)
		if err != nil {
			t.Fatalf("leaderboard(%d): %v", limit, err)
		}
		if len(rows) != maxLeaderboardLimit {
			t.Fatalf("leaderboard(%d): expected %d rows, got %d", limit, maxLeaderboardLimit, len(rows))
		}
	}
	if rows, _ := j.Leaderboard(ctx, -3); len(rows) != defaultLeaderboardLimit {
		t.Fatalf("expected default of %d rows, got %d", defaultLeaderboardLimit, len(rows))
	}
}

func TestLeaderboardEmpty(t *testing.T) {
	j, _ := openTemp(t, "empty.db")
	rows, err := j.Leaderboard(context.Background(), 5)
	if err != nil || rows == nil || len(rows) != 0 {
		t.Fatalf("expected empty non-nil rows, got %v %v", rows, err)
	}
}

func TestJournalMoveNeedsGame(t *testing.T) {
	j, _ := openTemp(t, "fk.db")
	err := j.RecordMove(context.Background(), 7, 0, game.Move{Tiles: []int{1, 2, 3}, Word: "ABC", Points: 1})
	if err == nil {
		t.Fatal("expected foreign key failure for unknown game")
	}
}

func TestReopenKeepsHistoryWithNewRun(t *testing.T) {
	ctx := context.Background()
	j1, dsn := openTemp(t, "reopen.db")
	if err := j1.RecordGame(ctx, 0, []string{"A"}); err != nil {
		t.Fatalf("record game: %v", err)
	}
	_ = j1.Close()

	j2, err := Open(ctx, dsn)
	if err != nil {
		t.Fatalf("reopen: %v", err)
	}
	defer j2.Close()
	if j2.RunID() == j1.RunID() {
		t.Fatal("expected a fresh run id")
	}
	// Game 0 of the new run does not clash with game 0 of the old one.
	if err := j2.RecordGame(ctx, 0, []string{"B"}); err != nil {
		t.Fatalf("record game in new run: %v", err)
	}
	rows, err := j2.Leaderboard(ctx, 10)
	if err != nil || len(rows) != 2 {
		t.Fatalf("expected both runs listed, got %+v %v", rows, err)
	}
}

func TestNop(t *testing.T) {
	var j Journal = Nop{}
	rows, err := j.Leaderboard(context.Background(), 5)
	if err != nil || rows == nil || len(rows) != 0 {
		t.Fatalf("unexpected nop leaderboard %v %v", rows, err)
	}
}
