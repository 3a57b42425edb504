package record

import (
	"errors"
	"reflect"
	"testing"

	"github.com/aberghammer-analytics/nbastatgo/internal/common"
)

func TestNew_RejectsRaggedColumns(t *testing.T) {
	_, err := New(
		Column{Name: "player_id", Values: []any{"0000203507", "0001629027"}},
		Column{Name: "pts", Values: []any{int64(31)}},
	)
	if !errors.Is(err, common.ErrRaggedColumns) {
		t.Fatalf("New with ragged columns: error = %v, want ErrRaggedColumns", err)
	}
}

func TestNew_RejectsDuplicateNames(t *testing.T) {
	_, err := New(
		Column{Name: "pts", Values: []any{int64(31)}},
		Column{Name: "pts", Values: []any{int64(28)}},
	)
	if !errors.Is(err, common.ErrDuplicateColumn) {
		t.Fatalf("New with duplicate names: error = %v, want ErrDuplicateColumn", err)
	}
}

func TestRecord_Shape(t *testing.T) {
	r := MustNew(
		Column{Name: "player_id", Values: []any{"0000203507", "0001629027"}},
		Column{Name: "pts", Values: []any{int64(31), int64(28)}},
	)

	if got := r.NumRows(); got != 2 {
		t.Errorf("NumRows() = %d, want 2", got)
	}
	if got := r.NumColumns(); got != 2 {
		t.Errorf("NumColumns() = %d, want 2", got)
	}
	want := []string{"player_id", "pts"}
	if got := r.ColumnNames(); !reflect.DeepEqual(got, want) {
		t.Errorf("ColumnNames() = %v, want %v", got, want)
	}
}

func TestRecord_Lookup(t *testing.T) {
	r := MustNew(Column{Name: "Game_Date", Values: []any{"2024-01-15"}})

	if name, ok := r.Lookup("game_date"); !ok || name != "Game_Date" {
		t.Errorf("Lookup(game_date) = (%q, %v), want (Game_Date, true)", name, ok)
	}
	if _, ok := r.Lookup("missing"); ok {
		t.Error("Lookup(missing) found a column")
	}
}

func TestRecord_ValuesUnknownColumn(t *testing.T) {
	r := MustNew(Column{Name: "pts", Values: []any{int64(10)}})
	_, err := r.Values("reb")
	if !errors.Is(err, common.ErrColumnNotFound) {
		t.Fatalf("Values(reb) error = %v, want ErrColumnNotFound", err)
	}
}

func TestRecord_RenameColumn(t *testing.T) {
	r := MustNew(
		Column{Name: "GAMEID", Values: []any{"0022301148"}},
		Column{Name: "game_id", Values: []any{"0022301148"}},
	)

	err := r.RenameColumn("GAMEID", "game_id")
	if !errors.Is(err, common.ErrDuplicateColumn) {
		t.Fatalf("rename onto existing name: error = %v, want ErrDuplicateColumn", err)
	}

	if err := r.RenameColumn("GAMEID", "raw_game_id"); err != nil {
		t.Fatalf("rename: %v", err)
	}
	want := []string{"raw_game_id", "game_id"}
	if got := r.ColumnNames(); !reflect.DeepEqual(got, want) {
		t.Errorf("ColumnNames() after rename = %v, want %v", got, want)
	}
}

func TestRecord_SetValuesPreservesPosition(t *testing.T) {
	r := MustNew(
		Column{Name: "a", Values: []any{int64(1)}},
		Column{Name: "b", Values: []any{int64(2)}},
	)

	if err := r.SetValues("a", []any{int64(9)}); err != nil {
		t.Fatalf("SetValues: %v", err)
	}
	if got := r.ColumnNames()[0]; got != "a" {
		t.Errorf("first column = %q, want a", got)
	}
	values, _ := r.Values("a")
	if values[0] != int64(9) {
		t.Errorf("a[0] = %v, want 9", values[0])
	}

	err := r.SetValues("a", []any{int64(1), int64(2)})
	if !errors.Is(err, common.ErrRaggedColumns) {
		t.Errorf("SetValues wrong length: error = %v, want ErrRaggedColumns", err)
	}
}

func TestRecord_CloneIsDeep(t *testing.T) {
	r := MustNew(Column{Name: "pts", Values: []any{int64(10), int64(20)}})
	clone := r.Clone()

	values, _ := clone.Values("pts")
	values[0] = int64(99)

	original, _ := r.Values("pts")
	if original[0] != int64(10) {
		t.Errorf("mutating clone changed original: %v", original[0])
	}
}

func TestRecord_Rows(t *testing.T) {
	r := MustNew(
		Column{Name: "player_id", Values: []any{"0000203507"}},
		Column{Name: "pts", Values: []any{int64(31)}},
	)
	rows := r.Rows()
	if len(rows) != 1 {
		t.Fatalf("Rows() returned %d rows, want 1", len(rows))
	}
	if rows[0]["player_id"] != "0000203507" || rows[0]["pts"] != int64(31) {
		t.Errorf("Rows()[0] = %v", rows[0])
	}
}

func TestIsNull(t *testing.T) {
	tests := []struct {
		value any
		want  bool
	}{
		{nil, true},
		{"", true},
		{"0", false},
		{int64(0), false},
		{0.0, false},
		{"W", false},
	}
	for _, tt := range tests {
		if got := IsNull(tt.value); got != tt.want {
			t.Errorf("IsNull(%v) = %v, want %v", tt.value, got, tt.want)
		}
	}
}
