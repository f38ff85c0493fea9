package table

import (
	"errors"
	"fmt"
	"path/filepath"
	"strconv"
	"testing"
)

// fakeSource emits numbered rows for a fixed two-column header
type fakeSource struct {
	n int
}

func (s *fakeSource) Header() []string {
	return []string{"id", "value"}
}

func (s *fakeSource) Next() ([]string, error) {
	s.n++
	return []string{strconv.Itoa(s.n), fmt.Sprintf("value-%d", s.n)}, nil
}

func TestNew_EmptyHeader(t *testing.T) {
	if _, err := New(nil); !errors.Is(err, ErrEmptyHeader) {
		t.Errorf("New(nil): err = %v, want ErrEmptyHeader", err)
	}
}

func TestFromSource_CollectsRows(t *testing.T) {
	tbl, err := FromSource(&fakeSource{}, 25)
	if err != nil {
		t.Fatalf("FromSource: %v", err)
	}

	if tbl.Len() != 25 {
		t.Fatalf("Len = %d, want 25", tbl.Len())
	}
	if got := tbl.Row(0); got[0] != "1" || got[1] != "value-1" {
		t.Errorf("Row(0) = %v", got)
	}
	if got := tbl.Row(24); got[0] != "25" {
		t.Errorf("Row(24) = %v", got)
	}
}

func TestFromSource_RejectsNonPositiveCount(t *testing.T) {
	for _, n := range []int{0, -1, -100} {
		if _, err := FromSource(&fakeSource{}, n); !errors.Is(err, ErrInvalidRowCount) {
			t.Errorf("FromSource(n=%d): err = %v, want ErrInvalidRowCount", n, err)
		}
	}
}

func TestAppendRow_ArityMismatch(t *testing.T) {
	tbl, err := New([]string{"a", "b", "c"})
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	if err := tbl.AppendRow([]string{"1", "2"}); err == nil {
		t.Error("AppendRow with 2 cells on a 3-column table: want error")
	}
	if err := tbl.AppendRow([]string{"1", "2", "3"}); err != nil {
		t.Errorf("AppendRow with matching arity: %v", err)
	}
}

func TestColumn(t *testing.T) {
	tbl, _ := New([]string{"name", "count"})
	_ = tbl.AppendRow([]string{"alpha", "1"})
	_ = tbl.AppendRow([]string{"beta", "2"})

	col, ok := tbl.Column("count")
	if !ok {
		t.Fatal("Column(count) not found")
	}
	if len(col) != 2 || col[0] != "1" || col[1] != "2" {
		t.Errorf("Column(count) = %v", col)
	}

	if _, ok := tbl.Column("missing"); ok {
		t.Error("Column(missing) found")
	}
}

func TestWriteReadRoundTrip(t *testing.T) {
	tbl, err := New([]string{"id", "note", "count"})
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	rows := [][]string{
		{"1", "plain", "100"},
		{"2", "has, comma", "200"},
		{"3", `has "quotes"`, "300"},
	}
	for _, row := range rows {
		if err := tbl.AppendRow(row); err != nil {
			t.Fatalf("AppendRow: %v", err)
		}
	}

	path := filepath.Join(t.TempDir(), "out.csv")
	if err := tbl.WriteFile(path); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	back, err := ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile: %v", err)
	}

	if back.Len() != len(rows) {
		t.Fatalf("Len = %d, want %d", back.Len(), len(rows))
	}
	for i, want := range rows {
		got := back.Row(i)
		for c := range want {
			if got[c] != want[c] {
				t.Errorf("row %d cell %d: %q != %q", i, c, got[c], want[c])
			}
		}
	}

	// Numeric cells parse back to the same integers
	counts, _ := back.Column("count")
	for i, want := range []int{100, 200, 300} {
		n, err := strconv.Atoi(counts[i])
		if err != nil || n != want {
			t.Errorf("count[%d] = %q, want %d", i, counts[i], want)
		}
	}
}

func TestWriteFile_Overwrites(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.csv")

	first, _ := New([]string{"a"})
	_ = first.AppendRow([]string{"old"})
	if err := first.WriteFile(path); err != nil {
		t.Fatalf("first WriteFile: %v", err)
	}

	second, _ := New([]string{"a"})
	_ = second.AppendRow([]string{"new"})
	if err := second.WriteFile(path); err != nil {
		t.Fatalf("second WriteFile: %v", err)
	}

	back, err := ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile: %v", err)
	}
	if back.Len() != 1 || back.Row(0)[0] != "new" {
		t.Errorf("file not overwritten: %v rows, first = %v", back.Len(), back.Row(0))
	}
}
