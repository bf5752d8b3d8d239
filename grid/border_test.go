package grid

import (
	"errors"
	"testing"
)

func TestBordersInsertValidation(t *testing.T) {
	b := NewBorders(2, 3)
	if err := b.AddVertical(0); err != nil {
		t.Fatalf("AddVertical: %v", err)
	}

	tests := []struct {
		name          string
		row           int
		line          []rune
		intersections []rune
		want          error
	}{
		{"row out of range", 3, []rune("---"), []rune("++"), ErrWrongRowIndex},
		{"short line", 0, []rune("--"), []rune("++"), ErrWrongLineSymbols},
		{"too few intersections", 0, []rune("---"), []rune("+"), ErrWrongIntersectionSymbols},
		{"too many intersections", 0, []rune("---"), []rune("+++"), ErrWrongIntersectionSymbols},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := b.InsertHorizontal(tt.row, tt.line, tt.intersections)
			if !errors.Is(err, tt.want) {
				t.Errorf("InsertHorizontal error = %v, want %v", err, tt.want)
			}
		})
	}

	if err := b.InsertHorizontal(0, []rune("-=-"), []rune("+ ")); err != nil {
		t.Fatalf("InsertHorizontal: %v", err)
	}
	if got := b.intersection(0, 0); got != '+' {
		t.Errorf("intersection(0,0) = %q, want '+'", got)
	}
	if err := b.InsertVertical(3, []rune("|"), []rune("++")); !errors.Is(err, ErrWrongLineSymbols) {
		t.Errorf("InsertVertical short line error = %v", err)
	}
	if err := b.InsertVertical(4, []rune("||"), []rune("++")); !errors.Is(err, ErrWrongColumnIndex) {
		t.Errorf("InsertVertical out of range error = %v", err)
	}
}

func TestBordersNeedIntersections(t *testing.T) {
	b := NewBorders(2, 2)
	if got := b.NeedHorizontalIntersections(); got != 1 {
		t.Errorf("NeedHorizontalIntersections() = %d, want 1", got)
	}
	_ = b.AddVertical(0)
	_ = b.AddVertical(2)
	_ = b.AddHorizontal(1)
	if got := b.NeedHorizontalIntersections(); got != 3 {
		t.Errorf("NeedHorizontalIntersections() = %d, want 3", got)
	}
	if got := b.NeedVerticalIntersections(); got != 2 {
		t.Errorf("NeedVerticalIntersections() = %d, want 2", got)
	}
	if !b.hasIntersection(1, 0) || !b.hasIntersection(1, 2) {
		t.Error("adding a split should create intersections with existing splits")
	}
}

func TestBordersAddIsIdempotent(t *testing.T) {
	b := NewBorders(1, 2)
	_ = b.AddHorizontal(0)
	if err := b.SetRowSymbol(0, 1, '~'); err != nil {
		t.Fatalf("SetRowSymbol: %v", err)
	}
	if err := b.AddHorizontal(0); err != nil {
		t.Fatalf("AddHorizontal: %v", err)
	}
	if got := b.horizontalSymbol(0, 1); got != '~' {
		t.Errorf("re-adding a split reset symbol to %q", got)
	}
	if got := b.horizontalSymbol(0, 0); got != ' ' {
		t.Errorf("default split symbol = %q, want space", got)
	}
}

func TestBordersSymbolErrors(t *testing.T) {
	b := NewBorders(2, 2)
	if err := b.SetRowSymbol(0, 0, '-'); !errors.Is(err, ErrWrongRowIndex) {
		t.Errorf("SetRowSymbol on missing split error = %v", err)
	}
	if err := b.SetColumnSymbol(0, 0, '|'); !errors.Is(err, ErrWrongColumnIndex) {
		t.Errorf("SetColumnSymbol on missing split error = %v", err)
	}
	if err := b.SetIntersection(0, 0, '+'); !errors.Is(err, ErrWrongRowIndex) {
		t.Errorf("SetIntersection without horizontal split error = %v", err)
	}
	if err := b.SetIntersection(3, 0, '+'); !errors.Is(err, ErrWrongIntersectionIndex) {
		t.Errorf("SetIntersection outside the grid error = %v", err)
	}
	_ = b.AddHorizontal(0)
	if err := b.SetIntersection(0, 0, '+'); !errors.Is(err, ErrWrongColumnIndex) {
		t.Errorf("SetIntersection without vertical split error = %v", err)
	}
	if err := b.SetRowSymbol(0, 2, '-'); !errors.Is(err, ErrWrongColumnIndex) {
		t.Errorf("SetRowSymbol past the last column error = %v", err)
	}
	if _, err := b.Border(2, 0); !errors.Is(err, ErrWrongRowIndex) {
		t.Errorf("Border out of range error = %v", err)
	}
}

func TestBordersClear(t *testing.T) {
	b := NewBorders(1, 1)
	_ = b.AddHorizontal(0)
	_ = b.AddVertical(0)
	b.Clear()
	if b.HasHorizontal(0) || b.HasVertical(0) || b.hasIntersection(0, 0) {
		t.Error("Clear left split lines behind")
	}
	got, err := b.Border(0, 0)
	if err != nil {
		t.Fatalf("Border: %v", err)
	}
	if !got.IsEmpty() {
		t.Errorf("Border after Clear = %+v, want empty", got)
	}
}
