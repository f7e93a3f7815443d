package nav

import "testing"

func TestUpWrapsAtZero(t *testing.T) {
	if got := Up(0, 5); got != 4 {
		t.Fatalf("expected wrap to 4, got %d", got)
	}
	if got := Up(3, 5); got != 2 {
		t.Fatalf("expected 2, got %d", got)
	}
}

func TestDownWrapsAtEnd(t *testing.T) {
	if got := Down(4, 5); got != 0 {
		t.Fatalf("expected wrap to 0, got %d", got)
	}
	if got := Down(1, 5); got != 2 {
		t.Fatalf("expected 2, got %d", got)
	}
}

func TestDownUndoesUp(t *testing.T) {
	for size := 1; size <= 8; size++ {
		for index := 0; index < size; index++ {
			if got := Down(Up(index, size), size); got != index {
				t.Fatalf("size %d index %d: down(up(i)) = %d", size, index, got)
			}
			if got := Up(Down(index, size), size); got != index {
				t.Fatalf("size %d index %d: up(down(i)) = %d", size, index, got)
			}
		}
	}
}

func TestDownIsCyclic(t *testing.T) {
	for size := 1; size <= 8; size++ {
		for start := 0; start < size; start++ {
			index := start
			for i := 0; i < size; i++ {
				index = Down(index, size)
			}
			if index != start {
				t.Fatalf("size %d: %d downs moved %d to %d", size, size, start, index)
			}
		}
	}
}

func TestClamp(t *testing.T) {
	cases := []struct {
		index, size, want int
	}{
		{0, 3, 0},
		{2, 3, 2},
		{3, 3, 2},
		{10, 3, 2},
		{-1, 3, 0},
		{0, 1, 0},
	}
	for _, tc := range cases {
		if got := Clamp(tc.index, tc.size); got != tc.want {
			t.Fatalf("clamp(%d, %d) = %d, want %d", tc.index, tc.size, got, tc.want)
		}
	}
}

func TestClampIsIdempotent(t *testing.T) {
	for size := 1; size <= 6; size++ {
		for index := -2; index < size+3; index++ {
			once := Clamp(index, size)
			if twice := Clamp(once, size); twice != once {
				t.Fatalf("clamp not idempotent for (%d, %d): %d then %d", index, size, once, twice)
			}
		}
	}
}

func TestEmptyMenuPanics(t *testing.T) {
	for name, fn := range map[string]func(){
		"up":    func() { Up(0, 0) },
		"down":  func() { Down(0, 0) },
		"clamp": func() { Clamp(0, 0) },
	} {
		func() {
			defer func() {
				if recover() == nil {
					t.Fatalf("%s: expected panic for size 0", name)
				}
			}()
			fn()
		}()
	}
}
