package pokedex

import "testing"

func TestNameByNumber(t *testing.T) {
	cases := []struct {
		number int
		want   string
	}{
		{1, "Bulbasaur"},
		{25, "Pikachu"},
		{151, "Mew"},
		{0, "Pokemon #0"},
		{152, "Pokemon #152"},
		{-3, "Pokemon #-3"},
	}
	for _, tc := range cases {
		if got := NameByNumber(tc.number); got != tc.want {
			t.Fatalf("NameByNumber(%d) = %q, want %q", tc.number, got, tc.want)
		}
	}
}

func TestCount(t *testing.T) {
	if Count() != 151 {
		t.Fatalf("expected 151 entries, got %d", Count())
	}
}

func TestStatsByName(t *testing.T) {
	s, ok := StatsByName("Pikachu")
	if !ok {
		t.Fatalf("expected stats for Pikachu")
	}
	if s.Number != 25 {
		t.Fatalf("expected number 25, got %d", s.Number)
	}
	if s.Speed != 90 {
		t.Fatalf("expected speed 90, got %d", s.Speed)
	}
	if _, ok := StatsByName("Rattata"); ok {
		t.Fatalf("did not expect stats for Rattata")
	}
}

func TestStatsNumbersResolveToSameName(t *testing.T) {
	for name, s := range stats {
		if got := NameByNumber(s.Number); got != name {
			t.Fatalf("stats entry %q points at number %d which is %q", name, s.Number, got)
		}
	}
}

func TestRandomStaysInRange(t *testing.T) {
	for i := 0; i < 200; i++ {
		n := Random()
		if n < 1 || n > 151 {
			t.Fatalf("random number %d out of range", n)
		}
	}
}

func TestSearch(t *testing.T) {
	cases := []struct {
		query string
		want  int
	}{
		{"pikachu", 25},
		{"Mewtwo", 150},
		{"char", 6},
	}
	for _, tc := range cases {
		got, ok := Search(tc.query)
		if !ok {
			t.Fatalf("Search(%q) found nothing", tc.query)
		}
		if got != tc.want {
			t.Fatalf("Search(%q) = %d (%s), want %d", tc.query, got, NameByNumber(got), tc.want)
		}
	}
	if _, ok := Search(""); ok {
		t.Fatalf("expected empty query to find nothing")
	}
	if _, ok := Search("zzzzqqqq"); ok {
		t.Fatalf("expected gibberish query to find nothing")
	}
}
