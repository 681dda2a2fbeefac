package solver

import "testing"

func TestParseAlphabet(t *testing.T) {
	cases := []struct {
		name    string
		in      string
		wantErr bool
	}{
		{name: "reference", in: "BACXIU", wantErr: false},
		{name: "single", in: "Z", wantErr: false},
		{name: "empty", in: "", wantErr: true},
		{name: "duplicate", in: "ABBA", wantErr: true},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			a, err := ParseAlphabet(tc.in)
			if (err != nil) != tc.wantErr {
				t.Fatalf("ParseAlphabet(%q) error = %v, wantErr %v", tc.in, err, tc.wantErr)
			}
			if err == nil && a.String() != tc.in {
				t.Fatalf("ParseAlphabet(%q) = %q", tc.in, a)
			}
		})
	}
}

func TestAlphabetIndex(t *testing.T) {
	a := DefaultAlphabet
	cases := []struct {
		sym  byte
		want int
	}{
		{'B', 0}, {'A', 1}, {'C', 2}, {'X', 3}, {'I', 4}, {'U', 5}, {'Z', -1},
	}
	for _, tc := range cases {
		if got := a.Index(tc.sym); got != tc.want {
			t.Errorf("Index(%q) = %d, want %d", tc.sym, got, tc.want)
		}
	}
}

func TestAlphabetRepeat(t *testing.T) {
	if got := DefaultAlphabet.Repeat(1, 4); got != "AAAA" {
		t.Fatalf("Repeat(1, 4) = %q, want AAAA", got)
	}
	if got := DefaultAlphabet.Repeat(0, 0); got != "" {
		t.Fatalf("Repeat(0, 0) = %q, want empty", got)
	}
}

func TestValidSecret(t *testing.T) {
	cases := []struct {
		in   string
		want bool
	}{
		{"ABC", true},
		{"UUUUUUUUUUUUUUUUUU", true},
		{"", false},
		{"ABZ", false},
		{"abc", false},
	}
	for _, tc := range cases {
		if got := DefaultAlphabet.ValidSecret(tc.in); got != tc.want {
			t.Errorf("ValidSecret(%q) = %v, want %v", tc.in, got, tc.want)
		}
	}
}
