package bajaj

import "testing"

func TestToDBDate(t *testing.T) {
	cases := []struct {
		name  string
		input string
		want  any
	}{
		{"standard", "25/12/2025", "2025-12-25"},
		{"single digit parts", "1/2/2025", "2025-2-1"},
		{"empty", "", nil},
		{"missing parts", "12/2025", nil},
		{"too many parts", "1/2/3/4", nil},
		{"wrong separator", "25-12-2025", nil},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := ToDBDate(tc.input); got != tc.want {
				t.Fatalf("ToDBDate(%q) = %v, want %v", tc.input, got, tc.want)
			}
		})
	}
}
