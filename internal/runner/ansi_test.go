package runner

import "testing"

func TestCleanLine(t *testing.T) {
	cases := []struct {
		name string
		in   string
		want string
	}{
		{"plain", "pulling manifest", "pulling manifest"},
		{"color codes", "\x1b[32mpulling\x1b[0m 4f2222927938", "pulling 4f2222927938"},
		{"cursor control", "\x1b[?25lpulling 45%\x1b[?25h", "pulling 45%"},
		{"bare fragments", "[K[2Kpulling 45%", "pulling 45%"},
		{"carriage return redraw", "pulling 10%\rpulling 45%\rpulling 99%", "pulling 99%"},
		{"control characters", "done\x07\x08", "done"},
		{"whitespace only", "   \t  ", ""},
		{"empty", "", ""},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := CleanLine(tc.in); got != tc.want {
				t.Fatalf("CleanLine(%q) = %q, want %q", tc.in, got, tc.want)
			}
		})
	}
}
