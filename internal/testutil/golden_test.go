package testutil

import "testing"

func TestFirstDiff(t *testing.T) {
	tests := []struct {
		name     string
		want     string
		got      string
		wantLine int
		wantOK   bool
	}{
		{name: "equal", want: "a\nb\n", got: "a\nb\n", wantOK: true},
		{name: "second line", want: "a\nb\n", got: "a\nc\n", wantLine: 2},
		{name: "missing trailing newline", want: "a\n", got: "a", wantLine: 1},
		{name: "extra line", want: "a\n", got: "a\nb\n", wantLine: 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			line, ok := firstDiff(tt.want, tt.got)
			if ok != tt.wantOK || line != tt.wantLine {
				t.Errorf("firstDiff = (%d, %v), want (%d, %v)", line, ok, tt.wantLine, tt.wantOK)
			}
		})
	}
}

func TestGoldenMatches(t *testing.T) {
	Golden(t, "sample", []byte("1. A [LOW] - Pending\n"))
}
