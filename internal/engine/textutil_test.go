package engine

import "testing"

func TestCleanHTML(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"<b>melt</b> the butter", "melt the butter"},
		{"  plain  ", "plain"},
		{"<i>a</i><b>b</b>", "ab"},
		{"", ""},
	}
	for _, tt := range tests {
		if got := CleanHTML(tt.in); got != tt.want {
			t.Errorf("CleanHTML(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestTruncate(t *testing.T) {
	if got := Truncate("abcdef", 3); got != "abc" {
		t.Errorf("Truncate() = %q, want %q", got, "abc")
	}
	if got := Truncate("ab", 5); got != "ab" {
		t.Errorf("Truncate() = %q, want %q", got, "ab")
	}
}

func TestNormLang(t *testing.T) {
	if got := NormLang(""); got != "en" {
		t.Errorf("NormLang(\"\") = %q, want %q", got, "en")
	}
	if got := NormLang("fr"); got != "fr" {
		t.Errorf("NormLang(\"fr\") = %q, want %q", got, "fr")
	}
}
