package common

import "testing"

func TestPlainText(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{name: "plain text untouched", input: "Loves Django\nand tea", want: "Loves Django\nand tea"},
		{name: "tags stripped", input: "<p>Core <strong>developer</strong></p>", want: "Core developer"},
		{name: "entities decoded", input: "Tom &amp; Jerry", want: "Tom & Jerry"},
		{name: "line breaks kept", input: "one<br>two", want: "one\ntwo"},
		{name: "paragraphs separated", input: "<p>one</p><p>two</p>", want: "one\ntwo"},
		{name: "empty", input: "", want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := PlainText(tt.input); got != tt.want {
				t.Errorf("PlainText(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestTruncate(t *testing.T) {
	tests := []struct {
		input string
		max   int
		want  string
	}{
		{input: "short", max: 10, want: "short"},
		{input: "exactly", max: 7, want: "exactly"},
		{input: "too long text", max: 5, want: "too …"},
		{input: "héllo wörld", max: 4, want: "hél…"},
		{input: "anything", max: 0, want: "anything"},
	}

	for _, tt := range tests {
		if got := Truncate(tt.input, tt.max); got != tt.want {
			t.Errorf("Truncate(%q, %d) = %q, want %q", tt.input, tt.max, got, tt.want)
		}
	}
}
