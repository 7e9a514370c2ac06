package utils

import "testing"

func TestNormalizeWhitespace(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{
			name:  "collapses space and tab runs",
			input: "hello    world\tand\t\tmore",
			want:  "hello world and more",
		},
		{
			name:  "collapses three or more newlines to a paragraph break",
			input: "first\n\n\n\nsecond",
			want:  "first\n\nsecond",
		},
		{
			name:  "keeps single paragraph breaks",
			input: "first\n\nsecond",
			want:  "first\n\nsecond",
		},
		{
			name:  "trims each line",
			input: "  first line  \n   second line   ",
			want:  "first line\nsecond line",
		},
		{
			name:  "drops leading and trailing blank lines",
			input: "\n\n\ncontent here\n\n\n",
			want:  "content here",
		},
		{
			name:  "converts CRLF to LF",
			input: "first\r\nsecond",
			want:  "first\nsecond",
		},
		{
			name:  "empty input stays empty",
			input: "   \n\n  ",
			want:  "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := NormalizeWhitespace(tt.input)
			if got != tt.want {
				t.Errorf("NormalizeWhitespace(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestTitleFromFilename(t *testing.T) {
	tests := []struct {
		name     string
		filename string
		want     string
	}{
		{
			name:     "strips extension and replaces separators",
			filename: "intro_to_biology-week1.pptx",
			want:     "intro to biology week1",
		},
		{
			name:     "uses base name only",
			filename: "/tmp/uploads/lecture notes.pdf",
			want:     "lecture notes",
		},
		{
			name:     "collapses repeated separators",
			filename: "cell__division--basics.ppt",
			want:     "cell division basics",
		},
		{
			name:     "falls back when nothing remains",
			filename: "___.pdf",
			want:     "Untitled Quiz",
		},
		{
			name:     "empty filename falls back",
			filename: "",
			want:     "Untitled Quiz",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := TitleFromFilename(tt.filename)
			if got != tt.want {
				t.Errorf("TitleFromFilename(%q) = %q, want %q", tt.filename, got, tt.want)
			}
		})
	}
}
