package clipboard

import (
	"runtime"
	"testing"
)

func TestFileRefPath(t *testing.T) {
	tests := []struct {
		name   string
		text   string
		want   string
		wantOK bool
	}{
		{name: "file url", text: "file:///home/user/cat.png", want: "/home/user/cat.png", wantOK: true},
		{name: "file url with spaces", text: "file:///home/user/my%20cat.png", want: "/home/user/my cat.png", wantOK: true},
		{name: "bare absolute path", text: "/home/user/cat.png", want: "/home/user/cat.png", wantOK: true},
		{name: "trailing whitespace", text: "/home/user/cat.png\n", want: "/home/user/cat.png", wantOK: true},
		{name: "relative path", text: "cat.png", wantOK: false},
		{name: "plain prose", text: "hello world", wantOK: false},
		{name: "multiline", text: "/a.png\n/b.png", wantOK: false},
		{name: "empty", text: "", wantOK: false},
		{name: "nul padded", text: "/home/user/cat.png\x00", want: "/home/user/cat.png", wantOK: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if runtime.GOOS == "windows" && tt.text != "" && tt.text[0] == '/' {
				t.Skip("posix path cases")
			}
			got, ok := fileRefPath(tt.text)
			if ok != tt.wantOK {
				t.Fatalf("ok mismatch for %q: got %v", tt.text, ok)
			}
			if ok && got != tt.want {
				t.Errorf("path mismatch: got %q, want %q", got, tt.want)
			}
		})
	}
}
