package platform

import (
	"runtime"
	"testing"
)

func TestNormalizePath(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("separator behavior differs on windows")
	}

	tests := []struct {
		input string
		want  string
	}{
		{"/a/b/../c", "/a/c"},
		{"a//b", "a/b"},
		{"./a", "a"},
		{"/a/b/", "/a/b"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			if got := NormalizePath(tt.input); got != tt.want {
				t.Errorf("NormalizePath(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestValidatePath(t *testing.T) {
	if err := ValidatePath(""); err == nil {
		t.Error("empty path should be invalid")
	}
	if err := ValidatePath("/some/dir"); err != nil {
		t.Errorf("valid path rejected: %v", err)
	}
}
