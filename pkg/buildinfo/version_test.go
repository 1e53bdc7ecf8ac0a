package buildinfo

import (
	"strings"
	"testing"
)

func TestString(t *testing.T) {
	s := String()
	for _, want := range []string{"version: ", "commit: ", "built: "} {
		if !strings.Contains(s, want) {
			t.Errorf("String() = %q, missing %q", s, want)
		}
	}
}

func TestTemplate(t *testing.T) {
	s := Template()
	if !strings.HasPrefix(s, "{{.Name}} version ") {
		t.Errorf("Template() = %q", s)
	}
	if !strings.HasSuffix(s, "\n") {
		t.Error("Template() should end with a newline")
	}
}
