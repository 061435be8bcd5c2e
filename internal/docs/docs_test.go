package docs

import (
	"reflect"
	"strings"
	"testing"

	"github.com/charmbracelet/x/ansi"
)

func TestTopics(t *testing.T) {
	t.Parallel()

	want := []string{"calendar", "config", "picker"}
	if got := Topics(); !reflect.DeepEqual(got, want) {
		t.Fatalf("Topics() = %v, want %v", got, want)
	}
}

func TestGet(t *testing.T) {
	t.Parallel()

	body, ok := Get(" Calendar ")
	if !ok || !strings.Contains(body, "Zeller") {
		t.Fatalf("expected calendar topic, got ok=%v", ok)
	}
	for _, bad := range []string{"", "nope", "../docs"} {
		if _, ok := Get(bad); ok {
			t.Fatalf("Get(%q) should fail", bad)
		}
	}
}

func TestRender(t *testing.T) {
	t.Parallel()

	out, err := Render("# Title\n\nbody text", 40, true)
	if err != nil {
		t.Fatalf("Render: %v", err)
	}
	if !strings.Contains(ansi.Strip(out), "body text") {
		t.Fatalf("expected body in rendered output: %q", out)
	}
}
