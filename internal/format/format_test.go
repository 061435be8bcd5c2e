package format

import (
	"bytes"
	"strings"
	"testing"
)

type sample struct {
	Year         int     `json:"year"`
	MonthName    string  `json:"monthName"`
	Weeks        [][]int `json:"weeks"`
	Leap         bool    `json:"leap"`
	Note         *string `json:"note"`
	FirstWeekday int     `json:"firstWeekday"`
}

func TestWriteEDN_Compact(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	v := sample{Year: 2024, MonthName: "May", Weeks: [][]int{{0, 0, 1}, {2}}, Leap: true, FirstWeekday: 3}
	if err := Write(&buf, v, "edn", false); err != nil {
		t.Fatalf("Write: %v", err)
	}
	want := `{:first-weekday 3 :leap true :month-name "May" :note nil :weeks [[0 0 1] [2]] :year 2024}` + "\n"
	if got := buf.String(); got != want {
		t.Fatalf("got  %q\nwant %q", got, want)
	}
}

func TestWriteEDN_Pretty(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	if err := WriteEDN(&buf, map[string]any{"days": []int{1, 2}, "empty": []int{}}, true); err != nil {
		t.Fatalf("WriteEDN: %v", err)
	}
	want := strings.Join([]string{
		"{",
		"  :days [",
		"    1",
		"    2",
		"  ]",
		"  :empty []",
		"}",
	}, "\n") + "\n"
	if got := buf.String(); got != want {
		t.Fatalf("got:\n%s\nwant:\n%s", got, want)
	}
}

func TestWrite_JSONAndUnknown(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	if err := Write(&buf, map[string]int{"day": 5}, "", false); err != nil {
		t.Fatalf("Write: %v", err)
	}
	if got := buf.String(); got != "{\"day\":5}\n" {
		t.Fatalf("unexpected json: %q", got)
	}
	if err := Write(&buf, 1, "xml", false); err == nil {
		t.Fatalf("expected unknown format error")
	}
}

func TestParse(t *testing.T) {
	t.Parallel()

	for in, want := range map[string]string{"": "json", "JSON": "json", " edn ": "edn"} {
		got, err := Parse(in)
		if err != nil || got != want {
			t.Fatalf("Parse(%q) = %q, %v; want %q", in, got, err, want)
		}
	}
	if _, err := Parse("yaml"); err == nil || !strings.Contains(err.Error(), "json|edn") {
		t.Fatalf("expected error listing formats, got %v", err)
	}
}

func TestWrite_Envelope(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	if err := Write(&buf, Envelope{Cancelled: true}, "json", false); err != nil {
		t.Fatalf("Write: %v", err)
	}
	if got := buf.String(); got != `{"data":null,"cancelled":true}`+"\n" {
		t.Fatalf("unexpected cancelled envelope: %q", got)
	}

	buf.Reset()
	if err := Write(&buf, Envelope{Data: map[string]int{"day": 5}}, "EDN", false); err != nil {
		t.Fatalf("Write: %v", err)
	}
	if got := buf.String(); got != "{:data {:day 5}}\n" {
		t.Fatalf("unexpected edn envelope: %q", got)
	}
}

func TestKeyword(t *testing.T) {
	t.Parallel()

	tests := map[string]string{
		"year":         ":year",
		"firstWeekday": ":first-weekday",
		"month name":   ":month-name",
		"snake_case":   ":snake-case",
	}
	for in, want := range tests {
		if got := Keyword(in); got != want {
			t.Fatalf("Keyword(%q) = %q, want %q", in, got, want)
		}
	}
}
