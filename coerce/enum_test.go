package coerce

import "testing"

func TestParseAnchor(t *testing.T) {
	for _, in := range []string{"tl", "tr", "bl", "br", "ce"} {
		got, err := ParseAnchor(in)
		if err != nil {
			t.Fatalf("ParseAnchor(%q): %v", in, err)
		}
		if string(got) != in {
			t.Errorf("ParseAnchor(%q) = %q", in, got)
		}
	}

	for _, in := range []string{"TL", "center", "top", ""} {
		if _, err := ParseAnchor(in); err == nil {
			t.Errorf("ParseAnchor(%q): expected error", in)
		}
	}
}

func TestParseAlign(t *testing.T) {
	for _, in := range []string{"left", "center", "right"} {
		got, err := ParseAlign(in)
		if err != nil {
			t.Fatalf("ParseAlign(%q): %v", in, err)
		}
		if string(got) != in {
			t.Errorf("ParseAlign(%q) = %q", in, got)
		}
	}

	if _, err := ParseAlign("middle"); err == nil {
		t.Error("ParseAlign(\"middle\"): expected error")
	}
}

func TestParseStream(t *testing.T) {
	s, err := ParseStream("all")
	if err != nil {
		t.Fatal(err)
	}
	if !s.IsAll() {
		t.Error("expected all-streams selector")
	}
	if _, ok := s.Index(); ok {
		t.Error("all-streams selector must not report an index")
	}

	s, err = ParseStream("2")
	if err != nil {
		t.Fatal(err)
	}
	if idx, ok := s.Index(); !ok || idx != 2 {
		t.Errorf("got index (%d, %v), want (2, true)", idx, ok)
	}

	for _, in := range []string{"-1", "first", "1.5"} {
		if _, err := ParseStream(in); err == nil {
			t.Errorf("ParseStream(%q): expected error", in)
		}
	}
}

func TestSource(t *testing.T) {
	s := Source("2")
	if idx, ok := s.Index(); !ok || idx != 2 {
		t.Errorf("got index (%d, %v), want (2, true)", idx, ok)
	}

	// zero and negatives are paths, not indexes
	for _, in := range []string{"0", "-3", "input.mp4", "2.5"} {
		s := Source(in)
		if path, ok := s.Path(); !ok || path != in {
			t.Errorf("Source(%q): got path (%q, %v)", in, path, ok)
		}
	}
}
