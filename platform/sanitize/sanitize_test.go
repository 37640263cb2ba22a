package sanitize

import "testing"

func TestTextStripsEncodedTags(t *testing.T) {
	got := Text("Hello <b>there</b> &lt;script&gt;alert(1)&lt;/script&gt;")
	if got != "Hello there alert(1)" {
		t.Fatalf("expected tags stripped, got %q", got)
	}
}

func TestLineCollapsesWhitespace(t *testing.T) {
	got := Line("  Jane \n\t  Doe ")
	if got != "Jane Doe" {
		t.Fatalf("expected collapsed name, got %q", got)
	}
}

func TestTextPtrNil(t *testing.T) {
	if TextPtr(nil) != nil {
		t.Fatal("expected nil passthrough")
	}
}
