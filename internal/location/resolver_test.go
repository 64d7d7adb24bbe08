package location

import "testing"

func TestResolveCountryNames(t *testing.T) {
	r := NewResolver()

	tests := []struct {
		input string
		want  string
	}{
		{"Netherlands", "Netherlands"},
		{"Amsterdam, Netherlands", "Netherlands"},
		{"Amsterdam", "Netherlands"},
		{"Den Haag", "Netherlands"},
		{"Berlin, Germany", "Germany"},
		{"London, UK", "United Kingdom"},
		{"New York, USA", "United States"},
		{"Toronto", "Canada"},
		{"Bengaluru, India", "India"},
		{"Dubai", "UAE"},
	}

	for _, tt := range tests {
		if got := r.Resolve(tt.input); got != tt.want {
			t.Errorf("Resolve(%q) = %q, want %q", tt.input, got, tt.want)
		}
	}
}

func TestResolveShortCodesAreWordBounded(t *testing.T) {
	r := NewResolver()

	// "us" must not match inside unrelated words.
	if got := r.Resolve("Customer Success Team"); got != "" {
		t.Errorf("Resolve matched inside a word: got %q", got)
	}
	if got := r.Resolve("Austin, US"); got != "United States" {
		t.Errorf("Resolve(%q) = %q, want United States", "Austin, US", got)
	}
}

func TestResolveCommaTail(t *testing.T) {
	r := NewResolver()

	if got := r.Resolve("Somewhereville, nl"); got != "Netherlands" {
		t.Errorf("comma-tail lookup failed: got %q", got)
	}
}

func TestResolveUnknown(t *testing.T) {
	r := NewResolver()

	for _, input := range []string{"", "   ", "Atlantis", "Moon Base Alpha"} {
		if got := r.Resolve(input); got != "" {
			t.Errorf("Resolve(%q) = %q, want empty", input, got)
		}
	}
}

func TestIsRemote(t *testing.T) {
	tests := []struct {
		input string
		want  bool
	}{
		{"Remote", true},
		{"Remote - Europe", true},
		{"Fully remote", true},
		{"Amsterdam, Netherlands", false},
		{"", false},
	}

	for _, tt := range tests {
		if got := IsRemote(tt.input); got != tt.want {
			t.Errorf("IsRemote(%q) = %v, want %v", tt.input, got, tt.want)
		}
	}
}
