package keys

import (
	"strings"
	"testing"

	"github.com/rabbitconf/rabbitconf/internal/conf/pattern"
)

func TestIsValidKeyFormat(t *testing.T) {
	tests := []struct {
		name string
		key  string
		want bool
	}{
		{"simple", "heartbeat", true},
		{"underscore", "cluster_name", true},
		{"dotted", "listeners.tcp.default", true},
		{"deeply dotted", "log.console.level", true},
		{"numeric segment", "auth_backends.1", true},
		{"numeric tail segment", "ssl_options.crl_sources.0", true},
		{"hyphen after first char", "some-key", true},
		{"hyphenated segment", "key.with-hyphen", true},
		{"leading underscore", "_internal", true},
		{"empty", "", false},
		{"leading dot", ".listeners", false},
		{"trailing dot", "listeners.", false},
		{"doubled dot", "listeners..tcp", false},
		{"digit then letters", "1listeners", false},
		{"leading hyphen", "-key", false},
		{"at sign", "key@value", false},
		{"bang", "key!value", false},
		{"embedded space", "key value", false},
		{"only dots", "...", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsValidKeyFormat(tt.key); got != tt.want {
				t.Errorf("IsValidKeyFormat(%q) = %v, want %v", tt.key, got, tt.want)
			}
		})
	}
}

func TestIsKnownKey(t *testing.T) {
	tests := []struct {
		name string
		key  string
		want bool
	}{
		{"literal single segment", "heartbeat", true},
		{"literal cluster_name", "cluster_name", true},
		{"literal frame_max", "frame_max", true},
		{"literal dotted", "log.console.level", true},
		{"literal ssl option", "ssl_options.verify", true},
		{"wildcard listener tcp", "listeners.tcp.default", true},
		{"wildcard listener amqp", "listeners.tcp.amqp", true},
		{"wildcard auth backend 1", "auth_backends.1", true},
		{"wildcard auth backend 2", "auth_backends.2", true},
		{"unknown flat", "totally_unknown_key", false},
		{"unknown dotted", "some.random.path", false},
		{"known prefix wrong depth", "heartbeat.extra", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsKnownKey(tt.key); got != tt.want {
				t.Errorf("IsKnownKey(%q) = %v, want %v", tt.key, got, tt.want)
			}
		})
	}
}

func TestSuggestSimilarKeys(t *testing.T) {
	t.Run("shared first segment", func(t *testing.T) {
		got := SuggestSimilarKeys("listeners.tcp.invalid")
		if len(got) == 0 {
			t.Fatal("expected suggestions for listeners.* keys, got none")
		}
		for _, s := range got {
			if !strings.HasPrefix(s, "listeners.") {
				t.Errorf("suggestion %q does not share the first segment", s)
			}
		}
	})

	t.Run("capped at five", func(t *testing.T) {
		got := SuggestSimilarKeys("log.unknown.setting")
		if len(got) == 0 {
			t.Fatal("expected suggestions for log.* keys, got none")
		}
		if len(got) > maxSuggestions {
			t.Errorf("got %d suggestions, want at most %d", len(got), maxSuggestions)
		}
		for _, s := range got {
			if !strings.HasPrefix(s, "log.") {
				t.Errorf("suggestion %q does not share the first segment", s)
			}
		}
	})

	t.Run("catalog order preserved", func(t *testing.T) {
		got := SuggestSimilarKeys("listeners.whatever")
		want := []string{"listeners.tcp", "listeners.tcp.*", "listeners.ssl", "listeners.ssl.*"}
		if len(got) != len(want) {
			t.Fatalf("got %d suggestions %v, want %d", len(got), got, len(want))
		}
		for i := range want {
			if got[i] != want[i] {
				t.Errorf("suggestion[%d] = %q, want %q", i, got[i], want[i])
			}
		}
	})

	t.Run("no shared first segment", func(t *testing.T) {
		if got := SuggestSimilarKeys("zzz_unknown"); len(got) != 0 {
			t.Errorf("expected no suggestions, got %v", got)
		}
	})

	t.Run("empty key", func(t *testing.T) {
		if got := SuggestSimilarKeys(""); len(got) != 0 {
			t.Errorf("expected no suggestions for empty key, got %v", got)
		}
	})
}

// Every catalog entry must itself be a valid key once wildcards are
// replaced with a literal segment, and must be matched by itself.
func TestCatalogWellFormed(t *testing.T) {
	if len(knownKeyPatterns) < 300 {
		t.Fatalf("catalog has %d templates, expected the full schema table", len(knownKeyPatterns))
	}

	seen := make(map[string]bool, len(knownKeyPatterns))
	for _, tmpl := range knownKeyPatterns {
		if seen[tmpl] {
			t.Errorf("duplicate catalog template %q", tmpl)
		}
		seen[tmpl] = true

		literal := strings.ReplaceAll(tmpl, pattern.Wildcard, "x")
		if !IsValidKeyFormat(literal) {
			t.Errorf("catalog template %q is not a valid key shape", tmpl)
		}
		if !pattern.Matches(literal, tmpl) {
			t.Errorf("catalog template %q does not match its own literalization", tmpl)
		}
	}
}
