package conf

import "testing"

func TestNeedsQuoting(t *testing.T) {
	tests := []struct {
		in   string
		want bool
	}{
		{"", false},
		{"5672", false},
		{"warning", false},
		{"/var/log/rabbitmq/rabbit.log", false},
		{"value.with.dots", false},
		{"value=with=equals", false},
		{"deployment-$(DEPLOYMENT_ID)", false},
		{"my cluster", true},
		{"my#cluster", true},
		{"don't", true},
		{" ", true},
		{"#", true},
		{"'", true},
	}

	for _, tt := range tests {
		if got := needsQuoting(tt.in); got != tt.want {
			t.Errorf("needsQuoting(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestFormatValue(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"5672", "5672"},
		{"", ""},
		{"my cluster", "'my cluster'"},
		{"my#cluster", "'my#cluster'"},
		{"don't", "'don't'"},
		{"a b c", "'a b c'"},
	}

	for _, tt := range tests {
		if got := formatValue(tt.in); got != tt.want {
			t.Errorf("formatValue(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestParseBool(t *testing.T) {
	truthy := []string{"true", "on", "yes", "1"}
	for _, v := range truthy {
		val, ok := parseBool(v)
		if !ok || !val {
			t.Errorf("parseBool(%q) = (%v, %v), want (true, true)", v, val, ok)
		}
	}

	falsy := []string{"false", "off", "no", "0"}
	for _, v := range falsy {
		val, ok := parseBool(v)
		if !ok || val {
			t.Errorf("parseBool(%q) = (%v, %v), want (false, true)", v, val, ok)
		}
	}

	// The vocabulary is exact and case-sensitive.
	invalid := []string{"", "maybe", "TRUE", "True", "ON", "Yes", "NO", "Off", "2", "10", "enabled"}
	for _, v := range invalid {
		if _, ok := parseBool(v); ok {
			t.Errorf("parseBool(%q) recognized a value outside the vocabulary", v)
		}
	}
}
