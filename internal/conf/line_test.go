package conf

import (
	"strings"
	"testing"
)

func TestParseLine_Classification(t *testing.T) {
	tests := []struct {
		name string
		text string
		want line
	}{
		{"empty", "", line{kind: kindEmpty}},
		{"whitespace only", "   \t  ", line{kind: kindEmpty}},
		{"comment", "# a comment", line{kind: kindComment, raw: "# a comment"}},
		{"comment keeps original text", "   # indented comment", line{kind: kindComment, raw: "   # indented comment"}},
		{"bare hash", "#", line{kind: kindComment, raw: "#"}},
		{"simple setting", "heartbeat = 60", line{kind: kindSetting, key: "heartbeat", value: "60"}},
		{"dotted key", "listeners.tcp.default = 5672", line{kind: kindSetting, key: "listeners.tcp.default", value: "5672"}},
		{"no spaces around equals", "listeners.tcp.default=5672", line{kind: kindSetting, key: "listeners.tcp.default", value: "5672"}},
		{"extra spaces around equals", "listeners.tcp.default   =   5672", line{kind: kindSetting, key: "listeners.tcp.default", value: "5672"}},
		{"tab whitespace", "key\t=\tvalue", line{kind: kindSetting, key: "key", value: "value"}},
		{"leading whitespace", "  listeners.tcp.default = 5672", line{kind: kindSetting, key: "listeners.tcp.default", value: "5672"}},
		{"inline comment", "listeners.tcp.default = 5672 # inline comment", line{kind: kindSetting, key: "listeners.tcp.default", value: "5672"}},
		{"quoted value", "cluster_name = 'my cluster'", line{kind: kindSetting, key: "cluster_name", value: "my cluster"}},
		{"quoted value with hash", "cluster_name = 'my#cluster'", line{kind: kindSetting, key: "cluster_name", value: "my#cluster"}},
		{"quoted value with dots", "cluster_name = 'production.eu.01'", line{kind: kindSetting, key: "cluster_name", value: "production.eu.01"}},
		{"quoted value with inline comment", "key = 'value # not comment' # real comment", line{kind: kindSetting, key: "key", value: "value # not comment"}},
		{"empty quoted value", "key = ''", line{kind: kindSetting, key: "key", value: ""}},
		{"empty value", "key =", line{kind: kindSetting, key: "key", value: ""}},
		{"empty value before comment", "key = # note", line{kind: kindSetting, key: "key", value: ""}},
		{"unclosed quote kept literal", "key = 'unclosed", line{kind: kindSetting, key: "key", value: "'unclosed"}},
		{"lone quote kept literal", "key = '", line{kind: kindSetting, key: "key", value: "'"}},
		{"interior quote unquoted value", "key = it's fine", line{kind: kindSetting, key: "key", value: "it's fine"}},
		{"value with equals signs", "some.key = value=with=equals", line{kind: kindSetting, key: "some.key", value: "value=with=equals"}},
		{"unquoted value with dots", "some.key = value.with.dots", line{kind: kindSetting, key: "some.key", value: "value.with.dots"}},
		{"encrypted value preserved", "default_pass = encrypted:abc123def456", line{kind: kindSetting, key: "default_pass", value: "encrypted:abc123def456"}},
		{"env expansion syntax preserved", "cluster_name = deployment-$(DEPLOYMENT_ID)", line{kind: kindSetting, key: "cluster_name", value: "deployment-$(DEPLOYMENT_ID)"}},
		{"numeric key segment", "auth_backends.1 = internal", line{kind: kindSetting, key: "auth_backends.1", value: "internal"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := parseLine(tt.text, 1)
			if err != nil {
				t.Fatalf("parseLine(%q) returned error: %v", tt.text, err)
			}
			if got != tt.want {
				t.Errorf("parseLine(%q) = %+v, want %+v", tt.text, got, tt.want)
			}
		})
	}
}

func TestParseLine_Errors(t *testing.T) {
	tests := []struct {
		name    string
		text    string
		wantMsg string
	}{
		{"no equals sign", "no equals sign here", "invalid line: no equals sign here"},
		{"missing key", "= value", "invalid line: = value"},
		{"hyphen stops key token", "my-key = value", "invalid line: my-key = value"},
		{"space inside key", "bad key = value", "invalid line: bad key = value"},
		{"doubled dot in key", "bad..key = value", "invalid key format: bad..key"},
		{"leading dot in key", ".bad = value", "invalid key format: .bad"},
		{"trailing dot in key", "bad. = value", "invalid key format: bad."},
		{"digit-led segment", "9bad = value", "invalid key format: 9bad"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := parseLine(tt.text, 7)
			if err == nil {
				t.Fatalf("parseLine(%q) succeeded, want error", tt.text)
			}
			perr, ok := err.(*ParseError)
			if !ok {
				t.Fatalf("parseLine(%q) error type %T, want *ParseError", tt.text, err)
			}
			if perr.Line != 7 {
				t.Errorf("error line = %d, want 7", perr.Line)
			}
			if perr.Message != tt.wantMsg {
				t.Errorf("error message = %q, want %q", perr.Message, tt.wantMsg)
			}
			if !strings.Contains(perr.Error(), "line 7") {
				t.Errorf("Error() = %q, should name the line number", perr.Error())
			}
		})
	}
}

func TestUnquotedHash(t *testing.T) {
	tests := []struct {
		in   string
		want int
	}{
		{"", -1},
		{"plain value", -1},
		{"value # comment", 6},
		{"# leading", 0},
		{"'quoted # hash'", -1},
		{"'quoted # hash' # real", 16},
		{"'unclosed # hash", -1},
		{"a'b # still quoted", -1},
	}

	for _, tt := range tests {
		if got := unquotedHash(tt.in); got != tt.want {
			t.Errorf("unquotedHash(%q) = %d, want %d", tt.in, got, tt.want)
		}
	}
}
