package settings

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoad_MissingFileUsesDefaults(t *testing.T) {
	s, err := Load(filepath.Join(t.TempDir(), "config.toml"))
	if err != nil {
		t.Fatalf("Load error = %v", err)
	}
	if s.ConfFile != "rabbitmq.conf" {
		t.Errorf("ConfFile = %q, want rabbitmq.conf", s.ConfFile)
	}
	if s.AllowUnknown {
		t.Error("AllowUnknown = true, want false")
	}
}

func TestLoad_FromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	content := "conf_file = \"/etc/rabbitmq/rabbitmq.conf\"\nallow_unknown = true\n"
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("WriteFile error = %v", err)
	}

	s, err := Load(path)
	if err != nil {
		t.Fatalf("Load error = %v", err)
	}
	if s.ConfFile != "/etc/rabbitmq/rabbitmq.conf" {
		t.Errorf("ConfFile = %q, want /etc/rabbitmq/rabbitmq.conf", s.ConfFile)
	}
	if !s.AllowUnknown {
		t.Error("AllowUnknown = false, want true")
	}
}

func TestLoad_Malformed(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte("conf_file = [not toml"), 0o644); err != nil {
		t.Fatalf("WriteFile error = %v", err)
	}

	if _, err := Load(path); err == nil {
		t.Error("Load succeeded on malformed TOML, want error")
	}
}

func TestLoad_EnvOverridesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte("conf_file = \"from-file.conf\"\n"), 0o644); err != nil {
		t.Fatalf("WriteFile error = %v", err)
	}

	t.Setenv(EnvConfFile, "from-env.conf")
	t.Setenv(EnvAllowUnknown, "YES")

	s, err := Load(path)
	if err != nil {
		t.Fatalf("Load error = %v", err)
	}
	if s.ConfFile != "from-env.conf" {
		t.Errorf("ConfFile = %q, want from-env.conf", s.ConfFile)
	}
	if !s.AllowUnknown {
		t.Error("AllowUnknown = false, want true from env")
	}
}

func TestSaveAndLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.toml")

	want := Settings{ConfFile: "cluster.conf", AllowUnknown: true}
	if err := Save(want, path); err != nil {
		t.Fatalf("Save error = %v", err)
	}

	got, err := Load(path)
	if err != nil {
		t.Fatalf("Load error = %v", err)
	}
	if got != want {
		t.Errorf("Load = %+v, want %+v", got, want)
	}
}

func TestEnvBool(t *testing.T) {
	tests := []struct {
		in   string
		want bool
	}{
		{"true", true},
		{"TRUE", true},
		{"yes", true},
		{"on", true},
		{"1", true},
		{"false", false},
		{"no", false},
		{"off", false},
		{"0", false},
		{"whatever", false},
	}

	for _, tt := range tests {
		if got := envBool(tt.in); got != tt.want {
			t.Errorf("envBool(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}
