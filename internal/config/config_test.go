package config

import (
	"testing"
	"time"

	"github.com/techblog-api/internal/markdown"
)

func TestLoad_Defaults(t *testing.T) {
	for _, key := range []string{"PORT", "LOGIN_DELAY", "RENDER_ESCAPE", "RENDER_ENGINE"} {
		t.Setenv(key, "")
	}

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.Server.Port != "8080" {
		t.Errorf("expected port 8080, got %q", cfg.Server.Port)
	}
	if cfg.Session.LoginDelay != time.Second {
		t.Errorf("expected 1s login delay, got %v", cfg.Session.LoginDelay)
	}
	if cfg.Render.Escape != "source" {
		t.Errorf("expected source escaping by default, got %q", cfg.Render.Escape)
	}
}

func TestLoad_FromEnv(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("LOGIN_DELAY", "0s")
	t.Setenv("RENDER_ENGINE", "goldmark")
	t.Setenv("RENDER_ESCAPE", "sanitize")
	t.Setenv("RENDER_WRAP_LISTS", "true")
	t.Setenv("SESSION_FILE", "/tmp/techblog/session.json")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.Server.Port != "9090" || cfg.Session.LoginDelay != 0 {
		t.Errorf("env not applied: %+v", cfg)
	}
	if cfg.Session.File != "/tmp/techblog/session.json" {
		t.Errorf("unexpected session file %q", cfg.Session.File)
	}

	opts := cfg.Render.FormatterOptions(markdown.FullView())
	if opts.Engine != markdown.EngineGoldmark || opts.Escape != markdown.SanitizeOutput {
		t.Errorf("unexpected formatter options: %+v", opts)
	}
	if !opts.Capabilities.WrapLists || !opts.Capabilities.FencedCode {
		t.Errorf("preset capabilities lost: %+v", opts.Capabilities)
	}
}

func TestLoad_IgnoresMalformedNumbers(t *testing.T) {
	t.Setenv("SERVER_READ_TIMEOUT", "soon")
	t.Setenv("RENDER_WRAP_LISTS", "maybe")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.Server.ReadTimeout != 30*time.Second {
		t.Errorf("expected default read timeout, got %v", cfg.Server.ReadTimeout)
	}
	if cfg.Render.WrapLists {
		t.Error("expected default WrapLists=false")
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(c *Config)
		wantErr bool
	}{
		{"valid", func(c *Config) {}, false},
		{"empty port", func(c *Config) { c.Server.Port = "" }, true},
		{"unknown engine", func(c *Config) { c.Render.Engine = "pandoc" }, true},
		{"unknown escape", func(c *Config) { c.Render.Escape = "strict" }, true},
		{"negative delay", func(c *Config) { c.Session.LoginDelay = -time.Second }, true},
		{"zero upload size", func(c *Config) { c.Import.MaxUploadSize = 0 }, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := &Config{
				Server: ServerConfig{Port: "8080"},
				Render: RenderConfig{Engine: "lite", Escape: "none"},
				Import: ImportConfig{MaxUploadSize: 1024},
			}
			tt.mutate(cfg)
			if err := cfg.Validate(); (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}
