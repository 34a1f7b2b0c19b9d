package app

import (
	"testing"

	"replane.io/replane/internal/config"
)

func TestCORSConfig_WildcardAllowsAllOrigins(t *testing.T) {
	cfg := &config.Config{
		Server: config.ServerConfig{CORSOrigins: []string{"*"}},
	}

	got := corsConfig(cfg)
	if !got.AllowAllOrigins {
		t.Fatalf("AllowAllOrigins = %v, want true", got.AllowAllOrigins)
	}
	if len(got.AllowOrigins) != 0 {
		t.Fatalf("AllowOrigins = %#v, want empty", got.AllowOrigins)
	}
}

func TestCORSConfig_ExplicitOriginList(t *testing.T) {
	cfg := &config.Config{
		Server: config.ServerConfig{CORSOrigins: []string{"https://app.example.com"}},
	}

	got := corsConfig(cfg)
	if got.AllowAllOrigins {
		t.Fatalf("AllowAllOrigins = %v, want false", got.AllowAllOrigins)
	}
	if len(got.AllowOrigins) != 1 || got.AllowOrigins[0] != "https://app.example.com" {
		t.Fatalf("AllowOrigins = %#v, want the configured origin", got.AllowOrigins)
	}
}
