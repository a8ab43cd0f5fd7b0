package config

import (
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"

	"github.com/vovakirdan/planetwars/internal/games/planetwars/core"
)

// isolate points HOME and the working directory at empty temp dirs.
func isolate(t *testing.T) (home, work string) {
	t.Helper()
	home = t.TempDir()
	work = t.TempDir()
	t.Setenv("HOME", home)
	t.Chdir(work)
	return home, work
}

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
}

func TestEmbeddedDefaultsMatchHardcoded(t *testing.T) {
	cfg, err := parse(DefaultYAML())
	if err != nil {
		t.Fatalf("embedded defaults do not parse: %v", err)
	}
	if !reflect.DeepEqual(cfg, DefaultPlanetWarsConfig()) {
		t.Errorf("embedded defaults differ from hardcoded:\n%+v\n%+v", cfg, DefaultPlanetWarsConfig())
	}
}

func TestDefaultRulesMatchEngine(t *testing.T) {
	r, err := DefaultPlanetWarsConfig().Rules()
	if err != nil {
		t.Fatalf("Rules() failed: %v", err)
	}
	if !reflect.DeepEqual(r, core.DefaultRules()) {
		t.Errorf("Rules() = %+v, expected engine defaults", r)
	}
}

func TestLoadSearchOrder(t *testing.T) {
	t.Run("embedded when nothing else exists", func(t *testing.T) {
		isolate(t)
		cfg, src, err := Load("")
		if err != nil || src != SourceEmbedded {
			t.Fatalf("Load() = %q, %v", src, err)
		}
		if cfg.AI.Threshold != 10 {
			t.Errorf("AI.Threshold = %g, expected 10", cfg.AI.Threshold)
		}
	})

	t.Run("local configs directory", func(t *testing.T) {
		_, work := isolate(t)
		writeFile(t, filepath.Join(work, "configs", fileName), "ai:\n  threshold: 20\n")

		cfg, src, err := Load("")
		if err != nil {
			t.Fatalf("Load() failed: %v", err)
		}
		if src != filepath.Join("configs", fileName) || cfg.AI.Threshold != 20 {
			t.Errorf("Load() = threshold %g from %q", cfg.AI.Threshold, src)
		}
	})

	t.Run("user directory wins over local", func(t *testing.T) {
		home, work := isolate(t)
		writeFile(t, filepath.Join(work, "configs", fileName), "ai:\n  threshold: 20\n")
		userPath := filepath.Join(home, ".planetwars", "configs", fileName)
		writeFile(t, userPath, "ai:\n  threshold: 30\n")

		cfg, src, err := Load("")
		if err != nil {
			t.Fatalf("Load() failed: %v", err)
		}
		if src != userPath || cfg.AI.Threshold != 30 {
			t.Errorf("Load() = threshold %g from %q", cfg.AI.Threshold, src)
		}
	})

	t.Run("broken user file is skipped", func(t *testing.T) {
		home, _ := isolate(t)
		writeFile(t, filepath.Join(home, ".planetwars", "configs", fileName), "fleet:\n  speed: -1\n")

		_, src, err := Load("")
		if err != nil || src != SourceEmbedded {
			t.Errorf("Load() = %q, %v, expected embedded fallback", src, err)
		}
	})
}

func TestLoadCustomPath(t *testing.T) {
	dir := t.TempDir()

	t.Run("partial file keeps defaults", func(t *testing.T) {
		path := filepath.Join(dir, "fast.yaml")
		writeFile(t, path, "fleet:\n  speed: 250\n")

		cfg, src, err := Load(path)
		if err != nil {
			t.Fatalf("Load() failed: %v", err)
		}
		if src != path || cfg.Fleet.Speed != 250 {
			t.Errorf("Load() = speed %g from %q", cfg.Fleet.Speed, src)
		}
		if cfg.Fleet.ArrivalRadius != 5 || len(cfg.Planets) != 3 {
			t.Error("unset values should keep their defaults")
		}
	})

	t.Run("planet list replaces defaults", func(t *testing.T) {
		path := filepath.Join(dir, "tiny.yaml")
		writeFile(t, path, "planets:\n  - type: small\n    radius: 10\n    capacity: 30\n    count: 2\n")

		cfg, _, err := Load(path)
		if err != nil {
			t.Fatalf("Load() failed: %v", err)
		}
		r, _ := cfg.Rules()
		expected := []core.PlanetClass{{Type: core.PlanetSmall, Radius: 10, Capacity: 30, Count: 2}}
		if !reflect.DeepEqual(r.Classes, expected) {
			t.Errorf("Classes = %+v, expected %+v", r.Classes, expected)
		}
	})

	t.Run("missing file", func(t *testing.T) {
		if _, _, err := Load(filepath.Join(dir, "nope.yaml")); err == nil {
			t.Error("expected an error for a missing custom config")
		}
	})

	t.Run("malformed yaml", func(t *testing.T) {
		path := filepath.Join(dir, "bad.yaml")
		writeFile(t, path, "fleet: [1, 2\n")
		_, _, err := Load(path)
		if err == nil || !strings.Contains(err.Error(), "parse") {
			t.Errorf("Load() error = %v, expected a parse error", err)
		}
	})
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*PlanetWarsConfig)
		errMsg string
	}{
		{"defaults", func(*PlanetWarsConfig) {}, ""},
		{"zero production interval", func(c *PlanetWarsConfig) { c.Production.IntervalMs = 0 }, "intervals"},
		{"negative fleet speed", func(c *PlanetWarsConfig) { c.Fleet.Speed = -5 }, "fleet speed"},
		{"bias out of range", func(c *PlanetWarsConfig) { c.AI.NeutralBias = 2 }, "neutral bias"},
		{"zero capacity", func(c *PlanetWarsConfig) { c.Planets[0].Capacity = 0 }, "capacity"},
		{"unknown type", func(c *PlanetWarsConfig) { c.Planets[0].Type = "giant" }, "unknown planet type"},
		{"duplicate type", func(c *PlanetWarsConfig) { c.Planets[1].Type = "big" }, "listed twice"},
		{"one small planet", func(c *PlanetWarsConfig) { c.Planets[2].Count = 1 }, "two small planets"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := DefaultPlanetWarsConfig()
			tc.mutate(&cfg)
			err := cfg.Validate()
			if tc.errMsg == "" {
				if err != nil {
					t.Errorf("Validate() = %v, expected nil", err)
				}
				return
			}
			if err == nil || !strings.Contains(err.Error(), tc.errMsg) {
				t.Errorf("Validate() = %v, expected error containing %q", err, tc.errMsg)
			}
			if !strings.HasPrefix(err.Error(), "config: ") {
				t.Errorf("error %q lacks the config prefix", err)
			}
		})
	}
}

func TestMarshalLoadsBack(t *testing.T) {
	cfg := DefaultPlanetWarsConfig()
	cfg.AI.NeutralBias = 0.25

	data, err := Marshal(cfg)
	if err != nil {
		t.Fatalf("Marshal() failed: %v", err)
	}
	if !strings.Contains(string(data), "neutral_bias: 0.25") {
		t.Errorf("marshalled yaml missing field:\n%s", data)
	}

	path := filepath.Join(t.TempDir(), fileName)
	writeFile(t, path, string(data))
	got, _, err := Load(path)
	if err != nil || !reflect.DeepEqual(got, cfg) {
		t.Errorf("Load(Marshal(cfg)) = %+v, %v", got, err)
	}
}
