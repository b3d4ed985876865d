package daemon

import "testing"

func TestDefaultConfigValidates(t *testing.T) {
	cfg := DefaultConfig()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("default config should validate: %v", err)
	}
}

func TestLoadConfigFromBytesAppliesDefaultsAndOverrides(t *testing.T) {
	yamlDoc := []byte(`
bounds:
  wMax: 3840
  hMax: 1080
dbPath: /tmp/store.json
pollIntervalSeconds: 1
logLevel: debug
backendKind: fake
`)
	cfg, err := LoadConfigFromBytes(yamlDoc)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Bounds.WMax != 3840 || cfg.Bounds.HMax != 1080 {
		t.Errorf("bounds = %+v, want 3840x1080", cfg.Bounds)
	}
	if cfg.GapCoefficient != 1 || cfg.CenterCoefficient != 1 {
		t.Errorf("coefficients = %d,%d, want 1,1 (default when omitted)", cfg.GapCoefficient, cfg.CenterCoefficient)
	}
}

func TestLoadConfigFromBytesRejectsBadLogLevel(t *testing.T) {
	yamlDoc := []byte(`
bounds: {wMax: 100, hMax: 100}
dbPath: /tmp/s.json
pollIntervalSeconds: 1
logLevel: shout
backendKind: fake
`)
	_, err := LoadConfigFromBytes(yamlDoc)
	if err == nil {
		t.Fatal("expected error for invalid logLevel")
	}
}

func TestLoadConfigFromBytesRejectsInvertedBounds(t *testing.T) {
	yamlDoc := []byte(`
bounds: {wMin: 5000, wMax: 100, hMax: 100}
dbPath: /tmp/s.json
pollIntervalSeconds: 1
logLevel: info
backendKind: fake
`)
	_, err := LoadConfigFromBytes(yamlDoc)
	if err == nil {
		t.Fatal("expected error for wMin > wMax")
	}
}

func TestLoadConfigFromBytesRejectsBadBackendKind(t *testing.T) {
	yamlDoc := []byte(`
bounds: {wMax: 100, hMax: 100}
dbPath: /tmp/s.json
pollIntervalSeconds: 1
logLevel: info
backendKind: wayland
`)
	_, err := LoadConfigFromBytes(yamlDoc)
	if err == nil {
		t.Fatal("expected error for unsupported backendKind")
	}
}
