package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/m-mizutani/gt"
	"github.com/secmon-lab/vaxbook/pkg/cli/config"
)

func TestLoggerValidate(t *testing.T) {
	valid := config.Logger{Level: "debug", Format: "json"}
	gt.NoError(t, valid.Validate())

	empty := config.Logger{Level: "info", Format: ""}
	gt.NoError(t, empty.Validate())

	badLevel := config.Logger{Level: "trace", Format: "json"}
	gt.Error(t, badLevel.Validate())

	badFormat := config.Logger{Level: "info", Format: "xml"}
	_, err := badFormat.Configure()
	gt.Error(t, err)
}

func TestLoadRosterFromFile(t *testing.T) {
	dir := t.TempDir()

	t.Run("valid roster", func(t *testing.T) {
		path := filepath.Join(dir, "roster.yaml")
		gt.NoError(t, os.WriteFile(path, []byte(`
staff:
  - id: dr-an
    name: Dr. An
    position: Doctor
  - id: nurse-binh
    name: Binh
    position: Nurse
`), 0o600)).Required()

		roster, err := config.LoadRosterFromFile(path)
		gt.NoError(t, err).Required()
		gt.Equal(t, 2, len(roster.Staff))
		gt.Equal(t, "Dr. An", roster.Staff[0].Name)
		gt.Equal(t, "Nurse", roster.Staff[1].Position)
	})

	t.Run("duplicate staff ID", func(t *testing.T) {
		path := filepath.Join(dir, "dup.yaml")
		gt.NoError(t, os.WriteFile(path, []byte(`
staff:
  - id: a
    name: A
  - id: a
    name: B
`), 0o600)).Required()

		_, err := config.LoadRosterFromFile(path)
		gt.Error(t, err)
	})

	t.Run("broken YAML", func(t *testing.T) {
		path := filepath.Join(dir, "broken.yaml")
		gt.NoError(t, os.WriteFile(path, []byte("staff: [\n"), 0o600)).Required()

		_, err := config.LoadRosterFromFile(path)
		gt.Error(t, err)
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := config.LoadRosterFromFile(filepath.Join(dir, "none.yaml"))
		gt.Error(t, err)
		gt.S(t, err.Error()).Contains("roster file not found")
	})

	t.Run("empty path", func(t *testing.T) {
		_, err := config.LoadRosterFromFile("")
		gt.Error(t, err)
	})
}

func TestRosterConfigureDefault(t *testing.T) {
	cfg := config.Roster{}
	roster, err := cfg.Configure()
	gt.NoError(t, err).Required()
	gt.True(t, len(roster.Staff) > 0)
}

func TestBackendConfigure(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		cfg := config.Backend{BaseURL: "http://localhost:8081/api", Timeout: 5e9}
		client, err := cfg.Configure(nil)
		gt.NoError(t, err).Required()
		gt.V(t, client).NotNil()
	})

	t.Run("missing URL", func(t *testing.T) {
		cfg := config.Backend{Timeout: 5e9}
		_, err := cfg.Configure(nil)
		gt.Error(t, err)
	})

	t.Run("non-positive timeout", func(t *testing.T) {
		cfg := config.Backend{BaseURL: "http://localhost"}
		_, err := cfg.Configure(nil)
		gt.Error(t, err)
	})
}
