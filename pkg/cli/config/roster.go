package config

import (
	"log/slog"
	"os"

	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/vaxbook/pkg/domain/model"
	"github.com/urfave/cli/v3"
	"gopkg.in/yaml.v3"
)

// Roster holds the staff roster configuration
type Roster struct {
	Path string
}

// Flags returns CLI flags for Roster configuration
func (r *Roster) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "roster",
			Usage:       "Path to YAML file listing the staff shown in the schedule grid",
			Category:    "Schedule",
			Sources:     cli.EnvVars("VAXBOOK_ROSTER"),
			Destination: &r.Path,
		},
	}
}

// Configure loads the roster, or returns the default roster when no path is set
func (r *Roster) Configure() (*model.Roster, error) {
	if r.Path == "" {
		return model.DefaultRoster(), nil
	}
	return LoadRosterFromFile(r.Path)
}

// LoadRosterFromFile loads a staff roster from YAML file
func LoadRosterFromFile(path string) (*model.Roster, error) {
	if path == "" {
		return nil, goerr.New("roster file path is required")
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, goerr.Wrap(err, "roster file not found",
				goerr.V("path", path))
		}
		return nil, goerr.Wrap(err, "failed to read roster file",
			goerr.V("path", path))
	}

	var roster model.Roster
	if err := yaml.Unmarshal(data, &roster); err != nil {
		return nil, goerr.Wrap(err, "failed to parse YAML roster",
			goerr.V("path", path))
	}

	if err := roster.Validate(); err != nil {
		return nil, goerr.Wrap(err, "invalid roster",
			goerr.V("path", path))
	}

	return &roster, nil
}

// LogValue returns structured log value
func (r Roster) LogValue() slog.Value {
	return slog.GroupValue(
		slog.String("path", r.Path),
	)
}
