package model

import (
	"github.com/m-mizutani/goerr/v2"
)

// Staff is a member of the vaccination center staff
type Staff struct {
	ID       string `yaml:"id" json:"id"`
	Name     string `yaml:"name" json:"name"`
	Position string `yaml:"position" json:"position"`
}

// Validate validates the staff entry
func (s *Staff) Validate() error {
	if s.ID == "" {
		return goerr.New("staff ID is required")
	}
	if s.Name == "" {
		return goerr.New("staff name is required", goerr.V("id", s.ID))
	}
	return nil
}

// Roster is the static list of staff shown as rows of the schedule grid
type Roster struct {
	Staff []Staff `yaml:"staff"`
}

// Validate validates the roster
func (r *Roster) Validate() error {
	idMap := make(map[string]bool)
	for i, s := range r.Staff {
		if err := s.Validate(); err != nil {
			return goerr.Wrap(err, "invalid staff at index",
				goerr.V("index", i))
		}

		if idMap[s.ID] {
			return goerr.New("duplicate staff ID",
				goerr.V("id", s.ID))
		}
		idMap[s.ID] = true
	}
	return nil
}

// DefaultRoster is used when no roster file is configured
func DefaultRoster() *Roster {
	return &Roster{
		Staff: []Staff{
			{ID: "doctor-1", Name: "Doctor 1", Position: "Doctor"},
			{ID: "nurse-1", Name: "Nurse 1", Position: "Nurse"},
			{ID: "nurse-2", Name: "Nurse 2", Position: "Nurse"},
			{ID: "reception-1", Name: "Receptionist 1", Position: "Reception"},
		},
	}
}
