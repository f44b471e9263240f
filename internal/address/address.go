// Package address serves the country/state/city lookup tables the
// registration forms use. The dataset is a static JSON file loaded once
// at boot.
package address

import (
	"encoding/json"
	"os"
)

type City struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

type State struct {
	ID     int    `json:"id"`
	Name   string `json:"name"`
	Cities []City `json:"cities,omitempty"`
}

type Country struct {
	ID     int     `json:"id"`
	Name   string  `json:"name"`
	States []State `json:"states,omitempty"`
}

type Store struct {
	countries []Country
}

// Load parses the dataset file.
func Load(path string) (*Store, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var countries []Country
	if err := json.Unmarshal(raw, &countries); err != nil {
		return nil, err
	}
	return &Store{countries: countries}, nil
}

// Countries returns id+name pairs for every country.
func (s *Store) Countries() []Country {
	out := make([]Country, 0, len(s.countries))
	for _, c := range s.countries {
		out = append(out, Country{ID: c.ID, Name: c.Name})
	}
	return out
}

// States returns the states of a country, with found=false when the
// country id is unknown.
func (s *Store) States(countryID int) ([]State, bool) {
	for _, c := range s.countries {
		if c.ID == countryID {
			out := make([]State, 0, len(c.States))
			for _, st := range c.States {
				out = append(out, State{ID: st.ID, Name: st.Name})
			}
			return out, true
		}
	}
	return nil, false
}

// Cities returns the cities of a state, with found=false when no state
// carries the id.
func (s *Store) Cities(stateID int) ([]City, bool) {
	for _, c := range s.countries {
		for _, st := range c.States {
			if st.ID == stateID {
				return st.Cities, true
			}
		}
	}
	return nil, false
}
