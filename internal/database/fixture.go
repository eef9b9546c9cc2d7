package database

import (
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/nao1215/reportgen/internal/model"
)

// Fixture is a batch of records to import.
//
// Example:
//
//	members:
//	  - number: 7
//	    name: Alex Burbank
//	    address: "1111"
//	    city: Blah
//	    state: OR
//	    zip: 1111
//	services:
//	  - provider_id: 100
//	    member_id: 7
//	    service_id: 555
//	    service_name: AA
//	    service_date: 2024-03-08
//	    date_time_received: 2024-03-08T10:00:00Z
//	    fee: 50
//
// Service entries carry numbers only; provider_name and member_name are
// ignored because names are joined from the member and provider tables.
type Fixture struct {
	Members   []model.MemberRecord    `yaml:"members"`
	Providers []model.ProviderRecord  `yaml:"providers"`
	Services  []model.ProvidedService `yaml:"services"`
}

// Empty reports whether f holds no records at all.
func (f *Fixture) Empty() bool {
	return f == nil || len(f.Members)+len(f.Providers)+len(f.Services) == 0
}

// ParseFixture decodes a YAML fixture. Unknown keys are rejected.
func ParseFixture(r io.Reader) (*Fixture, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var f Fixture
	if err := dec.Decode(&f); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, ErrEmptyFixture
		}
		return nil, fmt.Errorf("failed to parse fixture: %w", err)
	}

	if f.Empty() {
		return nil, ErrEmptyFixture
	}
	return &f, nil
}

// LoadFixture reads and decodes the fixture file at path.
func LoadFixture(path string) (*Fixture, error) {
	file, err := os.Open(path) //nolint:gosec // path is provided by the operator
	if err != nil {
		return nil, fmt.Errorf("failed to open fixture: %w", err)
	}
	defer file.Close()

	return ParseFixture(file)
}
