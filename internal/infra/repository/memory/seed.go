package memory

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/BruksfildServices01/barber-booking/internal/models"
)

type catalogFile struct {
	Branches []models.Branch  `yaml:"branches"`
	Barbers  []models.Barber  `yaml:"barbers"`
	Services []models.Service `yaml:"services"`
}

// LoadCatalog seeds the store from a YAML catalog file.
func (s *Store) LoadCatalog(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read catalog: %w", err)
	}
	return s.LoadCatalogYAML(data)
}

func (s *Store) LoadCatalogYAML(data []byte) error {
	var f catalogFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return fmt.Errorf("failed to parse catalog: %w", err)
	}

	branchIDs := make(map[uint]struct{}, len(f.Branches))
	for _, b := range f.Branches {
		branchIDs[b.ID] = struct{}{}
		s.AddBranch(b)
	}

	for _, b := range f.Barbers {
		if _, ok := branchIDs[b.BranchID]; !ok {
			return fmt.Errorf("barber %d references unknown branch %d", b.ID, b.BranchID)
		}
		s.AddBarber(b)
	}

	for _, sv := range f.Services {
		s.AddService(sv)
	}

	return nil
}
