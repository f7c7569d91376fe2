// Package layout loads the array geometry a raid6.Engine is
// constructed from out of a YAML config file, rather than requiring
// callers to hardcode the reference P=17, maxDisks=8 pair.
package layout

import (
	"fmt"
	"os"

	"github.com/Anthya1104/evenodd-raid6/internal/raid6"
	"gopkg.in/yaml.v3"
)

// Array describes one array's geometry: the EVENODD prime, the number
// of disks actually present, and the stripe size each disk's buffer
// must be a multiple of.
type Array struct {
	Prime      int `yaml:"prime"`
	MaxDisks   int `yaml:"max_disks"`
	NumDisk    int `yaml:"num_disk"`
	StripeSize int `yaml:"stripe_size_bytes"`
}

// Load reads an Array from a YAML file at path.
func Load(path string) (*Array, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("layout: reading %s: %w", path, err)
	}
	var a Array
	if err := yaml.Unmarshal(data, &a); err != nil {
		return nil, fmt.Errorf("layout: parsing %s: %w", path, err)
	}
	if err := a.Validate(); err != nil {
		return nil, err
	}
	return &a, nil
}

// Validate checks the loaded geometry is internally consistent and
// within the bounds raid6.NewEngine accepts.
func (a *Array) Validate() error {
	if _, err := raid6.NewEngine(a.Prime, a.MaxDisks); err != nil {
		return fmt.Errorf("layout: %w", err)
	}
	if a.NumDisk < 3 || a.NumDisk > a.MaxDisks {
		return fmt.Errorf("layout: num_disk %d must be in [3, max_disks=%d]", a.NumDisk, a.MaxDisks)
	}
	wantStripeBytes := (a.Prime - 1) * 8
	if a.StripeSize <= 0 || a.StripeSize%wantStripeBytes != 0 {
		return fmt.Errorf("layout: stripe_size_bytes %d must be a positive multiple of (prime-1)*8=%d", a.StripeSize, wantStripeBytes)
	}
	return nil
}

// Engine constructs the raid6.Engine this layout describes.
func (a *Array) Engine() (*raid6.Engine, error) {
	return raid6.NewEngine(a.Prime, a.MaxDisks)
}
