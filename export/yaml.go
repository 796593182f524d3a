package export

import (
	"os"

	"gopkg.in/yaml.v3"

	"github.com/wiless/ituantenna/antenna"
)

// YAML writes the specification as a YAML mapping.
type YAML struct{}

func (YAML) Export(spec *antenna.Specification, filename string) error {
	f, err := os.Create(filename)
	if err != nil {
		return err
	}
	defer f.Close()

	enc := yaml.NewEncoder(f)
	if err := enc.Encode(newDocument(spec)); err != nil {
		enc.Close()
		return err
	}
	return enc.Close()
}
