package export

import (
	"encoding/json"
	"io/ioutil"

	"github.com/wiless/ituantenna/antenna"
)

// JSON writes the specification as an indented JSON object.
type JSON struct{}

func (JSON) Export(spec *antenna.Specification, filename string) error {
	b, err := json.MarshalIndent(newDocument(spec), "", "    ")
	if err != nil {
		return err
	}
	return ioutil.WriteFile(filename, b, 0644)
}
