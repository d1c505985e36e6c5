package reader

import (
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	"github.com/DjordjeVuckovic/brew-directory/pkg/apis"
)

type YAMLConfigLoader struct {
	reader io.Reader
}

func NewYAMLConfigLoader(reader io.Reader) *YAMLConfigLoader {
	return &YAMLConfigLoader{
		reader: reader,
	}
}

func (cl *YAMLConfigLoader) Load(validate bool) (*apis.DataMapping, error) {
	decoder := yaml.NewDecoder(cl.reader)
	var mapping apis.DataMapping
	if err := decoder.Decode(&mapping); err != nil {
		return nil, fmt.Errorf("decode data mapping: %w", err)
	}
	if validate {
		if err := mapping.Validate(); err != nil {
			return nil, err
		}
	}
	return &mapping, nil
}
