package keysource

import (
	"context"
	"fmt"
	"io/ioutil"
	"os"

	"github.com/icecave/appstatus/registry"
	"gopkg.in/yaml.v3"
)

// YAMLFile is a source that reads keys from a YAML document of the form:
//
//	keys:
//	  - name: mysql
//	    severity: critical
//
// A missing file is treated as an unconfigured source.
type YAMLFile struct {
	Path string
}

type yamlDocument struct {
	Keys []registry.Entry `yaml:"keys"`
}

// Name returns a description of the source.
func (s *YAMLFile) Name() string {
	return "file " + s.Path
}

// Load reads and parses the file.
func (s *YAMLFile) Load(context.Context) ([]registry.Entry, error) {
	if s.Path == "" {
		return nil, nil
	}

	buf, err := ioutil.ReadFile(s.Path)
	if os.IsNotExist(err) {
		return nil, nil
	} else if err != nil {
		return nil, err
	}

	var doc yamlDocument
	if err := yaml.Unmarshal(buf, &doc); err != nil {
		return nil, fmt.Errorf("unable to parse %s: %w", s.Path, err)
	}

	return doc.Keys, nil
}
