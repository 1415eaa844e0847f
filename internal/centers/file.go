package centers

import (
	"os"

	"github.com/rotisserie/eris"
	"gopkg.in/yaml.v3"
)

// registryFile is the YAML shape of an injected registry:
//
//	centers:
//	  - name: Medellín
//	    lat: 6.2527
//	    lon: -75.5628
type registryFile struct {
	Centers []Center `yaml:"centers"`
}

// LoadFile reads an alternate registry for the given class from a YAML
// file. Registries are configuration data, not code; this is the
// injection point for non-default deployments.
func LoadFile(class Class, path string) (*Registry, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, eris.Wrapf(err, "centers: read %s registry file", class)
	}

	var rf registryFile
	if err := yaml.Unmarshal(raw, &rf); err != nil {
		return nil, eris.Wrapf(err, "centers: parse %s registry file", class)
	}
	if len(rf.Centers) == 0 {
		return nil, eris.Errorf("centers: %s registry file %s defines no centers", class, path)
	}

	return NewRegistry(class, rf.Centers)
}
