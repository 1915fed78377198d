package rules

import (
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/ini.v1"
	"gopkg.in/yaml.v3"

	"github.com/KirkDiggler/rpg-stats/internal/errors"
)

// LoadFile reads a rule file into its raw section form. The format is picked
// by extension: .yaml/.yml, or .cfg/.ini/.conf for INI files.
func LoadFile(path string) (Raw, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, errors.Wrapf(err, "failed to read rules file %s", path)
		}
		return ParseYAML(data)
	case ".cfg", ".ini", ".conf":
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, errors.Wrapf(err, "failed to read rules file %s", path)
		}
		return ParseINI(data)
	default:
		return nil, errors.InvalidArgumentf("unsupported rules file extension %q", filepath.Ext(path))
	}
}

// LoadAndParse is LoadFile followed by Parse
func LoadAndParse(path string) (Table, Diagnostics, error) {
	raw, err := LoadFile(path)
	if err != nil {
		return nil, nil, err
	}
	return Parse(raw)
}

// ParseYAML reads a YAML document of section mappings. Scalars are kept as
// written (1.0 stays a float) and sequences are joined with commas, so
//
//	crit:
//	  scale_stat: [dmg, crit, aspd]
//
// is the same as scale_stat: "dmg,crit,aspd".
func ParseYAML(data []byte) (Raw, error) {
	var doc yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, errors.InvalidArgumentf("failed to parse YAML rules: %v", err)
	}

	raw := make(Raw)
	if doc.Kind == 0 || len(doc.Content) == 0 {
		return raw, nil
	}

	root := doc.Content[0]
	if root.Kind != yaml.MappingNode {
		return nil, errors.InvalidTypef("rules document must be a mapping of sections")
	}

	for i := 0; i+1 < len(root.Content); i += 2 {
		name := root.Content[i].Value
		body := root.Content[i+1]

		options := make(map[string]string)
		raw[name] = options

		if body.Kind == yaml.ScalarNode && body.ShortTag() == "!!null" {
			continue
		}
		if body.Kind != yaml.MappingNode {
			return nil, errors.InvalidTypef("section %q must be a mapping of options", name)
		}

		for j := 0; j+1 < len(body.Content); j += 2 {
			key := body.Content[j].Value
			value, err := yamlValue(body.Content[j+1])
			if err != nil {
				return nil, errors.Wrapf(err, "section %q option %q", name, key)
			}
			options[key] = value
		}
	}

	return raw, nil
}

func yamlValue(n *yaml.Node) (string, error) {
	switch n.Kind {
	case yaml.ScalarNode:
		return n.Value, nil
	case yaml.SequenceNode:
		items := make([]string, 0, len(n.Content))
		for _, item := range n.Content {
			if item.Kind != yaml.ScalarNode {
				return "", errors.InvalidTypef("sequence items must be scalars")
			}
			items = append(items, item.Value)
		}
		return strings.Join(items, ","), nil
	default:
		return "", errors.InvalidTypef("option values must be scalars or sequences")
	}
}

// ParseINI reads configparser-style INI. Options in the DEFAULT section are
// inherited by every other section unless the section overrides them, and
// the DEFAULT section itself is not returned.
func ParseINI(data []byte) (Raw, error) {
	f, err := ini.LoadSources(ini.LoadOptions{InsensitiveKeys: true}, data)
	if err != nil {
		return nil, errors.InvalidArgumentf("failed to parse INI rules: %v", err)
	}

	defaults := f.Section(ini.DefaultSection)

	raw := make(Raw)
	for _, section := range f.Sections() {
		if section.Name() == ini.DefaultSection {
			continue
		}

		options := make(map[string]string)
		for _, key := range defaults.Keys() {
			options[key.Name()] = key.Value()
		}
		for _, key := range section.Keys() {
			options[key.Name()] = key.Value()
		}
		raw[section.Name()] = options
	}

	return raw, nil
}
