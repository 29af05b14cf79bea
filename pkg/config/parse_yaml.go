package config

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// parseYAML decodes into a yaml.Node so mapping order is kept.
func parseYAML(data []byte) (*Configuration, error) {
	var doc yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, err
	}
	if doc.Kind != yaml.DocumentNode || len(doc.Content) == 0 {
		return nil, fmt.Errorf("document is empty")
	}

	root := resolve(doc.Content[0])
	if root.Kind != yaml.MappingNode {
		return nil, fmt.Errorf("line %d: top level must be a mapping of group names to files", root.Line)
	}

	groups := make([]Group, 0, len(root.Content)/2)
	for i := 0; i+1 < len(root.Content); i += 2 {
		key, value := resolve(root.Content[i]), resolve(root.Content[i+1])
		if key.Kind != yaml.ScalarNode {
			return nil, fmt.Errorf("line %d: group name must be a scalar", key.Line)
		}

		g, err := yamlGroup(key.Value, value)
		if err != nil {
			return nil, err
		}
		groups = append(groups, g)
	}

	return New(groups...), nil
}

func yamlGroup(name string, value *yaml.Node) (Group, error) {
	switch value.Kind {
	case yaml.SequenceNode:
		files, err := yamlFiles(name, value)
		if err != nil {
			return Group{}, err
		}
		return Group{Name: name, Files: files}, nil
	case yaml.MappingNode:
		var rec record
		if err := value.Decode(&rec); err != nil {
			return Group{}, fmt.Errorf("group %q: %w", name, err)
		}
		if rec.Files == nil {
			return Group{}, fmt.Errorf("line %d: group %q record has no files list", value.Line, name)
		}
		return Group{Name: name, Colorize: rec.Colorize, Files: *rec.Files}, nil
	default:
		return Group{}, fmt.Errorf("line %d: group %q must be a list of files or a record with files", value.Line, name)
	}
}

func yamlFiles(name string, seq *yaml.Node) ([]string, error) {
	files := make([]string, 0, len(seq.Content))
	for _, item := range seq.Content {
		item = resolve(item)
		if item.Kind != yaml.ScalarNode || item.ShortTag() != "!!str" {
			return nil, fmt.Errorf("line %d: group %q files must be strings", item.Line, name)
		}
		files = append(files, item.Value)
	}
	return files, nil
}

func resolve(n *yaml.Node) *yaml.Node {
	for n.Kind == yaml.AliasNode && n.Alias != nil {
		n = n.Alias
	}
	return n
}
