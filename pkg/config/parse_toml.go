package config

import (
	"fmt"

	"github.com/pelletier/go-toml/v2/unstable"
)

// parseTOML walks the document expression by expression so groups come out
// in the order they are written. Accepted shapes:
//
//	git = ["gitconfig"]
//	vim = { colorize = "green", files = ["vimrc"] }
//
//	[zsh]
//	colorize = "blue"
//	files = ["zshrc"]
func parseTOML(data []byte) (*Configuration, error) {
	p := unstable.Parser{}
	p.Reset(data)

	var (
		groups []Group
		// index of the group opened by the last [table] header, -1 at top level
		current = -1
		// group names and the keys set in the current record; TOML forbids
		// defining either twice
		seen   = map[string]bool{}
		fields map[string]bool
	)

	for p.NextExpression() {
		expr := p.Expression()

		switch expr.Kind {
		case unstable.Table:
			name, err := singleKey(expr.Key())
			if err != nil {
				return nil, err
			}
			if seen[name] {
				return nil, fmt.Errorf("table %q is defined more than once", name)
			}
			seen[name] = true
			groups = append(groups, Group{Name: name})
			current = len(groups) - 1
			fields = map[string]bool{}

		case unstable.KeyValue:
			key, err := singleKey(expr.Key())
			if err != nil {
				return nil, err
			}

			if current >= 0 {
				if fields[key] {
					return nil, fmt.Errorf("group %q: key %q is defined more than once", groups[current].Name, key)
				}
				fields[key] = true
				if err := setRecordField(&groups[current], key, expr.Value()); err != nil {
					return nil, err
				}
				continue
			}

			if seen[key] {
				return nil, fmt.Errorf("key %q is defined more than once", key)
			}
			seen[key] = true
			g, err := tomlGroup(key, expr.Value())
			if err != nil {
				return nil, err
			}
			groups = append(groups, g)

		case unstable.Comment:

		case unstable.ArrayTable:
			return nil, fmt.Errorf("arrays of tables are not supported")

		default:
			return nil, fmt.Errorf("unexpected %s expression", expr.Kind)
		}
	}
	if err := p.Error(); err != nil {
		return nil, err
	}

	for _, g := range groups {
		if g.Files == nil {
			return nil, fmt.Errorf("group %q record has no files list", g.Name)
		}
	}

	return New(groups...), nil
}

func tomlGroup(name string, value *unstable.Node) (Group, error) {
	switch value.Kind {
	case unstable.Array:
		files, err := tomlFiles(name, value)
		if err != nil {
			return Group{}, err
		}
		return Group{Name: name, Files: files}, nil

	case unstable.InlineTable:
		g := Group{Name: name}
		fields := map[string]bool{}
		it := value.Children()
		for it.Next() {
			kv := it.Node()
			if kv.Kind != unstable.KeyValue {
				continue
			}
			key, err := singleKey(kv.Key())
			if err != nil {
				return Group{}, err
			}
			if fields[key] {
				return Group{}, fmt.Errorf("group %q: key %q is defined more than once", name, key)
			}
			fields[key] = true
			if err := setRecordField(&g, key, kv.Value()); err != nil {
				return Group{}, err
			}
		}
		if g.Files == nil {
			return Group{}, fmt.Errorf("group %q record has no files list", name)
		}
		return g, nil

	default:
		return Group{}, fmt.Errorf("group %q must be a list of files or a table with files", name)
	}
}

// setRecordField applies one key of the record shape. Unknown keys are
// ignored so newer metadata does not break older binaries.
func setRecordField(g *Group, key string, value *unstable.Node) error {
	switch key {
	case "files":
		if value.Kind != unstable.Array {
			return fmt.Errorf("group %q: files must be an array", g.Name)
		}
		files, err := tomlFiles(g.Name, value)
		if err != nil {
			return err
		}
		g.Files = files
	case "colorize":
		if value.Kind != unstable.String {
			return fmt.Errorf("group %q: colorize must be a string", g.Name)
		}
		g.Colorize = string(value.Data)
	}
	return nil
}

func tomlFiles(name string, array *unstable.Node) ([]string, error) {
	files := []string{}
	it := array.Children()
	for it.Next() {
		item := it.Node()
		switch item.Kind {
		case unstable.String:
			files = append(files, string(item.Data))
		case unstable.Comment:
		default:
			return nil, fmt.Errorf("group %q files must be strings, found %s", name, item.Kind)
		}
	}
	return files, nil
}

// singleKey rejects dotted keys: groups and record fields are flat.
func singleKey(it unstable.Iterator) (string, error) {
	var parts []string
	for it.Next() {
		parts = append(parts, string(it.Node().Data))
	}
	if len(parts) != 1 {
		return "", fmt.Errorf("dotted key %v is not supported", parts)
	}
	return parts[0], nil
}
