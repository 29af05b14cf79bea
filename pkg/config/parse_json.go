package config

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
)

// record is the group shape carrying metadata next to the file list.
type record struct {
	Colorize string    `json:"colorize" yaml:"colorize"`
	Files    *[]string `json:"files" yaml:"files"`
}

// parseJSON walks the top-level object token by token so that group order
// survives decoding.
func parseJSON(data []byte) (*Configuration, error) {
	dec := json.NewDecoder(bytes.NewReader(data))

	tok, err := dec.Token()
	if err != nil {
		return nil, err
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return nil, fmt.Errorf("top level must be an object mapping group names to files")
	}

	var groups []Group
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return nil, err
		}
		name, ok := tok.(string)
		if !ok {
			return nil, fmt.Errorf("unexpected token %v", tok)
		}

		var raw json.RawMessage
		if err := dec.Decode(&raw); err != nil {
			return nil, fmt.Errorf("group %q: %w", name, err)
		}

		g, err := jsonGroup(name, raw)
		if err != nil {
			return nil, err
		}
		groups = append(groups, g)
	}

	if _, err := dec.Token(); err != nil {
		return nil, err
	}
	if _, err := dec.Token(); err != io.EOF {
		return nil, fmt.Errorf("unexpected data after the top-level object")
	}

	return New(groups...), nil
}

func jsonGroup(name string, raw json.RawMessage) (Group, error) {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 {
		return Group{}, fmt.Errorf("group %q has no value", name)
	}

	switch trimmed[0] {
	case '[':
		var files []string
		if err := json.Unmarshal(trimmed, &files); err != nil {
			return Group{}, fmt.Errorf("group %q: files must be strings: %w", name, err)
		}
		return Group{Name: name, Files: files}, nil
	case '{':
		var rec record
		if err := json.Unmarshal(trimmed, &rec); err != nil {
			return Group{}, fmt.Errorf("group %q: %w", name, err)
		}
		if rec.Files == nil {
			return Group{}, fmt.Errorf("group %q: record has no files list", name)
		}
		return Group{Name: name, Colorize: rec.Colorize, Files: *rec.Files}, nil
	default:
		return Group{}, fmt.Errorf("group %q must be a list of files or a record with files", name)
	}
}
