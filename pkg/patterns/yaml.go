package patterns

import (
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

type fileSpec struct {
	Formats []formatSpec `yaml:"formats"`
}

type formatSpec struct {
	Name          string `yaml:"name"`
	Label         string `yaml:"label"`
	Pattern       string `yaml:"pattern"`
	CaseSensitive bool   `yaml:"case_sensitive"`
}

// LoadYAML reads format definitions from r and registers them.
// Entries are validated before any of them is registered, so a bad document
// leaves the registry untouched.
func (r *Registry) LoadYAML(in io.Reader) error {
	var doc fileSpec
	dec := yaml.NewDecoder(in)
	dec.KnownFields(true)
	if err := dec.Decode(&doc); err != nil {
		if errors.Is(err, io.EOF) {
			return nil
		}
		return fmt.Errorf("%w: %w", ErrInvalidDefinition, err)
	}

	formats := make([]Format, 0, len(doc.Formats))
	seen := make(map[string]struct{}, len(doc.Formats))
	for i, fs := range doc.Formats {
		var (
			rule *Rule
			err  error
		)
		if fs.CaseSensitive {
			rule, err = NewCaseSensitiveRule(fs.Pattern)
		} else {
			rule, err = NewRule(fs.Pattern)
		}
		if err != nil {
			return fmt.Errorf("format #%d (%s): %w", i, fs.Name, err)
		}

		f := Format{Name: fs.Name, Label: fs.Label, Rule: rule}
		if err := f.validate(); err != nil {
			return fmt.Errorf("format #%d: %w", i, err)
		}

		key := normalizeName(f.Name)
		if _, dup := seen[key]; dup {
			return fmt.Errorf("format #%d: %w: %s", i, ErrDuplicateFormat, key)
		}
		if _, err := r.Lookup(key); err == nil {
			return fmt.Errorf("format #%d: %w: %s", i, ErrDuplicateFormat, key)
		}
		seen[key] = struct{}{}
		formats = append(formats, f)
	}

	for _, f := range formats {
		if err := r.Register(f); err != nil {
			return err
		}
	}
	return nil
}

// LoadFile registers the formats defined in the YAML file at path.
func (r *Registry) LoadFile(path string) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("open patterns file: %w", err)
	}
	defer f.Close()

	return r.LoadYAML(f)
}
