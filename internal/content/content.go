// Package content loads the panel definitions shown by the squeezebox
// demo application from YAML files.
package content

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Section is one accordion panel: a header title and body text.
type Section struct {
	Title string `yaml:"title"`
	Body  string `yaml:"body"`
}

// Set describes one accordion to build: its selection behaviour and the
// panels it contains. Defaults lists the panels that start open; absent
// (nil after unmarshal) means the accordion picks its own default.
type Set struct {
	Name        string    `yaml:"name"`
	Multiple    bool      `yaml:"multiple"`
	Collapsible bool      `yaml:"collapsible"`
	ReadOnly    bool      `yaml:"readOnly"`
	Defaults    []int     `yaml:"defaults"`
	Sections    []Section `yaml:"sections"`
}

// Library is a collection of accordion definitions.
type Library struct {
	Sets []Set `yaml:"sets"`
}

// ValidationError reports an invalid field in a loaded library.
type ValidationError struct {
	Field   string
	Message string
}

func (e ValidationError) Error() string {
	if e.Field == "" {
		return e.Message
	}
	return e.Field + ": " + e.Message
}

// Load reads and validates a library from a YAML file.
func Load(path string) (*Library, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read content file: %w", err)
	}

	var lib Library
	if err := yaml.Unmarshal(data, &lib); err != nil {
		return nil, fmt.Errorf("parse content file %s: %w", path, err)
	}
	if err := lib.Validate(); err != nil {
		return nil, fmt.Errorf("invalid content file %s: %w", path, err)
	}
	return &lib, nil
}

// Validate checks that every set can be turned into an accordion.
func (l *Library) Validate() error {
	if len(l.Sets) == 0 {
		return ValidationError{Field: "sets", Message: "at least one set is required"}
	}
	for i, set := range l.Sets {
		if set.Name == "" {
			return ValidationError{
				Field:   fmt.Sprintf("sets[%d].name", i),
				Message: "name is required",
			}
		}
		if len(set.Sections) == 0 {
			return ValidationError{
				Field:   fmt.Sprintf("sets[%d].sections", i),
				Message: "at least one section is required",
			}
		}
		for j, section := range set.Sections {
			if section.Title == "" {
				return ValidationError{
					Field:   fmt.Sprintf("sets[%d].sections[%d].title", i, j),
					Message: "title is required",
				}
			}
		}
		for _, index := range set.Defaults {
			if index < 0 || index >= len(set.Sections) {
				return ValidationError{
					Field:   fmt.Sprintf("sets[%d].defaults", i),
					Message: fmt.Sprintf("index %d is out of range", index),
				}
			}
		}
	}
	return nil
}

// Default returns the built-in demo library used when no content file is
// configured.
func Default() *Library {
	return &Library{
		Sets: []Set{
			{
				Name:        "Single selection",
				Collapsible: true,
				Sections: []Section{
					{Title: "What is squeezebox?", Body: "A from-scratch accordion widget for Fyne."},
					{Title: "Single mode", Body: "At most one panel is open; collapsible lets you close it."},
					{Title: "Identifiers", Body: "Each panel derives stable item, panel, and button ids."},
				},
			},
			{
				Name:     "Multiple selection",
				Multiple: true,
				Defaults: []int{0, 2},
				Sections: []Section{
					{Title: "Multiple mode", Body: "Any number of panels may be open at once."},
					{Title: "Sticky last panel", Body: "Without collapsible, the final open panel stays open."},
					{Title: "Sorted open-set", Body: "The open indices are kept sorted ascending."},
				},
			},
		},
	}
}
