package table

import "aliasspace/alias"

// CurrentVersion is the schema version written by Marshal.
const CurrentVersion = "1"

// File represents the root of a YAML alias table file.
type File struct {
	// Version of the table schema (for future compatibility).
	Version string `yaml:"version,omitempty"`

	// Name is the display name of the index built from this file.
	Name string `yaml:"name,omitempty"`

	// Processor lists transform names applied before comparison, in order.
	// Accepts a single name or a list.
	Processor StringOrArray `yaml:"processor,omitempty"`

	// Aliases maps each representative to its aliases, in file order.
	Aliases GroupList `yaml:"aliases"`
}

// StringOrArray represents a value that can be either a single string or an array of strings.
type StringOrArray []string

// GroupList is an ordered list of alias groups, written in YAML as a mapping
// from representative to aliases.
type GroupList []alias.Group
