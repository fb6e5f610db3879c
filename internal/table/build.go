package table

import (
	"fmt"

	"aliasspace/alias"
	"aliasspace/process"
)

// BuildProcessor parses the file's processor names.
func (f *File) BuildProcessor() (process.Processor, error) {
	p, err := process.Parse(f.Processor)
	if err != nil {
		return process.Processor{}, fmt.Errorf("alias table processor: %w", err)
	}

	return p, nil
}

// Index builds an alias index from the file. The file's name and processor
// are applied first, so opts may override them.
func (f *File) Index(opts ...alias.Option) (*alias.Index, error) {
	p, err := f.BuildProcessor()
	if err != nil {
		return nil, err
	}

	all := make([]alias.Option, 0, len(opts)+2)
	all = append(all, alias.WithName(f.Name), alias.WithProcessor(p))
	all = append(all, opts...)

	return alias.New(f.Aliases, all...), nil
}

// FromIndex captures an index's current groups, name and processor as a File.
// Processors containing unnamed transforms do not survive a round trip.
func FromIndex(ix *alias.Index) *File {
	return &File{
		Version:   CurrentVersion,
		Name:      ix.Name(),
		Processor: ix.Processor().Names(),
		Aliases:   ix.Groups(),
	}
}
