package alias

import (
	"cmp"
	"iter"
	"log/slog"
	"slices"
	"strconv"
	"sync"

	"aliasspace/internal/common"
	"aliasspace/process"
)

// Group is a representative with the aliases registered for it.
type Group struct {
	Representative string
	Aliases        []string
}

// Option configures an Index.
type Option func(*Index)

// WithProcessor sets the normalization applied to inputs, aliases and
// representatives before comparison. The default is identity.
func WithProcessor(p process.Processor) Option {
	return func(ix *Index) { ix.processor = p }
}

// WithName sets the display name used in errors and logs.
func WithName(name string) Option {
	return func(ix *Index) { ix.name = name }
}

// WithLogger sets the logger for table lifecycle events. Nothing is logged by default.
func WithLogger(l *slog.Logger) Option {
	return func(ix *Index) {
		if l != nil {
			ix.logger = l
		}
	}
}

// registration records which representative a raw alias belongs to and when
// it was registered, so a rebuild replays registrations in order.
type registration struct {
	representative string
	seq            uint64
}

// Index resolves aliases to their representatives.
type Index struct {
	name   string
	logger *slog.Logger

	mu              sync.RWMutex
	processor       process.Processor
	representatives []string
	isRep           map[string]struct{}
	aliases         map[string]registration
	seq             uint64
	table           lookupTable
}

// New creates an index from groups. Groups are registered in order, so when
// the same raw alias appears under two representatives the later one keeps it.
// A representative listed twice has its aliases merged.
// The lookup table is not built until the first query.
func New(groups []Group, opts ...Option) *Index {
	ix := &Index{
		logger:  slog.New(slog.DiscardHandler),
		isRep:   make(map[string]struct{}, len(groups)),
		aliases: make(map[string]registration),
	}

	for _, opt := range opts {
		opt(ix)
	}

	for _, g := range groups {
		ix.registerRepresentative(g.Representative)

		for _, a := range g.Aliases {
			ix.registerAlias(a, g.Representative)
		}
	}

	return ix
}

// FromMap creates an index from a representative to aliases map.
// Representatives are registered in sorted order.
func FromMap(data map[string][]string, opts ...Option) *Index {
	groups := make([]Group, 0, len(data))
	for _, rep := range common.SortedKeys(data) {
		groups = append(groups, Group{Representative: rep, Aliases: data[rep]})
	}

	return New(groups, opts...)
}

func (ix *Index) registerRepresentative(rep string) bool {
	if _, ok := ix.isRep[rep]; ok {
		return false
	}

	ix.isRep[rep] = struct{}{}
	ix.representatives = append(ix.representatives, rep)

	return true
}

func (ix *Index) registerAlias(alias, rep string) {
	ix.seq++
	ix.aliases[alias] = registration{representative: rep, seq: ix.seq}
}

// AddAlias registers alias under representative, moving it if it was
// registered elsewhere. A new representative also becomes its own alias.
func (ix *Index) AddAlias(alias, representative string) {
	ix.mu.Lock()
	defer ix.mu.Unlock()

	isNew := ix.registerRepresentative(representative)
	ix.registerAlias(alias, representative)

	if !ix.table.built() {
		return
	}

	ix.table.setAlias(ix.processor.Apply(alias), representative)

	if isNew {
		ix.table.setRepresentative(ix.processor.Apply(representative), representative)
	}
}

// Resolve returns the representative of input, or applies policy if input
// has no entry. Only Raise produces an error.
func (ix *Index) Resolve(input string, policy MissingPolicy) (string, error) {
	if rep, ok := ix.lookup(input); ok {
		return rep, nil
	}

	return policy.miss(input, ix.name)
}

// ResolveMany lazily resolves each input in order. The sequence is single
// pass. Under Raise the first miss yields its error and ends the sequence.
func (ix *Index) ResolveMany(inputs iter.Seq[string], policy MissingPolicy) iter.Seq2[string, error] {
	return func(yield func(string, error) bool) {
		for input := range inputs {
			out, err := ix.Resolve(input, policy)
			if !yield(out, err) || err != nil {
				return
			}
		}
	}
}

// ResolveAll resolves every input and returns the results in input order.
func (ix *Index) ResolveAll(inputs []string, policy MissingPolicy) ([]string, error) {
	out := make([]string, 0, len(inputs))

	for rep, err := range ix.ResolveMany(slices.Values(inputs), policy) {
		if err != nil {
			return nil, err
		}

		out = append(out, rep)
	}

	return out, nil
}

// Contains reports whether input has an entry.
func (ix *Index) Contains(input string) bool {
	_, ok := ix.lookup(input)
	return ok
}

func (ix *Index) lookup(input string) (string, bool) {
	ix.mu.RLock()
	if ix.table.built() {
		rep, ok := ix.table.get(ix.processor.Apply(input))
		ix.mu.RUnlock()

		return rep, ok
	}
	ix.mu.RUnlock()

	ix.mu.Lock()
	defer ix.mu.Unlock()

	ix.buildLocked()

	return ix.table.get(ix.processor.Apply(input))
}

// buildLocked derives the table from the registrations: aliases in
// registration order first, then representatives so they keep their own keys.
func (ix *Index) buildLocked() {
	if ix.table.built() {
		return
	}

	type pending struct {
		alias string
		registration
	}

	regs := make([]pending, 0, len(ix.aliases))
	for a, r := range ix.aliases {
		regs = append(regs, pending{alias: a, registration: r})
	}

	slices.SortFunc(regs, func(a, b pending) int { return cmp.Compare(a.seq, b.seq) })

	t := newLookupTable(len(regs) + len(ix.representatives))
	for _, r := range regs {
		t.setAlias(ix.processor.Apply(r.alias), r.representative)
	}

	for _, rep := range ix.representatives {
		t.setRepresentative(ix.processor.Apply(rep), rep)
	}

	ix.table = t

	ix.logger.Debug("lookup table built",
		"index", ix.name,
		"processor", ix.processor.String(),
		"representatives", len(ix.representatives),
		"aliases", len(ix.aliases),
		"keys", len(t.entries))
}

// Processor returns the normalization in use, so callers can apply the same
// transform to bulk data before looking keys up in Table.
func (ix *Index) Processor() process.Processor {
	ix.mu.RLock()
	defer ix.mu.RUnlock()

	return ix.processor
}

// SetProcessor replaces the normalization and discards the lookup table.
func (ix *Index) SetProcessor(p process.Processor) {
	ix.mu.Lock()
	defer ix.mu.Unlock()

	ix.processor = p

	if ix.table.built() {
		ix.table.invalidate()
		ix.logger.Debug("lookup table invalidated", "index", ix.name, "processor", p.String())
	}
}

// Table returns a copy of the lookup table from processed key to representative.
func (ix *Index) Table() map[string]string {
	ix.mu.Lock()
	defer ix.mu.Unlock()

	ix.buildLocked()

	return ix.table.snapshot()
}

// Len returns the number of keys in the lookup table.
func (ix *Index) Len() int {
	ix.mu.Lock()
	defer ix.mu.Unlock()

	ix.buildLocked()

	return len(ix.table.entries)
}

// Representatives returns the representatives in registration order.
func (ix *Index) Representatives() []string {
	ix.mu.RLock()
	defer ix.mu.RUnlock()

	return slices.Clone(ix.representatives)
}

// Groups returns the registered source data: representatives in registration
// order, each with its raw aliases in registration order.
func (ix *Index) Groups() []Group {
	ix.mu.RLock()
	defer ix.mu.RUnlock()

	type member struct {
		alias string
		seq   uint64
	}

	byRep := make(map[string][]member, len(ix.representatives))
	for a, r := range ix.aliases {
		byRep[r.representative] = append(byRep[r.representative], member{alias: a, seq: r.seq})
	}

	groups := make([]Group, 0, len(ix.representatives))

	for _, rep := range ix.representatives {
		members := byRep[rep]
		slices.SortFunc(members, func(a, b member) int { return cmp.Compare(a.seq, b.seq) })

		aliases := make([]string, len(members))
		for i, m := range members {
			aliases[i] = m.alias
		}

		groups = append(groups, Group{Representative: rep, Aliases: aliases})
	}

	return groups
}

// Name returns the display name.
func (ix *Index) Name() string { return ix.name }

func (ix *Index) String() string {
	if ix.name == "" {
		return "alias index"
	}

	return "alias index " + strconv.Quote(ix.name)
}
