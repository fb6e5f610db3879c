// Package alias maps alternate spellings of a term back to one canonical
// representative.
//
// An [Index] is built from groups of a representative and its aliases, plus an
// optional [process.Processor] that decides which strings count as equal:
//
//	ix := alias.New([]alias.Group{
//		{Representative: "The Netherlands", Aliases: []string{"NL", "Netherlands", "Holland"}},
//	}, alias.WithProcessor(process.New().Lower()), alias.WithName("countries"))
//
//	ix.Resolve("holland", alias.Passthrough()) // "The Netherlands", nil
//	ix.Resolve("Belgium", alias.Passthrough()) // "Belgium", nil
//	ix.Resolve("Belgium", alias.Raise())       // "", *NotFoundError
//
// # Lookup table
//
// Queries go through a lookup table from processed key to representative. The
// table is derived from the registered groups on first use and kept
// consistent by [Index.AddAlias]; replacing the processor discards it.
//
// Every representative is an alias of itself. When processed keys collide the
// later registration wins, except that a representative's own key always
// resolves to that representative.
//
// # Missing inputs
//
// What a query returns for an input with no entry is chosen by a
// [MissingPolicy]: return the input unchanged, return a fixed value, or fail
// with a [*NotFoundError].
//
// An Index is safe for concurrent use.
package alias
