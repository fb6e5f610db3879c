// Package table provides the YAML alias table file: schema, parsing,
// consistency checks, and construction of an [alias.Index] from a file.
//
// # Schema Overview
//
//	version: "1"
//	name: countries
//	# transform names applied in order, see process.KnownNames
//	processor: [lower, rstrip]
//	aliases:
//	  The Netherlands: [NL, Netherlands, Holland]
//	  Belgium: BE        # a single alias may be a scalar
//	  Luxembourg:        # representative without aliases
//
// The order of the aliases mapping is the registration order, so when a raw
// alias is listed under two representatives the later one keeps it.
package table
