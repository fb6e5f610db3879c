package table

import (
	"fmt"

	"aliasspace/internal/diagnostic"
	"aliasspace/process"
)

// Diagnostic codes reported by Check.
const (
	CodeEmptyRepresentative = "ALS001"
	CodeEmptyAlias          = "ALS002"
	CodeAliasMoved          = "ALS003"
	CodeShadowedByRep       = "ALS004"
	CodeSharedKey           = "ALS005"
	CodeUnknownTransform    = "ALS006"
	CodeDuplicateRep        = "ALS007"
)

type keyOwner struct {
	alias          string
	representative string
}

// Check reports entries that make the table unusable or that will not
// resolve the way they read. Key-based checks are skipped when the
// processor cannot be built.
func Check(f *File) diagnostic.Diagnostics {
	var diags diagnostic.Diagnostics

	p, err := f.BuildProcessor()
	if err != nil {
		diags.AddError(CodeUnknownTransform, err.Error(), "", "")
	}

	diags.Merge(checkEntries(f))

	if err == nil {
		diags.Merge(checkKeys(f, p))
	}

	return diags
}

// checkEntries reports problems visible on the raw strings.
func checkEntries(f *File) diagnostic.Diagnostics {
	var diags diagnostic.Diagnostics

	seenRep := make(map[string]bool, len(f.Aliases))

	for _, g := range f.Aliases {
		if g.Representative == "" {
			diags.AddError(CodeEmptyRepresentative, "representative is empty", "", "")
		}

		if seenRep[g.Representative] {
			diags.AddWarning(CodeDuplicateRep, "representative listed more than once; aliases are merged",
				g.Representative, "")
		}

		seenRep[g.Representative] = true
	}

	rawOwner := make(map[string]string)

	for _, g := range f.Aliases {
		for _, a := range g.Aliases {
			if a == "" {
				diags.AddWarning(CodeEmptyAlias, "alias is empty", g.Representative, "")
				continue
			}

			if prev, ok := rawOwner[a]; ok && prev != g.Representative {
				diags.AddWarning(CodeAliasMoved,
					fmt.Sprintf("alias also listed under %q; this later entry wins", prev),
					g.Representative, a)
			}

			rawOwner[a] = g.Representative
		}
	}

	return diags
}

// checkKeys reports aliases whose processed key collides with another entry.
func checkKeys(f *File, p process.Processor) diagnostic.Diagnostics {
	var diags diagnostic.Diagnostics

	repKeys := make(map[string]string, len(f.Aliases))
	for _, g := range f.Aliases {
		repKeys[p.Apply(g.Representative)] = g.Representative
	}

	keyOwners := make(map[string]keyOwner)

	for _, g := range f.Aliases {
		for _, a := range g.Aliases {
			if a == "" {
				continue
			}

			key := p.Apply(a)

			if rep, ok := repKeys[key]; ok {
				if rep != g.Representative {
					diags.AddWarning(CodeShadowedByRep,
						fmt.Sprintf("normalizes to %q, the key of representative %q, which takes precedence", key, rep),
						g.Representative, a)
				}

				continue
			}

			if prev, ok := keyOwners[key]; ok && prev.representative != g.Representative && prev.alias != a {
				diags.AddInfo(CodeSharedKey,
					fmt.Sprintf("shares key %q with alias %q of %q; this later entry wins", key, prev.alias, prev.representative),
					g.Representative, a)
			}

			keyOwners[key] = keyOwner{alias: a, representative: g.Representative}
		}
	}

	return diags
}
