package template

import "strings"

// Role tokens recognized in template owner fields. Tokens are matched against
// whole "/"-separated segments, never by substring, so a real name that
// happens to contain "SA" is never rewritten.
const (
	roleSA = "SA"
	roleAE = "AE"
)

// SubstituteOwner replaces the SA and AE role tokens in an owner field with
// the resolved names. A token is only replaced when the corresponding name is
// non-empty; all other segments ("SA Manager", "DSA", "PS", free text) pass
// through unchanged, preserving the original "/" layout.
func SubstituteOwner(owner, solutionArchitect, accountExecutive string) string {
	if owner == "" {
		return owner
	}
	segments := strings.Split(owner, "/")
	for i, seg := range segments {
		switch strings.TrimSpace(seg) {
		case roleSA:
			if solutionArchitect != "" {
				segments[i] = solutionArchitect
			}
		case roleAE:
			if accountExecutive != "" {
				segments[i] = accountExecutive
			}
		}
	}
	return strings.Join(segments, "/")
}
