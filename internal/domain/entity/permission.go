package entity

import "sort"

type PermissionType string

const (
	PermissionRead   PermissionType = "Read"
	PermissionCreate PermissionType = "Create"
	PermissionUpdate PermissionType = "Update"
	PermissionDelete PermissionType = "Delete"
)

// AllPermissions lists every capability tag in canonical order.
var AllPermissions = []PermissionType{PermissionRead, PermissionCreate, PermissionUpdate, PermissionDelete}

func ParsePermissionType(s string) (PermissionType, bool) {
	for _, p := range AllPermissions {
		if string(p) == s {
			return p, true
		}
	}
	return "", false
}

// PermissionSet is the effective capability set of a user.
type PermissionSet map[PermissionType]struct{}

func NewPermissionSet(perms ...PermissionType) PermissionSet {
	set := make(PermissionSet, len(perms))
	for _, p := range perms {
		set.Add(p)
	}
	return set
}

func (s PermissionSet) Add(p PermissionType) {
	s[p] = struct{}{}
}

func (s PermissionSet) Has(p PermissionType) bool {
	_, ok := s[p]
	return ok
}

// Missing returns the required permissions not in the set, in input order.
func (s PermissionSet) Missing(required ...PermissionType) []PermissionType {
	var missing []PermissionType
	for _, p := range required {
		if !s.Has(p) {
			missing = append(missing, p)
		}
	}
	return missing
}

func (s PermissionSet) ContainsAll(required ...PermissionType) bool {
	return len(s.Missing(required...)) == 0
}

// Slice returns the set in canonical order (Read, Create, Update, Delete).
func (s PermissionSet) Slice() []PermissionType {
	out := make([]PermissionType, 0, len(s))
	for p := range s {
		out = append(out, p)
	}
	sort.Slice(out, func(i, j int) bool { return rank(out[i]) < rank(out[j]) })
	return out
}

func rank(p PermissionType) int {
	for i, known := range AllPermissions {
		if known == p {
			return i
		}
	}
	return len(AllPermissions)
}
