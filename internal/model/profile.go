package model

import "time"

// Profile is a user's display profile. Email is optional and only used
// for reminder delivery.
type Profile struct {
	UserID      string    `json:"user_id"`
	DisplayName string    `json:"display_name"`
	Email       string    `json:"email,omitempty"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// UnknownDisplayName is shown for members whose profile row is missing.
const UnknownDisplayName = "Unknown"

// ProfileRefKind tags the three shapes joined profile data can arrive in.
type ProfileRefKind int

const (
	// ProfileRefNone: the member has no profile row.
	ProfileRefNone ProfileRefKind = iota

	// ProfileRefSingle: exactly one profile row.
	ProfileRefSingle

	// ProfileRefList: multiple rows; the first one is authoritative.
	ProfileRefList
)

// ProfileRef is an explicit tagged union over the joined profile data for
// a group member: none, a single profile, or a list of profiles.
//
// The backend join can legitimately yield any of the three, so the
// variants are modeled explicitly instead of being re-discovered by
// runtime inspection at every call site.
type ProfileRef struct {
	kind    ProfileRefKind
	profile Profile
	list    []Profile
}

// NoProfile returns the absent variant.
func NoProfile() ProfileRef {
	return ProfileRef{kind: ProfileRefNone}
}

// SingleProfile wraps one profile row.
func SingleProfile(p Profile) ProfileRef {
	return ProfileRef{kind: ProfileRefSingle, profile: p}
}

// ProfileList wraps a list of profile rows. An empty list collapses to
// the none variant so callers never observe an empty list.
func ProfileList(ps []Profile) ProfileRef {
	if len(ps) == 0 {
		return NoProfile()
	}
	return ProfileRef{kind: ProfileRefList, list: ps}
}

// Kind reports which variant this reference holds.
func (r ProfileRef) Kind() ProfileRefKind {
	return r.kind
}

// DisplayName is the single normalization function over the union:
//   - none: UnknownDisplayName
//   - single: that profile's display name
//   - list: the first element's display name
//
// A present-but-empty display name also falls back to UnknownDisplayName.
func (r ProfileRef) DisplayName() string {
	var name string
	switch r.kind {
	case ProfileRefSingle:
		name = r.profile.DisplayName
	case ProfileRefList:
		name = r.list[0].DisplayName
	}

	if name == "" {
		return UnknownDisplayName
	}
	return name
}

// Email resolves the contact email the same way DisplayName resolves the
// name; empty string when absent.
func (r ProfileRef) Email() string {
	switch r.kind {
	case ProfileRefSingle:
		return r.profile.Email
	case ProfileRefList:
		return r.list[0].Email
	}
	return ""
}

// MemberProfile pairs a group member's user id with whatever profile data
// the join produced for them. Order of a []MemberProfile follows the
// member fetch; it is never re-sorted.
type MemberProfile struct {
	UserID  string
	Profile ProfileRef
}
