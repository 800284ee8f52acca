package entity

import "strings"

// NormalizeEmail is the one normalization applied to owner emails, both when
// they are written onto records and when an identity is built from a token.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// Identity is the signed-in caller as seen by use cases. The zero value is the
// anonymous caller. Identities can only be built through NewIdentity, so the
// email they carry is always normalized.
type Identity struct {
	uid   string
	email string
}

// NewIdentity builds an identity from the subject and email claims of a verified token.
func NewIdentity(uid, email string) Identity {
	return Identity{
		uid:   strings.TrimSpace(uid),
		email: NormalizeEmail(email),
	}
}

// Anonymous returns the identity of a caller without credentials.
func Anonymous() Identity {
	return Identity{}
}

// UID returns the identity provider's subject. Used only for naming storage objects.
func (i Identity) UID() string {
	return i.uid
}

// Email returns the lower-cased email, the ownership key of every record.
func (i Identity) Email() string {
	return i.email
}

// IsAnonymous reports whether the caller is not signed in.
func (i Identity) IsAnonymous() bool {
	return i.email == ""
}

func (i Identity) String() string {
	if i.IsAnonymous() {
		return "anonymous"
	}

	return i.email
}
