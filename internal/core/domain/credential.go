package domain

import "strings"

// CredentialKind distinguishes how a stored password is encoded.
type CredentialKind int

const (
	// CredentialHashed means the stored value is a bcrypt hash.
	CredentialHashed CredentialKind = iota
	// CredentialPlain means the stored value is a legacy raw password that
	// has not been migrated to a hash yet.
	CredentialPlain
)

// bcrypt hashes start with a recognizable version marker.
var hashPrefixes = []string{"$2a$", "$2b$", "$2y$"}

// Credential is the tagged view of a stored password. The kind is decided by
// prefix inspection at the data boundary, never by trying a verification and
// catching the failure.
type Credential struct {
	Kind  CredentialKind
	Value string
}

// ParseCredential classifies a stored password as hashed or plain.
func ParseCredential(stored string) Credential {
	for _, p := range hashPrefixes {
		if strings.HasPrefix(stored, p) {
			return Credential{Kind: CredentialHashed, Value: stored}
		}
	}
	return Credential{Kind: CredentialPlain, Value: stored}
}

// IsHashed reports whether the credential is a bcrypt hash.
func (c Credential) IsHashed() bool { return c.Kind == CredentialHashed }
