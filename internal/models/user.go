package models

import "time"

// Credential represents one local account.
type Credential struct {
	// Email is the normalized email address and the primary key.
	Email string

	// PasswordHash is a self-describing hash string (argon2id PHC or bcrypt).
	PasswordHash string

	// Name is the optional display name.
	Name string

	// CreatedAt and UpdatedAt are Unix timestamps.
	CreatedAt int64
	UpdatedAt int64
}

// NewCredential creates a credential for a normalized email with timestamps set.
func NewCredential(email, name, passwordHash string) *Credential {
	now := time.Now().Unix()
	return &Credential{
		Email:        NormalizeEmail(email),
		PasswordHash: passwordHash,
		Name:         name,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
}

// Profile returns the cached-profile view of the credential.
func (c *Credential) Profile() *UserProfile {
	return &UserProfile{
		IDFromBackend: c.Email,
		Name:          c.Name,
		Email:         c.Email,
	}
}

// UserProfile is the denormalized copy of the user currently signed in on
// this device. At most one exists at any time.
type UserProfile struct {
	// IDFromBackend equals Email for local accounts.
	IDFromBackend string
	Name          string
	Email         string
}
