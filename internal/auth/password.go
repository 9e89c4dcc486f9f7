package auth

import (
	"crypto/rand"
	"crypto/subtle"
	"encoding/base64"
	"errors"
	"fmt"
	"strings"

	"golang.org/x/crypto/argon2"
	"golang.org/x/crypto/bcrypt"
)

// ErrUnknownHashFormat is returned when a stored hash is neither argon2id nor bcrypt.
var ErrUnknownHashFormat = errors.New("unknown password hash format")

// Hasher hashes passwords with argon2id and verifies argon2id or bcrypt hashes.
// Hashes are stored in PHC string format:
//
//	$argon2id$v=19$m=65536,t=1,p=4$<salt>$<key>
type Hasher struct {
	Time    uint32
	Memory  uint32 // KiB
	Threads uint8
	KeyLen  uint32
	SaltLen uint32
}

// DefaultHasher returns the argon2id parameters recommended by RFC 9106
// for memory-constrained devices.
func DefaultHasher() *Hasher {
	return &Hasher{
		Time:    1,
		Memory:  64 * 1024,
		Threads: 4,
		KeyLen:  32,
		SaltLen: 16,
	}
}

// Hash returns an argon2id PHC string for password.
func (h *Hasher) Hash(password string) (string, error) {
	salt := make([]byte, h.SaltLen)
	if _, err := rand.Read(salt); err != nil {
		return "", fmt.Errorf("failed to generate salt: %w", err)
	}

	key := argon2.IDKey([]byte(password), salt, h.Time, h.Memory, h.Threads, h.KeyLen)
	return fmt.Sprintf("$argon2id$v=%d$m=%d,t=%d,p=%d$%s$%s",
		argon2.Version, h.Memory, h.Time, h.Threads,
		base64.RawStdEncoding.EncodeToString(salt),
		base64.RawStdEncoding.EncodeToString(key),
	), nil
}

// Verify checks password against an encoded hash. needsRehash is true when
// the password matched but the hash should be replaced by a fresh Hash,
// either because it is bcrypt or because its argon2id parameters are stale.
func (h *Hasher) Verify(encoded, password string) (ok, needsRehash bool, err error) {
	switch {
	case strings.HasPrefix(encoded, "$argon2id$"):
		return h.verifyArgon2(encoded, password)
	case isBcrypt(encoded):
		err := bcrypt.CompareHashAndPassword([]byte(encoded), []byte(password))
		if errors.Is(err, bcrypt.ErrMismatchedHashAndPassword) {
			return false, false, nil
		}
		if err != nil {
			return false, false, fmt.Errorf("failed to verify bcrypt hash: %w", err)
		}
		return true, true, nil
	default:
		return false, false, ErrUnknownHashFormat
	}
}

func (h *Hasher) verifyArgon2(encoded, password string) (bool, bool, error) {
	parts := strings.Split(encoded, "$")
	// "", "argon2id", "v=19", "m=..,t=..,p=..", salt, key
	if len(parts) != 6 {
		return false, false, fmt.Errorf("%w: malformed argon2id hash", ErrUnknownHashFormat)
	}

	var version int
	if _, err := fmt.Sscanf(parts[2], "v=%d", &version); err != nil {
		return false, false, fmt.Errorf("invalid argon2id version: %w", err)
	}
	if version != argon2.Version {
		return false, false, fmt.Errorf("unsupported argon2 version %d", version)
	}

	var memory, iterations uint32
	var threads uint8
	if _, err := fmt.Sscanf(parts[3], "m=%d,t=%d,p=%d", &memory, &iterations, &threads); err != nil {
		return false, false, fmt.Errorf("invalid argon2id parameters: %w", err)
	}

	salt, err := base64.RawStdEncoding.DecodeString(parts[4])
	if err != nil {
		return false, false, fmt.Errorf("invalid argon2id salt: %w", err)
	}
	want, err := base64.RawStdEncoding.DecodeString(parts[5])
	if err != nil {
		return false, false, fmt.Errorf("invalid argon2id key: %w", err)
	}

	got := argon2.IDKey([]byte(password), salt, iterations, memory, threads, uint32(len(want)))
	if subtle.ConstantTimeCompare(got, want) != 1 {
		return false, false, nil
	}

	stale := memory != h.Memory || iterations != h.Time || threads != h.Threads || uint32(len(want)) != h.KeyLen
	return true, stale, nil
}

func isBcrypt(encoded string) bool {
	return strings.HasPrefix(encoded, "$2a$") ||
		strings.HasPrefix(encoded, "$2b$") ||
		strings.HasPrefix(encoded, "$2y$")
}
