package interfaces

// PasswordHasher abstracts the salted one-way password hash scheme.
type PasswordHasher interface {
	// Hash generates a salted digest from a plaintext password.
	Hash(password string) (string, error)
	// Check reports whether the plaintext matches the digest.
	// Malformed or foreign digests yield false, never an error.
	Check(password, digest string) bool
}
