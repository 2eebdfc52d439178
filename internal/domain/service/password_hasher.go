package service

// PasswordHasher abstracts the password hashing algorithm so the domain
// never sees bcrypt directly.
type PasswordHasher interface {
	// Hash generates a salted hash from a plaintext password.
	Hash(password string) (string, error)

	// Check reports whether the plaintext password matches the hash.
	Check(password, hash string) bool
}
