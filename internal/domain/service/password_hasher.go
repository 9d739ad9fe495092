package service

// PasswordHasher defines the interface for password hashing operations.
type PasswordHasher interface {
	// Hash generates a hash from a plain-text password.
	Hash(password string) (string, error)

	// Compare checks if a plain-text password matches a hash.
	Compare(hashedPassword, password string) error
}
