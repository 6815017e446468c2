package model

// PasswordHasher hashes plaintext passwords and checks them against stored hashes.
type PasswordHasher interface {
	Hash(plaintext string) (string, error)
	// Verify reports whether plaintext matches hash. A mismatch is not an error;
	// ErrCorruptCredential is returned only when hash cannot be decoded.
	Verify(hash, plaintext string) (bool, error)
}
