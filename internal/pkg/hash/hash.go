package hash

// Hash hashes plaintexts and verifies them against stored digests.
type Hash interface {
	// Hash hashes plaintext and returns the digest.
	Hash(plaintext string) ([]byte, error)
	// Verify returns true when plaintext matches the hashed value.
	Verify(hashed, plaintext string) bool
}
