package user

// PasswordHasher abstracts the slow key-derivation function used for
// credential storage. The salt is stored per-user, so both operations take
// it explicitly.
type PasswordHasher interface {
	Hash(password, salt string) (string, error)
	Verify(password, hash, salt string) error
}
