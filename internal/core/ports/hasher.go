package ports

// PasswordHasher is the one-way credential transform. Hash need not be
// deterministic across calls (salting); the only guarantee is that
// Matches(s, Hash(s)) holds.
type PasswordHasher interface {
	Hash(plain string) (string, error)
	Matches(plain, hash string) bool
}
