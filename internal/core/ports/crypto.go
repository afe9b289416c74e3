package ports

// PasswordHasher produces and checks salted one-way password digests.
type PasswordHasher interface {
	Hash(plaintext string) (string, error)

	// Verify reports whether plaintext matches digest. A corrupt or
	// unparseable digest yields false, never an error, so callers cannot
	// tell a wrong password apart from damaged stored data.
	Verify(plaintext, digest string) bool
}

// SessionSigner issues and checks tamper-evident, expiring session tokens
// bound to a user ID. Rotating the signing secret invalidates every
// outstanding token.
type SessionSigner interface {
	Issue(userID int64) (string, error)

	// Verify returns the embedded user ID, or an error if the signature
	// does not check out, the payload is malformed, or the token expired.
	Verify(token string) (int64, error)
}
