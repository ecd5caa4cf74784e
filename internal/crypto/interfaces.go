package crypto

//go:generate mockgen -source=interfaces.go -destination=../mock/credential_verifier_mock.go -package=mock

// CredentialVerifier decides whether an Authorization header carries the
// shared ETL token.
//
// Accepted form:
//
//	Authorization: Basic base64("token:" + <plain token>)
//
// The scheme is matched case-insensitively, the user name must be exactly
// "token" and the password is checked against a bcrypt hash. Any malformed
// header is rejected; Verify never fails with an error.
type CredentialVerifier interface {
	Verify(authHeader string) bool
}
