package credentials

// Claims is what a verified credential says about the caller. It is the
// only thing the API layer knows about authentication: token issuance
// and refresh live outside this service.
type Claims struct {
	UserID          uint
	Email           string
	TenantID        *uint
	RoleID          uint
	IsPlatformAdmin bool
}

type Verifier interface {
	Verify(bearerToken string) (*Claims, error)
}
