package auth

type ClaimsData struct {
	Issuer    string
	UserID    string
	Username  string
	Role      string
	ProfileID *string
	ExpiresAt int64
	IssuedAt  int64
}
