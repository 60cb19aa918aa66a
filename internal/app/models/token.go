package models

// TokenClaims is the payload of the bearer token issued by the auth
// service. The subject claim carries the user's email.
type TokenClaims struct {
	ID        string `json:"id"`
	Email     string `json:"sub"`
	Name      string `json:"name"`
	Role      string `json:"role"`
	IssuedAt  int64  `json:"iat"`
	ExpiresAt int64  `json:"exp"`
}

// Valid satisfies the jwt.Claims interface. The gateway never checks the
// token signature and enforces expiry itself, so there is nothing to do
// here.
func (c *TokenClaims) Valid() error {
	return nil
}

func (c *TokenClaims) ToUserData() (*UserData, error) {
	role, err := ParseRole(c.Role)
	if err != nil {
		return nil, err
	}
	return &UserData{
		ID:    c.ID,
		Email: c.Email,
		Name:  c.Name,
		Role:  role,
	}, nil
}
