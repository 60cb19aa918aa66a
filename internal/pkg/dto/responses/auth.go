package responses

// LoginData is the auth service's login payload.
type LoginData struct {
	AccessToken string `json:"accessToken"`
	Email       string `json:"email"`
	Name        string `json:"name"`
	Role        string `json:"role"`
	ExpiresIn   int64  `json:"expiresIn"`
}

// Login is what the gateway hands back to the browser after a successful
// login: the role plus where the UI should navigate next.
type Login struct {
	Role       string `json:"role"`
	RedirectTo string `json:"redirectTo"`
}

type Profile struct {
	ID    string `json:"id"`
	Email string `json:"email"`
	Name  string `json:"name"`
	Role  string `json:"role"`
}
