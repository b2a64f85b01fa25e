package models

// Profile is the signed-in user's identity as held by a Session.
type Profile struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Role     Role   `json:"role"`
}

// IsAdmin reports whether the profile carries the ADMIN role.
func (p Profile) IsAdmin() bool { return p.Role == RoleAdmin }

// Session is the authenticated-user context attached to outgoing requests.
type Session struct {
	Token string  `json:"token"`
	User  Profile `json:"user"`
}

// Credentials is the login body.
type Credentials struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// AuthResponse is returned by login and register.
type AuthResponse struct {
	Token    string `json:"token"`
	Username string `json:"username"`
	Email    string `json:"email"`
	Role     Role   `json:"role"`
}

// Session converts the response into a client session.
func (r AuthResponse) Session() Session {
	return Session{
		Token: r.Token,
		User:  Profile{Username: r.Username, Email: r.Email, Role: r.Role},
	}
}

// RegisterRequest is the registration body.
type RegisterRequest struct {
	FirstName       string `json:"firstName,omitempty" binding:"omitempty,max=100"`
	LastName        string `json:"lastName,omitempty" binding:"omitempty,max=100"`
	Email           string `json:"email" binding:"required,email"`
	PhoneNumber     string `json:"phoneNumber,omitempty" binding:"omitempty,max=20"`
	Username        string `json:"username" binding:"required,min=3,max=50"`
	Password        string `json:"password" binding:"required,min=6"`
	ConfirmPassword string `json:"confirmPassword,omitempty" binding:"omitempty,eqfield=Password"`
}

// CurrentAccount is the body of GET /api/auth/me.
type CurrentAccount struct {
	ID       int64  `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email"`
	Role     Role   `json:"role"`
	Enabled  bool   `json:"enabled"`
}

// Profile returns the session profile for the account.
func (c CurrentAccount) Profile() Profile {
	return Profile{Username: c.Username, Email: c.Email, Role: c.Role}
}
