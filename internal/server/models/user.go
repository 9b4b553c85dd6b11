package models

// User is the stored account record. PasswordHash never leaves the service
// layer; callers get a PublicUser instead.
type User struct {
	ID           string
	Username     string
	Email        string
	PasswordHash string
	Bio          string
	Avatar       string
}

// PublicUser is the sanitized view of a User.
type PublicUser struct {
	ID       string `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email"`
	Bio      string `json:"bio"`
	Avatar   string `json:"avatar"`
}

func (u *User) Public() *PublicUser {
	return &PublicUser{
		ID:       u.ID,
		Username: u.Username,
		Email:    u.Email,
		Bio:      u.Bio,
		Avatar:   u.Avatar,
	}
}

func (u User) Clone() User {
	return u
}

// UserUpdate is a partial update: nil fields keep their current value.
// PasswordHash is filled in by the service after hashing a new password.
type UserUpdate struct {
	Username     *string
	Email        *string
	PasswordHash *string
	Bio          *string
	Avatar       *string
}

// Apply merges the present fields of upd into u.
func (upd UserUpdate) Apply(u *User) {
	if upd.Username != nil {
		u.Username = *upd.Username
	}
	if upd.Email != nil {
		u.Email = *upd.Email
	}
	if upd.PasswordHash != nil {
		u.PasswordHash = *upd.PasswordHash
	}
	if upd.Bio != nil {
		u.Bio = *upd.Bio
	}
	if upd.Avatar != nil {
		u.Avatar = *upd.Avatar
	}
}
