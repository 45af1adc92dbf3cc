package users

import "time"

type User struct {
	ID           string
	Name         string
	Email        string
	Company      string
	PasswordHash []byte
	CreatedAt    time.Time
}

// Profile is the public part of a User as sent to clients.
type Profile struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Email   string `json:"email"`
	Company string `json:"company"`
}

func (u *User) Profile() Profile {
	return Profile{ID: u.ID, Name: u.Name, Email: u.Email, Company: u.Company}
}
