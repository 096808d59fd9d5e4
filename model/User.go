package model

import (
	"regexp"

	"golang.org/x/crypto/bcrypt"
)

const MaxUid = 0x1000000 // exclusive

// FormerUserDisplayName is shown for uids that no longer resolve to a user.
const FormerUserDisplayName = "[[global:former_user]]"

var usernamePattern = regexp.MustCompile(`^[\p{L}\p{N} ._\-]{2,24}$`)

type User struct {
	Uid          int64
	Username     string
	Email        string
	PasswordHash []byte
	CreatedAt    int64
}

type UsernameUser struct {
	Username string
	Uid      int64
}

func (u *User) Validate() error {
	if !usernamePattern.MatchString(u.Username) {
		return NewInputError("username", "must be 2 to 24 letters, digits, spaces, '.', '_' or '-'")
	}

	if len(u.PasswordHash) == 0 {
		return NewInputError("password", "can't be blank")
	}

	return nil
}

func (u *User) SetPassword(password string) error {
	if len(password) < 6 {
		return NewInputError("password", "must be at least 6 characters")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	u.PasswordHash = hash
	return nil
}

func (u *User) CheckPassword(password string) bool {
	return bcrypt.CompareHashAndPassword(u.PasswordHash, []byte(password)) == nil
}

// DisplayName is what other users see in notification text.
func (u User) DisplayName() string {
	if u.Username == "" {
		return FormerUserDisplayName
	}
	return u.Username
}
