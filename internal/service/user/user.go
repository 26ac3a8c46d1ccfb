// Package user holds the persisted user record shared with the sign-up and
// login services.
package user

import (
	"errors"
	"fmt"
	"strings"
)

// Role is the access level granted to a user.
type Role string

const (
	RoleSeller Role = "seller"
	RoleAdmin  Role = "admin"
)

// Valid reports whether r is a known role.
func (r Role) Valid() bool {
	return r == RoleSeller || r == RoleAdmin
}

// ErrInvalidRole is returned when a role is neither seller nor admin.
var ErrInvalidRole = errors.New("invalid role")

// Key layout for the single-table design.
const (
	userKeyPrefix = "USER#"
	MetadataSK    = "METADATA"
)

// StoredUser is the user record as written to the users table.
type StoredUser struct {
	PK           string `dynamodbav:"PK"           json:"PK"`
	SK           string `dynamodbav:"SK"           json:"SK"`
	Name         string `dynamodbav:"name"         json:"name"`
	PasswordHash string `dynamodbav:"passwordHash" json:"-"`
	Role         Role   `dynamodbav:"role"         json:"role"`
}

// UserPK returns the partition key for the user with the given email.
func UserPK(email string) string {
	return userKeyPrefix + strings.ToLower(strings.TrimSpace(email))
}

// NewStoredUser builds the metadata record for a user.
func NewStoredUser(email, name, passwordHash string, role Role) (StoredUser, error) {
	if !role.Valid() {
		return StoredUser{}, fmt.Errorf("%w: %q", ErrInvalidRole, role)
	}
	return StoredUser{
		PK:           UserPK(email),
		SK:           MetadataSK,
		Name:         name,
		PasswordHash: passwordHash,
		Role:         role,
	}, nil
}

// Email returns the email encoded in the partition key.
func (u StoredUser) Email() string {
	return strings.TrimPrefix(u.PK, userKeyPrefix)
}
