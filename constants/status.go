package constants

// UserRole is the canonical role for rows in users.
type UserRole string

// Stable values (store these exact strings in DB).
const (
	RoleUser  UserRole = "user"
	RoleShop  UserRole = "shop"
	RoleAdmin UserRole = "admin"
)

// UserRoles holds the allowed values for the role field on User.
var UserRoles = []string{string(RoleUser), string(RoleShop), string(RoleAdmin)}

// Gender values accepted on user profiles.
var Genders = []string{"Male", "Female"}
