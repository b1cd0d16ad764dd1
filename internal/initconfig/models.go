// filepath: internal/initconfig/models.go
package initconfig

// InitConfig describes the one-time initialization file: a list of user
// records to seed next to the configured admin.
type InitConfig struct {
	Users []UserInit `toml:"users"`
}

// UserInit is one user record in the init file.
type UserInit struct {
	User     string `toml:"user"`
	Password string `toml:"password"`
	Role     string `toml:"role"`
}
