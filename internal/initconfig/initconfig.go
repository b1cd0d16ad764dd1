// filepath: internal/initconfig/initconfig.go
// Package initconfig seeds user records from a TOML file on startup. Every
// record goes through the same check-then-insert path as the add-user
// endpoint; existing users are skipped, failures are logged and do not stop
// the remaining records or the server.
package initconfig

import (
	"errors"

	"animehub/internal/logging"
	"animehub/internal/services"

	"github.com/BurntSushi/toml"
)

// Run loads the init file and creates the listed users.
func Run(userService services.UserService, path string) {
	var cfg InitConfig
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		logging.Log.Errorf("initconfig: failed to load %s: %v", path, err)
		return
	}

	for _, u := range cfg.Users {
		if u.User == "" || u.Password == "" || u.Role == "" {
			logging.Log.Warnf("initconfig: skipping incomplete user record '%s'", u.User)
			continue
		}
		if err := userService.CreateUser(u.User, u.Password, u.Role); err != nil {
			if errors.Is(err, services.ErrUserExists) {
				logging.Log.Infof("initconfig: user '%s' already exists, skipping.", u.User)
				continue
			}
			logging.Log.Errorf("initconfig: failed to create user '%s': %v", u.User, err)
			continue
		}
		logging.Log.Infof("initconfig: user '%s' created.", u.User)
	}
}
