package config

import (
	"fmt"
	"os"
	"strings"
)

// Admin guards the mutating endpoints. The service has no player
// accounts; a single operator credential is enough.
type Admin struct {
	Username     string
	PasswordHash []byte
}

func NewAdmin() (*Admin, error) {
	username, ok := os.LookupEnv("ADMIN_USERNAME")
	if !ok {
		username = "admin"
	}

	hash, ok := os.LookupEnv("ADMIN_PASSWORD_HASH")
	if ok {
		return &Admin{Username: username, PasswordHash: []byte(hash)}, nil
	}

	hashFile, ok := os.LookupEnv("ADMIN_PASSWORD_HASH_FILE")
	if !ok {
		return nil, fmt.Errorf(
			"no ADMIN_PASSWORD_HASH or ADMIN_PASSWORD_HASH_FILE env variable set",
		)
	}
	data, err := os.ReadFile(hashFile)
	if err != nil {
		return nil, fmt.Errorf("unable to read admin password hash file: %w", err)
	}
	return &Admin{
		Username:     username,
		PasswordHash: []byte(strings.TrimSpace(string(data))),
	}, nil
}
