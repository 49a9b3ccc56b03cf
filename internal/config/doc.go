// Package config manages user-level settings stored at ~/.junoup/config.yaml.
// It provides functions to load, read, and write configuration keys such as
// the repository to check and the daemon binary's expected location, and it
// validates config files against an embedded JSON schema.
package config
