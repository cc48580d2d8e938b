package config

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"

	"vaultsearch/internal/adapters/filesystem"
	"vaultsearch/internal/adapters/obsidian"
)

// Configuration keys shared by viper, flags and the environment
const (
	KeyBrowseRoot      = "browse_root"
	KeyAllowAnyPath    = "allow_any_path"
	KeyVaultName       = "vault_name"
	KeyContainerPrefix = "container_prefix"
	KeyHostPrefix      = "host_prefix"
	KeyHost            = "host"
	KeyPort            = "port"
	KeyExclude         = "exclude"
	KeyLogLevel        = "log_level"
	KeyLogPretty       = "log_pretty"
	KeyEditor          = "editor"
)

const (
	DefaultContainerPrefix = "/vault"
	DefaultHost            = "127.0.0.1"
	DefaultPort            = 5055
	DefaultLogLevel        = "info"
)

// envKeys maps each key to the environment variable it is read from
var envKeys = map[string]string{
	KeyBrowseRoot:      "BROWSE_ROOT",
	KeyAllowAnyPath:    "ALLOW_ANY_PATH",
	KeyVaultName:       "OBSIDIAN_VAULT_NAME",
	KeyContainerPrefix: "OBSIDIAN_CONTAINER_PREFIX",
	KeyHostPrefix:      "OBSIDIAN_HOST_PREFIX",
	KeyHost:            "VAULTSEARCH_HOST",
	KeyPort:            "VAULTSEARCH_PORT",
	KeyExclude:         "VAULTSEARCH_EXCLUDE",
	KeyLogLevel:        "VAULTSEARCH_LOG_LEVEL",
	KeyLogPretty:       "VAULTSEARCH_LOG_PRETTY",
	KeyEditor:          "EDITOR",
}

// Config is the process configuration. It is read once at startup.
type Config struct {
	BrowseRoot      string
	AllowAnyPath    bool
	VaultName       string
	ContainerPrefix string
	HostPrefix      string
	Host            string
	Port            int
	Exclude         []string
	LogLevel        string
	LogPretty       bool
	Editor          string
}

// NewViper returns a viper instance with defaults and environment bindings set
func NewViper() *viper.Viper {
	v := viper.New()
	SetDefaults(v)
	BindEnv(v)
	return v
}

// SetDefaults registers the default value of every key
func SetDefaults(v *viper.Viper) {
	home, err := os.UserHomeDir()
	if err != nil {
		home = "."
	}

	v.SetDefault(KeyBrowseRoot, home)
	v.SetDefault(KeyAllowAnyPath, false)
	v.SetDefault(KeyVaultName, "")
	v.SetDefault(KeyContainerPrefix, DefaultContainerPrefix)
	v.SetDefault(KeyHostPrefix, "")
	v.SetDefault(KeyHost, DefaultHost)
	v.SetDefault(KeyPort, DefaultPort)
	v.SetDefault(KeyExclude, []string{})
	v.SetDefault(KeyLogLevel, DefaultLogLevel)
	v.SetDefault(KeyLogPretty, true)
	v.SetDefault(KeyEditor, "")
}

// BindEnv binds every key to its environment variable
func BindEnv(v *viper.Viper) {
	for key, env := range envKeys {
		_ = v.BindEnv(key, env)
	}
}

// Load reads and normalizes the configuration held by v
func Load(v *viper.Viper) Config {
	return Config{
		BrowseRoot:      absolute(v.GetString(KeyBrowseRoot)),
		AllowAnyPath:    v.GetBool(KeyAllowAnyPath),
		VaultName:       strings.TrimSpace(v.GetString(KeyVaultName)),
		ContainerPrefix: cleanPrefix(v.GetString(KeyContainerPrefix)),
		HostPrefix:      cleanPrefix(v.GetString(KeyHostPrefix)),
		Host:            v.GetString(KeyHost),
		Port:            v.GetInt(KeyPort),
		Exclude:         splitList(v.GetStringSlice(KeyExclude)),
		LogLevel:        strings.ToLower(strings.TrimSpace(v.GetString(KeyLogLevel))),
		LogPretty:       v.GetBool(KeyLogPretty),
		Editor:          strings.TrimSpace(v.GetString(KeyEditor)),
	}
}

// Links returns the deep link configuration
func (c Config) Links() obsidian.LinkConfig {
	return obsidian.LinkConfig{
		VaultName:       c.VaultName,
		ContainerPrefix: c.ContainerPrefix,
		HostPrefix:      c.HostPrefix,
	}
}

func absolute(path string) string {
	path = filesystem.ExpandHome(strings.TrimSpace(path))
	if path == "" {
		path = "."
	}
	abs, err := filepath.Abs(path)
	if err != nil {
		return filepath.Clean(path)
	}
	return abs
}

// cleanPrefix cleans a path prefix; blank and "." mean unset
func cleanPrefix(prefix string) string {
	prefix = strings.TrimSpace(prefix)
	if prefix == "" {
		return ""
	}
	cleaned := filepath.Clean(prefix)
	if cleaned == "." {
		return ""
	}
	return cleaned
}

// splitList flattens comma separated values as they arrive from the environment
func splitList(values []string) []string {
	var out []string
	for _, value := range values {
		for _, part := range strings.Split(value, ",") {
			if part = strings.TrimSpace(part); part != "" {
				out = append(out, part)
			}
		}
	}
	return out
}
