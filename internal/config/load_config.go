package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// mainConfig mirrors the structure of config.yaml: the paths of the four
// plaintext input lists plus the settings block.
type mainConfig struct {
	Config struct {
		DotfilesFile string `yaml:"dotfiles_file"`
		PackagesFile string `yaml:"packages_file"`
		RuntimesFile string `yaml:"runtimes_file"`
		ServersFile  string `yaml:"servers_file"`
	} `yaml:"config"`
	Settings Settings `yaml:"settings"`
}

// Load reads the main config.yaml file and the four referenced input lists,
// returning a fully populated Config. List paths are resolved relative to the
// directory holding config.yaml so the whole input set can live together.
func Load(configFile string) (Config, error) {
	raw, err := os.ReadFile(configFile)
	if err != nil {
		return Config{}, &ConfigError{Path: configFile, Err: err}
	}

	var main mainConfig
	if err := yaml.Unmarshal(raw, &main); err != nil {
		return Config{}, &ConfigError{Path: configFile, Err: fmt.Errorf("unmarshal: %w", err)}
	}

	base := filepath.Dir(configFile)

	// ----- dotfiles list -----
	dotfiles, err := loadTokens(filepath.Join(base, main.Config.DotfilesFile))
	if err != nil {
		return Config{}, err
	}

	// ----- OS package list -----
	packages, err := loadTokens(filepath.Join(base, main.Config.PackagesFile))
	if err != nil {
		return Config{}, err
	}

	// ----- runtime spec list -----
	runtimesPath := filepath.Join(base, main.Config.RuntimesFile)
	runtimesRaw, err := os.ReadFile(runtimesPath)
	if err != nil {
		return Config{}, &ConfigError{Path: runtimesPath, Err: err}
	}
	runtimes := ParseRuntimes(string(runtimesRaw))

	// ----- language-server record list -----
	serversPath := filepath.Join(base, main.Config.ServersFile)
	serversRaw, err := os.ReadFile(serversPath)
	if err != nil {
		return Config{}, &ConfigError{Path: serversPath, Err: err}
	}
	servers, err := ParseServers(string(serversRaw))
	if err != nil {
		return Config{}, &ConfigError{Path: serversPath, Err: err}
	}

	return Config{
		Dotfiles: dotfiles,
		Packages: packages,
		Runtimes: runtimes,
		Servers:  servers,
		Settings: main.Settings,
	}, nil
}

// loadTokens reads a plaintext list file and returns its whitespace-separated
// tokens, wrapping read failures as ConfigError.
func loadTokens(path string) ([]string, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, &ConfigError{Path: path, Err: err}
	}
	return ParseTokens(string(raw)), nil
}
