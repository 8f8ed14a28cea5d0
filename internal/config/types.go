package config

import "fmt"

// Kind selects the installer recipe for one language-server record.
// It is a declared type with one constant per recipe so that adding a new
// installation ecosystem is a compile-checked change, but unrecognized values
// still flow through as data: dispatch warns about them instead of failing.
type Kind string

const (
	KindTar    Kind = "tar"    // fetch tar archive, extract one member, place in bin dir
	KindGzip   Kind = "gzip"   // fetch single-file gzip, decompress, place in bin dir
	KindBinary Kind = "binary" // fetch raw binary, place in bin dir
	KindNpm    Kind = "npm"    // global install via npm
	KindApt    Kind = "apt"    // system install via apt-get (elevated)
	KindCargo  Kind = "cargo"  // install via cargo
	KindPip    Kind = "pip"    // per-user install via pip
	KindRaco   Kind = "raco"   // install via raco pkg
	KindMise   Kind = "mise"   // global runtime selection via mise
)

// ParseKind maps free text to a Kind constant and reports whether the value
// is one of the recognized recipes.
func ParseKind(s string) (Kind, bool) {
	switch k := Kind(s); k {
	case KindTar, KindGzip, KindBinary, KindNpm, KindApt, KindCargo, KindPip, KindRaco, KindMise:
		return k, true
	default:
		return Kind(s), false
	}
}

// Record is one row of the declarative language-server list.
// - Name: logical name of the tool, typically also the final executable name.
// - Kind: installer recipe selector.
// - Source: kind-dependent — a URL for tar/gzip/binary, a package name for the
//   package-manager kinds, a version spec for mise.
// - RenameFrom: name of the file actually produced by extraction when it
//   differs from Name (tar and binary kinds).
type Record struct {
	Name       string
	Kind       Kind
	Source     string
	RenameFrom string
}

// Runtime is one entry of the runtimes list: a mise-managed runtime name with
// an optional pinned version ("latest" when unpinned).
type Runtime struct {
	Name    string
	Version string
}

// KittySettings configures the terminal emulator installation step.
type KittySettings struct {
	InstallerURL string `yaml:"installer_url"` // Vendor install script URL
}

// FontSettings configures the font installation step.
type FontSettings struct {
	Name string `yaml:"name"` // Font family name, used for the install directory
	URL  string `yaml:"url"`  // Release archive URL (.zip or .7z)
}

// Settings holds the bootstrap parameters that are not per-record lists.
type Settings struct {
	BinDir           string        `yaml:"bin_dir"`            // Override for the user-local bin directory
	DotfilesRepo     string        `yaml:"dotfiles_repo"`      // Git URL of the dotfiles repository
	DotfilesDir      string        `yaml:"dotfiles_dir"`       // Clone destination, e.g. ~/dotfiles
	Groups           []string      `yaml:"groups"`             // Supplementary groups for the user
	Shell            string        `yaml:"shell"`              // Login shell, e.g. /usr/bin/zsh
	AptRepos         []string      `yaml:"apt_repos"`          // Extra APT repositories (ppa:... specs)
	Kitty            KittySettings `yaml:"kitty"`              //
	Font             FontSettings  `yaml:"font"`               //
	MiseInstallerURL string        `yaml:"mise_installer_url"` // Vendor install script URL for mise
}

// Config is the fully loaded bootstrap input: the four parsed lists plus the
// settings block. Instances are built once by Load and never mutated.
type Config struct {
	Dotfiles []string
	Packages []string
	Runtimes []Runtime
	Servers  []Record
	Settings Settings
}

// ConfigError reports a missing or malformed input file. It is fatal: the
// bootstrap never starts with an incomplete configuration.
type ConfigError struct {
	Path string
	Err  error
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("config %s: %v", e.Path, e.Err)
}

func (e *ConfigError) Unwrap() error { return e.Err }
