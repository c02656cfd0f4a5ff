package entities

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"time"

	logger "github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"
)

const defaultHTTPTimeoutSeconds = 30

// Settings is the configuration for every release chore. All fields have defaults
// matching the OpenStack-Ansible repository layout.
type Settings struct {
	Requirements RequirementsSettings `yaml:"requirements"`
	Upstream     UpstreamSettings     `yaml:"upstream"`
	Roles        RolesSettings        `yaml:"roles"`
	Release      ReleaseSettings      `yaml:"release"`
	HTTP         HTTPSettings         `yaml:"http"`
}

// RequirementsSettings configures check_pins.
type RequirementsSettings struct {
	PinsFile        string `yaml:"pins_file"`
	ShaManifest     string `yaml:"sha_manifest"`
	ShaKey          string `yaml:"sha_key"`
	PackageIndexURL string `yaml:"package_index_url"`
	ConstraintsURL  string `yaml:"constraints_url"` // {sha} is substituted
}

// UpstreamSettings configures bump_upstream_shas.
type UpstreamSettings struct {
	Path string `yaml:"path"`
}

// RolesSettings configures bump_roles and freeze_roles_for_milestone.
type RolesSettings struct {
	File                 string   `yaml:"file"`
	OwnedPrefixes        []string `yaml:"owned_prefixes"`
	StableBranches       []string `yaml:"stable_branches"`
	ReleaseNotesExcluded []string `yaml:"release_notes_excluded"`
	ReleaseNotesDir      string   `yaml:"release_notes_dir"`
	ProjectDir           string   `yaml:"project_dir"`
	ScratchDir           string   `yaml:"scratch_dir"` // empty means the OS temp dir
}

// ReleaseSettings configures bump_release_number.
type ReleaseSettings struct {
	VersionKey   string   `yaml:"version_key"`
	VersionFiles []string `yaml:"version_files"`
}

// HTTPSettings configures the package index and constraints clients.
type HTTPSettings struct {
	TimeoutSeconds int `yaml:"timeout_seconds"`
}

// Timeout returns the HTTP timeout as a duration.
func (h HTTPSettings) Timeout() time.Duration {
	return time.Duration(h.TimeoutSeconds) * time.Second
}

// DefaultSettings returns the settings used when no configuration file exists.
func DefaultSettings() *Settings {
	return &Settings{
		Requirements: RequirementsSettings{
			PinsFile:        "global-requirement-pins.txt",
			ShaManifest:     "playbooks/defaults/repo_packages/openstack_services.yml",
			ShaKey:          "requirements_git_install_branch",
			PackageIndexURL: "https://pypi.org",
			ConstraintsURL:  "https://raw.githubusercontent.com/openstack/requirements/{sha}/upper-constraints.txt",
		},
		Upstream: UpstreamSettings{
			Path: "playbooks/defaults/repo_packages/",
		},
		Roles: RolesSettings{
			File: "ansible-role-requirements.yml",
			OwnedPrefixes: []string{
				"https://git.openstack.org/",
				"https://opendev.org/openstack/",
			},
			StableBranches: []string{
				"stable/ocata",
				"stable/pike",
				"stable/queens",
				"stable/rocky",
				"stable/stein",
			},
			ReleaseNotesExcluded: []string{"config_template"},
			ReleaseNotesDir:      "releasenotes/notes",
			ProjectDir:           ".",
		},
		Release: ReleaseSettings{
			VersionKey: "openstack_release",
			VersionFiles: []string{
				"inventory/group_vars/all/all.yml",
				"group_vars/all/all.yml",
				"playbooks/inventory/group_vars/all.yml",
			},
		},
		HTTP: HTTPSettings{TimeoutSeconds: defaultHTTPTimeoutSeconds},
	}
}

// envVarPattern matches ${VAR_NAME} placeholders.
var envVarPattern = regexp.MustCompile(`\$\{([^}]+)}`)

// NewSettings reads a configuration file over the defaults.
func NewSettings(path string) (*Settings, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %q: %w", path, err)
	}

	settings := DefaultSettings()
	if unmarshalErr := yaml.Unmarshal(data, settings); unmarshalErr != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", unmarshalErr)
	}

	settings.expandEnv()

	if validateErr := settings.Validate(); validateErr != nil {
		return nil, validateErr
	}

	return settings, nil
}

// FindConfigFile searches for a configuration file in standard locations.
// Returns the path to the first file found or an error if none is found.
func FindConfigFile() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		homeDir = ""
	}

	locations := []string{
		".",
		".config",
		"configs",
	}
	if homeDir != "" {
		locations = append(
			locations,
			homeDir,
			filepath.Join(homeDir, ".config"),
		)
	}

	patterns := []string{
		".osa-releases.yaml",
		".osa-releases.yml",
		"osa-releases.yaml",
		"osa-releases.yml",
	}

	for _, loc := range locations {
		for _, pat := range patterns {
			p := filepath.Join(loc, pat)
			if _, statErr := os.Stat(p); statErr == nil {
				return p, nil
			}
		}
	}

	return "", errors.New("config file not found in default locations")
}

// Validate checks for required configuration values.
func (s *Settings) Validate() error {
	if s.Release.VersionKey == "" {
		return errors.New("release.version_key is required")
	}
	if len(s.Release.VersionFiles) == 0 {
		return errors.New("release.version_files must have at least one entry")
	}
	if s.HTTP.TimeoutSeconds <= 0 {
		return fmt.Errorf("http.timeout_seconds must be positive, got %d", s.HTTP.TimeoutSeconds)
	}
	return nil
}

// IsManagedBranch reports whether roles can be bumped for the given branch.
func (s *Settings) IsManagedBranch(branch string) bool {
	if branch == MasterBranch {
		return true
	}
	for _, stable := range s.Roles.StableBranches {
		if stable == branch {
			return true
		}
	}
	return false
}

func (s *Settings) expandEnv() {
	for _, field := range []*string{
		&s.Requirements.PinsFile,
		&s.Requirements.ShaManifest,
		&s.Requirements.PackageIndexURL,
		&s.Requirements.ConstraintsURL,
		&s.Upstream.Path,
		&s.Roles.File,
		&s.Roles.ProjectDir,
		&s.Roles.ScratchDir,
	} {
		*field = expandEnvRefs(*field)
	}
}

// expandEnvRefs expands ${ENV_VAR} references, warning on unset variables.
func expandEnvRefs(raw string) string {
	return envVarPattern.ReplaceAllStringFunc(raw, func(match string) string {
		varName := envVarPattern.FindStringSubmatch(match)[1]
		if val := os.Getenv(varName); val != "" {
			return val
		}
		logger.Warnf("Environment variable %q is not set", varName)
		return ""
	})
}
