package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/priyanshujain/buildsource/internal/codebuild"
	"github.com/priyanshujain/buildsource/internal/providers"
	"gopkg.in/yaml.v3"
)

// cfg is the on-disk layout of the configuration file
type cfg struct {
	Name        string `yaml:"name"`
	Path        string `yaml:"path"`
	Description string `yaml:"description,omitempty"`
	Providers   map[string]struct {
		Account   string `yaml:"account"`
		Region    string `yaml:"region"`
		Partition string `yaml:"partition,omitempty"`
	} `yaml:"providers"`
	Backend struct {
		Type        string `yaml:"type"`
		Bucket      string `yaml:"bucket"`
		Prefix      string `yaml:"prefix,omitempty"`
		Region      string `yaml:"region,omitempty"`
		Profile     string `yaml:"profile,omitempty"`
		Credentials string `yaml:"credentials,omitempty"`
	} `yaml:"backend"`
	Notify       *Notify      `yaml:"notify,omitempty"`
	Repositories []Repository `yaml:"repositories"`
	Buckets      []Bucket     `yaml:"buckets"`
	Projects     []Project    `yaml:"projects"`
}

type Notify struct {
	Project     string `yaml:"project"`
	Topic       string `yaml:"topic"`
	Credentials string `yaml:"credentials,omitempty"`
}

type Repository struct {
	ID     string `yaml:"id"`
	Name   string `yaml:"name"`
	Import bool   `yaml:"import"`
}

type Bucket struct {
	ID     string `yaml:"id"`
	Name   string `yaml:"name"`
	Import bool   `yaml:"import"`
}

type Project struct {
	ID              string `yaml:"id"`
	Name            string `yaml:"name"`
	Description     string `yaml:"description,omitempty"`
	Image           string `yaml:"image,omitempty"`
	ComputeType     string `yaml:"compute_type,omitempty"`
	EnvironmentType string `yaml:"environment_type,omitempty"`
	BuildSpec       string `yaml:"buildspec,omitempty"`
	Source          Source `yaml:"source"`
}

type Source struct {
	Type          string  `yaml:"type"`
	Location      string  `yaml:"location,omitempty"`
	Repository    string  `yaml:"repository,omitempty"`
	Bucket        string  `yaml:"bucket,omitempty"`
	Path          string  `yaml:"path,omitempty"`
	OAuthToken    *string `yaml:"oauth_token,omitempty"`
	OAuthTokenEnv string  `yaml:"oauth_token_env,omitempty"`
}

// Token returns the OAuth token for the source, or nil when none is configured.
// A literal token wins over the environment variable.
func (s Source) Token() *string {
	if s.OAuthToken != nil {
		token := *s.OAuthToken
		return &token
	}
	if s.OAuthTokenEnv == "" {
		return nil
	}
	if token, ok := os.LookupEnv(s.OAuthTokenEnv); ok {
		return &token
	}
	return nil
}

type Config struct {
	Name         string
	Description  string
	Provider     providers.Provider
	Backend      providers.Backend
	Notify       *Notify
	Repositories []Repository
	Buckets      []Bucket
	Projects     []Project

	path string
}

// Load loads configuration from a YAML file. An empty path means the default
// location under the user's config directory.
func Load(path string) (Config, error) {
	if path == "" {
		p, err := defaultConfigPath()
		if err != nil {
			return Config{}, fmt.Errorf("failed to get default config path: %w", err)
		}
		path = p
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("error reading config file: %w", err)
	}
	return Parse(data)
}

func Parse(data []byte) (Config, error) {
	var config cfg
	if err := yaml.Unmarshal(data, &config); err != nil {
		return Config{}, fmt.Errorf("error parsing config file: %w", err)
	}

	if err := validateConfig(&config); err != nil {
		return Config{}, err
	}

	var provider providers.Provider
	for name, p := range config.Providers {
		provider = providers.Provider{
			Type:      providers.ProviderType(name),
			AccountID: p.Account,
			Region:    p.Region,
			Partition: p.Partition,
		}
	}
	if provider.Partition == "" {
		provider.Partition = providers.DefaultPartition
	}

	backend := providers.Backend{
		Type:        providers.BackendType(strings.ToLower(config.Backend.Type)),
		Bucket:      config.Backend.Bucket,
		Prefix:      config.Backend.Prefix,
		Region:      config.Backend.Region,
		Profile:     config.Backend.Profile,
		Credentials: config.Backend.Credentials,
	}
	if backend.Type == "" {
		backend.Type = providers.BackendTypeLocal
	}
	if backend.Type == providers.BackendTypeS3 && backend.Region == "" {
		backend.Region = provider.Region
	}

	return Config{
		Name:         config.Name,
		Description:  config.Description,
		Provider:     provider,
		Backend:      backend,
		Notify:       config.Notify,
		Repositories: config.Repositories,
		Buckets:      config.Buckets,
		Projects:     config.Projects,
		path:         config.Path,
	}, nil
}

// validateConfig ensures the configuration is valid
func validateConfig(config *cfg) error {
	if config.Name == "" {
		return fmt.Errorf("config has no name")
	}

	if len(config.Providers) == 0 {
		return fmt.Errorf("no providers configured")
	}
	for name, provider := range config.Providers {
		if providers.ProviderTypeAWS.String() != name {
			return fmt.Errorf("unsupported provider: %s", name)
		}
		if provider.Account == "" {
			return fmt.Errorf("provider %s has no account", name)
		}
		if provider.Region == "" {
			return fmt.Errorf("provider %s has no region", name)
		}
	}

	switch providers.BackendType(strings.ToLower(config.Backend.Type)) {
	case "", providers.BackendTypeLocal:
	case providers.BackendTypeS3, providers.BackendTypeGCS:
		if config.Backend.Bucket == "" {
			return fmt.Errorf("backend %s has no bucket", config.Backend.Type)
		}
	default:
		return fmt.Errorf("unsupported backend: %s", config.Backend.Type)
	}

	if config.Notify != nil && (config.Notify.Project == "" || config.Notify.Topic == "") {
		return fmt.Errorf("notify requires a project and a topic")
	}

	ids := make(map[string]string)
	claim := func(kind, id string) error {
		if id == "" {
			return fmt.Errorf("%s has no id", kind)
		}
		if other, ok := ids[id]; ok {
			return fmt.Errorf("%s id %s is already used by a %s", kind, id, other)
		}
		ids[id] = kind
		return nil
	}

	repositories := make(map[string]bool)
	for _, r := range config.Repositories {
		if err := claim("repository", r.ID); err != nil {
			return err
		}
		if r.Name == "" {
			return fmt.Errorf("repository %s has no name", r.ID)
		}
		repositories[r.ID] = true
	}

	buckets := make(map[string]bool)
	for _, b := range config.Buckets {
		if err := claim("bucket", b.ID); err != nil {
			return err
		}
		if b.Import && b.Name == "" {
			return fmt.Errorf("imported bucket %s has no name", b.ID)
		}
		buckets[b.ID] = true
	}

	if len(config.Projects) == 0 {
		return fmt.Errorf("no projects configured")
	}
	for _, p := range config.Projects {
		if err := claim("project", p.ID); err != nil {
			return err
		}
		if err := validateSource(p.ID, p.Source, repositories, buckets); err != nil {
			return err
		}
	}

	return nil
}

func validateSource(project string, s Source, repositories, buckets map[string]bool) error {
	kind, err := codebuild.ParseSourceType(s.Type)
	if err != nil {
		return fmt.Errorf("project %s: %w", project, err)
	}

	switch kind {
	case codebuild.SourceTypeCodeCommit:
		if !repositories[s.Repository] {
			return fmt.Errorf("project %s references unknown repository %q", project, s.Repository)
		}
	case codebuild.SourceTypeS3:
		if !buckets[s.Bucket] {
			return fmt.Errorf("project %s references unknown bucket %q", project, s.Bucket)
		}
		if s.Path == "" {
			return fmt.Errorf("project %s has an s3 source without a path", project)
		}
	case codebuild.SourceTypeGitHub, codebuild.SourceTypeGitHubEnterprise, codebuild.SourceTypeBitBucket:
		if s.Location == "" {
			return fmt.Errorf("project %s has a %s source without a location", project, strings.ToLower(kind.String()))
		}
	}

	if kind != codebuild.SourceTypeGitHub && (s.OAuthToken != nil || s.OAuthTokenEnv != "") {
		return fmt.Errorf("project %s: oauth tokens are only supported for github sources", project)
	}
	return nil
}

func defaultConfigPath() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get user home directory: %w", err)
	}
	path := filepath.Join(homeDir, ".config", "buildsource", "config.yaml")

	// if the file does not exist, create it
	if _, err := os.Stat(path); os.IsNotExist(err) {
		if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
			return "", fmt.Errorf("failed to create config directory: %w", err)
		}

		// write default config
		defaultConfig := `providers:`
		err = os.WriteFile(path, []byte(defaultConfig), 0644)
		if err != nil {
			return "", fmt.Errorf("failed to write default config: %w", err)
		}
	}
	return path, nil
}

// ProjectPath is the directory synthesized templates are written to.
func (c *Config) ProjectPath() string {
	if c.path == "" {
		return "."
	}
	return c.path
}

func (c *Config) DefaultProvider() providers.Provider {
	return c.Provider
}

func (c *Config) Repository(id string) (Repository, bool) {
	for _, r := range c.Repositories {
		if r.ID == id {
			return r, true
		}
	}
	return Repository{}, false
}

func (c *Config) Bucket(id string) (Bucket, bool) {
	for _, b := range c.Buckets {
		if b.ID == id {
			return b, true
		}
	}
	return Bucket{}, false
}

// WithPath returns a copy of c writing its output under path.
func WithPath(c Config, path string) (Config, error) {
	if path == "" {
		return Config{}, fmt.Errorf("output path cannot be empty")
	}
	c.path = path
	return c, nil
}
