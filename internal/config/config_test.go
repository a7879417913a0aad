package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/priyanshujain/buildsource/internal/config"
	"github.com/priyanshujain/buildsource/internal/providers"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const validConfig = `
name: app
path: ./out
providers:
  aws:
    account: "123456789012"
    region: us-east-1
backend:
  type: s3
  bucket: templates
  prefix: cfn/
repositories:
  - id: Repo
    name: app-repo
    import: true
buckets:
  - id: Sources
projects:
  - id: Build
    name: app-build
    source:
      type: codecommit
      repository: Repo
  - id: Package
    source:
      type: s3
      bucket: Sources
      path: src.zip
  - id: Mirror
    source:
      type: github
      location: https://github.com/org/repo.git
      oauth_token_env: APP_GITHUB_TOKEN
`

func TestParse_Valid(t *testing.T) {
	cfg, err := config.Parse([]byte(validConfig))
	require.NoError(t, err)

	assert.Equal(t, "app", cfg.Name)
	assert.Equal(t, "./out", cfg.ProjectPath())
	assert.Equal(t, providers.Provider{
		Type:      providers.ProviderTypeAWS,
		AccountID: "123456789012",
		Region:    "us-east-1",
		Partition: providers.DefaultPartition,
	}, cfg.DefaultProvider())
	assert.Equal(t, providers.BackendTypeS3, cfg.Backend.Type)
	assert.Equal(t, "us-east-1", cfg.Backend.Region)
	assert.Len(t, cfg.Projects, 3)

	repo, ok := cfg.Repository("Repo")
	require.True(t, ok)
	assert.True(t, repo.Import)

	_, ok = cfg.Bucket("Missing")
	assert.False(t, ok)
}

func TestParse_DefaultsToLocalBackend(t *testing.T) {
	cfg, err := config.Parse([]byte(`
name: app
providers:
  aws: {account: "1", region: us-east-1}
projects:
  - id: Build
    source: {type: codepipeline}
`))
	require.NoError(t, err)

	assert.Equal(t, providers.BackendTypeLocal, cfg.Backend.Type)
	assert.Equal(t, ".", cfg.ProjectPath())
	assert.Nil(t, cfg.Notify)
}

func TestParse_Invalid(t *testing.T) {
	base := "name: app\nproviders:\n  aws: {account: \"1\", region: us-east-1}\n"
	tests := map[string]string{
		"no name":         "providers:\n  aws: {account: \"1\", region: r}\nprojects:\n  - id: B\n    source: {type: codepipeline}\n",
		"no providers":    "name: app\nprojects:\n  - id: B\n    source: {type: codepipeline}\n",
		"google provider": "name: app\nproviders:\n  google: {account: \"1\", region: r}\nprojects:\n  - id: B\n    source: {type: codepipeline}\n",
		"no projects":     base,
		"unknown type":    base + "projects:\n  - id: B\n    source: {type: svn}\n",
		"missing repo":    base + "projects:\n  - id: B\n    source: {type: codecommit, repository: Nope}\n",
		"s3 without path": base + "buckets:\n  - id: S\nprojects:\n  - id: B\n    source: {type: s3, bucket: S}\n",
		"github no url":   base + "projects:\n  - id: B\n    source: {type: github}\n",
		"token on bb":     base + "projects:\n  - id: B\n    source: {type: bitbucket, location: x, oauth_token: t}\n",
		"duplicate id":    base + "buckets:\n  - id: B\nprojects:\n  - id: B\n    source: {type: codepipeline}\n",
		"bad backend":     base + "backend: {type: ftp}\nprojects:\n  - id: B\n    source: {type: codepipeline}\n",
		"s3 no bucket":    base + "backend: {type: s3}\nprojects:\n  - id: B\n    source: {type: codepipeline}\n",
		"notify no topic": base + "notify: {project: p}\nprojects:\n  - id: B\n    source: {type: codepipeline}\n",
		"import unnamed":  base + "buckets:\n  - id: S\n    import: true\nprojects:\n  - id: B\n    source: {type: codepipeline}\n",
		"malformed yaml":  "name: [",
	}

	for name, doc := range tests {
		t.Run(name, func(t *testing.T) {
			_, err := config.Parse([]byte(doc))
			assert.Error(t, err)
		})
	}
}

func TestSource_Token(t *testing.T) {
	t.Setenv("APP_GITHUB_TOKEN", "from-env")

	literal := "inline"
	assert.Equal(t, "inline", *config.Source{OAuthToken: &literal, OAuthTokenEnv: "APP_GITHUB_TOKEN"}.Token())
	assert.Equal(t, "from-env", *config.Source{OAuthTokenEnv: "APP_GITHUB_TOKEN"}.Token())
	assert.Nil(t, config.Source{OAuthTokenEnv: "APP_UNSET_TOKEN_VAR"}.Token())
	assert.Nil(t, config.Source{}.Token())
}

func TestLoad_FromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(validConfig), 0644))

	cfg, err := config.Load(path)
	require.NoError(t, err)
	assert.Equal(t, "app", cfg.Name)

	_, err = config.Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}
