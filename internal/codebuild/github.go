package codebuild

import "github.com/priyanshujain/buildsource/internal/template"

// GitHubSource builds from a github.com repository.
type GitHubSource struct {
	noBind
	cloneURL   string
	oauthToken *string
}

// NewGitHubSource takes an HTTPS clone URL. A nil oauthToken leaves the Auth
// block out; any non-nil token, even an empty one, is written as OAUTH.
func NewGitHubSource(cloneURL string, oauthToken *string) *GitHubSource {
	s := &GitHubSource{cloneURL: cloneURL}
	if oauthToken != nil {
		token := *oauthToken
		s.oauthToken = &token
	}
	return s
}

func (s *GitHubSource) Describe() Descriptor {
	d := Descriptor{
		Type:     SourceTypeGitHub,
		Location: location(template.Literal(s.cloneURL)),
	}
	if s.oauthToken != nil {
		d.Auth = &Auth{Type: AuthTypeOAuth, Resource: *s.oauthToken}
	}
	return d
}

// GitHubEnterpriseSource builds from a GitHub Enterprise server.
type GitHubEnterpriseSource struct {
	noBind
	cloneURL string
}

func NewGitHubEnterpriseSource(cloneURL string) *GitHubEnterpriseSource {
	return &GitHubEnterpriseSource{cloneURL: cloneURL}
}

func (s *GitHubEnterpriseSource) Describe() Descriptor {
	return Descriptor{
		Type:     SourceTypeGitHubEnterprise,
		Location: location(template.Literal(s.cloneURL)),
	}
}
