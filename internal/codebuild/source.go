// Package codebuild binds code sources to CodeBuild projects. Each source kind
// describes itself as the project's Source property and may grant the project's
// service role the access it needs to reach the code.
package codebuild

import (
	"errors"
	"fmt"
	"strings"

	"github.com/priyanshujain/buildsource/internal/iam"
	"github.com/priyanshujain/buildsource/internal/template"
)

var ErrUnknownSourceType = errors.New("unknown source type")

type SourceType string

var (
	SourceTypeCodeCommit       SourceType = "CODECOMMIT"
	SourceTypeCodePipeline     SourceType = "CODEPIPELINE"
	SourceTypeGitHub           SourceType = "GITHUB"
	SourceTypeGitHubEnterprise SourceType = "GITHUB_ENTERPRISE"
	SourceTypeBitBucket        SourceType = "BITBUCKET"
	SourceTypeS3               SourceType = "S3"
)

func (t SourceType) String() string {
	return string(t)
}

var sourceTypes = []SourceType{
	SourceTypeCodeCommit,
	SourceTypeCodePipeline,
	SourceTypeGitHub,
	SourceTypeGitHubEnterprise,
	SourceTypeBitBucket,
	SourceTypeS3,
}

// ParseSourceType accepts wire names as well as lower-case forms
// such as "github-enterprise".
func ParseSourceType(s string) (SourceType, error) {
	normalized := strings.ToUpper(strings.ReplaceAll(strings.TrimSpace(s), "-", "_"))
	for _, t := range sourceTypes {
		if t.String() == normalized {
			return t, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownSourceType, s)
}

const AuthTypeOAuth = "OAUTH"

type Auth struct {
	Type     string `json:"Type" yaml:"Type"`
	Resource string `json:"Resource" yaml:"Resource"`
}

// Descriptor is the Source property of an AWS::CodeBuild::Project.
type Descriptor struct {
	Type     SourceType       `json:"Type" yaml:"Type"`
	Location *template.String `json:"Location,omitempty" yaml:"Location,omitempty"`
	Auth     *Auth            `json:"Auth,omitempty" yaml:"Auth,omitempty"`
}

// Project is the build project a source is bound to.
type Project interface {
	AddToRolePolicy(iam.Statement)
	Role() *iam.Role
}

// Source is a place a build project fetches its code from.
//
// Bind is called once while the project is assembled; calling it again appends
// the same grants a second time. Describe has no side effects.
type Source interface {
	Bind(Project)
	Describe() Descriptor
}

// Repository is the part of a CodeCommit repository a source needs.
type Repository interface {
	RepositoryArn() template.String
	RepositoryCloneURLHTTP() template.String
}

// Bucket is the part of an S3 bucket a source needs.
type Bucket interface {
	BucketName() template.String
	GrantRead(iam.Grantable)
}

type noBind struct{}

func (noBind) Bind(Project) {}

func location(s template.String) *template.String {
	return &s
}
