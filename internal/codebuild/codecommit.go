package codebuild

import (
	"github.com/priyanshujain/buildsource/internal/iam"
)

// CodeCommitSource builds from a CodeCommit repository.
type CodeCommitSource struct {
	repository Repository
}

func NewCodeCommitSource(repository Repository) *CodeCommitSource {
	return &CodeCommitSource{repository: repository}
}

func (s *CodeCommitSource) Bind(p Project) {
	p.AddToRolePolicy(iam.NewStatement([]string{"codecommit:GitPull"}, s.repository.RepositoryArn()))
}

func (s *CodeCommitSource) Describe() Descriptor {
	return Descriptor{
		Type:     SourceTypeCodeCommit,
		Location: location(s.repository.RepositoryCloneURLHTTP()),
	}
}
