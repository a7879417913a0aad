package aws

import (
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws/arn"
	"github.com/priyanshujain/buildsource/internal/providers"
	"github.com/priyanshujain/buildsource/internal/template"
)

// Repository is a CodeCommit repository, either declared in the template
// or imported by name from the account.
type Repository struct {
	logicalID string
	name      string
	provider  providers.Provider
	imported  bool
}

func NewRepository(logicalID, name string, provider providers.Provider) *Repository {
	return &Repository{
		logicalID: logicalID,
		name:      name,
		provider:  provider,
	}
}

func ImportRepository(name string, provider providers.Provider) *Repository {
	return &Repository{
		logicalID: LogicalID(name),
		name:      name,
		provider:  provider,
		imported:  true,
	}
}

func (r *Repository) LogicalID() string {
	return r.logicalID
}

func (r *Repository) Name() string {
	return r.name
}

func (r *Repository) Imported() bool {
	return r.imported
}

func (r *Repository) RepositoryArn() template.String {
	if !r.imported {
		return template.GetAtt(r.logicalID, "Arn")
	}
	return template.Literal(arn.ARN{
		Partition: partition(r.provider),
		Service:   "codecommit",
		Region:    r.provider.Region,
		AccountID: r.provider.AccountID,
		Resource:  r.name,
	}.String())
}

func (r *Repository) RepositoryCloneURLHTTP() template.String {
	if !r.imported {
		return template.GetAtt(r.logicalID, "CloneUrlHttp")
	}
	return template.Literal(fmt.Sprintf("https://git-codecommit.%s.amazonaws.com/v1/repos/%s", r.provider.Region, r.name))
}

// Resource returns the template resource for a declared repository.
// Imported repositories have none.
func (r *Repository) Resource() (template.Resource, bool) {
	if r.imported {
		return template.Resource{}, false
	}
	return template.Resource{
		Type: ResourceTypeCodeCommitRepository.String(),
		Properties: map[string]any{
			"RepositoryName": r.name,
		},
	}, true
}

func partition(p providers.Provider) string {
	if p.Partition == "" {
		return providers.DefaultPartition
	}
	return p.Partition
}
