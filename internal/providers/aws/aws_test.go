package aws_test

import (
	"testing"

	"github.com/priyanshujain/buildsource/internal/iam"
	"github.com/priyanshujain/buildsource/internal/providers"
	"github.com/priyanshujain/buildsource/internal/providers/aws"
	"github.com/priyanshujain/buildsource/internal/template"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var provider = providers.Provider{
	Type:      providers.ProviderTypeAWS,
	AccountID: "123456789012",
	Region:    "eu-west-1",
}

type recorder struct {
	statements []iam.Statement
}

func (r *recorder) AddToPolicy(s iam.Statement) {
	r.statements = append(r.statements, s)
}

func TestLogicalID(t *testing.T) {
	tests := map[string]string{
		"my-repo":         "MyRepo",
		"artifacts.store": "ArtifactsStore",
		"team/app_build":  "TeamAppBuild",
		"Already":         "Already",
		"ünïcode-x":       "NCodeX",
	}
	for in, want := range tests {
		assert.Equal(t, want, aws.LogicalID(in), in)
	}
}

func TestImportRepository(t *testing.T) {
	repo := aws.ImportRepository("my-repo", provider)

	assert.Equal(t, template.Literal("arn:aws:codecommit:eu-west-1:123456789012:my-repo"), repo.RepositoryArn())
	assert.Equal(t, template.Literal("https://git-codecommit.eu-west-1.amazonaws.com/v1/repos/my-repo"), repo.RepositoryCloneURLHTTP())

	_, ok := repo.Resource()
	assert.False(t, ok)
}

func TestImportRepository_Partition(t *testing.T) {
	p := provider
	p.Partition = "aws-cn"
	repo := aws.ImportRepository("r", p)

	assert.Equal(t, template.Literal("arn:aws-cn:codecommit:eu-west-1:123456789012:r"), repo.RepositoryArn())
}

func TestNewRepository(t *testing.T) {
	repo := aws.NewRepository("Repo", "my-repo", provider)

	assert.Equal(t, template.GetAtt("Repo", "Arn"), repo.RepositoryArn())
	assert.Equal(t, template.GetAtt("Repo", "CloneUrlHttp"), repo.RepositoryCloneURLHTTP())

	res, ok := repo.Resource()
	require.True(t, ok)
	assert.Equal(t, "AWS::CodeCommit::Repository", res.Type)
	assert.Equal(t, "my-repo", res.Properties["RepositoryName"])
}

func TestImportBucket_GrantRead(t *testing.T) {
	bucket := aws.ImportBucket("sources", provider)
	r := &recorder{}

	bucket.GrantRead(r)

	require.Len(t, r.statements, 1)
	stmt := r.statements[0]
	assert.Equal(t, iam.EffectAllow, stmt.Effect)
	assert.Equal(t, []string{"s3:GetObject*", "s3:GetBucket*", "s3:List*"}, stmt.Action)
	assert.Equal(t, []template.String{
		template.Literal("arn:aws:s3:::sources"),
		template.Literal("arn:aws:s3:::sources/*"),
	}, stmt.Resource)
	assert.Equal(t, template.Literal("sources"), bucket.BucketName())
}

func TestNewBucket_DeferredName(t *testing.T) {
	bucket := aws.NewBucket("Sources", "", provider)

	assert.Equal(t, template.Ref("Sources"), bucket.BucketName())
	_, literal := bucket.ArnForObjects("*").AsLiteral()
	assert.False(t, literal)

	res, ok := bucket.Resource()
	require.True(t, ok)
	assert.Equal(t, "AWS::S3::Bucket", res.Type)
	assert.NotContains(t, res.Properties, "BucketName")
}
