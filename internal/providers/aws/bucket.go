package aws

import (
	"github.com/aws/aws-sdk-go-v2/aws/arn"
	"github.com/priyanshujain/buildsource/internal/iam"
	"github.com/priyanshujain/buildsource/internal/providers"
	"github.com/priyanshujain/buildsource/internal/template"
)

var bucketReadActions = []string{"s3:GetObject*", "s3:GetBucket*", "s3:List*"}

// Bucket is an S3 bucket, either declared in the template or imported by name.
type Bucket struct {
	logicalID string
	name      string
	provider  providers.Provider
	imported  bool
}

// NewBucket declares a bucket. An empty name lets CloudFormation generate one.
func NewBucket(logicalID, name string, provider providers.Provider) *Bucket {
	return &Bucket{
		logicalID: logicalID,
		name:      name,
		provider:  provider,
	}
}

func ImportBucket(name string, provider providers.Provider) *Bucket {
	return &Bucket{
		logicalID: LogicalID(name),
		name:      name,
		provider:  provider,
		imported:  true,
	}
}

func (b *Bucket) LogicalID() string {
	return b.logicalID
}

func (b *Bucket) Imported() bool {
	return b.imported
}

// BucketName is only known at deploy time for declared buckets.
func (b *Bucket) BucketName() template.String {
	if !b.imported {
		return template.Ref(b.logicalID)
	}
	return template.Literal(b.name)
}

func (b *Bucket) BucketArn() template.String {
	if !b.imported {
		return template.GetAtt(b.logicalID, "Arn")
	}
	return template.Literal(arn.ARN{
		Partition: partition(b.provider),
		Service:   "s3",
		Resource:  b.name,
	}.String())
}

func (b *Bucket) ArnForObjects(pattern string) template.String {
	return template.Join("", b.BucketArn(), template.Literal("/"+pattern))
}

// GrantRead appends one statement allowing grantee to read the bucket and its objects.
func (b *Bucket) GrantRead(grantee iam.Grantable) {
	grantee.AddToPolicy(iam.NewStatement(bucketReadActions, b.BucketArn(), b.ArnForObjects("*")))
}

func (b *Bucket) Resource() (template.Resource, bool) {
	if b.imported {
		return template.Resource{}, false
	}
	props := map[string]any{}
	if b.name != "" {
		props["BucketName"] = b.name
	}
	return template.Resource{
		Type:       ResourceTypeS3Bucket.String(),
		Properties: props,
	}, true
}
