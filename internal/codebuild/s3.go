package codebuild

import "github.com/priyanshujain/buildsource/internal/template"

// S3Source builds from an object (usually a zip) in an S3 bucket.
type S3Source struct {
	bucket Bucket
	path   string
}

func NewS3Source(bucket Bucket, path string) *S3Source {
	return &S3Source{bucket: bucket, path: path}
}

func (s *S3Source) Bind(p Project) {
	s.bucket.GrantRead(p.Role())
}

// Describe joins the bucket name and path. For buckets declared in the same
// template the name is resolved by CloudFormation.
func (s *S3Source) Describe() Descriptor {
	return Descriptor{
		Type:     SourceTypeS3,
		Location: location(template.Join("", s.bucket.BucketName(), template.Literal("/"), template.Literal(s.path))),
	}
}
