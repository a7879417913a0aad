package codebuild

import "github.com/priyanshujain/buildsource/internal/template"

type BitBucketSource struct {
	noBind
	cloneURL string
}

func NewBitBucketSource(cloneURL string) *BitBucketSource {
	return &BitBucketSource{cloneURL: cloneURL}
}

func (s *BitBucketSource) Describe() Descriptor {
	return Descriptor{
		Type:     SourceTypeBitBucket,
		Location: location(template.Literal(s.cloneURL)),
	}
}
