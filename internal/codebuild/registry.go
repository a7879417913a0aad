package codebuild

import (
	"errors"
	"fmt"
)

var ErrIncompleteSource = errors.New("incomplete source")

// SourceProps carries the inputs of every source kind. Only the fields the
// chosen kind uses are read.
type SourceProps struct {
	Repository Repository
	Bucket     Bucket
	Path       string
	CloneURL   string
	OAuthToken *string
}

// NewSource constructs the source of the given kind.
func NewSource(kind SourceType, props SourceProps) (Source, error) {
	switch kind {
	case SourceTypeCodeCommit:
		if props.Repository == nil {
			return nil, fmt.Errorf("%w: %s requires a repository", ErrIncompleteSource, kind)
		}
		return NewCodeCommitSource(props.Repository), nil
	case SourceTypeCodePipeline:
		return NewCodePipelineSource(), nil
	case SourceTypeGitHub:
		if props.CloneURL == "" {
			return nil, fmt.Errorf("%w: %s requires a clone url", ErrIncompleteSource, kind)
		}
		return NewGitHubSource(props.CloneURL, props.OAuthToken), nil
	case SourceTypeGitHubEnterprise:
		if props.CloneURL == "" {
			return nil, fmt.Errorf("%w: %s requires a clone url", ErrIncompleteSource, kind)
		}
		return NewGitHubEnterpriseSource(props.CloneURL), nil
	case SourceTypeBitBucket:
		if props.CloneURL == "" {
			return nil, fmt.Errorf("%w: %s requires a clone url", ErrIncompleteSource, kind)
		}
		return NewBitBucketSource(props.CloneURL), nil
	case SourceTypeS3:
		if props.Bucket == nil || props.Path == "" {
			return nil, fmt.Errorf("%w: %s requires a bucket and a path", ErrIncompleteSource, kind)
		}
		return NewS3Source(props.Bucket, props.Path), nil
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownSourceType, kind)
}
