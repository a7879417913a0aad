package aws

import (
	"strings"
	"unicode"
)

type ResourceType string

var (
	ResourceTypeCodeBuildProject     ResourceType = "AWS::CodeBuild::Project"
	ResourceTypeCodeCommitRepository ResourceType = "AWS::CodeCommit::Repository"
	ResourceTypeS3Bucket             ResourceType = "AWS::S3::Bucket"
	ResourceTypeIAMRole              ResourceType = "AWS::IAM::Role"
	ResourceTypeIAMPolicy            ResourceType = "AWS::IAM::Policy"
)

func (r ResourceType) String() string {
	return string(r)
}

// LogicalID turns a configured name into a CloudFormation logical id,
// which only allows ASCII letters and digits.
func LogicalID(name string) string {
	var b strings.Builder
	upperNext := true
	for _, r := range name {
		if r > unicode.MaxASCII || !(unicode.IsLetter(r) || unicode.IsDigit(r)) {
			upperNext = true
			continue
		}
		if upperNext {
			r = unicode.ToUpper(r)
			upperNext = false
		}
		b.WriteRune(r)
	}
	return b.String()
}
