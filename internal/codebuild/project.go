package codebuild

import (
	"errors"

	"github.com/priyanshujain/buildsource/internal/iam"
	"github.com/priyanshujain/buildsource/internal/providers/aws"
	"github.com/priyanshujain/buildsource/internal/template"
)

const (
	servicePrincipal = "codebuild.amazonaws.com"

	DefaultEnvironmentType = "LINUX_CONTAINER"
	DefaultComputeType     = "BUILD_GENERAL1_SMALL"
	DefaultImage           = "aws/codebuild/standard:7.0"
)

var ErrNoSource = errors.New("project has no source")

type Environment struct {
	Type        string `json:"Type" yaml:"Type"`
	ComputeType string `json:"ComputeType" yaml:"ComputeType"`
	Image       string `json:"Image" yaml:"Image"`
}

type ProjectProps struct {
	Name        string
	Description string
	Source      Source
	Environment Environment
	BuildSpec   string
}

// BuildProject is an AWS::CodeBuild::Project with its service role.
type BuildProject struct {
	logicalID string
	props     ProjectProps
	role      *iam.Role
}

// NewProject creates the project and its role and binds the source to it.
func NewProject(logicalID string, props ProjectProps) (*BuildProject, error) {
	if props.Source == nil {
		return nil, ErrNoSource
	}
	if props.Environment.Type == "" {
		props.Environment.Type = DefaultEnvironmentType
	}
	if props.Environment.ComputeType == "" {
		props.Environment.ComputeType = DefaultComputeType
	}
	if props.Environment.Image == "" {
		props.Environment.Image = DefaultImage
	}

	p := &BuildProject{
		logicalID: logicalID,
		props:     props,
		role:      iam.NewRole(logicalID+"Role", servicePrincipal),
	}
	props.Source.Bind(p)
	return p, nil
}

func (p *BuildProject) LogicalID() string {
	return p.logicalID
}

func (p *BuildProject) Source() Source {
	return p.props.Source
}

func (p *BuildProject) Role() *iam.Role {
	return p.role
}

func (p *BuildProject) AddToRolePolicy(s iam.Statement) {
	p.role.AddToPolicy(s)
}

type sourceProperty struct {
	Descriptor `yaml:",inline"`
	BuildSpec  string `json:"BuildSpec,omitempty" yaml:"BuildSpec,omitempty"`
}

// SourceProperty is the Source property as written into the template.
func (p *BuildProject) SourceProperty() any {
	return sourceProperty{
		Descriptor: p.props.Source.Describe(),
		BuildSpec:  p.props.BuildSpec,
	}
}

func (p *BuildProject) artifacts() map[string]string {
	if p.props.Source.Describe().Type == SourceTypeCodePipeline {
		return map[string]string{"Type": "CODEPIPELINE"}
	}
	return map[string]string{"Type": "NO_ARTIFACTS"}
}

// Resources returns the role, its default policy when it has statements,
// and the project itself, keyed by logical id.
func (p *BuildProject) Resources() map[string]template.Resource {
	resources := map[string]template.Resource{
		p.role.LogicalID: {
			Type: aws.ResourceTypeIAMRole.String(),
			Properties: map[string]any{
				"AssumeRolePolicyDocument": p.role.AssumeRolePolicy(),
			},
		},
	}

	var dependsOn []string
	if !p.role.Policy().IsEmpty() {
		policyID := p.role.PolicyLogicalID()
		resources[policyID] = template.Resource{
			Type: aws.ResourceTypeIAMPolicy.String(),
			Properties: map[string]any{
				"PolicyName":     policyID,
				"PolicyDocument": p.role.Policy(),
				"Roles":          []template.String{template.Ref(p.role.LogicalID)},
			},
		}
		dependsOn = append(dependsOn, policyID)
	}

	props := map[string]any{
		"ServiceRole": p.role.Arn(),
		"Source":      p.SourceProperty(),
		"Artifacts":   p.artifacts(),
		"Environment": p.props.Environment,
	}
	if p.props.Name != "" {
		props["Name"] = p.props.Name
	}
	if p.props.Description != "" {
		props["Description"] = p.props.Description
	}
	resources[p.logicalID] = template.Resource{
		Type:       aws.ResourceTypeCodeBuildProject.String(),
		Properties: props,
		DependsOn:  dependsOn,
	}
	return resources
}
