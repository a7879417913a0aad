package iam

import "github.com/priyanshujain/buildsource/internal/template"

const PolicyVersion = "2012-10-17"

type Effect string

var (
	EffectAllow Effect = "Allow"
	EffectDeny  Effect = "Deny"
)

// Statement is a single IAM policy statement.
type Statement struct {
	Effect    Effect            `json:"Effect" yaml:"Effect"`
	Principal map[string]string `json:"Principal,omitempty" yaml:"Principal,omitempty"`
	Action    []string          `json:"Action" yaml:"Action"`
	Resource  []template.String `json:"Resource,omitempty" yaml:"Resource,omitempty"`
}

// NewStatement returns an Allow statement for actions on resources.
func NewStatement(actions []string, resources ...template.String) Statement {
	return Statement{
		Effect:   EffectAllow,
		Action:   append([]string(nil), actions...),
		Resource: resources,
	}
}

// ServiceAssumeRole returns the trust statement letting an AWS service assume a role.
func ServiceAssumeRole(service string) Statement {
	return Statement{
		Effect:    EffectAllow,
		Principal: map[string]string{"Service": service},
		Action:    []string{"sts:AssumeRole"},
	}
}

type PolicyDocument struct {
	Version   string      `json:"Version" yaml:"Version"`
	Statement []Statement `json:"Statement" yaml:"Statement"`
}

func NewPolicyDocument(statements ...Statement) *PolicyDocument {
	return &PolicyDocument{
		Version:   PolicyVersion,
		Statement: statements,
	}
}

// AddStatements appends statements as given. Repeated statements are kept.
func (d *PolicyDocument) AddStatements(statements ...Statement) {
	d.Statement = append(d.Statement, statements...)
}

func (d *PolicyDocument) IsEmpty() bool {
	return len(d.Statement) == 0
}

func (d *PolicyDocument) Len() int {
	return len(d.Statement)
}
