package iam

import "github.com/priyanshujain/buildsource/internal/template"

// Grantable is anything that can receive policy statements.
type Grantable interface {
	AddToPolicy(Statement)
}

// Role is an IAM role declared in the template together with its default policy.
type Role struct {
	LogicalID string
	Service   string

	policy *PolicyDocument
}

func NewRole(logicalID, service string) *Role {
	return &Role{
		LogicalID: logicalID,
		Service:   service,
		policy:    NewPolicyDocument(),
	}
}

func (r *Role) AddToPolicy(s Statement) {
	r.policy.AddStatements(s)
}

func (r *Role) Policy() *PolicyDocument {
	return r.policy
}

func (r *Role) PolicyLogicalID() string {
	return r.LogicalID + "DefaultPolicy"
}

func (r *Role) Arn() template.String {
	return template.GetAtt(r.LogicalID, "Arn")
}

// AssumeRolePolicy is the trust policy of the role.
func (r *Role) AssumeRolePolicy() *PolicyDocument {
	return NewPolicyDocument(ServiceAssumeRole(r.Service))
}
