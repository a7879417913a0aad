package iam_test

import (
	"encoding/json"
	"testing"

	"github.com/priyanshujain/buildsource/internal/iam"
	"github.com/priyanshujain/buildsource/internal/template"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRole_AddToPolicyKeepsDuplicates(t *testing.T) {
	role := iam.NewRole("BuildRole", "codebuild.amazonaws.com")
	stmt := iam.NewStatement([]string{"codecommit:GitPull"}, template.Literal("arn:aws:codecommit:us-east-1:123456789012:repo"))

	role.AddToPolicy(stmt)
	role.AddToPolicy(stmt)

	assert.Equal(t, 2, role.Policy().Len())
	assert.Equal(t, "BuildRoleDefaultPolicy", role.PolicyLogicalID())
}

func TestRole_AssumeRolePolicy(t *testing.T) {
	role := iam.NewRole("BuildRole", "codebuild.amazonaws.com")

	data, err := json.Marshal(role.AssumeRolePolicy())
	require.NoError(t, err)
	assert.JSONEq(t, `{
		"Version": "2012-10-17",
		"Statement": [{
			"Effect": "Allow",
			"Principal": {"Service": "codebuild.amazonaws.com"},
			"Action": ["sts:AssumeRole"]
		}]
	}`, string(data))
}

func TestNewStatement_CopiesActions(t *testing.T) {
	actions := []string{"s3:GetObject*"}
	stmt := iam.NewStatement(actions, template.Ref("Bucket"))
	actions[0] = "s3:PutObject"

	assert.Equal(t, []string{"s3:GetObject*"}, stmt.Action)
	assert.Equal(t, iam.EffectAllow, stmt.Effect)
}
