package template_test

import (
	"encoding/json"
	"testing"

	"github.com/priyanshujain/buildsource/internal/template"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestJoin_AllLiteralsCollapse(t *testing.T) {
	s := template.Join("", template.Literal("my-bucket"), template.Literal("/"), template.Literal("src.zip"))

	lit, ok := s.AsLiteral()
	require.True(t, ok)
	assert.Equal(t, "my-bucket/src.zip", lit)
}

func TestJoin_DeferredPart(t *testing.T) {
	s := template.Join("", template.Ref("Artifacts"), template.Literal("/"), template.Literal("src.zip"))

	_, ok := s.AsLiteral()
	assert.False(t, ok)

	data, err := json.Marshal(s)
	require.NoError(t, err)
	assert.JSONEq(t, `{"Fn::Join": ["", [{"Ref": "Artifacts"}, "/src.zip"]]}`, string(data))
}

func TestJoin_SeparatorKeptWhenMerging(t *testing.T) {
	s := template.Join(":", template.Literal("a"), template.Literal("b"), template.GetAtt("Repo", "Arn"))

	data, err := json.Marshal(s)
	require.NoError(t, err)
	assert.JSONEq(t, `{"Fn::Join": [":", ["a:b", {"Fn::GetAtt": ["Repo", "Arn"]}]]}`, string(data))
}

func TestString_MarshalLiteral(t *testing.T) {
	data, err := json.Marshal(template.Literal("https://github.com/org/repo.git"))
	require.NoError(t, err)
	assert.Equal(t, `"https://github.com/org/repo.git"`, string(data))

	out, err := yaml.Marshal(map[string]template.String{"Location": template.Ref("Bucket")})
	require.NoError(t, err)
	assert.Equal(t, "Location:\n    Ref: Bucket\n", string(out))
}

func TestString_IsZero(t *testing.T) {
	assert.True(t, template.String{}.IsZero())
	assert.False(t, template.Literal("x").IsZero())
	assert.False(t, template.Ref("X").IsZero())
}
