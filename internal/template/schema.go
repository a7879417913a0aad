package template

import (
	"encoding/json"
	"fmt"
	"strings"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v5"
)

const sourceSchemaURL = "https://buildsource.schemas.local/codebuild/source.schema.json"

// sourceSchema describes the AWS::CodeBuild::Project Source property.
const sourceSchema = `{
  "type": "object",
  "required": ["Type"],
  "additionalProperties": false,
  "properties": {
    "Type": {
      "enum": ["CODECOMMIT", "CODEPIPELINE", "GITHUB", "GITHUB_ENTERPRISE", "BITBUCKET", "S3"]
    },
    "Location": {
      "oneOf": [
        {"type": "string", "minLength": 1},
        {"type": "object", "minProperties": 1, "maxProperties": 1}
      ]
    },
    "Auth": {
      "type": "object",
      "required": ["Type", "Resource"],
      "additionalProperties": false,
      "properties": {
        "Type": {"const": "OAUTH"},
        "Resource": {"type": "string"}
      }
    },
    "BuildSpec": {"type": "string"}
  },
  "allOf": [
    {
      "if": {"properties": {"Type": {"const": "CODEPIPELINE"}}},
      "then": {"not": {"required": ["Location"]}},
      "else": {"required": ["Location"]}
    },
    {
      "if": {"not": {"properties": {"Type": {"const": "GITHUB"}}}},
      "then": {"not": {"required": ["Auth"]}}
    }
  ]
}`

var compileSourceSchema = sync.OnceValues(func() (*jsonschema.Schema, error) {
	c := jsonschema.NewCompiler()
	c.Draft = jsonschema.Draft2020
	if err := c.AddResource(sourceSchemaURL, strings.NewReader(sourceSchema)); err != nil {
		return nil, fmt.Errorf("failed to load source schema: %w", err)
	}
	return c.Compile(sourceSchemaURL)
})

// ValidateSource checks that v renders to a well-formed CodeBuild source property.
func ValidateSource(v any) error {
	schema, err := compileSourceSchema()
	if err != nil {
		return fmt.Errorf("failed to compile source schema: %w", err)
	}

	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("failed to encode source: %w", err)
	}
	var doc any
	if err := json.Unmarshal(data, &doc); err != nil {
		return fmt.Errorf("failed to decode source: %w", err)
	}

	if err := schema.Validate(doc); err != nil {
		return fmt.Errorf("source schema validation failed: %w", err)
	}
	return nil
}
