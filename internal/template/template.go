package template

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"
)

const FormatVersion = "2010-09-09"

var ErrDuplicateResource = errors.New("duplicate logical id")

type Format string

var (
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

func (f Format) String() string {
	return string(f)
}

func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(s) {
	case "", "json":
		return FormatJSON, nil
	case "yaml", "yml":
		return FormatYAML, nil
	}
	return "", fmt.Errorf("unsupported template format: %s", s)
}

type Resource struct {
	Type       string         `json:"Type" yaml:"Type"`
	Properties map[string]any `json:"Properties,omitempty" yaml:"Properties,omitempty"`
	DependsOn  []string       `json:"DependsOn,omitempty" yaml:"DependsOn,omitempty"`
}

type Output struct {
	Description string `json:"Description,omitempty" yaml:"Description,omitempty"`
	Value       String `json:"Value" yaml:"Value"`
}

// Template is the resource description handed to CloudFormation.
type Template struct {
	FormatVersion string              `json:"AWSTemplateFormatVersion" yaml:"AWSTemplateFormatVersion"`
	Description   string              `json:"Description,omitempty" yaml:"Description,omitempty"`
	Resources     map[string]Resource `json:"Resources" yaml:"Resources"`
	Outputs       map[string]Output   `json:"Outputs,omitempty" yaml:"Outputs,omitempty"`
}

func New(description string) *Template {
	return &Template{
		FormatVersion: FormatVersion,
		Description:   description,
		Resources:     make(map[string]Resource),
		Outputs:       make(map[string]Output),
	}
}

func (t *Template) AddResource(logicalID string, r Resource) error {
	if _, ok := t.Resources[logicalID]; ok {
		return fmt.Errorf("%w: %s", ErrDuplicateResource, logicalID)
	}
	t.Resources[logicalID] = r
	return nil
}

func (t *Template) AddOutput(name string, o Output) {
	t.Outputs[name] = o
}

func (t *Template) Render(f Format) ([]byte, error) {
	switch f {
	case FormatJSON:
		data, err := json.MarshalIndent(t, "", "  ")
		if err != nil {
			return nil, fmt.Errorf("failed to render json template: %w", err)
		}
		return append(data, '\n'), nil
	case FormatYAML:
		var buf bytes.Buffer
		enc := yaml.NewEncoder(&buf)
		enc.SetIndent(2)
		if err := enc.Encode(t); err != nil {
			return nil, fmt.Errorf("failed to render yaml template: %w", err)
		}
		if err := enc.Close(); err != nil {
			return nil, fmt.Errorf("failed to render yaml template: %w", err)
		}
		return buf.Bytes(), nil
	}
	return nil, fmt.Errorf("unsupported template format: %s", f)
}

// Normalize decodes a rendered template into plain JSON values so that
// templates rendered in different formats compare equal.
func Normalize(data []byte, f Format) (map[string]any, error) {
	var raw any
	switch f {
	case FormatJSON:
		if err := json.Unmarshal(data, &raw); err != nil {
			return nil, fmt.Errorf("failed to parse json template: %w", err)
		}
	case FormatYAML:
		if err := yaml.Unmarshal(data, &raw); err != nil {
			return nil, fmt.Errorf("failed to parse yaml template: %w", err)
		}
	default:
		return nil, fmt.Errorf("unsupported template format: %s", f)
	}

	canonical, err := json.Marshal(raw)
	if err != nil {
		return nil, fmt.Errorf("failed to normalize template: %w", err)
	}
	var out map[string]any
	if err := json.Unmarshal(canonical, &out); err != nil {
		return nil, fmt.Errorf("failed to normalize template: %w", err)
	}
	return out, nil
}
