package template

import (
	"encoding/json"
	"strings"
)

// String is a string property value in a template. It is either a literal known
// at synthesis time or an intrinsic function CloudFormation resolves at deploy time.
type String struct {
	literal   string
	intrinsic map[string]any
}

func Literal(s string) String {
	return String{literal: s}
}

// Ref refers to the physical ID of another resource in the same template.
func Ref(logicalID string) String {
	return String{intrinsic: map[string]any{"Ref": logicalID}}
}

func GetAtt(logicalID, attribute string) String {
	return String{intrinsic: map[string]any{"Fn::GetAtt": []any{logicalID, attribute}}}
}

// Join concatenates parts with sep. When every part is a literal the result is a
// plain literal, otherwise it renders as Fn::Join with adjacent literals merged.
func Join(sep string, parts ...String) String {
	var (
		elements []any
		pending  []string
		deferred bool
	)
	flush := func() {
		if len(pending) > 0 {
			elements = append(elements, strings.Join(pending, sep))
			pending = nil
		}
	}
	for _, p := range parts {
		if p.intrinsic == nil {
			pending = append(pending, p.literal)
			continue
		}
		deferred = true
		flush()
		elements = append(elements, p.intrinsic)
	}
	if !deferred {
		return Literal(strings.Join(pending, sep))
	}
	flush()
	return String{intrinsic: map[string]any{"Fn::Join": []any{sep, elements}}}
}

// AsLiteral returns the literal value and true, or false for deferred values.
func (s String) AsLiteral() (string, bool) {
	if s.intrinsic != nil {
		return "", false
	}
	return s.literal, true
}

func (s String) IsZero() bool {
	return s.intrinsic == nil && s.literal == ""
}

// Value returns the representation written into the template.
func (s String) Value() any {
	if s.intrinsic != nil {
		return s.intrinsic
	}
	return s.literal
}

func (s String) String() string {
	if s.intrinsic == nil {
		return s.literal
	}
	data, err := json.Marshal(s.intrinsic)
	if err != nil {
		return "<invalid intrinsic>"
	}
	return string(data)
}

func (s String) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.Value())
}

func (s String) MarshalYAML() (any, error) {
	return s.Value(), nil
}
