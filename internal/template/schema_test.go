package template_test

import (
	"testing"

	"github.com/priyanshujain/buildsource/internal/template"
	"github.com/stretchr/testify/assert"
)

func TestValidateSource(t *testing.T) {
	tests := []struct {
		name    string
		source  map[string]any
		wantErr bool
	}{
		{
			name:   "github with auth",
			source: map[string]any{"Type": "GITHUB", "Location": "https://github.com/org/repo.git", "Auth": map[string]any{"Type": "OAUTH", "Resource": "tok"}},
		},
		{
			name:   "codepipeline without location",
			source: map[string]any{"Type": "CODEPIPELINE"},
		},
		{
			name:   "s3 with deferred location",
			source: map[string]any{"Type": "S3", "Location": template.Join("", template.Ref("B"), template.Literal("/p"))},
		},
		{
			name:    "codepipeline with location",
			source:  map[string]any{"Type": "CODEPIPELINE", "Location": "x"},
			wantErr: true,
		},
		{
			name:    "bitbucket missing location",
			source:  map[string]any{"Type": "BITBUCKET"},
			wantErr: true,
		},
		{
			name:    "auth outside github",
			source:  map[string]any{"Type": "BITBUCKET", "Location": "https://bitbucket.org/o/r.git", "Auth": map[string]any{"Type": "OAUTH", "Resource": "tok"}},
			wantErr: true,
		},
		{
			name:    "unknown type",
			source:  map[string]any{"Type": "SVN", "Location": "x"},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := template.ValidateSource(tt.source)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
