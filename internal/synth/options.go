package synth

import (
	"github.com/priyanshujain/buildsource/internal/config"
	"github.com/priyanshujain/buildsource/internal/template"
)

// Options contains configuration for a synthesis run
type Options struct {
	// Config describes the projects and their sources
	Config config.Config
	// Format of the rendered template, json when empty
	Format template.Format
}
