package synth

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"log/slog"
	"os"

	"github.com/priyanshujain/buildsource/internal/codebuild"
	"github.com/priyanshujain/buildsource/internal/config"
	"github.com/priyanshujain/buildsource/internal/providers"
	"github.com/priyanshujain/buildsource/internal/providers/aws"
	"github.com/priyanshujain/buildsource/internal/template"
)

var ErrMissingReference = errors.New("missing reference")

// Result contains the results of a synthesis run
type Result struct {
	Template *template.Template
	Projects []*codebuild.BuildProject
	Format   template.Format
	Rendered []byte
	Digest   string
}

// Service assembles build projects and their sources into a template
type Service struct {
	options Options
	logger  *slog.Logger
}

func NewService(options Options, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.New(slog.NewJSONHandler(os.Stdout, nil))
	}
	if options.Format == "" {
		options.Format = template.FormatJSON
	}

	return &Service{
		options: options,
		logger:  logger,
	}
}

// Run executes the synthesis
func (s *Service) Run(ctx context.Context) (*Result, error) {
	cfg := s.options.Config
	provider := cfg.DefaultProvider()

	s.logger.Info("Starting synthesis",
		"name", cfg.Name,
		"account", provider.AccountID,
		"region", provider.Region,
		"projects", len(cfg.Projects))

	tpl := template.New(cfg.Description)

	repositories := make(map[string]*aws.Repository)
	for _, r := range cfg.Repositories {
		repo := newRepository(r, provider)
		repositories[r.ID] = repo
		if res, ok := repo.Resource(); ok {
			if err := tpl.AddResource(repo.LogicalID(), res); err != nil {
				return nil, err
			}
		}
	}

	buckets := make(map[string]*aws.Bucket)
	for _, b := range cfg.Buckets {
		bucket := newBucket(b, provider)
		buckets[b.ID] = bucket
		if res, ok := bucket.Resource(); ok {
			if err := tpl.AddResource(bucket.LogicalID(), res); err != nil {
				return nil, err
			}
		}
	}

	result := &Result{
		Template: tpl,
		Format:   s.options.Format,
	}

	for _, pc := range cfg.Projects {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		project, err := s.buildProject(pc, repositories, buckets)
		if err != nil {
			return nil, fmt.Errorf("failed to build project %s: %w", pc.ID, err)
		}

		if err := template.ValidateSource(project.SourceProperty()); err != nil {
			return nil, fmt.Errorf("project %s: %w", pc.ID, err)
		}

		for id, res := range project.Resources() {
			if err := tpl.AddResource(id, res); err != nil {
				return nil, fmt.Errorf("project %s: %w", pc.ID, err)
			}
		}
		tpl.AddOutput(project.LogicalID()+"Name", template.Output{
			Description: "CodeBuild project name",
			Value:       template.Ref(project.LogicalID()),
		})

		result.Projects = append(result.Projects, project)
		s.logger.Info("Synthesized project",
			"project", project.LogicalID(),
			"source", project.Source().Describe().Type,
			"statements", project.Role().Policy().Len())
	}

	rendered, err := tpl.Render(result.Format)
	if err != nil {
		return nil, err
	}
	result.Rendered = rendered
	result.Digest = Digest(rendered)

	s.logger.Info("Synthesis completed",
		"resources", len(tpl.Resources),
		"digest", result.Digest)

	return result, nil
}

func (s *Service) buildProject(pc config.Project, repositories map[string]*aws.Repository, buckets map[string]*aws.Bucket) (*codebuild.BuildProject, error) {
	kind, err := codebuild.ParseSourceType(pc.Source.Type)
	if err != nil {
		return nil, err
	}

	props := codebuild.SourceProps{
		Path:       pc.Source.Path,
		CloneURL:   pc.Source.Location,
		OAuthToken: pc.Source.Token(),
	}
	switch kind {
	case codebuild.SourceTypeCodeCommit:
		repo, ok := repositories[pc.Source.Repository]
		if !ok {
			return nil, fmt.Errorf("%w: repository %q", ErrMissingReference, pc.Source.Repository)
		}
		props.Repository = repo
	case codebuild.SourceTypeS3:
		bucket, ok := buckets[pc.Source.Bucket]
		if !ok {
			return nil, fmt.Errorf("%w: bucket %q", ErrMissingReference, pc.Source.Bucket)
		}
		props.Bucket = bucket
	}

	source, err := codebuild.NewSource(kind, props)
	if err != nil {
		return nil, err
	}

	return codebuild.NewProject(aws.LogicalID(pc.ID), codebuild.ProjectProps{
		Name:        pc.Name,
		Description: pc.Description,
		Source:      source,
		BuildSpec:   pc.BuildSpec,
		Environment: codebuild.Environment{
			Type:        pc.EnvironmentType,
			ComputeType: pc.ComputeType,
			Image:       pc.Image,
		},
	})
}

func newRepository(r config.Repository, provider providers.Provider) *aws.Repository {
	if r.Import {
		return aws.ImportRepository(r.Name, provider)
	}
	return aws.NewRepository(aws.LogicalID(r.ID), r.Name, provider)
}

func newBucket(b config.Bucket, provider providers.Provider) *aws.Bucket {
	if b.Import {
		return aws.ImportBucket(b.Name, provider)
	}
	return aws.NewBucket(aws.LogicalID(b.ID), b.Name, provider)
}

// Digest is the content hash of a rendered template.
func Digest(rendered []byte) string {
	sum := sha256.Sum256(rendered)
	return "sha256:" + hex.EncodeToString(sum[:])
}

// Run is a convenience function to create and run a synthesis service
func Run(ctx context.Context, options Options) (*Result, error) {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	return NewService(options, logger).Run(ctx)
}
