package codebuild

// CodePipelineSource takes its input from the pipeline action that runs the project.
type CodePipelineSource struct {
	// TODO: grant access to the pipeline artifact bucket once pipelines are declared here.
	noBind
}

func NewCodePipelineSource() *CodePipelineSource {
	return &CodePipelineSource{}
}

func (s *CodePipelineSource) Describe() Descriptor {
	return Descriptor{Type: SourceTypeCodePipeline}
}
