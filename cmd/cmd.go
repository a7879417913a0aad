package cmd

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/priyanshujain/buildsource/internal/config"
	"github.com/priyanshujain/buildsource/internal/template"
	"github.com/priyanshujain/buildsource/pkg/buildsource"
	"github.com/spf13/cobra"
)

var (
	cfgFile    string
	formatFlag string
	outputPath string
	verbose    bool

	cfg    config.Config
	format template.Format
)

func Execute() {
	rootCmd := &cobra.Command{
		Use:   "buildsource",
		Short: "buildsource - Declare CodeBuild projects and where their code comes from",
		Long: `buildsource turns a YAML description of CodeBuild projects and their sources
(CodeCommit, CodePipeline, GitHub, GitHub Enterprise, Bitbucket, S3) into a
CloudFormation template, including the IAM grants each source needs.`,
		SilenceUsage:      true,
		PersistentPreRunE: loadConfig,
	}

	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", "", "Path to configuration file (default is $HOME/.config/buildsource/config.yaml)")
	rootCmd.PersistentFlags().StringVarP(&formatFlag, "format", "f", "json", "Template format: json or yaml")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")

	synthCmd := &cobra.Command{
		Use:   "synth",
		Short: "Synthesize the CloudFormation template",
		RunE:  runSynth,
	}
	synthCmd.Flags().StringVarP(&outputPath, "output", "o", "", "Output directory (overrides path in the config file)")

	validateCmd := &cobra.Command{
		Use:   "validate",
		Short: "Validate the configuration and every project source",
		RunE:  runValidate,
	}

	publishCmd := &cobra.Command{
		Use:   "publish",
		Short: "Publish the template to the configured backend",
		RunE:  runPublish,
	}

	diffCmd := &cobra.Command{
		Use:   "diff",
		Short: "Compare the template with the published one",
		RunE:  runDiff,
	}

	templateCmd := &cobra.Command{
		Use:   "template",
		Short: "Print a configuration file template",
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return nil
		},
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Print(config.Template)
		},
	}

	rootCmd.AddCommand(synthCmd, validateCmd, publishCmd, diffCmd, templateCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func loadConfig(cmd *cobra.Command, args []string) error {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))

	var err error
	format, err = template.ParseFormat(formatFlag)
	if err != nil {
		return err
	}

	cfg, err = config.Load(cfgFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config file: %v\n", err)
		fmt.Fprintln(os.Stderr, "Please format the config file as per the template.")
		fmt.Fprintln(os.Stderr, "Template:")
		fmt.Fprint(os.Stderr, config.Template)
		return err
	}
	return nil
}

func runSynth(cmd *cobra.Command, args []string) error {
	if outputPath != "" {
		override, err := config.WithPath(cfg, outputPath)
		if err != nil {
			return err
		}
		cfg = override
	}

	path, err := buildsource.NewClient(cfg).Write(context.Background(), format)
	if err != nil {
		return fmt.Errorf("synthesis failed: %w", err)
	}

	fmt.Printf("Successfully synthesized template in %s\n", path)
	return nil
}

func runValidate(cmd *cobra.Command, args []string) error {
	result, err := buildsource.NewClient(cfg).Synthesize(context.Background(), format)
	if err != nil {
		return fmt.Errorf("validation failed: %w", err)
	}

	for _, p := range result.Projects {
		fmt.Printf("%s\t%s\t%d statements\n", p.LogicalID(), p.Source().Describe().Type, p.Role().Policy().Len())
	}
	return nil
}

func runPublish(cmd *cobra.Command, args []string) error {
	key, err := buildsource.NewClient(cfg).Publish(context.Background(), format)
	if err != nil {
		return fmt.Errorf("publish failed: %w", err)
	}

	fmt.Printf("Published template to %s (%s)\n", key, cfg.Backend.Type)
	return nil
}

func runDiff(cmd *cobra.Command, args []string) error {
	results, err := buildsource.NewClient(cfg).Diff(context.Background(), format)
	if err != nil {
		return fmt.Errorf("diff failed: %w", err)
	}

	if len(results) == 0 {
		fmt.Println("No changes.")
		return nil
	}
	for _, r := range results {
		fmt.Printf("%-8s %s (%s)\n", r.Status, r.LogicalID, r.ResourceType)
		for property := range r.Changes {
			fmt.Printf("         ~ %s\n", property)
		}
	}
	return nil
}
