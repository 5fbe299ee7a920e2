package assetunion

import (
	"fmt"
	"path/filepath"

	"github.com/arthur-debert/assetunion/internal/version"
	"github.com/arthur-debert/assetunion/pkg/commands/build"
	"github.com/arthur-debert/assetunion/pkg/commands/check"
	"github.com/arthur-debert/assetunion/pkg/commands/initialize"
	"github.com/arthur-debert/assetunion/pkg/commands/list"
	"github.com/arthur-debert/assetunion/pkg/commands/selection"
	"github.com/arthur-debert/assetunion/pkg/config"
	"github.com/arthur-debert/assetunion/pkg/errors"
	"github.com/arthur-debert/assetunion/pkg/logging"
	"github.com/arthur-debert/assetunion/pkg/style"
	"github.com/arthur-debert/assetunion/pkg/transform"
	"github.com/arthur-debert/assetunion/pkg/types"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

// annotationNoConfig marks commands that run without a loaded config
const annotationNoConfig = "assetunion/no-config"

// rootFlags holds the persistent flags and the config they load
type rootFlags struct {
	verbosity  int
	configPath string
	sourceDir  string
	noLogFile  bool

	cfg *config.Config
}

// loadOptions turns the persistent flags into config.LoadOptions
func (f *rootFlags) loadOptions() (config.LoadOptions, error) {
	opts := config.LoadOptions{Path: f.configPath}
	if f.sourceDir != "" {
		abs, err := filepath.Abs(f.sourceDir)
		if err != nil {
			return opts, errors.Wrapf(err, errors.ErrInvalidInput, "invalid source dir %s", f.sourceDir)
		}
		opts.Overrides = map[string]interface{}{"source_dir": abs}
	}
	return opts, nil
}

func (f *rootFlags) load() (*config.Config, error) {
	opts, err := f.loadOptions()
	if err != nil {
		return nil, err
	}
	return config.Load(opts)
}

// NewRootCmd creates and returns the root command
func NewRootCmd() *cobra.Command {
	initTemplateFormatting()

	flags := &rootFlags{}

	rootCmd := &cobra.Command{
		Use:     "assetunion",
		Short:   MsgRootShort,
		Long:    MsgRootLong,
		Version: version.Version,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			style.Setup(stdoutFile(cmd))

			if cmd.Annotations[annotationNoConfig] != "" {
				logging.SetupLogger(flags.verbosity, false)
				log.Debug().Str("command", cmd.Name()).Msg("Command started")
				return nil
			}

			cfg, err := flags.load()
			if err != nil {
				logging.SetupLogger(flags.verbosity, false)
				return err
			}
			flags.cfg = cfg

			logToFile := cfg.Logging.File && !flags.noLogFile
			logging.SetupLogger(flags.verbosity, logToFile)
			logEvent := log.Debug().Str("command", cmd.Name())
			if logToFile {
				logEvent = logEvent.Str("logFile", logging.LogFilePath())
			}
			logEvent.
				Str("configFile", cfg.ConfigFile).
				Str("sourceDir", cfg.SourceDir).
				Msg("Command started")
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			_ = cmd.Help()
			return errors.New(errors.ErrInvalidInput, MsgErrNoCommand)
		},
		SilenceUsage:      true,
		SilenceErrors:     true,
		DisableAutoGenTag: true,
	}
	rootCmd.Annotations = map[string]string{annotationNoConfig: "true"}

	rootCmd.PersistentFlags().CountVarP(&flags.verbosity, "verbose", "v", MsgFlagVerbose)
	rootCmd.PersistentFlags().StringVarP(&flags.configPath, "config", "c", "", MsgFlagConfig)
	rootCmd.PersistentFlags().StringVar(&flags.sourceDir, "source-dir", "", MsgFlagSourceDir)
	rootCmd.PersistentFlags().BoolVar(&flags.noLogFile, "no-log-file", false, MsgFlagNoLogFile)

	rootCmd.AddGroup(&cobra.Group{ID: "core", Title: "COMMANDS:"})
	rootCmd.AddGroup(&cobra.Group{ID: "misc", Title: "MISC:"})
	rootCmd.SetUsageTemplate(MsgUsageTemplate)

	rootCmd.AddCommand(newBuildCmd(flags))
	rootCmd.AddCommand(newCheckCmd(flags))
	rootCmd.AddCommand(newListCmd(flags))
	rootCmd.AddCommand(newInitCmd())
	rootCmd.AddCommand(newVersionCmd())
	rootCmd.AddCommand(newCompletionCmd())
	rootCmd.AddCommand(newManCmd())

	return rootCmd
}

// bundleNamesCompletion provides shell completion for bundle names
func bundleNamesCompletion(flags *rootFlags) func(*cobra.Command, []string, string) ([]string, cobra.ShellCompDirective) {
	return func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		cfg, err := flags.load()
		if err != nil {
			return nil, cobra.ShellCompDirectiveError
		}

		seen := make(map[string]bool, len(args))
		for _, arg := range args {
			seen[arg] = true
		}

		var names []string
		for _, name := range cfg.BundleNames() {
			if !seen[name] {
				names = append(names, name)
			}
		}
		return names, cobra.ShellCompDirectiveNoFileComp
	}
}

func newBuildCmd(flags *rootFlags) *cobra.Command {
	var (
		force         bool
		files         []string
		output        string
		transformName string
	)

	cmd := &cobra.Command{
		Use:               "build [bundles...]",
		Short:             MsgBuildShort,
		Long:              MsgBuildLong,
		Example:           MsgBuildExample,
		GroupID:           "core",
		ValidArgsFunction: bundleNamesCompletion(flags),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts := build.BuildOptions{
				Config:    flags.cfg,
				Bundles:   args,
				Force:     force,
				Transform: transformName,
			}

			if len(files) > 0 || output != "" {
				if len(args) > 0 {
					return errors.New(errors.ErrInvalidInput, MsgAdHocNoNames)
				}
				adHoc, err := adHocBundle(files, output, transformName)
				if err != nil {
					return err
				}
				opts.AdHoc = adHoc
			}

			log.Info().
				Strs("bundles", args).
				Bool("force", force).
				Bool("adHoc", opts.AdHoc != nil).
				Msg("Building bundles")

			result, err := build.Build(opts)
			if err != nil {
				return err
			}

			fmt.Fprint(cmd.OutOrStdout(), style.RenderReport(MsgBuildTitle, reportLines(result)))

			if failed := result.Count(types.StatusFailed); failed > 0 {
				first := result.FirstError()
				return errors.Wrapf(first, errors.GetErrorCode(first), MsgErrBundlesFailed, failed)
			}
			return nil
		},
	}

	cmd.Flags().BoolVarP(&force, "force", "f", false, MsgFlagForce)
	cmd.Flags().StringSliceVar(&files, "files", nil, MsgFlagFiles)
	cmd.Flags().StringVarP(&output, "output", "o", "", MsgFlagOutput)
	cmd.Flags().StringVarP(&transformName, "transform", "t", "", MsgFlagTransform)
	_ = cmd.RegisterFlagCompletionFunc("transform", func(*cobra.Command, []string, string) ([]string, cobra.ShellCompDirective) {
		return transform.Names(), cobra.ShellCompDirectiveNoFileComp
	})

	return cmd
}

// adHocBundle describes a bundle given on the command line. The output is
// resolved against the working directory, sources against source_dir.
func adHocBundle(files []string, output, transformName string) (*selection.Named, error) {
	if len(files) == 0 || output == "" {
		return nil, errors.New(errors.ErrInvalidInput, "an ad-hoc bundle needs both --files and --output")
	}
	abs, err := filepath.Abs(output)
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrInvalidInput, "invalid output path %s", output)
	}
	return &selection.Named{
		Name: filepath.Base(abs),
		Bundle: config.BundleConfig{
			Files:     files,
			Output:    abs,
			Transform: transformName,
		},
	}, nil
}

func newCheckCmd(flags *rootFlags) *cobra.Command {
	return &cobra.Command{
		Use:               "check [bundles...]",
		Short:             MsgCheckShort,
		Long:              MsgCheckLong,
		GroupID:           "core",
		ValidArgsFunction: bundleNamesCompletion(flags),
		RunE: func(cmd *cobra.Command, args []string) error {
			result, err := check.Check(check.CheckOptions{
				Config:  flags.cfg,
				Bundles: args,
			})
			if err != nil {
				return err
			}

			fmt.Fprint(cmd.OutOrStdout(), style.RenderReport(MsgCheckTitle, reportLines(result)))

			if failed := result.Count(types.StatusFailed); failed > 0 {
				first := result.FirstError()
				return errors.Wrapf(first, errors.GetErrorCode(first), MsgErrBundlesFailed, failed)
			}
			if stale := result.Count(types.StatusStale); stale > 0 {
				return errors.Newf(errors.ErrStale, MsgErrBundlesStale, stale)
			}
			return nil
		},
	}
}

func newListCmd(flags *rootFlags) *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:     "list",
		Short:   MsgListShort,
		Long:    MsgListLong,
		Args:    cobra.NoArgs,
		GroupID: "core",
		RunE: func(cmd *cobra.Command, args []string) error {
			if format != "text" && format != "yaml" {
				return errors.Newf(errors.ErrInvalidInput, MsgErrBadFormat, format)
			}

			result, err := list.ListBundles(list.ListBundlesOptions{Config: flags.cfg})
			if err != nil {
				return err
			}

			if format == "yaml" {
				enc := yaml.NewEncoder(cmd.OutOrStdout())
				enc.SetIndent(2)
				if err := enc.Encode(result); err != nil {
					return errors.Wrap(err, errors.ErrInternal, "failed to encode YAML")
				}
				return enc.Close()
			}

			fmt.Fprint(cmd.OutOrStdout(), style.RenderBundleList(result.Bundles))
			return nil
		},
	}

	cmd.Flags().StringVar(&format, "format", "text", MsgFlagListFormat)

	return cmd
}

func newInitCmd() *cobra.Command {
	var format, dir string

	cmd := &cobra.Command{
		Use:         "init",
		Short:       MsgInitShort,
		Long:        MsgInitLong,
		Args:        cobra.NoArgs,
		GroupID:     "core",
		Annotations: map[string]string{annotationNoConfig: "true"},
		RunE: func(cmd *cobra.Command, args []string) error {
			result, err := initialize.Init(initialize.InitOptions{Dir: dir, Format: format})
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), MsgInitCreated, result.Path)
			return nil
		},
	}

	cmd.Flags().StringVar(&format, "format", config.FormatTOML, MsgFlagInitFormat)
	cmd.Flags().StringVar(&dir, "dir", ".", MsgFlagInitDir)

	return cmd
}

// reportLines converts command results into report lines
func reportLines(result *types.BundlesResult) []style.BundleStatus {
	lines := make([]style.BundleStatus, 0, len(result.Bundles))
	for _, b := range result.Bundles {
		line := style.BundleStatus{Name: b.Name, Status: b.Status, Output: b.Output}
		switch {
		case b.Err != nil:
			line.Detail = b.Err.Error()
		case b.Status == types.StatusBuilt:
			line.Detail = fmt.Sprintf(MsgBytesFormat, b.Bytes)
		}
		lines = append(lines, line)
	}
	return lines
}
