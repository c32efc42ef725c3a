package cmd

import (
	"io"
	"os"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"github.com/nullaframework/create-nulla/internal/config"
	"github.com/nullaframework/create-nulla/internal/i18n"
	"github.com/nullaframework/create-nulla/internal/output"
	"github.com/nullaframework/create-nulla/internal/version"
)

// GlobalConfig holds CLI-wide state resolved during PersistentPreRunE.
type GlobalConfig struct {
	Config     *config.Config
	ConfigPath string
	Settings   *config.Settings
	Catalog    *i18n.Catalog
	Format     output.Format
	ExitCodes  ExitCodes
	Verbose    bool
}

// rootFlags holds the raw flag values of one command instance.
type rootFlags struct {
	typescript   bool
	tailwind     bool
	git          bool
	dryRun       bool
	verbose      bool
	timestamps   bool
	locale       string
	configPath   string
	outputFormat string
}

// environment is what the command reads from and writes to besides flags.
type environment struct {
	fs       afero.Fs
	cwd      func() (string, error)
	getenv   func(string) string
	prompter Prompter
}

// Option customizes the environment of the root command.
type Option func(*environment)

// WithFs sets the filesystem projects are created on.
func WithFs(fs afero.Fs) Option {
	return func(e *environment) { e.fs = fs }
}

// WithCwd sets the directory projects are created in.
func WithCwd(dir string) Option {
	return func(e *environment) {
		e.cwd = func() (string, error) { return dir, nil }
	}
}

// WithGetenv sets the environment lookup used for NULLA_* and locale variables.
func WithGetenv(getenv func(string) string) Option {
	return func(e *environment) { e.getenv = getenv }
}

// WithPrompter sets the prompter used when no name is given.
func WithPrompter(p Prompter) Option {
	return func(e *environment) { e.prompter = p }
}

// NewRootCmd creates the create-nulla command.
func NewRootCmd(opts ...Option) *cobra.Command {
	env := &environment{
		fs:     afero.NewOsFs(),
		cwd:    os.Getwd,
		getenv: os.Getenv,
	}
	for _, opt := range opts {
		opt(env)
	}

	flags := &rootFlags{}
	g := &GlobalConfig{}

	rootCmd := &cobra.Command{
		Use:   "create-nulla [name...]",
		Short: "Create a new Nulla project",
		Long: `create-nulla scaffolds a Nulla application in a new directory named after the project.

The name may be given as several words; they are joined with spaces and turned
into a lowercase, dash-separated directory name. Without a name, you are asked
for one.`,
		Example: `  create-nulla my app
  create-nulla widget --tailwind -ts
  create-nulla shop --dry-run -o yaml`,
		Args:          cobra.ArbitraryArgs,
		Version:       version.Version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return initializeGlobals(cmd, flags, env, g)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCreate(cmd, args, flags, env, g)
		},
	}
	rootCmd.SetVersionTemplate(version.GetInfo().String() + "\n")

	f := rootCmd.Flags()
	f.BoolVar(&flags.typescript, "typescript", false, "Use the TypeScript template (also -ts) (env: NULLA_TYPESCRIPT)")
	f.BoolVar(&flags.tailwind, "tailwind", false, "Add Tailwind CSS (env: NULLA_TAILWIND)")
	f.BoolVar(&flags.git, "git", false, "Initialize a git repository in the project (env: NULLA_GIT)")
	f.BoolVar(&flags.dryRun, "dry-run", false, "Show what would be created without writing anything")
	f.StringVar(&flags.locale, "locale", "", "Locale for messages and template text: en-US, pt-BR (env: NULLA_LOCALE)")
	f.StringVar(&flags.configPath, "config", "", "Path to config file (env: NULLA_CONFIG)")
	f.StringVarP(&flags.outputFormat, "output", "o", "", "Print a run report: text, yaml, json")
	f.BoolVarP(&flags.verbose, "verbose", "v", false, "Enable verbose output")
	f.BoolVar(&flags.timestamps, "timestamps", true, "Show timestamps in log output")

	return rootCmd
}

// initializeGlobals sets up logging, loads configuration and the message catalog.
func initializeGlobals(cmd *cobra.Command, flags *rootFlags, env *environment, g *GlobalConfig) error {
	configPath, err := config.ResolveConfigPath(config.ResolveConfigPathOptions{FlagValue: flags.configPath})
	if err != nil {
		return NewExitError(err, ExitGeneralError)
	}

	cfg, err := config.LoadValidated(configPath.ConfigPath)
	if err != nil {
		return NewExitError(err, ExitGeneralError)
	}

	// Timestamps: flag (if explicitly set) > config > default (nil = true)
	logCfg := output.LogConfig{Verbose: flags.verbose}
	if cmd.Flags().Changed("timestamps") {
		logCfg.Timestamps = output.BoolPtr(flags.timestamps)
	} else if cfg.Log.Timestamps != nil {
		logCfg.Timestamps = cfg.Log.Timestamps
	}
	output.SetupLogging(logCfg)

	changed := cmd.Flags().Changed
	settings, err := config.Resolve(config.ResolveOptions{
		Locale:     config.Flag[string]{Value: flags.locale, Set: changed("locale")},
		TypeScript: config.Flag[bool]{Value: flags.typescript, Set: changed("typescript")},
		Tailwind:   config.Flag[bool]{Value: flags.tailwind, Set: changed("tailwind")},
		Git:        config.Flag[bool]{Value: flags.git, Set: changed("git")},
		Config:     cfg,
		Getenv:     env.getenv,
	})
	if err != nil {
		return NewExitError(err, ExitGeneralError)
	}

	format, err := output.ParseFormat(flags.outputFormat)
	if err != nil {
		return NewExitError(err, ExitGeneralError)
	}

	catalog, err := i18n.Load(settings.Locale)
	if err != nil {
		return NewExitError(err, ExitGeneralError)
	}

	g.Config = cfg
	g.ConfigPath = configPath.ConfigPath
	g.Settings = settings
	g.Catalog = catalog
	g.Format = format
	g.ExitCodes = exitCodesFor(cfg.StrictExitCodes)
	g.Verbose = flags.verbose

	if flags.verbose {
		output.Debug("initializing CLI",
			"config", configPath.ConfigPath,
			"configSource", configPath.Source,
			"output", format,
			"dryRun", flags.dryRun,
		)
		config.LogResolvedValues(settings.Values)
	}

	return nil
}

// promptIO returns the streams the fallback prompter uses.
func promptIO(cmd *cobra.Command) (io.Reader, io.Writer) {
	return cmd.InOrStdin(), cmd.OutOrStdout()
}
