package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"runtime/pprof"
	"strings"
	"text/tabwriter"

	"github.com/708u/tint"
	"github.com/spf13/cobra"
)

var (
	version = "dev"
	commit  = "unknown"
	date    = "unknown"
)

type options struct {
	env                tint.Environment // nil = use tint.SystemEnvironment on stdout
	commandIDGenerator func() string    // nil = use tint.GenerateCommandID
}

// Option configures newRootCmd.
type Option func(*options)

// WithEnvironment sets the Environment probed by detection for testing.
func WithEnvironment(env tint.Environment) Option {
	return func(o *options) {
		o.env = env
	}
}

// WithCommandIDGenerator sets the command ID generator for testing.
func WithCommandIDGenerator(gen func() string) Option {
	return func(o *options) {
		o.commandIDGenerator = gen
	}
}

func resolveDirectory(dirFlag, baseCwd string) (string, error) {
	if dirFlag == "" {
		return baseCwd, nil
	}

	var resolved string
	if !filepath.IsAbs(dirFlag) {
		resolved = filepath.Join(baseCwd, dirFlag)
	} else {
		resolved = dirFlag
	}

	resolved, err := filepath.Abs(resolved)
	if err != nil {
		return "", fmt.Errorf("failed to resolve path: %w", err)
	}

	info, err := os.Stat(resolved)
	if err != nil {
		return "", fmt.Errorf("cannot change to '%s': %w", dirFlag, err)
	}
	if !info.IsDir() {
		return "", fmt.Errorf("cannot change to '%s': not a directory", dirFlag)
	}

	return resolved, nil
}

// createLogger creates a logger based on verbosity level.
// Returns a nop logger for verbosity < 2, or a CLI handler logger for -vv.
func createLogger(w io.Writer, verbosity int, idGen func() string, out *tint.Output) *slog.Logger {
	if verbosity < 2 {
		return tint.NewNopLogger()
	}
	handler := tint.NewCLIHandler(w, tint.VerbosityToLevel(verbosity), out)
	handlerWithID := handler.WithAttrs([]slog.Attr{
		tint.LogAttrKeyCmdID.Attr(idGen()),
	})
	return slog.New(handlerWithID)
}

// elementFlags collects --fg, --bg and --style values into elements.
func elementFlags(cmd *cobra.Command) ([]tint.Element, error) {
	fg, _ := cmd.Flags().GetString("fg")
	bg, _ := cmd.Flags().GetString("bg")
	styles, _ := cmd.Flags().GetStringArray("style")

	var names []string
	names = append(names, styles...)
	if fg != "" {
		names = append(names, fg)
	}
	if bg != "" {
		if !strings.HasPrefix(strings.ToLower(bg), "bg") {
			bg = "bg-" + bg
		}
		names = append(names, bg)
	}
	return tint.ParseElements(names)
}

func completeElementNames(prefix string) func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	return func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		var names []string
		for _, name := range tint.ElementNames() {
			if strings.HasPrefix(name, prefix) && strings.HasPrefix(name, toComplete) {
				names = append(names, name)
			}
		}
		return names, cobra.ShellCompDirectiveNoFileComp
	}
}

func newRootCmd(opts ...Option) *cobra.Command {
	o := &options{}
	for _, opt := range opts {
		opt(o)
	}

	env := o.env
	if env == nil {
		env = tint.SystemEnvironment{Out: os.Stdout}
	}

	var (
		cfg         *tint.Config
		out         *tint.Output
		log         *slog.Logger
		dirFlag     string
		colorFlag   string
		consoleFlag string
	)

	resolveCompletionConfig := func(cmd *cobra.Command) (*tint.Config, error) {
		currentCwd, err := os.Getwd()
		if err != nil {
			return nil, err
		}
		flag, _ := cmd.Root().PersistentFlags().GetString("directory")
		dir, err := resolveDirectory(flag, currentCwd)
		if err != nil {
			return nil, err
		}
		result, err := tint.LoadConfig(dir)
		if err != nil {
			return nil, err
		}
		return result.Config, nil
	}

	rootCmd := &cobra.Command{
		Use:           "tint",
		Short:         "Write ANSI styled text when the terminal supports it",
		Version:       version,
		SilenceErrors: true,
		SilenceUsage:  true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			originalCwd, err := os.Getwd()
			if err != nil {
				return fmt.Errorf("failed to get current directory: %w", err)
			}

			cwd, err := resolveDirectory(dirFlag, originalCwd)
			if err != nil {
				return err
			}

			result, err := tint.LoadConfig(cwd)
			if err != nil {
				return fmt.Errorf("failed to load config: %w", err)
			}
			cfg = result.Config

			out = tint.New(tint.WithEnvironment(env))
			if err := cfg.Apply(out); err != nil {
				return fmt.Errorf("failed to apply config: %w", err)
			}

			// Flags override config
			if cmd.Flags().Changed("color") {
				mode, err := tint.ParseMode(colorFlag)
				if err != nil {
					return err
				}
				out.SetMode(mode)
			}
			if cmd.Flags().Changed("console") {
				console, err := tint.ParseConsole(consoleFlag)
				if err != nil {
					return err
				}
				out.SetConsole(console)
			}

			tint.SyncColorPackage(out)

			for _, w := range result.Warnings {
				fmt.Fprintln(cmd.ErrOrStderr(), tint.WarningLabel("warning:"), w)
			}

			verbosity, _ := cmd.Flags().GetCount("verbose")
			idGen := tint.GenerateCommandID
			if o.commandIDGenerator != nil {
				idGen = o.commandIDGenerator
			}
			log = createLogger(cmd.ErrOrStderr(), verbosity, idGen, out)
			log.Debug("working directory "+cwd,
				tint.LogAttrKeyCategory.Attr(tint.LogCategoryDebug))
			if verbosity >= 2 {
				// Detect again so the probes are traced.
				out.Detector().SetLogger(log)
				out.Detector().Reset()
			}
			return nil
		},
	}
	rootCmd.SetVersionTemplate("{{.Version}}\n")

	printCmd := &cobra.Command{
		Use:   "print [text...]",
		Short: "Print text with the given colors and attributes",
		Long: `Print text with the given colors and attributes.

Colors are named (red, bright-blue) or palette indexes (fg:208).
Background colors accept the same names, with or without a "bg-" prefix.

  tint print --fg red --style bold "build failed"
  tint print --fg fg:244 --bg bg:17 "muted on navy"`,
		RunE: func(cmd *cobra.Command, args []string) error {
			elements, err := elementFlags(cmd)
			if err != nil {
				return err
			}
			noNewline, _ := cmd.Flags().GetBool("no-newline")

			values := make([]any, 0, len(elements)+1)
			for _, e := range elements {
				values = append(values, e)
			}
			values = append(values, strings.Join(args, " "))

			log.Debug(fmt.Sprintf("print with %d element(s)", len(elements)),
				tint.LogAttrKeyCategory.Attr(tint.LogCategoryRender))

			fmt.Fprint(cmd.OutOrStdout(), out.Sprint(values...))
			if !noNewline {
				fmt.Fprintln(cmd.OutOrStdout())
			}
			return nil
		},
	}
	printCmd.Flags().String("fg", "", "Foreground color (e.g. red, bright-green, fg:208)")
	printCmd.Flags().String("bg", "", "Background color (e.g. blue, bg-blue, bg:17)")
	printCmd.Flags().StringArray("style", nil, "Text attribute: bold, faint, italic, underline (repeatable)")
	printCmd.Flags().BoolP("no-newline", "n", false, "Do not print the trailing newline")
	printCmd.RegisterFlagCompletionFunc("fg", completeElementNames(""))
	printCmd.RegisterFlagCompletionFunc("bg", completeElementNames("bg-"))
	printCmd.RegisterFlagCompletionFunc("style", func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		return []string{"bold", "faint", "italic", "underline", "normal"}, cobra.ShellCompDirectiveNoFileComp
	})
	rootCmd.AddCommand(printCmd)

	styleCmd := &cobra.Command{
		Use:   "style <name> [text...]",
		Short: "Print text with a style defined in .tint/settings.toml",
		Long: `Print text with a style defined in the [styles] table of
.tint/settings.toml, .tint/settings.local.toml or an included file.

  [styles]
  error = ["bold", "red"]

  tint style error "build failed"`,
		Args: cobra.MinimumNArgs(1),
		ValidArgsFunction: func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
			if len(args) >= 1 {
				return nil, cobra.ShellCompDirectiveNoFileComp
			}
			c, err := resolveCompletionConfig(cmd)
			if err != nil {
				return nil, cobra.ShellCompDirectiveError
			}
			return c.StyleNames(), cobra.ShellCompDirectiveNoFileComp
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			elements, ok := cfg.Style(args[0])
			if !ok {
				return fmt.Errorf("unknown style %q", args[0])
			}

			values := make([]any, 0, len(elements)+1)
			for _, e := range elements {
				values = append(values, e)
			}
			values = append(values, strings.Join(args[1:], " "))

			fmt.Fprintln(cmd.OutOrStdout(), out.Sprint(values...))
			return nil
		},
	}
	rootCmd.AddCommand(styleCmd)

	paletteCmd := &cobra.Command{
		Use:   "palette",
		Short: "Show the 256-color palette",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			background, _ := cmd.Flags().GetBool("background")
			channel := tint.ChannelForeground
			if background {
				channel = tint.ChannelBackground
			}

			formatted := tint.PaletteResult{Channel: channel}.Format(tint.FormatOptions{Out: out})
			fmt.Fprint(cmd.OutOrStdout(), formatted.Stdout)
			return nil
		},
	}
	paletteCmd.Flags().BoolP("background", "b", false, "Show background colors")
	rootCmd.AddCommand(paletteCmd)

	namesCmd := &cobra.Command{
		Use:   "names",
		Short: "List color and attribute names",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			formatted := tint.NamesResult{Names: tint.ElementNames()}.Format(tint.FormatOptions{Out: out})
			if formatted.Stderr != "" {
				fmt.Fprint(cmd.ErrOrStderr(), formatted.Stderr)
			}
			fmt.Fprint(cmd.OutOrStdout(), formatted.Stdout)
			return nil
		},
	}
	rootCmd.AddCommand(namesCmd)

	detectCmd := &cobra.Command{
		Use:   "detect",
		Short: "Show whether styled output is enabled and why",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			verbosity, _ := cmd.Flags().GetCount("verbose")

			report := tint.Inspect(out, env)
			formatted := report.Format(tint.FormatOptions{
				Verbose: verbosity >= 1,
				Out:     out,
			})
			fmt.Fprint(cmd.OutOrStdout(), formatted.Stdout)
			return nil
		},
	}
	rootCmd.AddCommand(detectCmd)

	rootCmd.PersistentFlags().StringVarP(&dirFlag, "directory", "C", "", "Run as if tint was started in <path>")
	rootCmd.PersistentFlags().CountP("verbose", "v", "Enable verbose output (-v for verbose, -vv for debug)")
	rootCmd.PersistentFlags().StringVar(&colorFlag, "color", "auto", "Color output: auto, always, never")
	rootCmd.PersistentFlags().StringVar(&consoleFlag, "console", "unset", "Console override: unset, present, absent")

	versionCmd := &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 1, ' ', 0)
			fmt.Fprintf(w, "version:\t%s\n", version)
			fmt.Fprintf(w, "commit:\t%s\n", commit)
			fmt.Fprintf(w, "date:\t%s\n", date)
			w.Flush()
		},
	}
	rootCmd.AddCommand(versionCmd)

	return rootCmd
}

var rootCmd = newRootCmd()

func main() {
	os.Exit(run())
}

func run() int {
	// CPU profiling support via environment variable
	if profFile := os.Getenv("TINT_CPUPROFILE"); profFile != "" {
		f, err := os.Create(profFile)
		if err != nil {
			fmt.Fprintf(os.Stderr, "tint: failed to create CPU profile: %v\n", err)
			return 1
		}
		defer func() { _ = f.Close() }()
		if err := pprof.StartCPUProfile(f); err != nil {
			fmt.Fprintf(os.Stderr, "tint: failed to start CPU profile: %v\n", err)
			return 1
		}
		defer pprof.StopCPUProfile()
	}

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(rootCmd.ErrOrStderr(), tint.ErrorLabel("tint:"), err)
		return 1
	}
	return 0
}
