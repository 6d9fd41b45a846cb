package cli

import (
	"io"
	"math/rand/v2"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"designpatterns/src/catalog"
	"designpatterns/src/config"
	"designpatterns/src/events"
	"designpatterns/src/logging"
	"designpatterns/src/output"
	"designpatterns/src/timing"
)

// App carries the dependencies shared by every subcommand. It is filled in
// once flags have been parsed.
type App struct {
	in  io.Reader
	out io.Writer

	viper    *viper.Viper
	cfgFile  string
	seed     uint64
	registry *catalog.Registry

	Config config.Config
	Logger zerolog.Logger
	Runner *Runner
	Bus    *events.Dispatcher
}

// NewRootCommand builds the patterns command tree over the given streams.
func NewRootCommand(in io.Reader, out, errOut io.Writer) *cobra.Command {
	app := &App{
		in:       in,
		out:      out,
		viper:    config.New(),
		registry: catalog.Default(),
	}

	root := &cobra.Command{
		Use:   "patterns",
		Short: "Run classic design pattern examples",
		Long: `patterns runs small, self-contained demonstrations of classic design
patterns. With no subcommand it starts an interactive prompt.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return app.init()
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			app.repl()
			return nil
		},
	}
	root.SetIn(in)
	root.SetOut(out)
	root.SetErr(errOut)

	flags := root.PersistentFlags()
	flags.StringVar(&app.cfgFile, "config", "", "config file (default .patterns.yaml in . or $HOME)")
	flags.String("log-level", "", "log level (trace, debug, info, warn, error)")
	flags.Float64("delay-scale", 1, "multiplier for simulated pauses; 0 disables them")
	flags.StringP("output", "o", "", "listing format (table, json, yaml)")
	flags.Uint64Var(&app.seed, "seed", 0, "random seed for examples (0 picks one)")
	_ = app.viper.BindPFlag("log_level", flags.Lookup("log-level"))
	_ = app.viper.BindPFlag("delay_scale", flags.Lookup("delay-scale"))
	_ = app.viper.BindPFlag("output", flags.Lookup("output"))

	root.AddCommand(newListCommand(app), newRunCommand(app), newReplCommand(app))
	return root
}

func (a *App) init() error {
	cfg, err := config.Load(a.viper, a.cfgFile)
	if err != nil {
		return err
	}
	a.Config = cfg
	a.Logger = logging.New(logging.Config{
		Level:  cfg.LogLevel,
		Format: cfg.LogFormat,
		Output: cfg.LogOutput,
	})

	seed := a.seed
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	a.Runner = NewRunner(a.registry, timing.NewClock(cfg.DelayScale), rand.New(rand.NewPCG(seed, seed>>1)), a.Logger)

	a.Bus = events.NewDispatcher(events.CategoryCommand)
	a.Bus.SetLogger(a.Logger)
	a.Bus.Subscribe(events.CategoryCommand, logging.NewEventLogger(a.Logger))

	a.Logger.Debug().
		Str("config", cfg.File).
		Float64("delay_scale", cfg.DelayScale).
		Uint64("seed", seed).
		Msg("initialised")
	return nil
}

func (a *App) repl() {
	console := NewConsole(a.in, a.out)
	dispatcher := NewDispatcher(a.Runner, console, a.Bus)
	dispatcher.ConfirmAll = a.Config.DelayScale > 0
	console.Println("design pattern examples; type help for commands")
	dispatcher.Run()
}

func newListCommand(app *App) *cobra.Command {
	return &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		Short:   "List available examples",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			format, err := output.ParseFormat(app.Config.Output)
			if err != nil {
				return err
			}
			return output.Write(cmd.OutOrStdout(), format, app.registry.List())
		},
	}
}

func newRunCommand(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "run <name>... | all",
		Short: "Run one or more examples",
		Args:  cobra.MinimumNArgs(1),
		ValidArgsFunction: func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
			var names []string
			for _, name := range append(app.registry.Names(), "all") {
				if strings.HasPrefix(name, strings.ToLower(toComplete)) {
					names = append(names, name)
				}
			}
			return names, cobra.ShellCompDirectiveNoFileComp
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			for _, name := range args {
				if strings.EqualFold(name, "all") {
					if err := app.Runner.RunAll(out); err != nil {
						return err
					}
					app.Bus.Publish(events.CategoryCommand, "run all")
					continue
				}
				if err := app.Runner.Run(name, out); err != nil {
					return err
				}
				app.Bus.Publish(events.CategoryCommand, "run "+name)
			}
			return nil
		},
	}
}

func newReplCommand(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "repl",
		Short: "Start the interactive prompt",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			app.repl()
			return nil
		},
	}
}
