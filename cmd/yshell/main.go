package main

import (
	"fmt"
	"io"
	"os"

	"github.com/brettbedarf/inodefs/config"
	"github.com/brettbedarf/inodefs/filesystem"
	"github.com/brettbedarf/inodefs/internal/util"
	"github.com/brettbedarf/inodefs/requests"
	"github.com/brettbedarf/inodefs/shell"
	"github.com/fatih/color"
	"github.com/mattn/go-isatty"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

var (
	configPath string
	nodesDef   string
	verbose    int
	prompt     string
	noColor    bool
	echo       bool

	// exit status of the shell, reported once cobra returns
	exitStatus int

	rootCmd = &cobra.Command{
		Use:           "yshell [script]",
		Short:         "Interactive shell over an in-memory inode filesystem",
		Args:          cobra.MaximumNArgs(1),
		SilenceErrors: true,
		SilenceUsage:  true,
		RunE:          run,
	}
)

func init() {
	flags := rootCmd.Flags()
	flags.StringVarP(&configPath, "config", "c", "", "Path to a yaml, json or toml config file")
	flags.StringVarP(&nodesDef, "nodes", "n", "", "Path to a json or yaml nodes def file to seed the filesystem with")
	flags.IntVarP(&verbose, "verbose", "v", config.WarnVerbose, "Log verbosity level between 1 (error) and 5 (trace)")
	flags.StringVarP(&prompt, "prompt", "p", config.DefaultPrompt, "Initial prompt")
	flags.BoolVar(&noColor, "no-color", false, "Disable colored output")
	flags.BoolVarP(&echo, "echo", "e", false, "Print the prompt and each command line read, useful for transcripts")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		if verbose >= config.TraceVerbose {
			fmt.Fprintf(os.Stderr, "%s: %+v\n", shell.Name, err)
		} else {
			fmt.Fprintf(os.Stderr, "%s: %s\n", shell.Name, err)
		}
		os.Exit(1)
	}
	os.Exit(exitStatus)
}

func run(cmd *cobra.Command, args []string) error {
	override := &config.ConfigOverride{}
	if configPath != "" {
		var err error
		if override, err = config.LoadConfigOverrideFile(configPath); err != nil {
			return errors.Wrapf(err, "load config %s", configPath)
		}
	}
	// flags take precedence over the config file
	flags := cmd.Flags()
	if flags.Changed("verbose") || override.LogLvl == nil {
		override.LogLvl = &verbose
	}
	if flags.Changed("prompt") {
		override.Prompt = &prompt
	}
	if noColor {
		override.Color = util.Pointer(false)
	}
	cfg := config.NewConfig(override)

	util.InitializeLogger(cfg.LogLvl, os.Stderr)
	logger := util.GetLogger("main")
	logger.Info().Int("verbose", verbose).Str("config", configPath).Str("nodes", nodesDef).Msg("yshell initializing")

	if !isatty.IsTerminal(os.Stdout.Fd()) {
		color.NoColor = true
	}

	fs := filesystem.NewFS(cfg)
	if nodesDef != "" {
		reqs, err := requests.LoadFile(nodesDef)
		if err != nil {
			return errors.Wrapf(err, "load nodes %s", nodesDef)
		}
		logger.Debug().
			Int("files", len(reqs.Files)).
			Int("directories", len(reqs.Dirs)).
			Msg("Successfully loaded node requests")
		requests.Apply(fs, reqs)
	}

	var in io.Reader = os.Stdin
	interactive := isatty.IsTerminal(os.Stdin.Fd()) && isatty.IsTerminal(os.Stdout.Fd())
	if len(args) == 1 {
		script, err := os.Open(args[0])
		if err != nil {
			return errors.Wrap(err, "open script")
		}
		defer script.Close()
		in = script
		interactive = false
	}

	commands := shell.NewRegistry()
	shell.RegisterBuiltins(commands)
	sh := shell.New(fs, cfg, commands,
		shell.WithOutput(os.Stdout, os.Stderr),
		shell.WithInteractive(interactive),
		shell.WithEcho(echo),
	)
	status, err := sh.Run(in)
	if err != nil {
		return err
	}
	logger.Debug().Int("status", status).Int("nodes", fs.NodeCount()).Msg("yshell exiting")
	exitStatus = status
	return nil
}
