// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/MKhiriev/go-ipass/internal/app"
	"github.com/MKhiriev/go-ipass/internal/config"
	"github.com/MKhiriev/go-ipass/internal/logger"
	"github.com/MKhiriev/go-ipass/internal/service"
	"github.com/MKhiriev/go-ipass/internal/utils"
	"github.com/MKhiriev/go-ipass/internal/workers"
	"github.com/atotto/clipboard"
	"github.com/google/subcommands"
)

const appName = "ipass"

type App struct {
	services    *service.Services
	browser     Browser
	prompter    Prompter
	passwords   PasswordGenerator
	ids         IDGenerator
	copyText    func(string) error
	sync        workers.SyncTarget
	archiveName string
	homeDir     string

	out    io.Writer
	errOut io.Writer
	logger *logger.Logger
}

// Option overrides one of the process-wide defaults of [App].
type Option func(*App)

// WithPrompter replaces the terminal prompter.
func WithPrompter(p Prompter) Option {
	return func(a *App) { a.prompter = p }
}

// WithOutput redirects command output and error output.
func WithOutput(out, errOut io.Writer) Option {
	return func(a *App) {
		a.out = out
		a.errOut = errOut
	}
}

// WithClipboard replaces the system clipboard.
func WithClipboard(copyText func(string) error) Option {
	return func(a *App) { a.copyText = copyText }
}

// WithPasswordGenerator replaces the diceware generator.
func WithPasswordGenerator(g PasswordGenerator) Option {
	return func(a *App) { a.passwords = g }
}

// WithIDGenerator replaces the invocation id source.
func WithIDGenerator(g IDGenerator) Option {
	return func(a *App) { a.ids = g }
}

// WithHomeDir sets the default directory of export and import.
func WithHomeDir(dir string) Option {
	return func(a *App) { a.homeDir = dir }
}

func NewApp(services *service.Services, browser Browser, cfg *config.ClientConfig, logger *logger.Logger, opts ...Option) *App {
	home, err := os.UserHomeDir()
	if err != nil {
		home = "."
	}

	a := &App{
		services:    services,
		browser:     browser,
		prompter:    NewTermPrompter(os.Stdin, os.Stderr),
		passwords:   utils.NewPasswordGenerator(),
		ids:         utils.NewUUIDGenerator(),
		copyText:    clipboard.WriteAll,
		sync:        workers.SyncTarget{Path: cfg.Storage.SyncFile},
		archiveName: cfg.Storage.ArchiveName(),
		homeDir:     home,
		out:         os.Stdout,
		errOut:      os.Stderr,
		logger:      logger,
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// Run executes the command line args (global flags already stripped) and
// returns the exit code.
func (a *App) Run(ctx context.Context, args []string) int {
	top := flag.NewFlagSet(appName, flag.ContinueOnError)
	top.SetOutput(a.errOut)
	if err := top.Parse(args); err != nil {
		return int(subcommands.ExitUsageError)
	}

	cdr := subcommands.NewCommander(top, appName)
	cdr.Output = a.out
	cdr.Error = a.errOut
	cdr.Explain = a.explain

	for i := range commandTable {
		cdr.Register(&command{spec: &commandTable[i], app: a}, "")
	}
	cdr.Register(cdr.HelpCommand(), "help")
	cdr.Register(cdr.CommandsCommand(), "help")
	cdr.Register(cdr.FlagsCommand(), "help")

	return int(cdr.Execute(ctx))
}

func (a *App) explain(w io.Writer) {
	fmt.Fprintf(w, "usage: %s [-vault dir] [-scheme legacy|hardened] [-c config.json] <command> [args]\n\n", appName)
	fmt.Fprintln(w, "Commands:")
	for _, spec := range commandTable {
		fmt.Fprintf(w, "  %-11s %s\n", spec.name, spec.synopsis)
	}
	fmt.Fprintf(w, "\nTry %s help <command> for command-specific help.\n", appName)
}

// execute runs one command with its own logger, passphrase cache and sync
// hooks.
func (a *App) execute(ctx context.Context, spec *commandSpec, opts commandOptions, args []string) subcommands.ExitStatus {
	log := a.logger.ForInvocation(spec.name, a.ids.Generate())
	ctx = log.WithContext(ctx)

	inv := &invocation{
		app:    a,
		args:   args,
		opts:   opts,
		out:    newPrinter(a.out),
		logger: log,
	}

	syncDir := ""
	if !spec.noSync {
		syncDir = a.syncDir(log)
	}
	if syncDir != "" {
		workers.NewWorkers(log, workers.NewSyncImport(a.services.ArchiveService, syncDir)).Run(ctx)
	}

	log.Debug().Msg("command started")
	err := spec.run(inv, ctx)
	status := a.report(log, err)

	if syncDir != "" {
		workers.NewWorkers(log, workers.NewSyncExport(a.services.ArchiveService, syncDir)).Run(ctx)
	}
	return status
}

func (a *App) syncDir(log *logger.Logger) string {
	dir, err := a.sync.Dir()
	if err != nil {
		log.Warn().Err(err).Msg("sync disabled for this command")
		return ""
	}
	return dir
}

// report prints err for the user and picks the exit status.
func (a *App) report(log *logger.Logger, err error) subcommands.ExitStatus {
	errOut := newPrinter(a.errOut)

	switch {
	case err == nil:
		log.Debug().Msg("command finished")
		return subcommands.ExitSuccess
	case errors.Is(err, ErrAborted):
		log.Info().Msg("command aborted by user")
		errOut.Warn("Operation cancelled!")
		return subcommands.ExitSuccess
	case errors.Is(err, ErrUsage):
		errOut.Error("%s", err)
		return subcommands.ExitUsageError
	}

	log.Error().Err(err).Msg("command failed")

	msg := app.UserMessage(err)
	switch {
	case msg != "":
	case errors.Is(err, ErrPasswordsDoNotMatch):
		msg = app.MsgPasswordsDoNotMatch
	default:
		msg = err.Error()
	}
	errOut.Error("Error: %s", msg)
	return subcommands.ExitFailure
}

type commandOptions struct {
	clip bool
	yes  bool
}

// command adapts a [commandSpec] to subcommands.Command.
type command struct {
	spec *commandSpec
	app  *App
	opts commandOptions
}

func (c *command) Name() string     { return c.spec.name }
func (c *command) Synopsis() string { return c.spec.synopsis }

func (c *command) Usage() string {
	return strings.TrimSpace(fmt.Sprintf("%s %s %s", appName, c.spec.name, c.spec.args)) + "\n  " + c.spec.synopsis + "\n"
}

func (c *command) SetFlags(fs *flag.FlagSet) {
	for _, name := range c.spec.flags {
		switch name {
		case flagClip:
			fs.BoolVar(&c.opts.clip, flagClip, false, "copy the password to the clipboard instead of printing it")
		case flagYes:
			fs.BoolVar(&c.opts.yes, flagYes, false, "do not ask for confirmation")
		}
	}
}

func (c *command) Execute(ctx context.Context, fs *flag.FlagSet, _ ...any) subcommands.ExitStatus {
	args := fs.Args()
	if len(args) < c.spec.minArgs || len(args) > c.spec.maxArgs {
		newPrinter(c.app.errOut).Error("Invalid usage of %q", c.spec.name)
		fmt.Fprint(c.app.errOut, c.Usage())
		return subcommands.ExitUsageError
	}
	return c.app.execute(ctx, c.spec, c.opts, args)
}

// invocation is the state of one command run. The master password is read
// at most once and never outlives it.
type invocation struct {
	app        *App
	args       []string
	opts       commandOptions
	out        *printer
	logger     *logger.Logger
	passphrase *string
}
