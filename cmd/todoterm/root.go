package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/sandeepkv93/todoterm/internal/config"
	"github.com/sandeepkv93/todoterm/internal/model"
	"github.com/sandeepkv93/todoterm/internal/storage"
	"github.com/sandeepkv93/todoterm/internal/update"
)

type app struct {
	cfg     config.RuntimeConfig
	logFile io.Closer

	// programOptions are appended to the defaults of the interactive program.
	programOptions []tea.ProgramOption
}

// execute runs the command tree and closes the debug log whether or not a
// command failed. cobra skips post-run hooks after an error.
func (a *app) execute(args []string, stdout, stderr io.Writer) error {
	cmd := newRootCmd(a)
	if args != nil {
		cmd.SetArgs(args)
	}
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)
	err := cmd.Execute()
	if closeErr := a.closeLog(); err == nil {
		err = closeErr
	}
	return err
}

func (a *app) closeLog() error {
	if a.logFile == nil {
		return nil
	}
	f := a.logFile
	a.logFile = nil
	return f.Close()
}

func newRootCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:          "todoterm",
		Short:        "A full-screen terminal todo list",
		SilenceUsage: true,
		Example: strings.TrimSpace(`
  # Start the interactive list
  todoterm

  # Use a different list file
  todoterm --file ~/work.txt

  # Scriptable commands
  todoterm add Buy milk
  todoterm list --category done
`),
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runTUI(cmd.Context())
		},
	}

	def := config.DefaultRuntimeConfig()
	flags := cmd.PersistentFlags()
	flags.String("file", "", "path of the todo list, default "+def.File+" or "+config.DefaultFile(storage.BackendSQLite)+" for sqlite (TODOTERM_FILE)")
	flags.String("backend", def.Backend, "storage backend: file or sqlite (TODOTERM_BACKEND)")
	flags.Bool("debug", def.Debug, "write debug logs to --log-file (TODOTERM_DEBUG)")
	flags.String("log-file", def.LogFile, "debug log path (TODOTERM_LOG_FILE)")

	cmd.PersistentPreRunE = func(cmd *cobra.Command, args []string) error {
		loader := config.NewLoader()
		if err := loader.BindFlags(cmd.Flags()); err != nil {
			return err
		}
		cfg, err := loader.Load()
		if err != nil {
			return err
		}
		a.cfg = cfg
		closer, err := setupLogging(cfg)
		if err != nil {
			return err
		}
		a.logFile = closer
		log.Printf("config: file=%s backend=%s", cfg.File, cfg.Backend)
		return nil
	}

	cmd.AddCommand(newListCmd(a), newAddCmd(a))
	return cmd
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }

// setupLogging keeps log output off the terminal: it goes to a file in
// debug mode and nowhere otherwise.
func setupLogging(cfg config.RuntimeConfig) (io.Closer, error) {
	if !cfg.Debug {
		log.SetOutput(io.Discard)
		return nopCloser{}, nil
	}
	f, err := tea.LogToFile(cfg.LogFile, "todoterm")
	if err != nil {
		return nil, fmt.Errorf("open log file: %w", err)
	}
	return f, nil
}

func (a *app) openList(ctx context.Context) (storage.Backend, *model.List, error) {
	backend, err := storage.Open(a.cfg.Backend, a.cfg.File)
	if err != nil {
		return nil, nil, err
	}
	items, err := backend.Load(ctx)
	if err != nil {
		_ = backend.Close()
		return nil, nil, err
	}
	log.Printf("loaded %d items from %s", len(items), a.cfg.File)
	return backend, model.NewList(items), nil
}

func (a *app) save(ctx context.Context, backend storage.Backend, list *model.List) error {
	items := list.Items()
	if err := backend.Save(ctx, items); err != nil {
		return fmt.Errorf("save %s: %w", a.cfg.File, err)
	}
	log.Printf("saved %d items to %s", len(items), a.cfg.File)
	return nil
}

// runTUI loads once, runs the program, and saves once. Bubble Tea restores
// the terminal before Run returns, on panics as well.
func (a *app) runTUI(ctx context.Context) (err error) {
	backend, list, err := a.openList(ctx)
	if err != nil {
		return err
	}
	defer func() {
		if closeErr := backend.Close(); err == nil {
			err = closeErr
		}
	}()

	opts := append([]tea.ProgramOption{tea.WithAltScreen(), tea.WithContext(ctx)}, a.programOptions...)
	program := tea.NewProgram(update.NewModelWithTitle(list, a.cfg.File), opts...)
	_, runErr := program.Run()
	return a.afterRun(ctx, backend, list, runErr)
}

// afterRun saves the list once the program has exited. A panic means an
// invariant broke, so nothing is written then.
func (a *app) afterRun(ctx context.Context, backend storage.Backend, list *model.List, runErr error) error {
	if runErr == nil {
		return a.save(ctx, backend, list)
	}
	if errors.Is(runErr, tea.ErrProgramPanic) {
		return fmt.Errorf("list not saved: %w", runErr)
	}
	if saveErr := a.save(context.WithoutCancel(ctx), backend, list); saveErr != nil {
		return errors.Join(runErr, saveErr)
	}
	return runErr
}
