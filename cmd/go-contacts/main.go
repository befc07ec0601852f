package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"runtime"
	"syscall"

	"github.com/tartampluch/go-contacts/internal/cli"
	"github.com/tartampluch/go-contacts/internal/config"
	"github.com/tartampluch/go-contacts/internal/engine"
	"github.com/tartampluch/go-contacts/internal/storage"
)

// main is the application entry point.
// It delegates execution to runMain so deferred calls (closing the log file)
// run before os.Exit.
func main() {
	os.Exit(runMain(os.Args[1:], os.Stdin, os.Stdout))
}

// runMain manages argument parsing, logging, and exit codes.
func runMain(argv []string, in io.Reader, out io.Writer) int {
	// -------------------------------------------------------------------------
	// 1. CLI Argument Parsing
	// -------------------------------------------------------------------------
	fs := flag.NewFlagSet(config.AppName, flag.ContinueOnError)
	showVersion := fs.Bool(config.FlagVersion, false, config.FlagDescVersion)
	debugMode := fs.Bool(config.FlagDebug, false, config.FlagDescDebug)
	storagePath := fs.String(config.FlagFile, "", config.FlagDescFile)
	if err := fs.Parse(argv); err != nil {
		return config.ExitCodeError
	}

	if *showVersion {
		printVersion(out)
		return config.ExitCodeSuccess
	}

	settings, err := config.LoadSettings()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return config.ExitCodeError
	}
	if *storagePath != "" {
		settings.StoragePath = *storagePath
	}
	settings.Debug = settings.Debug || *debugMode

	// -------------------------------------------------------------------------
	// 2. Logging Initialization
	// -------------------------------------------------------------------------
	logCloser := setupLogging(settings.Debug)
	if logCloser != nil {
		defer func() {
			_ = logCloser.Close() // Best effort close
		}()
	}

	// -------------------------------------------------------------------------
	// 3. Context & Signal Handling
	// -------------------------------------------------------------------------
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	logStartupInfo(settings)

	// -------------------------------------------------------------------------
	// 4. Application Logic
	// -------------------------------------------------------------------------
	if err := run(ctx, settings, in, out); err != nil {
		slog.Error(config.ErrAppFailed,
			config.LogKeyComponent, config.CompMain,
			config.LogKeyError, err,
		)
		return config.ExitCodeError
	}

	slog.Info(config.MsgAppStop, config.LogKeyComponent, config.CompMain)
	return config.ExitCodeSuccess
}

// run loads the book, drives the session, and saves the book when the session ends.
func run(ctx context.Context, settings *config.Settings, in io.Reader, out io.Writer) error {
	store := storage.NewVCardStore(settings.StoragePath)

	book, err := store.Load(ctx)
	if err != nil {
		// A corrupt snapshot must not keep the user out; the next save replaces it.
		slog.Warn(config.ErrEmptyBookOnLoad,
			config.LogKeyComponent, config.CompMain,
			config.LogKeyFile, settings.StoragePath,
			config.LogKeyError, err,
		)
		book = engine.NewAddressBook()
	}

	dispatcher := cli.NewDispatcher(book, engine.RealClock{}, cli.NewMessages(), settings.ReminderTrigger)
	sessionErr := cli.NewSession(dispatcher).Run(ctx, in, out)

	// Save even after an interrupt; the save itself must not be cancelled.
	if err := store.Save(context.WithoutCancel(ctx), book); err != nil {
		return err
	}
	if sessionErr != nil && ctx.Err() == nil {
		return sessionErr
	}
	return nil
}

// printVersion outputs the build information.
func printVersion(out io.Writer) {
	fmt.Fprintf(out, config.MsgVersionOutput,
		config.AppName,
		config.Version,
		runtime.GOOS,
		runtime.GOARCH,
	)
}

// logStartupInfo logs environment details useful for debugging.
func logStartupInfo(settings *config.Settings) {
	slog.Info(config.MsgAppStarting,
		config.LogKeyComponent, config.CompMain,
		slog.Group(config.LogKeyBuild,
			slog.String(config.LogKeyApp, config.AppName),
			slog.String(config.LogKeyVersion, config.Version),
			slog.String(config.LogKeyGoVer, runtime.Version()),
		),
		slog.Group(config.LogKeyEnv,
			slog.String(config.LogKeyOS, runtime.GOOS),
			slog.String(config.LogKeyArch, runtime.GOARCH),
			slog.Int(config.LogKeyPID, os.Getpid()),
		),
		config.LogKeyFile, settings.StoragePath,
		config.LogKeyDebug, settings.Debug,
	)
}

// setupLogging configures the default slog logger.
// Logs go to the cache-dir log file; stderr only gets them in debug mode,
// since stdout belongs to the interactive session.
func setupLogging(debugMode bool) io.Closer {
	var writers []io.Writer
	var logFile *os.File

	if debugMode {
		writers = append(writers, os.Stderr)
	}

	if logPath, err := getLogFilePath(); err == nil {
		// O_TRUNC resets logs on restart to prevent indefinite growth.
		f, err := os.OpenFile(logPath, os.O_TRUNC|os.O_CREATE|os.O_WRONLY, config.FilePermUserRW)
		if err == nil {
			writers = append(writers, f)
			logFile = f
		} else {
			fmt.Fprintf(os.Stderr, config.MsgLogWarning, config.ErrLogFile, logPath, err)
		}
	}

	level := slog.LevelInfo
	if debugMode {
		level = slog.LevelDebug
	}

	opts := &slog.HandlerOptions{
		Level:     level,
		AddSource: debugMode,
	}

	logger := slog.New(slog.NewJSONHandler(io.MultiWriter(writers...), opts))
	slog.SetDefault(logger)

	if logFile == nil {
		return nil
	}
	return logFile
}

// getLogFilePath determines the platform-specific cache directory for logs.
func getLogFilePath() (string, error) {
	cacheDir, err := os.UserCacheDir()
	if err != nil {
		return "", fmt.Errorf("%s: %w", config.ErrCacheDir, err)
	}

	appDir := filepath.Join(cacheDir, config.AppID)

	// Ensure the directory exists with restricted permissions (700).
	if err := os.MkdirAll(appDir, config.DirPermUserRWX); err != nil {
		return "", fmt.Errorf("%s: %w", config.ErrCreateDir, err)
	}

	return filepath.Join(appDir, config.LogFileName), nil
}
