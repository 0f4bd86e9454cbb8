// Command learnctl is a terminal client for the student dashboard API.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog"
	"github.com/viharinalla/student-dashboard/internal/client"
	"github.com/viharinalla/student-dashboard/internal/config"
	"github.com/viharinalla/student-dashboard/internal/database"
	"github.com/viharinalla/student-dashboard/internal/logger"
)

var errUsage = errors.New("usage")

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, os.Args[1:], os.Stdin, os.Stdout, os.Stderr); err != nil {
		if !errors.Is(err, errUsage) {
			fmt.Fprintln(os.Stderr, "Error:", err)
		}
		os.Exit(1)
	}
}

// app is what every subcommand gets to work with.
type app struct {
	cfg     *config.ClientConfig
	log     zerolog.Logger
	api     *client.API
	pages   *client.Pages
	session *client.Session
	stdin   io.Reader
	stdout  io.Writer
	stderr  io.Writer
	cleanup func()
}

type command struct {
	usage string
	run   func(ctx context.Context, a *app, args []string) error
}

var commands = map[string]command{
	"health":     {"health", runHealth},
	"login":      {"login [-email addr] [-name name]", runLogin},
	"logout":     {"logout", runLogout},
	"whoami":     {"whoami", runWhoami},
	"dashboard":  {"dashboard", runDashboard},
	"courses":    {"courses [-q filter]", runCourses},
	"course":     {"course <id>", runCourse},
	"community":  {"community", runCommunity},
	"resources":  {"resources", runResources},
	"attendance": {"attendance", runAttendance},
}

var commandOrder = []string{
	"health", "login", "logout", "whoami", "dashboard",
	"courses", "course", "community", "resources", "attendance",
}

func run(ctx context.Context, args []string, stdin io.Reader, stdout, stderr io.Writer) error {
	if len(args) == 0 {
		printUsage(stderr)
		return errUsage
	}
	cmd, ok := commands[args[0]]
	if !ok {
		fmt.Fprintf(stderr, "unknown command %q\n\n", args[0])
		printUsage(stderr)
		return errUsage
	}

	a, err := newApp(ctx, stdin, stdout, stderr)
	if err != nil {
		return err
	}
	defer a.cleanup()

	return cmd.run(ctx, a, args[1:])
}

func newApp(ctx context.Context, stdin io.Reader, stdout, stderr io.Writer) (*app, error) {
	cfg := config.LoadClient()
	log := logger.New(stderr, cfg.LogLevel, cfg.LogFormat)

	store, cleanup, err := openStore(ctx, cfg, log)
	if err != nil {
		return nil, err
	}

	api := client.NewAPI(cfg.APIURL, nil, log)
	session := client.NewSession(api, store, log)
	session.Hydrate(ctx)

	return &app{
		cfg:     cfg,
		log:     log,
		api:     api,
		pages:   client.NewPages(api, log),
		session: session,
		stdin:   stdin,
		stdout:  stdout,
		stderr:  stderr,
		cleanup: cleanup,
	}, nil
}

func openStore(ctx context.Context, cfg *config.ClientConfig, log zerolog.Logger) (client.Store, func(), error) {
	switch cfg.SessionStore {
	case "file", "":
		return client.NewFileStore(cfg.SessionFile), func() {}, nil
	case "redis":
		pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
		defer cancel()
		rdb, err := database.NewRedisClient(pingCtx, cfg.RedisURL, log)
		if err != nil {
			return nil, nil, err
		}
		return client.NewRedisStore(rdb, 0), func() { _ = rdb.Close() }, nil
	default:
		return nil, nil, fmt.Errorf("unknown SESSION_STORE %q (want file or redis)", cfg.SessionStore)
	}
}

func printUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: learnctl <command> [flags]")
	fmt.Fprintln(w, "Commands:")
	for _, name := range commandOrder {
		fmt.Fprintf(w, "  %s\n", commands[name].usage)
	}
	fmt.Fprintln(w, "Environment: API_URL, SESSION_STORE (file|redis), SESSION_FILE, REDIS_URL, LOG_LEVEL")
}

// parseFlags parses subcommand flags, reporting errors instead of exiting.
func parseFlags(fs *flag.FlagSet, usage string, out io.Writer, args []string) error {
	fs.SetOutput(out)
	fs.Usage = func() {
		fmt.Fprintf(out, "Usage: learnctl %s\n", usage)
		fs.PrintDefaults()
	}
	if err := fs.Parse(args); err != nil {
		return errUsage
	}
	return nil
}
