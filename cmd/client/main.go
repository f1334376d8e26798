// Package main is the seller portal login client. It signs a seller in,
// keeps the session on disk or in Redis, and reports where the seller lands.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/atinyakov/StorePortal/internal/bootstrap"
	"github.com/atinyakov/StorePortal/internal/client/api"
	"github.com/atinyakov/StorePortal/internal/client/notify"
	"github.com/atinyakov/StorePortal/internal/client/prompt"
	"github.com/atinyakov/StorePortal/internal/config"
	"github.com/atinyakov/StorePortal/internal/logger"
	"github.com/atinyakov/StorePortal/internal/session"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

var (
	version   string
	buildDate string
)

func main() {
	os.Exit(run(context.Background(), os.Args[1:], os.Stdin, os.Stdout))
}

// run parses args and executes one command: login, logout or status.
// It returns the process exit code.
func run(ctx context.Context, args []string, in io.Reader, out io.Writer) int {
	fs := flag.NewFlagSet("portal", flag.ContinueOnError)
	fs.SetOutput(out)
	cmd := fs.String("cmd", "login", "command: login | logout | status")
	email := fs.String("email", "", "seller email (prompted when empty)")
	showVer := fs.Bool("version", false, "show build version and date")

	opts, err := config.ParseClient(fs, args)
	if err != nil {
		fmt.Fprintln(out, err)
		return 2
	}

	if *showVer {
		fmt.Fprintf(out, "Store Portal Client\nVersion: %s\nBuild Date: %s\n", version, buildDate)
		return 0
	}

	log := logger.New()
	defer func() { _ = log.Log.Sync() }()
	if err := log.Init(opts.LogLevel); err != nil {
		fmt.Fprintln(out, err)
		return 2
	}

	store, closeStore, err := openSessionStore(opts)
	if err != nil {
		fmt.Fprintln(out, "cannot open session store:", err)
		return 1
	}
	defer closeStore()

	state := session.NewState()
	if _, err := session.Restore(ctx, store, state); err != nil && !errors.Is(err, session.ErrNotLoggedIn) {
		log.Log.Warn("ignoring unreadable session", zap.Error(err))
	}

	switch *cmd {
	case "login":
		return login(ctx, opts, store, state, *email, in, out, log.Log)
	case "logout":
		if err := session.Clear(ctx, store); err != nil {
			fmt.Fprintln(out, "logout failed:", err)
			return 1
		}
		state.Logout()
		fmt.Fprintln(out, "Logged out")
		return 0
	case "status":
		return status(state, out)
	default:
		fmt.Fprintf(out, "unknown command: %s\n", *cmd)
		return 2
	}
}

func login(
	ctx context.Context,
	opts *config.ClientOptions,
	store session.Store,
	state *session.State,
	email string,
	in io.Reader,
	out io.Writer,
	log *zap.Logger,
) int {
	creds, err := prompt.Credentials(in, out, email)
	if err != nil {
		fmt.Fprintln(out, err)
		return 2
	}

	httpClient, err := api.NewHTTPClient(opts.CAFile, opts.Timeout)
	if err != nil {
		fmt.Fprintln(out, err)
		return 1
	}
	client := api.New(opts.BaseURL, httpClient, log)

	b := bootstrap.New(client, func(tok string) (bootstrap.StoreDirectory, bootstrap.StoreRepository) {
		authed := client.WithToken(tok)
		return authed, authed
	}, store, state, log)

	outcome := b.Bootstrap(ctx, creds)
	bootstrap.Present(outcome, notify.NewConsole(out, log), notify.NewConsoleRouter(out))

	if !outcome.OK() {
		return 1
	}
	return 0
}

func status(state *session.State, out io.Writer) int {
	snap := state.Snapshot()
	if !snap.LoggedIn {
		fmt.Fprintln(out, "Not logged in")
		return 1
	}
	name := ""
	if snap.User != nil {
		name = snap.User.Email
	}
	fmt.Fprintf(out, "Logged in as %s\nStore: %s (%s)\n", name, snap.StoreID, snap.StoreStatus)
	return 0
}

func openSessionStore(opts *config.ClientOptions) (session.Store, func(), error) {
	switch opts.SessionBackend {
	case config.BackendRedis:
		rdb := redis.NewClient(&redis.Options{Addr: opts.RedisAddr})
		return session.NewRedisStore(rdb, opts.RedisPrefix, 0), func() { _ = rdb.Close() }, nil
	default:
		fs, err := session.NewFileStore(opts.SessionFile)
		if err != nil {
			return nil, nil, err
		}
		return fs, func() {}, nil
	}
}
