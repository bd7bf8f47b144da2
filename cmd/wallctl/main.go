// Command wallctl mints, inspects and renders wallpaper tokens offline.
package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
)

const usage = `usage: wallctl <command> [flags]

commands:
  encode-life      build a life calendar token
  encode-ramadan   build a ramadan calendar token (geocodes -city when no coordinates are given)
  decode           print the config carried by a token as YAML
  render           render a token to a PNG or SVG file
  bundle           render every variant of a token into one zip archive

run "wallctl <command> -h" for command flags`

func main() {
	_ = godotenv.Load()

	if len(os.Args) < 2 {
		fmt.Fprintln(os.Stderr, usage)
		os.Exit(2)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).
		Level(zerolog.WarnLevel).
		With().Timestamp().Str("cmd", "wallctl").Logger()
	env := newEnv(logger)

	var err error
	switch cmd, args := os.Args[1], os.Args[2:]; cmd {
	case "encode-life":
		err = env.encodeLife(args)
	case "encode-ramadan":
		err = env.encodeRamadan(ctx, args)
	case "decode":
		err = env.decode(args)
	case "render":
		err = env.render(ctx, args)
	case "bundle":
		err = env.bundle(ctx, args)
	case "help", "-h", "--help":
		fmt.Println(usage)
	default:
		err = fmt.Errorf("unknown command %q\n\n%s", cmd, usage)
	}
	if err != nil {
		exitWithError(err)
	}
}

func exitWithError(err error) {
	if errors.Is(err, errUsage) {
		os.Exit(2)
	}
	fmt.Fprintln(os.Stderr, styles.err.Render("error: ")+strings.TrimSpace(err.Error()))
	os.Exit(1)
}
