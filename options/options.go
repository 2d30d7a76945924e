// Package options holds every option the gateway accepts on the command line
// or via environment variables. It performs only "light" validation (enums
// and defaults); anything deeper happens in the validate package.
package options

import (
	"fmt"
	"os"
	"strings"

	"github.com/alecthomas/kong"
	"github.com/pkg/errors"
)

var (
	VERSION = "UNSET"
)

const (
	ActionServe   = "serve"
	ActionVersion = "version"
)

type CLIOptions struct {
	Global GlobalOptions `kong:"embed"`
	Serve  ServeOptions  `kong:"cmd,help='Accept legacy switch connections and relay them to work queues'"`

	Version struct{} `kong:"cmd,help='Print version and exit'"`
}

type GlobalOptions struct {
	Debug bool `kong:"help='Enable debug output',short='d',env='LPSGATEWAY_DEBUG'"`
	Quiet bool `kong:"help='Suppress non-essential output',short='q',env='LPSGATEWAY_QUIET'"`

	XAction      string `kong:"-"`
	XFullCommand string `kong:"-"`
}

func New(args []string) (*kong.Context, *CLIOptions, error) {
	cliOpts := newCLIOptions()

	maybeDisplayVersion(args)

	k, err := kong.New(
		cliOpts,
		kong.Name("lpsgateway"),
		kong.Description("Bridge legacy ISO-8583 style payment switches to asynchronous work queues"),
		kong.ShortUsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{
			Compact:             true,
			NoExpandSubcommands: true,
		}),
	)
	if err != nil {
		return nil, nil, errors.Wrap(err, "unable to create new kong instance")
	}

	kongCtx, err := k.Parse(args)
	if err != nil {
		return nil, nil, errors.Wrap(err, "unable to parse CLI options")
	}

	cliOpts.Global.XAction = strings.Fields(kongCtx.Command())[0]
	cliOpts.Global.XFullCommand = strings.Join(args, " ")

	return kongCtx, cliOpts, nil
}

func maybeDisplayVersion(args []string) {
	for _, f := range args {
		if f == "--version" {
			fmt.Println(VERSION)
			os.Exit(0)
		}
	}
}

// We have to do this in order to ensure that kong has valid destinations to
// write opts to.
func newCLIOptions() *CLIOptions {
	return &CLIOptions{
		Serve: ServeOptions{
			KafkaBrokers: make([]string, 0),
		},
	}
}
