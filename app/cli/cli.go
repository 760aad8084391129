package cli

import (
	"github.com/alecthomas/kong"

	actx "go.hackfix.me/prefs/app/ctx"
)

// CLI is the command line interface of prefs.
type CLI struct {
	kctx *kong.Context

	Get   Get   `kong:"cmd,help='Get the value of a key.'"`
	Set   Set   `kong:"cmd,help='Set the value of a key.'"`
	Rm    Rm    `kong:"cmd,help='Delete a key.'"`
	Ls    Ls    `kong:"cmd,help='List keys.'"`
	Clear Clear `kong:"cmd,help='Delete all keys in a namespace, or in the whole store.'"`
	Serve Serve `kong:"cmd,help='Start the web server.'"`
}

// Setup the command-line interface.
func (c *CLI) Setup(args []string, exit func(int)) error {
	parser, err := kong.New(c,
		kong.Name("prefs"),
		kong.UsageOnError(),
		kong.DefaultEnvars("PREFS"),
		kong.Exit(exit),
		kong.ConfigureHelp(kong.HelpOptions{
			Compact: true,
			Summary: true,
		}),
	)
	if err != nil {
		return err
	}

	c.kctx, err = parser.Parse(args)

	return err
}

// Run executes the selected command.
func (c *CLI) Run(appCtx *actx.Context) error {
	return c.kctx.Run(appCtx)
}
