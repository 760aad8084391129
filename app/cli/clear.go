package cli

import (
	actx "go.hackfix.me/prefs/app/ctx"
	"go.hackfix.me/prefs/kv"
)

// The Clear command deletes all keys in a namespace.
type Clear struct {
	Namespace string `default:"default" help:"The namespace to clear."`
	All       bool   `help:"Delete all keys in all namespaces."`
}

// Run the clear command.
func (c *Clear) Run(appCtx *actx.Context) error {
	if c.All {
		return kv.ClearAll(appCtx.Ctx, appCtx.Store)
	}

	ns, err := kv.NewNamespace(c.Namespace, appCtx.Store)
	if err != nil {
		return err
	}

	return ns.Clear(appCtx.Ctx)
}
