package cli

import (
	actx "go.hackfix.me/prefs/app/ctx"
	"go.hackfix.me/prefs/kv"
)

// The Rm command deletes a key.
type Rm struct {
	Key string `arg:"" help:"The key to delete."`

	Namespace string `default:"default" help:"The namespace the key exists in."`
}

// Run the rm command.
func (c *Rm) Run(appCtx *actx.Context) error {
	ns, err := kv.NewNamespace(c.Namespace, appCtx.Store)
	if err != nil {
		return err
	}

	return ns.Remove(appCtx.Ctx, c.Key)
}
