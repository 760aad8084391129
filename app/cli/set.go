package cli

import (
	"encoding/json"

	actx "go.hackfix.me/prefs/app/ctx"
	"go.hackfix.me/prefs/kv"
)

// The Set command stores the value of a key.
type Set struct {
	Key   string `arg:"" help:"The unique key that identifies the value."`
	Value string `arg:"" help:"The value, as JSON. Invalid JSON is stored as a plain string."`

	Namespace string `default:"default" help:"The namespace to store the value in."`
}

// Run the set command.
func (c *Set) Run(appCtx *actx.Context) error {
	ns, err := kv.NewNamespace(c.Namespace, appCtx.Store)
	if err != nil {
		return err
	}

	var value any
	if err := json.Unmarshal([]byte(c.Value), &value); err != nil {
		value = c.Value
	}

	return ns.Set(appCtx.Ctx, c.Key, value)
}
