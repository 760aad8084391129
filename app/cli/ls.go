package cli

import (
	"fmt"
	"slices"
	"strings"

	actx "go.hackfix.me/prefs/app/ctx"
	"go.hackfix.me/prefs/kv"
)

// The Ls command prints keys.
type Ls struct {
	Prefix string `arg:"" optional:"" help:"An optional key prefix."`

	Namespace string `default:"default" help:"The namespace to list keys from."`
	All       bool   `help:"List keys in all namespaces."`
}

// Run the ls command.
func (c *Ls) Run(appCtx *actx.Context) error {
	if c.All {
		return c.listAll(appCtx)
	}

	ns, err := kv.NewNamespace(c.Namespace, appCtx.Store)
	if err != nil {
		return err
	}

	keys, err := ns.Keys(appCtx.Ctx)
	if err != nil {
		return err
	}
	slices.Sort(keys)

	for _, key := range keys {
		if !strings.HasPrefix(key, c.Prefix) {
			continue
		}
		fmt.Fprintf(appCtx.Stdout, "%s\n", key)
	}

	return nil
}

// listAll prints the keys of all namespaces in a table. Physical keys
// without a namespace prefix are listed under an empty namespace.
func (c *Ls) listAll(appCtx *actx.Context) error {
	physKeys, err := appCtx.Store.Keys(appCtx.Ctx, "")
	if err != nil {
		return err
	}
	if len(physKeys) == 0 {
		return nil
	}
	slices.Sort(physKeys)

	data := make([][]string, 0, len(physKeys))
	prevNS := ""
	for _, pk := range physKeys {
		ns, key, found := strings.Cut(pk, kv.Separator)
		if !found {
			ns, key = "", pk
		}
		if c.Prefix != "" && !strings.HasPrefix(key, c.Prefix) {
			continue
		}

		row := []string{ns, key}
		if len(data) > 0 && ns == prevNS {
			row[0] = ""
		}
		prevNS = ns
		data = append(data, row)
	}

	header := []string{"Namespace", "Key"}
	newTable(header, data, appCtx.Stdout).Render()

	return nil
}
