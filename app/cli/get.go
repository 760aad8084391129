package cli

import (
	"encoding/json"
	"fmt"

	actx "go.hackfix.me/prefs/app/ctx"
	"go.hackfix.me/prefs/kv"
)

// The Get command retrieves and prints the value of a key.
type Get struct {
	Key string `arg:"" help:"The unique key associated with the value."`

	Namespace string `default:"default" help:"The namespace to retrieve the value from."`
	Default   string `help:"JSON value to print if the key doesn't exist."`
}

// Run the get command.
func (c *Get) Run(appCtx *actx.Context) error {
	ns, err := kv.NewNamespace(c.Namespace, appCtx.Store)
	if err != nil {
		return err
	}

	var value any
	if c.Default != "" {
		var def any
		if err := json.Unmarshal([]byte(c.Default), &def); err != nil {
			def = c.Default
		}
		value, err = ns.GetOrDefault(appCtx.Ctx, c.Key, def)
	} else {
		value, err = ns.Get(appCtx.Ctx, c.Key)
	}
	if err != nil {
		return err
	}

	out, err := json.Marshal(value)
	if err != nil {
		return err
	}
	fmt.Fprintf(appCtx.Stdout, "%s\n", out)

	return nil
}
