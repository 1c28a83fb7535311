package cli

import (
	"context"
	"fmt"
	"sort"
)

func (a *App) printFlags(flags map[string]bool) {
	names := make([]string, 0, len(flags))
	for name := range flags {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		state := "off"
		if flags[name] {
			state = "on"
		}
		fmt.Fprintf(a.out, "%-16s %s\n", name, state)
	}
}

func (a *App) Settings(ctx context.Context, _ []string) error {
	flags, err := a.api.GetSettings(ctx)
	if err != nil {
		return err
	}
	a.printFlags(flags)
	return nil
}

func (a *App) Set(ctx context.Context, args []string) error {
	if len(args) < 2 {
		return fmt.Errorf("%w: set <flag> <on|off>", errUsage)
	}
	value, err := parseSwitch(args[1])
	if err != nil {
		return err
	}

	flags, err := a.api.SetSetting(ctx, args[0], value)
	if err != nil {
		return err
	}
	a.printFlags(flags)
	return nil
}
