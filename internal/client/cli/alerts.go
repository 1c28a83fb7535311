package cli

import (
	"context"
	"fmt"
	"strings"
)

func (a *App) Alert(ctx context.Context, args []string) error {
	location := strings.Join(args, " ")

	if a.interactive {
		fmt.Fprintln(a.out, "Sending emergency alert...")
	}

	alert, err := a.api.TriggerAlert(ctx, location)
	if err != nil {
		return err
	}

	fmt.Fprintln(a.out, alert.Headline())
	for _, d := range alert.Deliveries {
		fmt.Fprintln(a.out, "  "+d.String())
	}
	return nil
}

func (a *App) notify(ctx context.Context, id int64, kind, message, location string) error {
	d, err := a.api.NotifyContact(ctx, id, kind, message, location)
	if err != nil {
		return err
	}
	fmt.Fprintln(a.out, d.String())
	return nil
}

func (a *App) Call(ctx context.Context, args []string) error {
	id, err := parseID(args, "call <id>")
	if err != nil {
		return err
	}
	return a.notify(ctx, id, "call", "", "")
}

func (a *App) Message(ctx context.Context, args []string) error {
	id, err := parseID(args, "message <id> [text]")
	if err != nil {
		return err
	}

	text := strings.Join(args[1:], " ")
	if text == "" {
		if text, err = GetMultiline(a.in, "Message", a.out); err != nil {
			return err
		}
	}
	return a.notify(ctx, id, "message", text, "")
}

func (a *App) Share(ctx context.Context, args []string) error {
	id, err := parseID(args, "share <id> [location]")
	if err != nil {
		return err
	}
	return a.notify(ctx, id, "location", "", strings.Join(args[1:], " "))
}

func (a *App) Ping(ctx context.Context, _ []string) error {
	if err := a.session.Ping(ctx); err != nil {
		a.setMode(ModeOffline)
		return err
	}
	a.setMode(ModeOnline)
	fmt.Fprintln(a.out, "Server is reachable")
	return nil
}

func (a *App) Reset(ctx context.Context, _ []string) error {
	answer, err := GetSimpleText(a.in, "This starts a new session; contacts, reports and settings of the current one become unreachable. Type 'yes' to continue", a.out)
	if err != nil {
		return err
	}
	if !strings.EqualFold(answer, "yes") {
		fmt.Fprintln(a.out, "Cancelled")
		return nil
	}

	sess, err := a.session.Reset(ctx, deviceName)
	if err != nil {
		return err
	}
	a.setOwner(sess.OwnerID)
	fmt.Fprintln(a.out, "New session started")
	return nil
}
