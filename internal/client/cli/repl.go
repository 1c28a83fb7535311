package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/dmitrijs2005/safewalk/internal/client/client"
)

// execIface defines the command surface the REPL dispatches to. App
// satisfies it; tests provide a lightweight stub.
type execIface interface {
	Contacts(ctx context.Context, args []string) error
	AddContact(ctx context.Context, args []string) error
	EditContact(ctx context.Context, args []string) error
	RemoveContact(ctx context.Context, args []string) error
	Reports(ctx context.Context, args []string) error
	SubmitReport(ctx context.Context, args []string) error
	RemoveReport(ctx context.Context, args []string) error
	Summary(ctx context.Context, args []string) error
	Settings(ctx context.Context, args []string) error
	Set(ctx context.Context, args []string) error
	Alert(ctx context.Context, args []string) error
	Call(ctx context.Context, args []string) error
	Message(ctx context.Context, args []string) error
	Share(ctx context.Context, args []string) error
	Ping(ctx context.Context, args []string) error
	Reset(ctx context.Context, args []string) error
}

const helpText = `Available commands:
  contacts                    list emergency contacts
  addcontact                  add a contact
  editcontact <id>            edit a contact
  rmcontact <id>              remove a contact
  reports                     list safety reports
  report                      submit a safety report
  rmreport <id>               remove a report
  summary [days]              report counts by severity (default 7 days)
  settings                    show settings
  set <flag> <on|off>         change a setting
  alert [location]            send an emergency alert to every contact
  call <id>                   call a contact
  message <id> [text]         message a contact
  share <id> [location]       share location with a contact
  ping                        check the server
  reset                       drop this session and start a new one
  exit | quit                 leave the program`

// runREPL reads commands from in and dispatches them to a until EOF or
// "exit". A nil prompt disables the prompt line. Command errors are printed
// and the loop continues.
func runREPL(ctx context.Context, a execIface, prompt func() string, in *bufio.Reader, out io.Writer) {
	for {
		if prompt != nil {
			fmt.Fprintf(out, "safewalk %s> ", prompt())
		}
		line, err := readLine(in)
		if err != nil {
			return
		}
		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}

		cmd, args := parts[0], parts[1:]

		var handler func(context.Context, []string) error

		switch cmd {
		case "help":
			fmt.Fprintln(out, helpText)
			continue
		case "exit", "quit":
			fmt.Fprintln(out, "Bye!")
			return
		case "contacts":
			handler = a.Contacts
		case "addcontact":
			handler = a.AddContact
		case "editcontact":
			handler = a.EditContact
		case "rmcontact":
			handler = a.RemoveContact
		case "reports":
			handler = a.Reports
		case "report":
			handler = a.SubmitReport
		case "rmreport":
			handler = a.RemoveReport
		case "summary":
			handler = a.Summary
		case "settings":
			handler = a.Settings
		case "set":
			handler = a.Set
		case "alert", "sos":
			handler = a.Alert
		case "call":
			handler = a.Call
		case "message":
			handler = a.Message
		case "share":
			handler = a.Share
		case "ping":
			handler = a.Ping
		case "reset":
			handler = a.Reset
		default:
			fmt.Fprintln(out, "Unknown command:", cmd)
			continue
		}

		if err := handler(ctx, args); err != nil {
			printError(out, err)
		}
	}
}

func printError(out io.Writer, err error) {
	switch {
	case errors.Is(err, errUsage):
		fmt.Fprintf(out, "Usage: %s\n", strings.TrimPrefix(err.Error(), errUsage.Error()+": "))
	case errors.Is(err, client.ErrUnauthorized):
		fmt.Fprintln(out, "Error: session is not valid, run 'reset' to start a new one")
	case errors.Is(err, client.ErrUnavailable):
		fmt.Fprintln(out, "Error: server unavailable")
	default:
		fmt.Fprintf(out, "Error: %v\n", err)
	}
}
