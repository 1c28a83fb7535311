// Package cli provides the interactive SafeWalk terminal client.
//
// It wires configuration, the local state file, the gRPC client and an
// interactive REPL. Typical flow: restore or open a session, start a
// background connectivity watcher, then execute user commands.
//
// Key features:
//   - Emergency contacts: list, add, edit, remove
//   - Safety reports: list, submit, remove, weekly summary
//   - Settings: show and toggle feature flags
//   - Emergency alert to every contact; call, message or share location
//     with a single contact
//
// The REPL is started via App.Run(ctx), which blocks until the user exits.
package cli
