package cli

import (
	"bufio"
	"context"
	"database/sql"
	"fmt"
	"io"
	"log"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/dmitrijs2005/safewalk/internal/client/client"
	"github.com/dmitrijs2005/safewalk/internal/client/config"
	"github.com/dmitrijs2005/safewalk/internal/client/services"
	"github.com/dmitrijs2005/safewalk/internal/filex"
)

type Mode string

const (
	ModeOffline Mode = "offline"
	ModeOnline  Mode = "online"
)

// deviceName labels sessions opened by this client.
const deviceName = "safewalk-cli"

type App struct {
	config  *config.Config
	db      *sql.DB
	session services.SessionService
	api     client.Client

	mu      sync.RWMutex
	ownerID string
	mode    Mode

	interactive bool
	in          *bufio.Reader
	out         io.Writer
}

func NewApp(c *config.Config) (*App, error) {
	ctx := context.Background()

	if err := filex.EnsureParentDir(c.StateFile); err != nil {
		return nil, err
	}

	db, err := client.InitDatabase(ctx, c.StateFile)
	if err != nil {
		return nil, fmt.Errorf("error initializing state file: %w", err)
	}

	apiClient, err := client.NewSafeWalkClientService(c.ServerEndpointAddr, c.RequestTimeout)
	if err != nil {
		_ = db.Close()
		return nil, err
	}

	return &App{
		config:      c,
		db:          db,
		session:     services.NewSessionService(apiClient, db),
		api:         apiClient,
		interactive: isTerminal(int(os.Stdin.Fd())),
		in:          bufio.NewReader(os.Stdin),
		out:         os.Stdout,
	}, nil
}

func (a *App) setMode(mode Mode) {
	a.mu.Lock()
	changed := a.mode != mode
	a.mode = mode
	a.mu.Unlock()

	if changed {
		log.Printf("Switched to %s mode\n", mode)
	}
}

func (a *App) setOwner(ownerID string) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.ownerID = ownerID
}

func (a *App) getStatus() string {
	a.mu.RLock()
	defer a.mu.RUnlock()

	s := ""
	if a.ownerID != "" {
		id := a.ownerID
		if len(id) > 8 {
			id = id[:8]
		}
		s = id + " "
	}
	s = strings.TrimSpace(s + string(a.mode))
	if s != "" {
		s = fmt.Sprintf("(%s)", s)
	}
	return s
}

func (a *App) Run(ctx context.Context) {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	defer func() {
		_ = a.session.Close(ctx)
		if a.db != nil {
			_ = a.db.Close()
		}
	}()

	if a.interactive {
		fmt.Fprintln(a.out, "Welcome to SafeWalk (type 'help' for commands)")
	}

	if sess, err := a.session.Ensure(ctx, deviceName); err != nil {
		fmt.Fprintf(a.out, "Could not open a session: %v (use 'reset' once the server is reachable)\n", err)
		a.setMode(ModeOffline)
	} else {
		a.setOwner(sess.OwnerID)
		a.setMode(ModeOnline)
	}

	go a.StartOnlineStatusWatcher(ctx, a.config.OnlineCheckInterval)

	prompt := a.getStatus
	if !a.interactive {
		prompt = nil
	}
	runREPL(ctx, a, prompt, a.in, a.out)
}

func (a *App) StartOnlineStatusWatcher(ctx context.Context, interval time.Duration) {
	if interval <= 0 {
		return
	}

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			if err := a.session.Ping(ctx); err != nil {
				a.setMode(ModeOffline)
			} else {
				a.setMode(ModeOnline)
			}

		case <-ctx.Done():
			return
		}
	}
}
