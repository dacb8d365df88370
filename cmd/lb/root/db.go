package root

import (
	"context"
	"fmt"
	"strings"

	"github.com/sirupsen/logrus"

	"lazybear/internal/config"
	"lazybear/internal/store"
)

func newLogger() *logrus.Logger {
	log := logrus.New()
	log.SetFormatter(&logrus.TextFormatter{DisableTimestamp: true})
	return log
}

func openStore(ctx context.Context) (*store.Store, *config.Config, func(), error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, nil, nil, fmt.Errorf("load config: %w", err)
	}

	path := cfg.DBPath
	if path == "" {
		path, err = store.DefaultDBPath()
		if err != nil {
			return nil, nil, nil, err
		}
	}

	st, err := store.Open(ctx, path, newLogger())
	if err != nil {
		return nil, nil, nil, err
	}
	cleanup := func() {
		_ = st.Close()
	}
	return st, cfg, cleanup, nil
}

func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}

// resolveID matches arg against full ids first, then as a unique
// prefix, so users can paste the short form the listings print.
func resolveID[T any](items []T, idOf func(T) string, arg string) (string, error) {
	var match string
	for _, it := range items {
		id := idOf(it)
		if id == arg {
			return id, nil
		}
		if strings.HasPrefix(id, arg) {
			if match != "" {
				return "", fmt.Errorf("ambiguous id %q", arg)
			}
			match = id
		}
	}
	if match == "" {
		return "", fmt.Errorf("no entry with id %q", arg)
	}
	return match, nil
}
