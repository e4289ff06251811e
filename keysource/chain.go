package keysource

import (
	"context"
	"errors"
	"fmt"
	"log"

	"github.com/icecave/appstatus/registry"
	"go.uber.org/multierr"
)

// Chain is a source that consults several sources in order. The first source
// that yields at least one entry wins.
type Chain struct {
	Sources []Source
	Logger  *log.Logger
}

// Name returns a description of the source.
func (c *Chain) Name() string {
	return "chain"
}

// Load returns the entries of the first source that defines any.
//
// Sources that fail are skipped. If no source yields any entries the errors
// of every failed source are returned together.
func (c *Chain) Load(ctx context.Context) ([]registry.Entry, error) {
	var err error

	for _, source := range c.Sources {
		entries, e := source.Load(ctx)
		if e != nil {
			e = fmt.Errorf("unable to load monitored keys from %s: %w", source.Name(), e)
			c.logf("%s", e)
			err = multierr.Append(err, e)
			continue
		}

		if len(entries) != 0 {
			c.logf("Loaded %d monitored key(s) from %s", len(entries), source.Name())
			return entries, nil
		}
	}

	if err == nil {
		err = errors.New("no source defines any monitored keys")
	}

	return nil, err
}

func (c *Chain) logf(format string, v ...interface{}) {
	if c.Logger != nil {
		c.Logger.Printf(format, v...)
	}
}

// Load builds a registry configuration from the first of sources that
// defines any keys.
func Load(
	ctx context.Context,
	logger *log.Logger,
	sources ...Source,
) (*registry.Config, error) {
	chain := &Chain{
		Sources: sources,
		Logger:  logger,
	}

	entries, err := chain.Load(ctx)
	if err != nil {
		return nil, err
	}

	return registry.NewConfig(entries...)
}
