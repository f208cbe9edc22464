package console

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"
)

// Run plays session until it returns. Each SIGINT interrupts the prompt
// con is waiting on; SIGTERM cancels the context handed to session.
func Run(ctx context.Context, log logrus.FieldLogger, con *Console, session func(context.Context) error) error {
	sigCtx, stop := signal.NotifyContext(ctx, syscall.SIGTERM)
	defer stop()

	interrupts := make(chan os.Signal, 1)
	signal.Notify(interrupts, os.Interrupt)
	defer signal.Stop(interrupts)

	defer con.Close()

	done := make(chan struct{})
	g, gCtx := errgroup.WithContext(sigCtx)
	g.Go(func() error {
		defer close(done)
		return session(gCtx)
	})
	g.Go(func() error {
		for {
			select {
			case <-done:
				if sigCtx.Err() != nil {
					log.Debug("terminated, shutting down")
				}
				return nil
			case <-interrupts:
				log.Debug("interrupt received")
				con.Interrupt()
			}
		}
	})

	return g.Wait()
}
