package cmd

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/papapumpkin/puzzplan/internal/catalog"
	"github.com/papapumpkin/puzzplan/internal/telemetry"
)

var watchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Re-analyze the catalog every time it is saved",
	Args:  cobra.NoArgs,
	RunE:  runWatch,
}

func init() {
	rootCmd.AddCommand(watchCmd)
}

func runWatch(cmd *cobra.Command, _ []string) error {
	s, err := openSession(cmd)
	if err != nil {
		return err
	}
	defer s.close()

	w, err := catalog.NewWatcher(s.cfg.Catalog, time.Duration(s.cfg.WatchDebounceMS)*time.Millisecond)
	if err != nil {
		return err
	}
	if err := w.Start(); err != nil {
		return err
	}
	defer w.Stop()

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	s.log.Info("watching " + w.Path + " (ctrl-c to stop)")
	s.analyze()
	return watchLoop(ctx, s, w.Changes)
}

// watchLoop reloads and re-analyzes the catalog on every change until ctx
// is done or changes is closed. A catalog that fails to replay is reported
// and the previous network stays current.
func watchLoop(ctx context.Context, s *session, changes <-chan string) error {
	for {
		select {
		case <-ctx.Done():
			return nil
		case path, ok := <-changes:
			if !ok {
				return nil
			}
			if err := s.load(); err != nil {
				s.out.Invalid(path, err)
				continue
			}
			_ = s.tel.Record(telemetry.KindCatalogReloaded, "", map[string]int{"placed": len(s.net.Branches())})
			s.analyze()
		}
	}
}

// analyze prints a full report for the current network.
func (s *session) analyze() {
	r, err := s.net.Analyze()
	if err != nil {
		s.log.Error(err.Error())
		return
	}
	s.out.Report(s.net, r)
}
