package cmd

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/papapumpkin/puzzplan/internal/catalog"
	"github.com/papapumpkin/puzzplan/internal/config"
	"github.com/papapumpkin/puzzplan/internal/history"
	"github.com/papapumpkin/puzzplan/internal/plan"
	"github.com/papapumpkin/puzzplan/internal/telemetry"
	"github.com/papapumpkin/puzzplan/internal/ui"
)

// session is the state shared by every command: configuration, the loaded
// catalog and the network replayed from it, printers, and the optional
// telemetry emitter.
type session struct {
	id   string
	cfg  config.Config
	file *catalog.File
	net  *plan.Network
	out  *ui.Printer // results, on stdout
	log  *ui.Printer // progress and errors, on stderr
	tel  *telemetry.Emitter
}

// openSession loads config and the catalog and replays it.
func openSession(cmd *cobra.Command) (*session, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	s := &session{
		id:  uuid.NewString(),
		cfg: cfg,
		out: ui.NewWithWriter(cmd.OutOrStdout(), cfg.Color),
		log: ui.NewWithWriter(cmd.ErrOrStderr(), cfg.Color),
	}

	if cfg.TelemetryPath != "" {
		s.tel, err = telemetry.NewEmitter(cfg.TelemetryPath, s.id)
		if err != nil {
			return nil, err
		}
	}

	if err := s.load(); err != nil {
		s.close()
		return nil, err
	}
	s.verbose(fmt.Sprintf("loaded %s (session %s)", cfg.Catalog, s.id))
	_ = s.tel.Record(telemetry.KindCatalogLoaded, "", map[string]int{
		"abilities": len(s.net.Abilities()),
		"obstacles": len(s.net.Obstacles()),
		"placed":    len(s.net.Branches()),
	})
	return s, nil
}

// load reads and replays the catalog.
func (s *session) load() error {
	f, err := catalog.Load(s.cfg.Catalog)
	if err != nil {
		return err
	}
	n, err := catalog.Build(f)
	if err != nil {
		return err
	}
	s.file, s.net = f, n
	return nil
}

// commit validates an edited catalog by replaying it, then saves it and
// makes it current.
func (s *session) commit(edited *catalog.File) error {
	n, err := catalog.Build(edited)
	if err != nil {
		return err
	}
	if err := catalog.Save(s.cfg.Catalog, edited); err != nil {
		return err
	}
	s.file, s.net = edited, n
	return nil
}

// recordPlacement appends a placement to the history store when one is
// configured.
func (s *session) recordPlacement(ctx context.Context, pred, node string, edges []string) error {
	_ = s.tel.Record(telemetry.KindPlacement, node, map[string]any{
		"after": pred,
		"edges": edges,
	})
	if s.cfg.HistoryDB == "" {
		return nil
	}
	store, err := history.Open(ctx, s.cfg.HistoryDB)
	if err != nil {
		return err
	}
	defer store.Close()
	_, err = store.Record(ctx, history.Entry{
		Session:     s.id,
		Predecessor: pred,
		Node:        node,
		Edges:       edges,
	})
	return err
}

func (s *session) verbose(msg string) {
	if s.cfg.Verbose {
		s.log.Info(msg)
	}
}

func (s *session) close() {
	s.tel.Close()
}
