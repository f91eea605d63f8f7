package bootstrap

import (
	"context"

	"github.com/sashavipro/Swipe/internal/config"
	"github.com/sashavipro/Swipe/internal/handoff"
	"github.com/sashavipro/Swipe/internal/migrate"
	"github.com/sashavipro/Swipe/internal/preflight"
	"github.com/sashavipro/Swipe/pkg/logging"
)

// Sequencer orders the container's startup: optionally migrate the
// schema, then become the service. It is a gate, not an orchestrator:
// no retries, no rollback, no supervision after handoff.
type Sequencer struct {
	cfg config.Config
	log *logging.Logger

	// Seams for tests. Defaults run the real migration tool and the real
	// process-image replacement.
	runMigration func(ctx context.Context) error
	execCommand  func(argv []string) error
	hostReport   func() preflight.Report
}

// New creates a sequencer with the real migration and handoff wiring.
func New(cfg config.Config, log *logging.Logger) *Sequencer {
	runner := migrate.NewRunner(log)
	return &Sequencer{
		cfg:          cfg,
		log:          log,
		runMigration: runner.Run,
		execCommand:  handoff.Exec,
		hostReport:   preflight.Collect,
	}
}

// Run executes the bootstrap sequence. On the success path it does not
// return: the process image is replaced by argv. Every returned error is
// fatal and carries an exit code via ExitCode.
func (s *Sequencer) Run(ctx context.Context, argv []string) error {
	if s.cfg.RunMigrations {
		s.log.Info("Migrations enabled, bringing schema up to date")
		if err := s.runMigration(ctx); err != nil {
			return &MigrationError{Err: err}
		}
	} else {
		s.log.Info("Migrations disabled, skipping schema migration")
	}

	if len(argv) == 0 {
		return ErrEmptyCommand
	}

	report := s.hostReport()
	s.log.Debug("Host preflight", report.Fields())

	s.log.Info("Handing off to service", map[string]interface{}{
		"command": argv,
		"port":    config.ServicePort,
	})

	// No code after a successful exec ever runs: the service owns the
	// process from here.
	if err := s.execCommand(argv); err != nil {
		return &StartError{Program: argv[0], Err: err}
	}
	return nil
}
