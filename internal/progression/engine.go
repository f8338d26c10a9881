package progression

import (
	"github.com/lawnchairsociety/sloth/internal/clock"
	"github.com/lawnchairsociety/sloth/internal/logbook"
	"github.com/lawnchairsociety/sloth/internal/logger"
	"github.com/lawnchairsociety/sloth/internal/profile"
)

// Store is the persistence the engine needs from the settings and log stores.
type Store interface {
	CommitSettings(s *profile.Settings) error
	CheckLog() (*logbook.History, error)
	LoadLastEntry() (*logbook.Entry, error)
	// ApplyDecay appends all entries and saves s.XP atomically.
	ApplyDecay(s *profile.Settings, entries []logbook.Entry) error
}

// Engine keeps Settings.XP consistent with the log.
type Engine struct {
	store Store
	clock clock.Clock
}

func NewEngine(store Store, c clock.Clock) *Engine {
	return &Engine{store: store, clock: c}
}

// Reconcile overwrites s.XP with the value derived from the log, committing
// only when it changed. An empty log forces XP to 0.
func (e *Engine) Reconcile(s *profile.Settings) (bool, error) {
	history, err := e.store.CheckLog()
	if err != nil {
		return false, &PersistenceError{Op: "read log", Err: err}
	}

	xp, ok := Reconcile(history)
	if !ok {
		xp = 0
	}
	if s.XP == xp {
		return false, nil
	}

	logger.Info("Reconciling XP from log", "stored_xp", s.XP, "log_xp", xp, "event", "xp_reconcile")
	s.XP = xp
	if err := e.store.CommitSettings(s); err != nil {
		return true, &PersistenceError{Op: "commit settings", Err: err}
	}
	return true, nil
}

// Deteriorate applies any decay owed since the last log entry.
// Returns nil when nothing was applied.
func (e *Engine) Deteriorate(s *profile.Settings) (*DecayPlan, error) {
	last, err := e.store.LoadLastEntry()
	if err != nil {
		return nil, &PersistenceError{Op: "load last entry", Err: err}
	}

	plan := PlanDecay(s.XP, last, e.clock.Today())
	if plan == nil {
		return nil, nil
	}

	s.XP = plan.FinalXP
	if err := e.store.ApplyDecay(s, plan.Entries); err != nil {
		s.XP = plan.PreviousXP
		return nil, &PersistenceError{Op: "apply deterioration", Err: err}
	}

	logger.Info("Applied deterioration",
		"periods", plan.Periods,
		"previous_xp", plan.PreviousXP,
		"xp", plan.FinalXP,
		"event", "xp_decay")
	return plan, nil
}
