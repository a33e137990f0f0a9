package cli

import (
	"io"
	"log"

	"github.com/samdwyer/actiontracker/data"
	"github.com/samdwyer/actiontracker/internal/combat"
	"github.com/samdwyer/actiontracker/internal/condition"
	"github.com/samdwyer/actiontracker/internal/config"
	"github.com/samdwyer/actiontracker/internal/entity"
	"github.com/samdwyer/actiontracker/internal/game"
	"github.com/samdwyer/actiontracker/internal/gamedata"
	"github.com/samdwyer/actiontracker/internal/macro"
	"github.com/samdwyer/actiontracker/internal/notify"
	"github.com/samdwyer/actiontracker/internal/pips"
	"github.com/samdwyer/actiontracker/internal/rules"
)

// App is the wired object graph for one encounter.
type App struct {
	Catalog     *gamedata.ConditionRegistry
	Roster      *entity.Roster
	Ledger      *condition.Ledger
	Tracker     *pips.Tracker
	Bonus       *rules.BonusReactionRule
	Coordinator *combat.Coordinator
	Encounter   *game.Encounter
	Runner      *macro.Runner
}

// NewApp builds every component for def. Notifications go to sink in addition
// to the logger.
func NewApp(cfg config.Config, def *data.EncounterDef, logger *log.Logger, sink notify.Sink) (*App, error) {
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}
	if sink == nil {
		sink = notify.Discard
	}

	catalog, err := gamedata.LoadConditionRegistry()
	if err != nil {
		return nil, err
	}

	roster := entity.NewRoster()
	ledger := condition.NewLedger(catalog,
		condition.WithActors(roster),
		condition.WithSink(notify.Fanout{notify.NewLogSink(logger), sink}),
	)
	tracker := pips.New(
		pips.WithStrict(cfg.StrictOrdering),
		pips.WithLogger(logger),
	)

	registry, err := rules.NewRegistry()
	if err != nil {
		return nil, err
	}
	bonus, err := rules.NewBonusReactionRule(registry, cfg.BonusReactionRule, roster)
	if err != nil {
		return nil, err
	}

	coord := combat.NewCoordinator(ledger, tracker,
		combat.WithFeatures(bonus),
		combat.WithGateCapacity(cfg.DedupHistory),
		combat.WithLogger(logger),
	)

	return &App{
		Catalog:     catalog,
		Roster:      roster,
		Ledger:      ledger,
		Tracker:     tracker,
		Bonus:       bonus,
		Coordinator: coord,
		Encounter:   game.NewEncounter(def, roster, ledger, coord),
		Runner:      macro.NewRunner(macro.NewAPI(ledger, tracker)),
	}, nil
}

// Deps returns the components the interactive tracker needs.
func (a *App) Deps() game.Deps {
	return game.Deps{
		Encounter:  a.Encounter,
		Roster:     a.Roster,
		Conditions: a.Ledger,
		Tracker:    a.Tracker,
		Catalog:    a.Catalog,
	}
}

// resolveEncounter loads a bundled encounter by name, or a YAML file by path.
func resolveEncounter(name string) (*data.EncounterDef, error) {
	for _, bundled := range data.Encounters() {
		if bundled == name {
			return data.LoadEncounter(name)
		}
	}
	return data.LoadEncounterFile(name)
}
