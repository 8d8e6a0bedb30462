package main

import (
	"context"
	"flag"
	"strings"

	log "github.com/sirupsen/logrus"

	"pulsehire/internal/config"
	"pulsehire/internal/linkage"
	"pulsehire/internal/storage"
)

// Re-applies the blocked-county do-not-call rule across the whole
// candidate store. Useful after editing the blocked list outside the API
// or after bulk-loading candidates.
func main() {
	var dryRun bool
	flag.BoolVar(&dryRun, "dry-run", true, "If true, do not persist flags; just print who would be flagged")
	flag.Parse()

	cfg := config.Load()

	log.WithField("path", cfg.DBPath).Info("opening database")
	db, err := storage.NewDB(cfg.DBPath)
	if err != nil {
		log.WithError(err).Fatal("db open")
	}
	defer db.Close()

	ctx := context.Background()

	if !dryRun {
		flagged, err := linkage.NewEngine(db).ApplyBlockedCounties(ctx)
		if err != nil {
			log.WithError(err).Fatal("apply blocked counties")
		}
		log.WithField("flagged", flagged).Info("done")
		return
	}

	blocked, err := db.ListBlockedCounties(ctx)
	if err != nil {
		log.WithError(err).Fatal("list blocked counties")
	}
	candidates, err := db.ListCandidates(ctx, storage.CandidateFilter{})
	if err != nil {
		log.WithError(err).Fatal("list candidates")
	}

	would := 0
	for _, c := range candidates {
		if c.DNC || c.DNCOverride {
			continue
		}
		if !blocked[strings.ToLower(linkage.Normalize(c.County))] {
			continue
		}
		would++
		log.WithFields(log.Fields{
			"id": c.ID, "name": c.Name, "county": c.County,
		}).Info("would flag")
	}
	log.WithField("count", would).Info("dry run complete; rerun with -dry-run=false to persist")
}
