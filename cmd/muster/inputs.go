package main

import (
	"fmt"

	"github.com/katalvlaran/muster/combat"
	"github.com/katalvlaran/muster/core"
	"github.com/katalvlaran/muster/dataset"
)

// loadProblemInputs resolves the file flags shared by solve and
// benchmark into a validated input bundle. Empty flag values fall back
// to the conventional locations when those files exist; a roster flag
// left empty with no conventional file selects the whole dataset.
func loadProblemInputs(datasetPath, rosterPath, unitsArg, unitsFile, whitelistPath, blacklistPath string) (*dataset.Inputs, error) {
	if datasetPath == "" {
		datasetPath = defaultDataset
	}
	ds, err := dataset.LoadDataset(datasetPath)
	if err != nil {
		return nil, err
	}

	var roster []string
	if rosterPath == "" && fileExists(defaultRoster) {
		rosterPath = defaultRoster
	}
	if rosterPath != "" {
		if roster, err = dataset.LoadRosterCSV(rosterPath); err != nil {
			return nil, err
		}
	}

	var caps core.CapacitySpec
	switch {
	case unitsArg != "" && unitsFile != "":
		return nil, fmt.Errorf("%w: provide either -units or -units-file, not both", dataset.ErrSchema)
	case unitsFile != "":
		caps, err = dataset.LoadUnits(unitsFile)
	case unitsArg != "":
		caps, err = dataset.ParseUnits(unitsArg)
	default:
		return nil, fmt.Errorf("%w: provide -units or -units-file", dataset.ErrSchema)
	}
	if err != nil {
		return nil, err
	}

	mustPair, err := loadPairsFlag(whitelistPath, defaultWhitelist)
	if err != nil {
		return nil, err
	}
	mustNot, err := loadPairsFlag(blacklistPath, defaultBlacklist)
	if err != nil {
		return nil, err
	}

	return dataset.BuildProblem(ds, roster, caps, mustPair, mustNot)
}

// loadPairsFlag loads a pairs CSV named by flag value, falling back to
// the conventional path when it exists, and to no pairs otherwise.
func loadPairsFlag(path, fallback string) ([]core.Pair, error) {
	if path == "" {
		if !fileExists(fallback) {
			return nil, nil
		}
		path = fallback
	}

	return dataset.LoadPairsCSV(path)
}

// loadCombatContext assembles the optional scorer: default config,
// preset overlay, scoring file overlay, class overrides. Returns
// (nil, nil) when the dataset carries no classes.
func loadCombatContext(ds *dataset.Dataset, scoringPath, classesPath, preset string) (*combat.Context, error) {
	cfg := combat.DefaultConfig()

	if preset != "" {
		var err error
		if cfg, err = combat.ApplyPreset(cfg, preset); err != nil {
			return nil, err
		}
	}

	if scoringPath == "" && fileExists(defaultScoring) {
		scoringPath = defaultScoring
	}
	if scoringPath != "" {
		scoring, err := dataset.LoadScoring(scoringPath)
		if err != nil {
			return nil, err
		}
		cfg = scoring.ApplyTo(cfg)
	}

	overrides := map[string]string{}
	if classesPath == "" && fileExists(defaultClasses) {
		classesPath = defaultClasses
	}
	if classesPath != "" {
		var err error
		if overrides, err = dataset.LoadClassOverridesCSV(classesPath); err != nil {
			return nil, err
		}
	}

	return dataset.BuildCombatContext(ds, cfg, overrides)
}
