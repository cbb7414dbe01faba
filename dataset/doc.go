// Package dataset turns files on disk into solver inputs.
//
// What:
//   - LoadDataset reads the dataset JSON: entities, bond lists, class
//     profiles, class lines and per-entity class info.
//   - LoadRosterCSV / LoadPairsCSV / LoadUnits / ParseUnits /
//     LoadScoring / LoadClassOverridesCSV read the per-run inputs.
//   - BuildProblem cross-validates roster and constraint files against
//     the dataset and assembles a solver.Problem.
//   - BuildCombatContext resolves effective classes (defaults plus
//     legal overrides) into a ready combat.Context.
//
// Why a separate package: file formats, schema validation and
// cross-references are surface concerns. The solver and scorer stay
// pure — they accept ids and edges and never touch the filesystem.
//
// Validation is two-layered: struct schemas are enforced with
// go-playground/validator tags, cross-file references (roster ids,
// override classes, class-line membership) by explicit checks that
// name every offender, sorted.
//
// Error Conditions: every loader wraps failures in ErrRead, ErrDecode
// or ErrSchema; cross-reference failures use ErrUnknownID and
// ErrIllegalOverride. All are errors.Is-matchable.
package dataset
