package main

import (
	"encoding/json"
	"errors"
	"io"
	"time"

	"github.com/katalvlaran/muster/cluster"
	"github.com/katalvlaran/muster/combat"
	"github.com/katalvlaran/muster/dataset"
	"github.com/katalvlaran/muster/solver"
)

// Error codes carried in the envelope. Prefixes partition the space:
// VAL_* input validation, IO_* file handling, SOL_* solver outcomes.
const (
	codeInvalidConfig      = "VAL_001"
	codeMissingRequired    = "VAL_002"
	codeInvalidValue       = "VAL_003"
	codeFileNotFound       = "IO_001"
	codeInvalidEncoding    = "IO_002"
	codeNoSolution         = "SOL_001"
	codeInvalidConstraints = "SOL_003"
)

// metaInfo stamps every envelope.
type metaInfo struct {
	Timestamp string `json:"timestamp"`
	RunID     string `json:"run_id"`
}

// errorBody is the error half of the envelope.
type errorBody struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// envelope is the {data, error, meta} JSON contract every command
// emits. Exactly one of Data and Error is set.
type envelope struct {
	Data  any        `json:"data"`
	Error *errorBody `json:"error"`
	Meta  metaInfo   `json:"meta"`
}

func newMeta(runID string) metaInfo {
	return metaInfo{Timestamp: time.Now().UTC().Format(time.RFC3339), RunID: runID}
}

func successEnvelope(runID string, data any) envelope {
	return envelope{Data: data, Meta: newMeta(runID)}
}

func failureEnvelope(runID string, err error) envelope {
	return envelope{
		Error: &errorBody{Code: classify(err), Message: err.Error()},
		Meta:  newMeta(runID),
	}
}

// writeEnvelope renders env as indented JSON to w.
func writeEnvelope(w io.Writer, env envelope) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")

	return enc.Encode(env)
}

// classify maps the library error taxonomy onto envelope codes.
func classify(err error) string {
	switch {
	case errors.Is(err, dataset.ErrRead):
		return codeFileNotFound
	case errors.Is(err, dataset.ErrDecode):
		return codeInvalidEncoding
	case errors.Is(err, dataset.ErrSchema),
		errors.Is(err, dataset.ErrUnknownID),
		errors.Is(err, dataset.ErrIllegalOverride),
		errors.Is(err, combat.ErrUnknownClass):
		return codeInvalidValue
	case errors.Is(err, combat.ErrInvalidWeight),
		errors.Is(err, combat.ErrUnknownPreset),
		errors.Is(err, solver.ErrInvalidOptions):
		return codeInvalidConfig
	case errors.Is(err, cluster.ErrConfigurationInfeasible),
		errors.Is(err, solver.ErrUnknownPairEntity),
		errors.Is(err, solver.ErrPairNotAffinity):
		return codeInvalidConstraints
	case errors.Is(err, cluster.ErrCapacityInfeasible),
		errors.Is(err, solver.ErrBelowMinCombat),
		errors.Is(err, solver.ErrSampleExhausted):
		return codeNoSolution
	default:
		return codeInvalidValue
	}
}
