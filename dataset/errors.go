package dataset

import "errors"

var (
	// ErrRead indicates an input file could not be read.
	ErrRead = errors.New("dataset: input file could not be read")
	// ErrDecode indicates an input file is not valid JSON/CSV.
	ErrDecode = errors.New("dataset: input file could not be decoded")
	// ErrSchema indicates decoded input violates the schema: missing
	// required fields, duplicate ids, self-bonds, non-positive sizes.
	ErrSchema = errors.New("dataset: input failed schema validation")
	// ErrUnknownID indicates a cross-file reference to an id the dataset
	// does not define.
	ErrUnknownID = errors.New("dataset: input references unknown ids")
	// ErrIllegalOverride indicates a class override outside the entity's
	// class line.
	ErrIllegalOverride = errors.New("dataset: class override is not legal for entity")
)
