package dataset

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/katalvlaran/muster/core"
)

// validate is shared by every loader; tag validation is stateless.
var validate = validator.New(validator.WithRequiredStructEnabled())

// LoadDataset reads, decodes and schema-checks the dataset JSON.
//
// Schema checks beyond struct tags: entity ids are normalized and must
// be unique; bond entries must not list their own id as a partner.
//
// Error Conditions: ErrRead, ErrDecode, ErrSchema.
func LoadDataset(path string) (*Dataset, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrRead, path, err)
	}

	var ds Dataset
	if err = json.Unmarshal(raw, &ds); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrDecode, path, err)
	}
	if err = validate.Struct(&ds); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrSchema, path, err)
	}

	seen := make(map[string]struct{}, len(ds.Entities))
	for i := range ds.Entities {
		id := core.NormalizeID(ds.Entities[i].ID)
		if id == "" {
			return nil, fmt.Errorf("%w: entity %d has a blank id", ErrSchema, i)
		}
		if _, dup := seen[id]; dup {
			return nil, fmt.Errorf("%w: duplicate entity id %q", ErrSchema, id)
		}
		seen[id] = struct{}{}
		ds.Entities[i].ID = id
	}

	for i := range ds.Bonds {
		entry := &ds.Bonds[i]
		entry.ID = core.NormalizeID(entry.ID)
		cleaned := entry.Pairs[:0]
		dedupe := make(map[string]struct{}, len(entry.Pairs))
		for _, partner := range entry.Pairs {
			p := core.NormalizeID(partner)
			if p == "" {
				continue
			}
			if p == entry.ID {
				return nil, fmt.Errorf("%w: bond entry %q lists itself", ErrSchema, entry.ID)
			}
			if _, dup := dedupe[p]; dup {
				continue
			}
			dedupe[p] = struct{}{}
			cleaned = append(cleaned, p)
		}
		entry.Pairs = cleaned
	}

	return &ds, nil
}

// LoadUnits reads a JSON array of unit sizes.
//
// Error Conditions: ErrRead, ErrDecode; size validity is left to
// core.CapacitySpec.Validate at solve time.
func LoadUnits(path string) (core.CapacitySpec, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrRead, path, err)
	}

	var sizes []int
	if err = json.Unmarshal(raw, &sizes); err != nil {
		return nil, fmt.Errorf("%w: %s: must be a JSON array of integers", ErrDecode, path)
	}

	return core.CapacitySpec(sizes), nil
}

// ParseUnits parses a comma-separated size list ("4,4,3"). Blank items
// are skipped; an effectively empty spec is a schema error.
func ParseUnits(arg string) (core.CapacitySpec, error) {
	var sizes core.CapacitySpec
	for _, item := range strings.Split(arg, ",") {
		item = strings.TrimSpace(item)
		if item == "" {
			continue
		}
		n, err := strconv.Atoi(item)
		if err != nil {
			return nil, fmt.Errorf("%w: invalid unit size %q", ErrSchema, item)
		}
		sizes = append(sizes, n)
	}
	if len(sizes) == 0 {
		return nil, fmt.Errorf("%w: units list cannot be empty", ErrSchema)
	}

	return sizes, nil
}

// LoadRosterCSV reads entity ids from the first CSV column. A leading
// "id" header row is skipped; blank cells are ignored.
//
// Error Conditions: ErrRead, ErrDecode.
func LoadRosterCSV(path string) ([]string, error) {
	rows, err := readCSV(path)
	if err != nil {
		return nil, err
	}

	start := 0
	if len(rows) > 0 && len(rows[0]) > 0 &&
		strings.EqualFold(strings.TrimSpace(rows[0][0]), "id") {
		start = 1
	}

	roster := make([]string, 0, len(rows))
	for _, row := range rows[start:] {
		if len(row) == 0 {
			continue
		}
		if id := core.NormalizeID(row[0]); id != "" {
			roster = append(roster, id)
		}
	}

	return roster, nil
}

// LoadPairsCSV reads unordered id pairs from the first two CSV columns.
// Header rows "a,b" and "left,right" are skipped; rows with a blank
// endpoint are ignored; a self-pair is a schema error.
//
// Error Conditions: ErrRead, ErrDecode, ErrSchema.
func LoadPairsCSV(path string) ([]core.Pair, error) {
	rows, err := readCSV(path)
	if err != nil {
		return nil, err
	}

	start := 0
	if len(rows) > 0 && len(rows[0]) >= 2 {
		h0 := strings.ToLower(strings.TrimSpace(rows[0][0]))
		h1 := strings.ToLower(strings.TrimSpace(rows[0][1]))
		if (h0 == "a" && h1 == "b") || (h0 == "left" && h1 == "right") {
			start = 1
		}
	}

	set := core.NewPairSet()
	for i, row := range rows[start:] {
		if len(row) < 2 {
			continue
		}
		left, right := core.NormalizeID(row[0]), core.NormalizeID(row[1])
		if left == "" || right == "" {
			continue
		}
		p, err := core.NewPair(left, right)
		if err != nil {
			return nil, fmt.Errorf("%w: %s row %d: %v", ErrSchema, path, start+i+1, err)
		}
		set.Add(p)
	}

	return set.Sorted(), nil
}

// LoadScoring reads a partial scoring configuration; overlay it on a
// base with ScoringFile.ApplyTo.
//
// Error Conditions: ErrRead, ErrDecode. Weight legality is checked by
// combat.NewContext against the class vocabulary, not here.
func LoadScoring(path string) (*ScoringFile, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrRead, path, err)
	}

	var f ScoringFile
	if err = json.Unmarshal(raw, &f); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrDecode, path, err)
	}

	return &f, nil
}

// LoadClassOverridesCSV reads entity→class overrides from the first two
// CSV columns. An "id,class" header row is skipped; later rows win on
// duplicate ids.
//
// Error Conditions: ErrRead, ErrDecode.
func LoadClassOverridesCSV(path string) (map[string]string, error) {
	rows, err := readCSV(path)
	if err != nil {
		return nil, err
	}

	start := 0
	if len(rows) > 0 && len(rows[0]) >= 2 &&
		strings.EqualFold(strings.TrimSpace(rows[0][0]), "id") &&
		strings.EqualFold(strings.TrimSpace(rows[0][1]), "class") {
		start = 1
	}

	overrides := make(map[string]string)
	for _, row := range rows[start:] {
		if len(row) < 2 {
			continue
		}
		id, classID := core.NormalizeID(row[0]), core.NormalizeID(row[1])
		if id == "" || classID == "" {
			continue
		}
		overrides[id] = classID
	}

	return overrides, nil
}

// readCSV loads all records of a CSV file, tolerating ragged rows.
func readCSV(path string) ([][]string, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrRead, path, err)
	}

	r := csv.NewReader(strings.NewReader(string(raw)))
	r.FieldsPerRecord = -1
	r.TrimLeadingSpace = true
	rows, err := r.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrDecode, path, err)
	}

	return rows, nil
}
