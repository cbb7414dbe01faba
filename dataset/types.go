package dataset

import (
	"sort"

	"github.com/katalvlaran/muster/combat"
)

// Entity is one roster candidate as stored in the dataset file.
type Entity struct {
	ID   string `json:"id"             validate:"required"`
	Name string `json:"name,omitempty"`
}

// BondEntry lists one entity's rapport partners. Bonds are symmetric;
// either endpoint may carry the entry.
type BondEntry struct {
	ID    string   `json:"id"              validate:"required"`
	Pairs []string `json:"pairs,omitempty"`
}

// Class is the on-disk form of a combat class profile.
type Class struct {
	ID           string   `json:"id"                     validate:"required"`
	Roles        []string `json:"roles,omitempty"`
	Capabilities []string `json:"capabilities,omitempty"`
	AssistType   string   `json:"assist_type,omitempty"`
	UnitType     string   `json:"unit_type,omitempty"`
	ClassTypes   []string `json:"class_types,omitempty"`
	Leader       bool     `json:"leader,omitempty"`
}

// ClassLine names the set of classes an entity may legally switch
// between.
type ClassLine struct {
	ID      string   `json:"id"      validate:"required"`
	Classes []string `json:"classes" validate:"required,min=1"`
}

// EntityClass binds an entity to its default class and, optionally, a
// class line constraining overrides.
type EntityClass struct {
	DefaultClass string `json:"default_class"        validate:"required"`
	ClassLine    string `json:"class_line,omitempty"`
}

// Dataset is the complete dataset file. Combat sections are optional;
// a dataset without classes still solves, it just cannot score.
type Dataset struct {
	Entities      []Entity               `json:"entities"                 validate:"required,min=1,dive"`
	Bonds         []BondEntry            `json:"bonds,omitempty"          validate:"dive"`
	Classes       []Class                `json:"classes,omitempty"        validate:"dive"`
	ClassLines    []ClassLine            `json:"class_lines,omitempty"    validate:"dive"`
	EntityClasses map[string]EntityClass `json:"entity_classes,omitempty" validate:"dive"`
}

// EntityIDs returns every defined entity id, sorted.
func (d *Dataset) EntityIDs() []string {
	ids := make([]string, 0, len(d.Entities))
	for _, e := range d.Entities {
		ids = append(ids, e.ID)
	}
	sort.Strings(ids)

	return ids
}

// EntitySet returns the defined ids as a membership set.
func (d *Dataset) EntitySet() map[string]struct{} {
	set := make(map[string]struct{}, len(d.Entities))
	for _, e := range d.Entities {
		set[e.ID] = struct{}{}
	}

	return set
}

// Profiles converts the stored classes into combat profiles. A missing
// assist type means the class grants none.
func (d *Dataset) Profiles() []combat.ClassProfile {
	profiles := make([]combat.ClassProfile, 0, len(d.Classes))
	for _, c := range d.Classes {
		assist := c.AssistType
		if assist == "" {
			assist = combat.AssistNone
		}
		profiles = append(profiles, combat.ClassProfile{
			ID:           c.ID,
			Roles:        c.Roles,
			Capabilities: c.Capabilities,
			AssistType:   assist,
			UnitType:     c.UnitType,
			ClassTypes:   c.ClassTypes,
			Leader:       c.Leader,
		})
	}

	return profiles
}

// ScoringFile is a partial scoring configuration: absent fields keep
// the base value when overlaid, so a file may adjust one weight table
// without restating the rest.
type ScoringFile struct {
	RoleWeights       map[string]float64 `json:"role_weights,omitempty"`
	CapabilityWeights map[string]float64 `json:"capability_weights,omitempty"`
	Coverage          *CoverageFile      `json:"coverage,omitempty"`
	Diversity         *DiversityFile     `json:"diversity,omitempty"`
}

// CoverageFile is the partial coverage section. Pointer fields
// distinguish "absent" from zero.
type CoverageFile struct {
	Enabled           *bool              `json:"enabled,omitempty"`
	AssistTypeWeights map[string]float64 `json:"assist_type_weights,omitempty"`
	UnitTypeWeights   map[string]float64 `json:"unit_type_weights,omitempty"`
	TargetMultiplier  *float64           `json:"target_multiplier,omitempty"`
}

// DiversityFile is the partial diversity section.
type DiversityFile struct {
	Enabled                *bool    `json:"enabled,omitempty"`
	UniqueLeaderBonus      *float64 `json:"unique_leader_bonus,omitempty"`
	DuplicateLeaderPenalty *float64 `json:"duplicate_leader_penalty,omitempty"`
	Mode                   string   `json:"mode,omitempty"`
}

// ApplyTo overlays the file onto base and returns the result. base is
// not mutated.
func (f *ScoringFile) ApplyTo(base combat.Config) combat.Config {
	if f == nil {
		return base
	}
	if f.RoleWeights != nil {
		base.RoleWeights = f.RoleWeights
	}
	if f.CapabilityWeights != nil {
		base.CapabilityWeights = f.CapabilityWeights
	}
	if c := f.Coverage; c != nil {
		if c.Enabled != nil {
			base.Coverage.Enabled = *c.Enabled
		}
		if c.AssistTypeWeights != nil {
			base.Coverage.AssistTypeWeights = c.AssistTypeWeights
		}
		if c.UnitTypeWeights != nil {
			base.Coverage.UnitTypeWeights = c.UnitTypeWeights
		}
		if c.TargetMultiplier != nil {
			base.Coverage.TargetMultiplier = *c.TargetMultiplier
		}
	}
	if d := f.Diversity; d != nil {
		if d.Enabled != nil {
			base.Diversity.Enabled = *d.Enabled
		}
		if d.UniqueLeaderBonus != nil {
			base.Diversity.UniqueLeaderBonus = *d.UniqueLeaderBonus
		}
		if d.DuplicateLeaderPenalty != nil {
			base.Diversity.DuplicateLeaderPenalty = *d.DuplicateLeaderPenalty
		}
		if d.Mode != "" {
			base.Diversity.Mode = combat.DiversityMode(d.Mode)
		}
	}

	return base
}
