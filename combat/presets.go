package combat

import (
	"fmt"
	"sort"
	"strings"
)

// Preset names recognized by ApplyPreset.
const (
	PresetBalanced   = "balanced"
	PresetOffensive  = "offensive"
	PresetDefensive  = "defensive"
	PresetMagicHeavy = "magic-heavy"
)

// presetOverlay carries the coverage/diversity values a preset pins;
// role and capability weights always come from the base config.
type presetOverlay struct {
	assistTypeWeights map[string]float64
	unitTypeWeights   map[string]float64
	uniqueBonus       float64
	duplicatePenalty  float64
	mode              DiversityMode
}

var presets = map[string]presetOverlay{
	PresetBalanced: {
		assistTypeWeights: map[string]float64{AssistRanged: 0.5, AssistMagick: 0.5, AssistHealing: 0.5},
		unitTypeWeights:   map[string]float64{UnitTypeInfantry: 0.3, UnitTypeCavalry: 0.3, UnitTypeFlying: 0.3},
		uniqueBonus:       1.0,
		duplicatePenalty:  0.5,
		mode:              ModeClass,
	},
	PresetOffensive: {
		assistTypeWeights: map[string]float64{AssistRanged: 1.0, AssistMagick: 0.8, AssistHealing: 0.3},
		unitTypeWeights:   map[string]float64{UnitTypeFlying: 0.8, UnitTypeCavalry: 0.6, UnitTypeInfantry: 0.2},
		uniqueBonus:       0.8,
		duplicatePenalty:  0.3,
		mode:              ModeClass,
	},
	PresetDefensive: {
		assistTypeWeights: map[string]float64{AssistRanged: 0.3, AssistMagick: 0.3, AssistHealing: 1.0},
		unitTypeWeights:   map[string]float64{UnitTypeInfantry: 0.8, UnitTypeCavalry: 0.4, UnitTypeFlying: 0.4},
		uniqueBonus:       1.2,
		duplicatePenalty:  0.7,
		mode:              ModeClass,
	},
	PresetMagicHeavy: {
		assistTypeWeights: map[string]float64{AssistRanged: 0.5, AssistMagick: 1.0, AssistHealing: 0.8},
		unitTypeWeights:   map[string]float64{UnitTypeInfantry: 0.5, UnitTypeCavalry: 0.4, UnitTypeFlying: 0.6},
		uniqueBonus:       0.8,
		duplicatePenalty:  0.3,
		mode:              ModeClass,
	},
}

// PresetNames returns the recognized preset names, sorted.
func PresetNames() []string {
	names := make([]string, 0, len(presets))
	for name := range presets {
		names = append(names, name)
	}
	sort.Strings(names)

	return names
}

// ApplyPreset returns a copy of base with the named preset's coverage
// and diversity values applied. Base role/capability weights and the
// Enabled flags are preserved.
//
// Error Conditions:
//   - ErrUnknownPreset : name is not a recognized preset; the error
//     message lists the valid options.
//
// Complexity: O(weights).
func ApplyPreset(base Config, name string) (Config, error) {
	overlay, ok := presets[name]
	if !ok {
		return Config{}, fmt.Errorf("%w: %q (available: %s)",
			ErrUnknownPreset, name, strings.Join(PresetNames(), ", "))
	}

	out := base
	out.Coverage.AssistTypeWeights = copyWeights(overlay.assistTypeWeights)
	out.Coverage.UnitTypeWeights = copyWeights(overlay.unitTypeWeights)
	out.Diversity.UniqueLeaderBonus = overlay.uniqueBonus
	out.Diversity.DuplicateLeaderPenalty = overlay.duplicatePenalty
	out.Diversity.Mode = overlay.mode

	return out, nil
}

// copyWeights clones a weight table so presets stay immutable.
func copyWeights(src map[string]float64) map[string]float64 {
	out := make(map[string]float64, len(src))
	for tag, w := range src {
		out[tag] = w
	}

	return out
}
