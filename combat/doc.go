// Package combat scores finished unit assignments on composition
// quality: per-unit role/capability coverage, army-wide type coverage,
// and leader diversity. The solver uses the composite as a secondary,
// lexicographic criterion after total rapport.
//
// What & Why
//
//   - Unit scoring is presence-based (soft coverage): a unit earns each
//     role weight and capability weight at most once, no matter how many
//     members carry the tag. Stacking five healers buys nothing beyond
//     the first — breadth wins, not depth.
//
//   - Army coverage looks across all units at the distinct assist-type
//     and unit-type tags present. Each configured tag contributes
//     weight × (1 + multiplier × (occurrences − 1)): a multiplier of 0
//     caps the bonus at first occurrence, 1 scales linearly with count.
//     Absence never penalizes; it simply earns nothing.
//
//   - Leader diversity selects one leader per unit — the first member
//     whose class carries the leader marker, else the first member with
//     a resolved class, else none — then rewards distinct leader keys
//     (class id, unit-type or assist-type, per mode) and penalizes
//     repeats. The score floors at zero.
//
// Tag vocabularies are open string sets derived from the class profiles
// themselves, not enumerations baked into the type system: new tags
// arrive via configuration alone. Validate checks every configured
// weight against the vocabulary and rejects negatives.
//
// Error Conditions:
//   - ErrUnknownClass (via *UnknownClassError): a scored entity has no
//     resolvable class. This is a hard contract failure naming the
//     entity — never a silent zero-score fallback.
//   - ErrInvalidWeight (via *WeightError): a negative weight, an
//     out-of-vocabulary tag, or a target multiplier outside [0,1].
//
// All scoring is pure and deterministic: a unit's score is invariant
// under permutation of its members, and map-ordered outputs are sorted
// before they surface.
package combat
