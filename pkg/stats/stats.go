// Package stats resolves raw stat maps and consumable modifiers against
// the table of known stats.
package stats

import (
	"maps"
	"regexp"
	"slices"

	"github.com/icarusdb/icdb/pkg/datatable"
	"github.com/icarusdb/icdb/pkg/gamedata"
	"github.com/icarusdb/icdb/pkg/rawdata"
)

var statRe = regexp.MustCompile(`^\(Value="(.*)"\)$`)

// ExtractStats converts raw keys of the form (Value="StatName") into stat
// names. Stats absent from known are dropped. Any malformed key fails the
// whole call.
func ExtractStats[V any](
	raw rawdata.StatMap,
	known map[string]V,
) (map[string]float64, error) {
	res := make(map[string]float64, len(raw))
	for _, k := range slices.Sorted(maps.Keys(raw)) {
		m := statRe.FindStringSubmatch(k)
		if m == nil {
			return nil, StatParseError(k)
		}
		if _, ok := known[m[1]]; !ok {
			continue
		}
		res[m[1]] = raw[k]
	}
	return res, nil
}

// GetModifier resolves the timed effect of a consumable. It returns nil
// without an error when there is no modifier reference, or when the
// modifier grants no known stats and lasts zero seconds.
func GetModifier[V any](
	consumable *rawdata.Consumable,
	modifiers *datatable.Table[rawdata.ModifierState],
	known map[string]V,
) (*gamedata.Modifier, error) {
	if consumable == nil || consumable.Modifier == nil ||
		consumable.Modifier.Modifier == nil {
		return nil, nil
	}

	name := consumable.Modifier.Modifier.RowName
	state, ok := modifiers.Get(name)
	if !ok {
		return nil, ModifierNotFoundError(name, consumable.Name)
	}

	var granted map[string]float64
	if state.GrantedStats != nil {
		var err error
		granted, err = ExtractStats(state.GrantedStats, known)
		if err != nil {
			return nil, err
		}
	}

	lifetime := consumable.Modifier.ModifierLifetime
	if len(granted) == 0 && lifetime == 0 {
		return nil, nil
	}
	if len(granted) == 0 {
		granted = nil
	}

	return &gamedata.Modifier{
		Lifetime: lifetime,
		Stats:    granted,
	}, nil
}
