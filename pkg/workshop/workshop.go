// Package workshop summarizes research and replication costs of
// workshop items.
package workshop

import (
	"github.com/icarusdb/icdb/pkg/gamedata"
	"github.com/icarusdb/icdb/pkg/rawdata"
)

// Currencies that can appear in workshop costs.
var Currencies = map[string]struct{}{
	"Biomass":    {},
	"Credits":    {},
	"Exotic_Red": {},
	"Exotic1":    {},
}

// Summarize converts a workshop row into craft and research costs keyed
// by currency. An unknown currency is an error.
func Summarize(row rawdata.WorkshopItem) (*gamedata.Workshop, error) {
	craft, err := costs(row.Name, row.ReplicationCost)
	if err != nil {
		return nil, err
	}
	research, err := costs(row.Name, row.ResearchCost)
	if err != nil {
		return nil, err
	}
	return &gamedata.Workshop{
		CraftCost:    craft,
		ResearchCost: research,
	}, nil
}

func costs(name string, cc []rawdata.WorkshopCost) (map[string]int, error) {
	res := make(map[string]int, len(cc))
	for _, v := range cc {
		cur := v.Meta.RowName
		if _, ok := Currencies[cur]; !ok {
			return nil, CurrencyError(cur, name)
		}
		res[cur] = v.Amount
	}
	return res, nil
}
