package summarize

import (
	"strings"

	"github.com/icarusdb/icdb/pkg/gamedata"
	"github.com/icarusdb/icdb/pkg/rawdata"
)

// Exclusion reasons of items and resources.
const (
	ReasonNotItemable   = "Not itemable"
	ReasonBlacklisted   = "Blacklisted"
	ReasonNoItemable    = "Not found in itemable"
	ReasonNoIcon        = "No icon"
	ReasonNoDisplayName = "No display name"
	ReasonUnresolved    = "Not all inputs and outputs found"
)

// itemBlacklist holds superseded, duplicated and development-only items.
var itemBlacklist = map[string]struct{}{
	"CollectionShipBeacon":                  {},
	"Cooking_Station":                       {}, // replaced with _V2
	"DEV_Bug_Tool":                          {},
	"DEV_Fireball":                          {},
	"DEV_Inspection_Tool":                   {},
	"DEV_Thor_Hammer":                       {},
	"Debug_Target":                          {},
	"Electric_Dehumidifier":                 {}, // replaced with _V2
	"Faction_MIssion_Analyzer":              {},
	"Faction_Mission_Frozen_Mammoth_Sample": {},
	"Faction_Mission_Mammoth_Sample":        {},
	"Faction_Satellite":                     {},
	"Faction_Satellite_Defend":              {},
	"Farming_CropPlot":                      {}, // replaced with _T2_V2
	"Farming_CropPlot_T3":                   {},
	"Farming_CropPlot_T4":                   {},
	"Glassworking_Bench":                    {}, // replaced with _v2
	"Kit_Road":                              {},
	"Player_Gravestone_DBNO":                {},
	"Player_Gravestone_MIA":                 {},
	"SplineTool_Fuel":                       {},
	"Water_Purifier_T1":                     {},
}

func isBlacklisted(name string) bool {
	_, ok := itemBlacklist[name]
	return ok
}

// Tags that hide a crafting station from the wiki.
const (
	tagFieldGuideBlacklist = "FieldGuide.Blacklist"
	tagFactionMission      = "Item.Mission.Faction"
)

// hiddenStationTag returns the first tag of the station that hides it.
func hiddenStationTag(row rawdata.ItemStatic) (string, bool) {
	var res string
	found := row.HasTag(func(tag string) bool {
		if strings.HasPrefix(tag, tagFieldGuideBlacklist) ||
			strings.HasPrefix(tag, tagFactionMission) {
			res = tag
			return true
		}
		return false
	})
	return res, found
}

func tagIs(tag, base string) bool {
	return tag == base || strings.HasPrefix(tag, base+".")
}

func isFoodTag(tag string) bool {
	switch tag {
	case "FieldGuide.Food", "Item.Consumable.Food", "Item.Deployable.Food":
		return true
	}
	return strings.HasPrefix(tag, "Item.Consumable.Food.")
}

// classify returns the type of a consumable. Rules are checked in order,
// the first rule matched by any tag wins.
func classify(row rawdata.ItemStatic) gamedata.ItemType {
	if row.Consumable == nil {
		return ""
	}

	rules := []struct {
		tp    gamedata.ItemType
		match func(string) bool
	}{
		{gamedata.TypeTonic, func(t string) bool { return tagIs(t, "Item.Medicine.Tonic") }},
		{gamedata.TypePill, func(t string) bool { return tagIs(t, "Item.Medicine.Pill") }},
		{gamedata.TypePaste, func(t string) bool { return tagIs(t, "Item.Medicine.Paste") }},
		{gamedata.TypeFood, isFoodTag},
	}

	for _, v := range rules {
		if row.HasTag(v.match) {
			return v.tp
		}
	}
	return ""
}
