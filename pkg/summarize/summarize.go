// Package summarize joins raw data tables into the summarized dataset.
//
// The pass is single-threaded and runs in a fixed order: stats, items,
// resources, crafters, recipes, then the post-processing steps (list
// sorting, stat pruning, usability flagging). Rows that fail business
// rules are excluded and reported. Errors returned by Summarize mean the
// source data is structurally broken and no dataset must be written.
package summarize

import (
	"maps"
	"slices"
	"strings"

	"github.com/icarusdb/icdb/pkg/datatable"
	"github.com/icarusdb/icdb/pkg/gamedata"
	"github.com/icarusdb/icdb/pkg/icon"
	"github.com/icarusdb/icdb/pkg/localization"
	"github.com/icarusdb/icdb/pkg/rawdata"
	"github.com/icarusdb/icdb/pkg/stats"
	"github.com/icarusdb/icdb/pkg/workshop"
)

// mapper is the accumulator of one summarization run.
type mapper struct {
	t      *rawdata.Tables
	gd     *gamedata.GameData
	report *Report

	// knownStats holds every stat with a positive format.
	knownStats map[string]*gamedata.Stat
	// statsUsed collects stats referenced by items and modifiers.
	statsUsed map[string]struct{}

	// caseIdx maps lowercased static names to their canonical spelling.
	caseIdx map[string]string

	itemExcluded     map[string]string
	resourceExcluded map[string]string

	templatesByStatic     *datatable.ManyIndex
	workshopByTemplate    *datatable.ManyIndex
	processingByRecipeSet *datatable.ManyIndex
	staticByProcessing    *datatable.ManyIndex
}

// Summarize builds the dataset from raw tables.
func Summarize(t *rawdata.Tables) (*gamedata.GameData, *Report, error) {
	m := newMapper(t)

	steps := []func() error{
		m.buildStats,
		m.buildItems,
		m.buildResources,
		m.buildCrafters,
		m.buildRecipes,
	}
	for _, step := range steps {
		if err := step(); err != nil {
			return nil, m.report, err
		}
	}

	m.sortLists()
	m.pruneStats()
	m.report.Usable, m.report.Unusable = markUsable(m.gd)

	return m.gd, m.report, nil
}

func newMapper(t *rawdata.Tables) *mapper {
	res := &mapper{
		t:                t,
		gd:               gamedata.New(),
		report:           &Report{},
		knownStats:       make(map[string]*gamedata.Stat),
		statsUsed:        make(map[string]struct{}),
		caseIdx:          make(map[string]string),
		itemExcluded:     make(map[string]string),
		resourceExcluded: make(map[string]string),
	}

	res.templatesByStatic = t.ItemTemplates.IndexMany(
		func(r rawdata.ItemTemplate) (string, bool) {
			if r.ItemStaticData == nil {
				return "", false
			}
			return r.ItemStaticData.RowName, true
		})

	res.workshopByTemplate = t.WorkshopItems.IndexMany(
		func(r rawdata.WorkshopItem) (string, bool) {
			return r.Item.RowName, r.Item.RowName != ""
		})

	res.processingByRecipeSet = t.Processing.IndexMany(
		func(r rawdata.Processing) (string, bool) {
			if r.DefaultRecipeSet == nil {
				return "", false
			}
			return r.DefaultRecipeSet.RowName, true
		})

	res.staticByProcessing = t.ItemsStatic.IndexMany(
		func(r rawdata.ItemStatic) (string, bool) {
			if r.Processing == nil {
				return "", false
			}
			return r.Processing.RowName, true
		})

	return res
}

func (m *mapper) buildStats() error {
	for _, row := range m.t.Stats.Rows() {
		pos, posOK, err := localization.ExtractTranslation(row.PositiveDescription)
		if err != nil {
			return StatFormatError(row.Name, err)
		}
		neg, negOK, err := localization.ExtractTranslation(row.NegativeDescription)
		if err != nil {
			return StatFormatError(row.Name, err)
		}

		if !posOK {
			if negOK {
				m.report.warn("Stat '%s' has only negative description.", row.Name)
			}
			continue
		}

		m.knownStats[row.Name] = &gamedata.Stat{
			PositiveFormat: pos,
			NegativeFormat: neg,
		}
	}
	return nil
}

func (m *mapper) buildItems() error {
	for _, row := range m.t.ItemsStatic.Rows() {
		m.caseIdx[strings.ToLower(row.Name)] = row.Name
		if err := m.buildItem(row); err != nil {
			return err
		}
	}
	return nil
}

func (m *mapper) excludeItem(name, reason string) {
	m.itemExcluded[name] = reason
	m.report.ExcludedItems = append(m.report.ExcludedItems,
		Exclusion{Name: name, Reason: reason})
}

func (m *mapper) buildItem(row rawdata.ItemStatic) error {
	if row.Itemable == nil {
		m.excludeItem(row.Name, ReasonNotItemable)
		return nil
	}

	if isBlacklisted(row.Name) {
		m.excludeItem(row.Name, ReasonBlacklisted)
		return nil
	}

	itemable, ok := m.t.Itemables.Get(row.Itemable.RowName)
	if !ok {
		m.excludeItem(row.Name, ReasonNoItemable)
		return nil
	}

	if itemable.Icon == nil || *itemable.Icon == "" {
		m.excludeItem(row.Name, ReasonNoIcon)
		return nil
	}
	// development assets live outside of the UI tree
	if !icon.HasPrefix(*itemable.Icon) {
		return nil
	}

	displayName, ok, err := localization.ExtractTranslation(itemable.DisplayName)
	if err != nil {
		return FieldParseError(row.Name, "DisplayName", err)
	}
	if !ok || displayName == "" {
		m.excludeItem(row.Name, ReasonNoDisplayName)
		return nil
	}

	iconPath, err := icon.Process(*itemable.Icon)
	if err != nil {
		return IconError(row.Name, err)
	}

	description, _, err := localization.ExtractTranslation(itemable.Description)
	if err != nil {
		return FieldParseError(row.Name, "Description", err)
	}
	flavorText, _, err := localization.ExtractTranslation(itemable.FlavorText)
	if err != nil {
		return FieldParseError(row.Name, "FlavorText", err)
	}

	item := &gamedata.Item{
		DisplayName:  displayName,
		Icon:         iconPath,
		Description:  description,
		FlavorText:   flavorText,
		Type:         classify(row),
		StackSize:    max(itemable.MaxStack, 1),
		Weight:       itemable.Weight,
		Recipes:      []string{},
		IngredientIn: []string{},
	}

	m.itemStats(row, item)

	if item.Workshop, err = m.itemWorkshop(row.Name); err != nil {
		return err
	}

	if row.Durable != nil {
		if d, ok := m.t.Durables.Get(row.Durable.RowName); ok {
			item.Durability = d.MaxDurability
		} else {
			m.report.warn("item=%s: durable '%s' not found",
				row.Name, row.Durable.RowName)
		}
	}

	m.gd.Items[row.Name] = item
	return nil
}

// itemStats sets item-level stats and the modifier. Problems with stats
// only drop the affected feature.
func (m *mapper) itemStats(row rawdata.ItemStatic, item *gamedata.Item) {
	var additional map[string]float64
	if row.AdditionalStats != nil {
		res, err := stats.ExtractStats(row.AdditionalStats, m.knownStats)
		if err != nil {
			m.report.warn("AdditionalStats: item=%s: %s", row.Name, ErrorText(err))
		} else {
			additional = res
		}
	}

	var consumable *rawdata.Consumable
	if row.Consumable != nil {
		if c, ok := m.t.Consumables.Get(row.Consumable.RowName); ok {
			consumable = &c
		} else {
			m.report.warn("item=%s: consumable '%s' not found",
				row.Name, row.Consumable.RowName)
		}
	}

	var consumed map[string]float64
	if consumable != nil && consumable.Stats != nil {
		res, err := stats.ExtractStats(consumable.Stats, m.knownStats)
		if err != nil {
			m.report.warn("Stats: item=%s, consumable=%s: %s",
				row.Name, consumable.Name, ErrorText(err))
		} else {
			consumed = res
		}
	}

	modifier, err := stats.GetModifier(consumable, m.t.ModifierStates, m.knownStats)
	if err != nil {
		m.report.warn("item=%s: %s", row.Name, ErrorText(err))
	}

	itemStats := make(map[string]float64, len(consumed)+len(additional))
	maps.Copy(itemStats, consumed)
	maps.Copy(itemStats, additional)
	for k := range itemStats {
		m.statsUsed[k] = struct{}{}
	}
	if len(itemStats) > 0 {
		item.Stats = itemStats
	}

	if modifier != nil {
		for k := range modifier.Stats {
			m.statsUsed[k] = struct{}{}
		}
		item.Modifier = modifier
	}
}

// itemWorkshop tries every template of the static item until one of them
// has a workshop entry.
func (m *mapper) itemWorkshop(name string) (*gamedata.Workshop, error) {
	for _, tpl := range m.templatesByStatic.Get(name) {
		rows := m.workshopByTemplate.Get(tpl)
		if len(rows) == 0 {
			continue
		}
		row, _ := m.t.WorkshopItems.Get(rows[0])
		return workshop.Summarize(row)
	}
	return nil, nil
}

func (m *mapper) buildResources() error {
	for _, row := range m.t.Resources.Rows() {
		displayName, ok, err := localization.ExtractTranslation(row.DisplayName)
		if err != nil {
			return FieldParseError(row.Name, "DisplayName", err)
		}
		if !ok {
			m.resourceExcluded[row.Name] = ReasonNoDisplayName
			m.report.ExcludedResources = append(m.report.ExcludedResources,
				Exclusion{Name: row.Name, Reason: ReasonNoDisplayName})
			continue
		}

		m.gd.Resources[row.Name] = &gamedata.Resource{
			DisplayName:  displayName,
			ResourceIcon: m.optionalIcon(row.Name, row.ResourceIcon),
			RecipeIcon:   m.optionalIcon(row.Name, row.RecipeIcon),
			Recipes:      []string{},
			IngredientIn: []string{},
		}
	}
	return nil
}

func (m *mapper) optionalIcon(entity string, path *string) string {
	if path == nil || *path == "" {
		return ""
	}
	if !icon.HasPrefix(*path) {
		m.report.warn("resource=%s: icon '%s' is outside of UI assets",
			entity, *path)
		return ""
	}
	res, err := icon.Process(*path)
	if err != nil {
		m.report.warn("resource=%s: %s", entity, ErrorText(err))
		return ""
	}
	return res
}

func (m *mapper) buildCrafters() error {
	for _, row := range m.t.ItemsStatic.Rows() {
		if row.Processing == nil {
			continue
		}

		if isBlacklisted(row.Name) {
			m.skipCrafter(row.Name, ReasonBlacklisted)
			continue
		}
		if tag, ok := hiddenStationTag(row); ok {
			m.skipCrafter(row.Name, "Tagged "+tag)
			continue
		}

		proc, ok := m.t.Processing.Get(row.Processing.RowName)
		if !ok {
			return ProcessingNotFoundError(row.Name, row.Processing.RowName)
		}
		if proc.DefaultRecipeSet == nil {
			return RecipeSetNotFoundError(row.Name, "")
		}
		rs := proc.DefaultRecipeSet
		if rs.DataTableName != rawdata.TableRecipeSets {
			return UnknownDataTableError(rs.DataTableName, row.Name)
		}
		if !m.t.RecipeSets.Has(rs.RowName) {
			return RecipeSetNotFoundError(row.Name, rs.RowName)
		}

		crafter, err := m.crafterDisplay(row)
		if err != nil {
			return err
		}
		if crafter != nil {
			m.gd.Crafters[row.Name] = crafter
		}
	}
	return nil
}

func (m *mapper) skipCrafter(name, reason string) {
	m.report.SkippedCrafters = append(m.report.SkippedCrafters,
		Exclusion{Name: name, Reason: reason})
}

// crafterDisplay returns nil for stations without display data or with
// an empty display name.
func (m *mapper) crafterDisplay(row rawdata.ItemStatic) (*gamedata.Crafter, error) {
	if row.Itemable == nil {
		return nil, nil
	}
	itemable, ok := m.t.Itemables.Get(row.Itemable.RowName)
	if !ok || itemable.Icon == nil || !icon.HasPrefix(*itemable.Icon) {
		return nil, nil
	}

	displayName, ok, err := localization.ExtractTranslation(itemable.DisplayName)
	if err != nil {
		return nil, FieldParseError(row.Name, "DisplayName", err)
	}
	if !ok || displayName == "" {
		return nil, nil
	}

	iconPath, err := icon.Process(*itemable.Icon)
	if err != nil {
		return nil, IconError(row.Name, err)
	}

	return &gamedata.Crafter{
		DisplayName: displayName,
		Icon:        iconPath,
		Recipes:     []string{},
	}, nil
}

func (m *mapper) sortLists() {
	for _, v := range m.gd.Items {
		slices.Sort(v.Recipes)
		slices.Sort(v.IngredientIn)
	}
	for _, v := range m.gd.Resources {
		slices.Sort(v.Recipes)
		slices.Sort(v.IngredientIn)
	}
	for _, v := range m.gd.Crafters {
		slices.Sort(v.Recipes)
	}
}

// pruneStats keeps only stats referenced by items or modifiers.
func (m *mapper) pruneStats() {
	for k, v := range m.knownStats {
		if _, ok := m.statsUsed[k]; ok {
			m.gd.Stats[k] = v
		}
	}
}
