package summarize

import (
	"cmp"
	"fmt"
	"slices"
	"strings"

	"github.com/agnivade/levenshtein"
	"github.com/icarusdb/icdb/pkg/gamedata"
	"github.com/icarusdb/icdb/pkg/rawdata"
)

func (m *mapper) buildRecipes() error {
	for _, row := range m.t.ProcessorRecipes.Rows() {
		if err := m.buildRecipe(row); err != nil {
			return err
		}
	}
	return nil
}

func (m *mapper) excludeRecipe(name, reason string) {
	m.report.ExcludedRecipes = append(m.report.ExcludedRecipes,
		Exclusion{Name: name, Reason: reason})
}

func (m *mapper) buildRecipe(row rawdata.ProcessorRecipe) error {
	inputs, okIn, err := m.itemCounts(row.Name, row.Inputs)
	if err != nil {
		return err
	}
	outputs, okOut, err := m.itemCounts(row.Name, row.Outputs)
	if err != nil {
		return err
	}
	resIn, okResIn := m.resourceCounts(row.Name, row.ResourceInputs)
	resOut, okResOut := m.resourceCounts(row.Name, row.ResourceOutputs)

	if !(okIn && okOut && okResIn && okResOut) {
		m.excludeRecipe(row.Name, ReasonUnresolved)
		return nil
	}

	inputs = append(inputs, resIn...)
	outputs = append(outputs, resOut...)
	sortCounts(inputs)
	sortCounts(outputs)

	if reason, ok := m.unmapped("input", inputs); !ok {
		m.excludeRecipe(row.Name, reason)
		return nil
	}
	if reason, ok := m.unmapped("output", outputs); !ok {
		m.excludeRecipe(row.Name, reason)
		return nil
	}

	crafters, err := m.recipeCrafters(row)
	if err != nil {
		return err
	}

	recipe := &gamedata.Recipe{
		Requirement: m.requirement(row),
		CraftedAt:   crafters,
		Inputs:      inputs,
		Outputs:     outputs,
	}

	// the recipe passed every check, link it
	for _, v := range inputs {
		if v.IsResource {
			r := m.gd.Resources[v.Item]
			r.IngredientIn = appendUnique(r.IngredientIn, row.Name)
			continue
		}
		item := m.gd.Items[v.Item]
		item.IngredientIn = appendUnique(item.IngredientIn, row.Name)
	}
	for _, v := range outputs {
		if v.IsResource {
			r := m.gd.Resources[v.Item]
			r.Recipes = appendUnique(r.Recipes, row.Name)
			continue
		}
		item := m.gd.Items[v.Item]
		item.Recipes = appendUnique(item.Recipes, row.Name)
	}
	for _, v := range crafters {
		c := m.gd.Crafters[v]
		c.Recipes = appendUnique(c.Recipes, row.Name)
	}

	m.gd.Recipes[row.Name] = recipe
	return nil
}

// itemCounts resolves element references. The boolean is false if any
// of the elements cannot be resolved to a static item.
func (m *mapper) itemCounts(
	recipe string,
	ee []rawdata.ElementCount,
) ([]gamedata.ItemCount, bool, error) {
	res := make([]gamedata.ItemCount, 0, len(ee))
	ok := true
	for _, v := range ee {
		name, err := m.staticName(recipe, v.Element)
		if err != nil {
			return nil, false, err
		}
		if name == "" {
			m.report.warn(
				"Could not find static name for element with RowName=%s, "+
					"DataTableName=%s while processing recipe %s%s",
				v.Element.RowName, v.Element.DataTableName, recipe,
				m.suggestion(v.Element),
			)
			ok = false
			continue
		}
		res = append(res, gamedata.ItemCount{Item: name, Count: v.Count})
	}
	return res, ok, nil
}

// staticName follows a template or a static reference to the canonical
// static item name. Empty result means the reference does not resolve.
func (m *mapper) staticName(
	recipe string,
	ref rawdata.RefWithDataTable,
) (string, error) {
	var name string
	switch ref.DataTableName {
	case rawdata.TableItemTemplate:
		tpl, ok := m.t.ItemTemplates.Get(ref.RowName)
		if !ok || tpl.ItemStaticData == nil {
			return "", nil
		}
		name = tpl.ItemStaticData.RowName
	case rawdata.TableItemsStatic:
		name = ref.RowName
	default:
		return "", UnknownDataTableError(ref.DataTableName, recipe)
	}
	return m.caseIdx[strings.ToLower(name)], nil
}

func (m *mapper) suggestion(ref rawdata.RefWithDataTable) string {
	var names []string
	switch ref.DataTableName {
	case rawdata.TableItemTemplate:
		for _, v := range m.t.ItemTemplates.Rows() {
			names = append(names, v.Name)
		}
	default:
		for _, v := range m.t.ItemsStatic.Rows() {
			names = append(names, v.Name)
		}
	}
	if s := closest(ref.RowName, names); s != "" {
		return fmt.Sprintf(" (did you mean %s?)", s)
	}
	return ""
}

// closest finds the name with the smallest edit distance. Names that
// differ in more than half of the characters are not suggested.
func closest(name string, names []string) string {
	var res string
	best := len(name)/2 + 1
	lower := strings.ToLower(name)
	for _, v := range names {
		dist := levenshtein.ComputeDistance(lower, strings.ToLower(v))
		if dist < best {
			best = dist
			res = v
		}
	}
	return res
}

func (m *mapper) resourceCounts(
	recipe string,
	rr []rawdata.ResourceCount,
) ([]gamedata.ItemCount, bool) {
	res := make([]gamedata.ItemCount, 0, len(rr))
	ok := true
	for _, v := range rr {
		row, found := m.t.Resources.Get(v.Type.Value)
		if !found {
			m.report.warn("Could not find resource %s while processing recipe %s",
				v.Type.Value, recipe)
			ok = false
			continue
		}
		res = append(res, gamedata.ItemCount{
			Item:       row.Name,
			Count:      v.RequiredUnits,
			IsResource: true,
		})
	}
	return res, ok
}

// unmapped checks that every count refers to an entity of the dataset.
// It returns the exclusion reason for the first one that does not.
func (m *mapper) unmapped(kind string, counts []gamedata.ItemCount) (string, bool) {
	for _, v := range counts {
		var found bool
		var reason string
		if v.IsResource {
			_, found = m.gd.Resources[v.Item]
			reason = m.resourceExcluded[v.Item]
		} else {
			_, found = m.gd.Items[v.Item]
			reason = m.itemExcluded[v.Item]
		}
		if found {
			continue
		}
		res := fmt.Sprintf("%s %s is not mapped.", kind, v.Item)
		if reason != "" {
			res += fmt.Sprintf(" Reason: %s.", reason)
		}
		return res, false
	}
	return "", true
}

// recipeCrafters finds crafters through recipe set, processing and
// static item. Every crafter appears once.
func (m *mapper) recipeCrafters(row rawdata.ProcessorRecipe) ([]string, error) {
	var res []string
	for _, rs := range row.RecipeSets {
		if rs.DataTableName != rawdata.TableRecipeSets {
			return nil, UnknownDataTableError(rs.DataTableName, row.Name)
		}
		if !m.t.RecipeSets.Has(rs.RowName) {
			m.report.warn("Unknown RecipeSet %s for recipe %s", rs.RowName, row.Name)
			continue
		}

		for _, proc := range m.processingByRecipeSet.Get(rs.RowName) {
			for _, station := range m.staticByProcessing.Get(proc) {
				if _, ok := m.gd.Crafters[station]; ok {
					res = appendUnique(res, station)
				}
			}
		}
	}
	slices.Sort(res)
	if res == nil {
		res = []string{}
	}
	return res, nil
}

func (m *mapper) requirement(row rawdata.ProcessorRecipe) string {
	if row.Requirement == nil || row.Requirement.RowName == "" {
		return ""
	}
	talent, ok := m.t.Talents.Get(row.Requirement.RowName)
	if !ok {
		m.report.warn("Unknown talent %s required by recipe %s",
			row.Requirement.RowName, row.Name)
		return row.Requirement.RowName
	}
	return talent.Name
}

func sortCounts(cc []gamedata.ItemCount) {
	slices.SortStableFunc(cc, func(a, b gamedata.ItemCount) int {
		if c := cmp.Compare(a.Item, b.Item); c != 0 {
			return c
		}
		if a.IsResource == b.IsResource {
			return 0
		}
		if !a.IsResource {
			return -1
		}
		return 1
	})
}

func appendUnique(ss []string, s string) []string {
	if slices.Contains(ss, s) {
		return ss
	}
	return append(ss, s)
}
