package summarize_test

import (
	"encoding/json"
	"testing"

	"github.com/gnames/gn"
	"github.com/icarusdb/icdb/pkg/datatable"
	"github.com/icarusdb/icdb/pkg/errcode"
	"github.com/icarusdb/icdb/pkg/gamedata"
	"github.com/icarusdb/icdb/pkg/rawdata"
	"github.com/icarusdb/icdb/pkg/summarize"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ptr[T any](v T) *T { return &v }

func loc(s string) *string {
	return ptr(`NSLOCTEXT("Items", "Key", "` + s + `")`)
}

func uiIcon(s string) *string {
	return ptr("/Game/Assets/2DArt/UI/Items/" + s + "." + s)
}

func itemable(name string) rawdata.Itemable {
	return rawdata.Itemable{
		Name:        name,
		DisplayName: loc(name),
		Icon:        uiIcon("ITEM_" + name),
		Description: loc(name + " description"),
		Weight:      10,
		MaxStack:    20,
	}
}

func tags(tt ...string) *rawdata.Tags {
	res := &rawdata.Tags{}
	for _, v := range tt {
		res.GameplayTags = append(res.GameplayTags, rawdata.Tag{TagName: v})
	}
	return res
}

func static(name, table string) rawdata.ElementCount {
	return rawdata.ElementCount{
		Element: rawdata.RefWithDataTable{RowName: name, DataTableName: table},
		Count:   1,
	}
}

func recipeSet(name string) rawdata.RefWithDataTable {
	return rawdata.RefWithDataTable{RowName: name, DataTableName: rawdata.TableRecipeSets}
}

type fixture struct {
	itemsStatic []rawdata.ItemStatic
	templates   []rawdata.ItemTemplate
	itemables   []rawdata.Itemable
	consumables []rawdata.Consumable
	durables    []rawdata.Durable
	processing  []rawdata.Processing
	recipes     []rawdata.ProcessorRecipe
	recipeSets  []rawdata.RecipeSet
	stats       []rawdata.Stat
	resources   []rawdata.Resource
	modifiers   []rawdata.ModifierState
	talents     []rawdata.Talent
	workshop    []rawdata.WorkshopItem
}

func newFixture() *fixture {
	return &fixture{
		itemsStatic: []rawdata.ItemStatic{
			{Name: "Wood_Stick", Itemable: &rawdata.Ref{RowName: "Stick"}},
			{
				Name:     "Bow",
				Itemable: &rawdata.Ref{RowName: "Bow"},
				Durable: &rawdata.RefWithDataTable{
					RowName: "Bow_Durable", DataTableName: rawdata.TableDurable,
				},
			},
			{
				Name:       "Berry",
				Itemable:   &rawdata.Ref{RowName: "Berry"},
				Consumable: &rawdata.Ref{RowName: "Berry"},
				ManualTags: tags("Item.Consumable.Food.Fruit"),
			},
			{
				Name:          "Health_Tonic",
				Itemable:      &rawdata.Ref{RowName: "Tonic"},
				Consumable:    &rawdata.Ref{RowName: "Tonic"},
				ManualTags:    tags("FieldGuide.Food"),
				GeneratedTags: tags("Item.Medicine.Tonic.Status"),
			},
			{
				Name:       "Crafting_Bench",
				Itemable:   &rawdata.Ref{RowName: "Bench"},
				Processing: &rawdata.Ref{RowName: "Bench_Proc"},
			},
			{
				Name:       "Faction_Forge",
				Itemable:   &rawdata.Ref{RowName: "Forge"},
				Processing: &rawdata.Ref{RowName: "Forge_Proc"},
				ManualTags: tags("Item.Mission.Faction.Forge"),
			},
			{Name: "Kit_Road", Itemable: &rawdata.Ref{RowName: "KitRoad"}},
			{Name: "Rock"},
			{Name: "Orphan", Itemable: &rawdata.Ref{RowName: "Orphan"}},
			{Name: "Alpha", Itemable: &rawdata.Ref{RowName: "Alpha"}},
			{Name: "Beta", Itemable: &rawdata.Ref{RowName: "Beta"}},
			{Name: "DEV_Tool", Itemable: &rawdata.Ref{RowName: "DevTool"}},
			{Name: "Nameless", Itemable: &rawdata.Ref{RowName: "Nameless"}},
			{Name: "Iconless", Itemable: &rawdata.Ref{RowName: "Iconless"}},
			{Name: "Lost", Itemable: &rawdata.Ref{RowName: "Nowhere"}},
			{Name: "Blank", Itemable: &rawdata.Ref{RowName: "Blank"}},
			{
				Name:       "Blank_Station",
				Itemable:   &rawdata.Ref{RowName: "BlankStation"},
				Processing: &rawdata.Ref{RowName: "Bench_Proc"},
			},
		},
		templates: []rawdata.ItemTemplate{
			{Name: "Stick_T1", ItemStaticData: &rawdata.Ref{RowName: "Wood_Stick"}},
			{Name: "Bow_Old", ItemStaticData: &rawdata.Ref{RowName: "Bow"}},
			{Name: "Bow_T", ItemStaticData: &rawdata.Ref{RowName: "Bow"}},
			{Name: "Empty_T"},
		},
		itemables: []rawdata.Itemable{
			itemable("Stick"), itemable("Bow"), itemable("Berry"),
			itemable("Tonic"), itemable("Bench"), itemable("Forge"),
			itemable("KitRoad"), itemable("Orphan"), itemable("Alpha"),
			itemable("Beta"),
			{Name: "DevTool", DisplayName: loc("Dev"), Icon: ptr("/Game/Dev/T.T")},
			{Name: "Nameless", DisplayName: ptr(`LOCTABLE("t", "k")`), Icon: uiIcon("N")},
			{Name: "Iconless", DisplayName: loc("Iconless")},
			{Name: "Blank", DisplayName: loc(""), Icon: uiIcon("B")},
			{Name: "BlankStation", DisplayName: loc(""), Icon: uiIcon("BS")},
		},
		consumables: []rawdata.Consumable{
			{
				Name:  "Berry",
				Stats: rawdata.StatMap{`(Value="BaseHealth")`: 5},
				Modifier: &rawdata.ConsumableModifier{
					Modifier:         &rawdata.Ref{RowName: "Berry_Mod"},
					ModifierLifetime: 60,
				},
			},
			{
				Name: "Tonic",
				Modifier: &rawdata.ConsumableModifier{
					Modifier:         &rawdata.Ref{RowName: "Missing_Mod"},
					ModifierLifetime: 10,
				},
			},
		},
		durables: []rawdata.Durable{
			{Name: "Bow_Durable", MaxDurability: ptr(200.0)},
		},
		processing: []rawdata.Processing{
			{Name: "Bench_Proc", DefaultRecipeSet: ptr(recipeSet("Bench_Set"))},
			{Name: "Forge_Proc", DefaultRecipeSet: ptr(recipeSet("Forge_Set"))},
		},
		recipeSets: []rawdata.RecipeSet{
			{Name: "Bench_Set"}, {Name: "Forge_Set"},
		},
		recipes: []rawdata.ProcessorRecipe{
			{
				Name:        "Bow_Recipe",
				Requirement: &rawdata.Ref{RowName: "bow_talent"},
				RecipeSets:  []rawdata.RefWithDataTable{recipeSet("Bench_Set"), recipeSet("Forge_Set")},
				Inputs: []rawdata.ElementCount{
					{
						Element: rawdata.RefWithDataTable{
							RowName: "Stick_T1", DataTableName: rawdata.TableItemTemplate,
						},
						Count: 3,
					},
				},
				ResourceInputs: []rawdata.ResourceCount{
					{Type: rawdata.ResourceType{Value: "Water"}, RequiredUnits: 10},
				},
				Outputs: []rawdata.ElementCount{static("Bow", rawdata.TableItemsStatic)},
			},
			{
				Name:    "Road_Recipe",
				Inputs:  []rawdata.ElementCount{static("wood_stick", rawdata.TableItemsStatic)},
				Outputs: []rawdata.ElementCount{static("Kit_Road", rawdata.TableItemsStatic)},
			},
			{
				Name:    "Alpha_Recipe",
				Inputs:  []rawdata.ElementCount{static("Beta", rawdata.TableItemsStatic)},
				Outputs: []rawdata.ElementCount{static("Alpha", rawdata.TableItemsStatic)},
			},
			{
				Name:    "Beta_Recipe",
				Inputs:  []rawdata.ElementCount{static("Alpha", rawdata.TableItemsStatic)},
				Outputs: []rawdata.ElementCount{static("Beta", rawdata.TableItemsStatic)},
			},
			{
				Name:    "Typo_Recipe",
				Inputs:  []rawdata.ElementCount{static("Wood_Stik", rawdata.TableItemsStatic)},
				Outputs: []rawdata.ElementCount{static("Bow", rawdata.TableItemsStatic)},
			},
			{
				Name: "Ghost_Recipe",
				ResourceInputs: []rawdata.ResourceCount{
					{Type: rawdata.ResourceType{Value: "Ghost"}, RequiredUnits: 1},
				},
				Outputs: []rawdata.ElementCount{static("Bow", rawdata.TableItemsStatic)},
			},
		},
		stats: []rawdata.Stat{
			{Name: "BaseHealth", PositiveDescription: loc("+{0} Health")},
			{Name: "Unused", PositiveDescription: loc("+{0} Unused")},
			{Name: "NegOnly", NegativeDescription: loc("-{0} Neg")},
		},
		resources: []rawdata.Resource{
			{
				Name:         "Water",
				DisplayName:  loc("Water"),
				ResourceIcon: ptr("/Game/Assets/2DArt/UI/Resources/Water.Water"),
				RecipeIcon:   ptr("/Game/Other/Water.Water"),
			},
			{Name: "Ghost"},
		},
		modifiers: []rawdata.ModifierState{
			{Name: "Berry_Mod", GrantedStats: rawdata.StatMap{`(Value="BaseHealth")`: 2}},
		},
		talents: []rawdata.Talent{{Name: "Bow_Talent"}},
		workshop: []rawdata.WorkshopItem{
			{
				Name: "W_Bow",
				Item: rawdata.Ref{RowName: "Bow_T"},
				ReplicationCost: []rawdata.WorkshopCost{
					{Meta: rawdata.RefWithDataTable{RowName: "Credits"}, Amount: 10},
				},
			},
		},
	}
}

func mustTable[T datatable.Row](t *testing.T, name string, rows []T) *datatable.Table[T] {
	t.Helper()
	res, err := datatable.New(name, rows)
	require.NoError(t, err)
	return res
}

func (f *fixture) tables(t *testing.T) *rawdata.Tables {
	return &rawdata.Tables{
		ItemsStatic:      mustTable(t, rawdata.TableItemsStatic, f.itemsStatic),
		ItemTemplates:    mustTable(t, rawdata.TableItemTemplate, f.templates),
		Itemables:        mustTable(t, rawdata.TableItemable, f.itemables),
		Consumables:      mustTable(t, rawdata.TableConsumable, f.consumables),
		Durables:         mustTable(t, rawdata.TableDurable, f.durables),
		Processing:       mustTable(t, rawdata.TableProcessing, f.processing),
		ProcessorRecipes: mustTable(t, rawdata.TableProcessorRecipes, f.recipes),
		RecipeSets:       mustTable(t, rawdata.TableRecipeSets, f.recipeSets),
		Stats:            mustTable(t, rawdata.TableStats, f.stats),
		Resources:        mustTable(t, rawdata.TableResources, f.resources),
		ModifierStates:   mustTable(t, rawdata.TableModifierStates, f.modifiers),
		Talents:          mustTable(t, rawdata.TableTalents, f.talents),
		WorkshopItems:    mustTable(t, rawdata.TableWorkshopItems, f.workshop),
	}
}

func run(t *testing.T) (*gamedata.GameData, *summarize.Report) {
	gd, report, err := summarize.Summarize(newFixture().tables(t))
	require.NoError(t, err)
	return gd, report
}

func reasons(ee []summarize.Exclusion) map[string]string {
	res := make(map[string]string)
	for _, v := range ee {
		res[v.Name] = v.Reason
	}
	return res
}

func TestItems(t *testing.T) {
	gd, report := run(t)

	excluded := reasons(report.ExcludedItems)
	assert.Equal(t, map[string]string{
		"Rock":          summarize.ReasonNotItemable,
		"Kit_Road":      summarize.ReasonBlacklisted,
		"Nameless":      summarize.ReasonNoDisplayName,
		"Iconless":      summarize.ReasonNoIcon,
		"Lost":          summarize.ReasonNoItemable,
		"Blank":         summarize.ReasonNoDisplayName,
		"Blank_Station": summarize.ReasonNoDisplayName,
	}, excluded)

	_, ok := gd.Items["DEV_Tool"]
	assert.False(t, ok, "items outside of UI assets are skipped")
	_, ok = excluded["DEV_Tool"]
	assert.False(t, ok, "skipped items are not reported")

	stick := gd.Items["Wood_Stick"]
	require.NotNil(t, stick)
	assert.Equal(t, "Stick", stick.DisplayName)
	assert.Equal(t, "Items/ITEM_Stick", stick.Icon)
	assert.Equal(t, "Stick description", stick.Description)
	assert.Equal(t, 20, stick.StackSize)
	assert.Equal(t, 10.0, stick.Weight)

	bow := gd.Items["Bow"]
	require.NotNil(t, bow)
	require.NotNil(t, bow.Durability)
	assert.Equal(t, 200.0, *bow.Durability)
	require.NotNil(t, bow.Workshop)
	assert.Equal(t, map[string]int{"Credits": 10}, bow.Workshop.CraftCost)

	berry := gd.Items["Berry"]
	require.NotNil(t, berry)
	assert.Equal(t, gamedata.TypeFood, berry.Type)
	assert.Equal(t, map[string]float64{"BaseHealth": 5}, berry.Stats)
	assert.Equal(t, &gamedata.Modifier{
		Lifetime: 60,
		Stats:    map[string]float64{"BaseHealth": 2},
	}, berry.Modifier)

	tonic := gd.Items["Health_Tonic"]
	require.NotNil(t, tonic)
	assert.Equal(t, gamedata.TypeTonic, tonic.Type)
	assert.Nil(t, tonic.Modifier)
	assert.Contains(t, report.Warnings,
		"item=Health_Tonic: Modifier Missing_Mod of consumable Tonic not found")
}

func TestResources(t *testing.T) {
	gd, report := run(t)

	water := gd.Resources["Water"]
	require.NotNil(t, water)
	assert.Equal(t, "Resources/Water", water.ResourceIcon)
	assert.Empty(t, water.RecipeIcon)
	assert.Equal(t, []string{"Bow_Recipe"}, water.IngredientIn)

	assert.Equal(t, map[string]string{"Ghost": summarize.ReasonNoDisplayName},
		reasons(report.ExcludedResources))
}

func TestCrafters(t *testing.T) {
	gd, report := run(t)

	assert.Len(t, gd.Crafters, 1)
	bench := gd.Crafters["Crafting_Bench"]
	require.NotNil(t, bench)
	assert.Equal(t, "Bench", bench.DisplayName)
	assert.Equal(t, []string{"Bow_Recipe"}, bench.Recipes)

	skipped := reasons(report.SkippedCrafters)
	assert.Contains(t, skipped["Faction_Forge"], "Item.Mission.Faction")
	_, ok := gd.Crafters["Blank_Station"]
	assert.False(t, ok, "stations with an empty display name are dropped")
	_, ok = skipped["Blank_Station"]
	assert.False(t, ok, "dropped stations are not reported")
}

func TestRecipes(t *testing.T) {
	gd, report := run(t)

	bow := gd.Recipes["Bow_Recipe"]
	require.NotNil(t, bow)
	assert.Equal(t, "Bow_Talent", bow.Requirement)
	assert.Equal(t, []string{"Crafting_Bench"}, bow.CraftedAt)
	assert.Equal(t, []gamedata.ItemCount{
		{Item: "Water", Count: 10, IsResource: true},
		{Item: "Wood_Stick", Count: 3},
	}, bow.Inputs)
	assert.Equal(t, []gamedata.ItemCount{{Item: "Bow", Count: 1}}, bow.Outputs)

	excluded := reasons(report.ExcludedRecipes)
	assert.Equal(t, map[string]string{
		"Road_Recipe":  "output Kit_Road is not mapped. Reason: Blacklisted.",
		"Typo_Recipe":  summarize.ReasonUnresolved,
		"Ghost_Recipe": "input Ghost is not mapped. Reason: No display name.",
	}, excluded)

	stick := gd.Items["Wood_Stick"]
	assert.Equal(t, []string{"Bow_Recipe"}, stick.IngredientIn,
		"excluded recipes leave no links")
	assert.Equal(t, []string{"Bow_Recipe"}, gd.Items["Bow"].Recipes)

	var suggested bool
	for _, v := range report.Warnings {
		if v == "Could not find static name for element with RowName=Wood_Stik, "+
			"DataTableName=D_ItemsStatic while processing recipe Typo_Recipe "+
			"(did you mean Wood_Stick?)" {
			suggested = true
		}
	}
	assert.True(t, suggested)
}

func TestNoDanglingReferences(t *testing.T) {
	gd, _ := run(t)

	for name, r := range gd.Recipes {
		for _, io := range append(r.Inputs, r.Outputs...) {
			_, isItem := gd.Items[io.Item]
			_, isResource := gd.Resources[io.Item]
			assert.True(t, isItem || isResource, "%s of %s", io.Item, name)
		}
		for _, c := range r.CraftedAt {
			assert.Contains(t, gd.Crafters, c)
		}
	}
	for name, item := range gd.Items {
		for _, rn := range append(item.Recipes, item.IngredientIn...) {
			assert.Contains(t, gd.Recipes, rn, "recipe of %s", name)
		}
	}
}

func TestStatPruning(t *testing.T) {
	gd, report := run(t)

	assert.Equal(t, map[string]*gamedata.Stat{
		"BaseHealth": {PositiveFormat: "+{0} Health"},
	}, gd.Stats)
	assert.Contains(t, report.Warnings, "Stat 'NegOnly' has only negative description.")
}

func TestUsability(t *testing.T) {
	gd, report := run(t)

	for _, v := range []string{"Wood_Stick", "Bow", "Alpha", "Beta"} {
		assert.Nil(t, gd.Items[v].Usable, v)
	}
	assert.Equal(t, []string{
		"Berry", "Crafting_Bench", "Faction_Forge", "Health_Tonic", "Orphan",
	}, report.Unusable)
	assert.Equal(t, 4, report.Usable)
	assert.False(t, gd.Items["Orphan"].IsUsable())
}

func TestDeterminism(t *testing.T) {
	gd1, _ := run(t)
	gd2, _ := run(t)

	res1, err := json.Marshal(gd1)
	require.NoError(t, err)
	res2, err := json.Marshal(gd2)
	require.NoError(t, err)
	assert.Equal(t, string(res1), string(res2))
}

func TestFatalErrors(t *testing.T) {
	tests := []struct {
		name   string
		modify func(f *fixture)
		code   gn.ErrorCode
	}{
		{
			name: "missing processing",
			modify: func(f *fixture) {
				f.processing = f.processing[1:]
			},
			code: errcode.ProcessingNotFoundError,
		},
		{
			name: "missing default recipe set",
			modify: func(f *fixture) {
				f.recipeSets = f.recipeSets[1:]
			},
			code: errcode.RecipeSetNotFoundError,
		},
		{
			name: "unknown element table",
			modify: func(f *fixture) {
				f.recipes[0].Inputs[0].Element.DataTableName = "D_Unknown"
			},
			code: errcode.UnknownDataTableError,
		},
		{
			name: "unknown recipe set table",
			modify: func(f *fixture) {
				f.recipes[0].RecipeSets[0].DataTableName = "D_Unknown"
			},
			code: errcode.UnknownDataTableError,
		},
		{
			name: "broken display name",
			modify: func(f *fixture) {
				f.itemables[0].DisplayName = ptr(`NSLOCTEXT(`)
			},
			code: errcode.LocalizationParseError,
		},
		{
			name: "broken stat format",
			modify: func(f *fixture) {
				f.stats[0].PositiveDescription = ptr(`NSLOCTEXT("a", "b", "\x")`)
			},
			code: errcode.StatFormatError,
		},
		{
			name: "unknown currency",
			modify: func(f *fixture) {
				f.workshop[0].ReplicationCost[0].Meta.RowName = "Gold"
			},
			code: errcode.WorkshopCurrencyError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture()
			tt.modify(f)
			gd, _, err := summarize.Summarize(f.tables(t))
			require.Error(t, err)
			assert.Nil(t, gd)
			gnErr, ok := err.(*gn.Error)
			require.True(t, ok)
			assert.Equal(t, tt.code, gnErr.Code)
		})
	}
}

func TestFoodTable(t *testing.T) {
	gd, _ := run(t)

	res := summarize.FoodTable(gd)
	assert.Equal(t,
		"name\tBaseHealth\tduration\n"+
			"Berry\t2\t60\n"+
			"Tonic\t\t",
		res)
}

func TestReportLines(t *testing.T) {
	_, report := run(t)

	lines := report.Lines()
	assert.Equal(t, "Excluded items:", lines[0])
	assert.Contains(t, lines, "- Kit_Road: Blacklisted")
	assert.Equal(t, "- Orphan", lines[len(lines)-1])
}
