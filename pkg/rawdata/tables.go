package rawdata

import "github.com/icarusdb/icdb/pkg/datatable"

// Tables bundles all raw tables used by the summarizer.
type Tables struct {
	ItemsStatic      *datatable.Table[ItemStatic]
	ItemTemplates    *datatable.Table[ItemTemplate]
	Itemables        *datatable.Table[Itemable]
	Consumables      *datatable.Table[Consumable]
	Durables         *datatable.Table[Durable]
	Processing       *datatable.Table[Processing]
	ProcessorRecipes *datatable.Table[ProcessorRecipe]
	RecipeSets       *datatable.Table[RecipeSet]
	Stats            *datatable.Table[Stat]
	Resources        *datatable.Table[Resource]
	ModifierStates   *datatable.Table[ModifierState]
	Talents          *datatable.Table[Talent]
	WorkshopItems    *datatable.Table[WorkshopItem]
}

// Source describes where a raw table is stored relative to the game
// data directory.
type Source struct {
	Table string
	Path  string
}

// Sources lists every raw table the summarizer reads.
var Sources = []Source{
	{TableItemsStatic, "Items/D_ItemsStatic.json"},
	{TableItemTemplate, "Items/D_ItemTemplate.json"},
	{TableItemable, "Traits/D_Itemable.json"},
	{TableConsumable, "Traits/D_Consumable.json"},
	{TableDurable, "Traits/D_Durable.json"},
	{TableProcessing, "Traits/D_Processing.json"},
	{TableProcessorRecipes, "Crafting/D_ProcessorRecipes.json"},
	{TableRecipeSets, "Crafting/D_RecipeSets.json"},
	{TableStats, "Stats/D_Stats.json"},
	{TableResources, "Resources/D_IcarusResources.json"},
	{TableModifierStates, "Modifiers/D_ModifierStates.json"},
	{TableTalents, "Talents/D_Talents.json"},
	{TableWorkshopItems, "Workshop/D_WorkshopItems.json"},
}
