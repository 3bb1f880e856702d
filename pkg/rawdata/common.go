// Package rawdata contains row schemas of the raw data table exports.
//
// Every export is a JSON document of the form
// {"RowStruct": "...", "Defaults": {...}, "Rows": [...]}. Only fields used
// by the summarizer are declared, unknown fields are ignored on decoding.
// Optional references are pointers, nil means the field is absent.
package rawdata

// Ref references a row of a table that is implied by the field.
type Ref struct {
	RowName string `json:"RowName"`
}

// RefWithDataTable references a row of an explicitly named table.
type RefWithDataTable struct {
	RowName       string `json:"RowName"`
	DataTableName string `json:"DataTableName"`
}

// Tags is a set of gameplay tags.
type Tags struct {
	GameplayTags []Tag `json:"GameplayTags"`
}

// Tag is a dot-separated hierarchical gameplay tag.
type Tag struct {
	TagName string `json:"TagName"`
}

// StatMap maps raw stat keys of the form (Value="StatName") to values.
type StatMap map[string]float64

// Table names as they appear in DataTableName fields.
const (
	TableItemsStatic      = "D_ItemsStatic"
	TableItemTemplate     = "D_ItemTemplate"
	TableItemable         = "D_Itemable"
	TableConsumable       = "D_Consumable"
	TableDurable          = "D_Durable"
	TableProcessing       = "D_Processing"
	TableProcessorRecipes = "D_ProcessorRecipes"
	TableRecipeSets       = "D_RecipeSets"
	TableStats            = "D_Stats"
	TableResources        = "D_IcarusResources"
	TableModifierStates   = "D_ModifierStates"
	TableTalents          = "D_Talents"
	TableWorkshopItems    = "D_WorkshopItems"
)
