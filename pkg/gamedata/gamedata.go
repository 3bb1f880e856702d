// Package gamedata defines the summarized dataset consumed by the
// front-end and the icon synchronization tool.
package gamedata

// GameData is the complete summarized dataset. Every map is keyed by
// the canonical entity name.
type GameData struct {
	Crafters  map[string]*Crafter  `json:"crafters"`
	Items     map[string]*Item     `json:"items"`
	Recipes   map[string]*Recipe   `json:"recipes"`
	Resources map[string]*Resource `json:"resources"`
	Stats     map[string]*Stat     `json:"stats"`
}

// New returns an empty GameData with all maps initialized.
func New() *GameData {
	return &GameData{
		Crafters:  make(map[string]*Crafter),
		Items:     make(map[string]*Item),
		Recipes:   make(map[string]*Recipe),
		Resources: make(map[string]*Resource),
		Stats:     make(map[string]*Stat),
	}
}

// ItemType classifies consumables.
type ItemType string

const (
	TypeFood  ItemType = "Food"
	TypePaste ItemType = "Paste"
	TypePill  ItemType = "Pill"
	TypeTonic ItemType = "Tonic"
)

// Item is a summarized inventory item.
type Item struct {
	DisplayName string             `json:"displayName"`
	Icon        string             `json:"icon"`
	Description string             `json:"description,omitempty"`
	FlavorText  string             `json:"flavorText,omitempty"`
	Type        ItemType           `json:"type,omitempty"`
	Stats       map[string]float64 `json:"stats,omitempty"`
	Modifier    *Modifier          `json:"modifier,omitempty"`
	StackSize   int                `json:"stackSize"`
	Weight      float64            `json:"weight"`
	Durability  *float64           `json:"durability,omitempty"`
	Workshop    *Workshop          `json:"workshop,omitempty"`

	// Recipes that produce the item.
	Recipes []string `json:"recipes"`
	// IngredientIn lists recipes that consume the item.
	IngredientIn []string `json:"ingredientIn"`

	// Usable is nil for items that take part in crafting and false for
	// the rest.
	Usable *bool `json:"usable,omitempty"`
}

// IsUsable returns true unless the item is explicitly marked unusable.
func (i *Item) IsUsable() bool {
	return i.Usable == nil || *i.Usable
}

// Modifier is a timed effect of a consumable.
type Modifier struct {
	Lifetime float64            `json:"lifetime,omitempty"`
	Stats    map[string]float64 `json:"stats,omitempty"`
}

// Workshop holds costs of an item in meta currencies.
type Workshop struct {
	CraftCost    map[string]int `json:"craftCost"`
	ResearchCost map[string]int `json:"researchCost"`
}

// Resource is a fungible crafting material.
type Resource struct {
	DisplayName  string   `json:"displayName"`
	ResourceIcon string   `json:"resourceIcon,omitempty"`
	RecipeIcon   string   `json:"recipeIcon,omitempty"`
	Recipes      []string `json:"recipes"`
	IngredientIn []string `json:"ingredientIn"`
}

// Recipe converts inputs into outputs at one or more crafters.
type Recipe struct {
	Requirement string      `json:"requirement,omitempty"`
	CraftedAt   []string    `json:"craftedAt"`
	Inputs      []ItemCount `json:"inputs"`
	Outputs     []ItemCount `json:"outputs"`
}

// ItemCount is an amount of an item or a resource.
type ItemCount struct {
	Item       string `json:"item"`
	Count      int    `json:"count"`
	IsResource bool   `json:"isResource,omitempty"`
}

// Crafter is a crafting station.
type Crafter struct {
	DisplayName string   `json:"displayName"`
	Icon        string   `json:"icon"`
	Recipes     []string `json:"recipes"`
}

// Stat holds display formats of a stat.
type Stat struct {
	PositiveFormat string `json:"positiveFormat"`
	NegativeFormat string `json:"negativeFormat,omitempty"`
}
