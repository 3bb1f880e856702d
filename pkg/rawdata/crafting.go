package rawdata

// Processing is the crafting capability of a station.
type Processing struct {
	Name             string            `json:"Name"`
	DefaultRecipeSet *RefWithDataTable `json:"DefaultRecipeSet,omitempty"`
}

func (r Processing) RowName() string { return r.Name }

// RecipeSet groups recipes available at crafting stations.
type RecipeSet struct {
	Name          string  `json:"Name"`
	RecipeSetName *string `json:"RecipeSetName,omitempty"`
	RecipeSetIcon *string `json:"RecipeSetIcon,omitempty"`
}

func (r RecipeSet) RowName() string { return r.Name }

// ProcessorRecipe is a recipe with item and resource inputs and outputs.
type ProcessorRecipe struct {
	Name            string             `json:"Name"`
	Requirement     *Ref               `json:"Requirement,omitempty"`
	RecipeSets      []RefWithDataTable `json:"RecipeSets"`
	Inputs          []ElementCount     `json:"Inputs"`
	Outputs         []ElementCount     `json:"Outputs"`
	ResourceInputs  []ResourceCount    `json:"ResourceInputs,omitempty"`
	ResourceOutputs []ResourceCount    `json:"ResourceOutputs,omitempty"`
}

func (r ProcessorRecipe) RowName() string { return r.Name }

// ElementCount is an amount of an item given by template or static
// reference.
type ElementCount struct {
	Element RefWithDataTable `json:"Element"`
	Count   int              `json:"Count"`
}

// ResourceCount is an amount of a resource.
type ResourceCount struct {
	Type          ResourceType `json:"Type"`
	RequiredUnits int          `json:"RequiredUnits"`
}

// ResourceType names a resource row.
type ResourceType struct {
	Value string `json:"Value"`
}

// Resource is a fungible crafting material tracked by units.
type Resource struct {
	Name         string  `json:"Name"`
	DisplayName  *string `json:"DisplayName,omitempty"`
	Units        *string `json:"Units,omitempty"`
	ResourceIcon *string `json:"Resource_Icon,omitempty"`
	RecipeIcon   *string `json:"Recipe_Icon,omitempty"`
}

func (r Resource) RowName() string { return r.Name }

// Talent unlocks recipes.
type Talent struct {
	Name             string `json:"Name"`
	BDefaultUnlocked bool   `json:"bDefaultUnlocked"`
}

func (r Talent) RowName() string { return r.Name }

// WorkshopItem holds research and replication costs of an item template.
type WorkshopItem struct {
	Name            string         `json:"Name"`
	Item            Ref            `json:"Item"`
	ResearchCost    []WorkshopCost `json:"ResearchCost"`
	ReplicationCost []WorkshopCost `json:"ReplicationCost"`
}

func (r WorkshopItem) RowName() string { return r.Name }

// WorkshopCost is an amount of a meta currency.
type WorkshopCost struct {
	Meta   RefWithDataTable `json:"Meta"`
	Amount int              `json:"Amount"`
}
