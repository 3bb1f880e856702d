package rawdata

// ItemStatic is the engine-level identity of an item. Capability fields
// reference rows of the trait tables.
type ItemStatic struct {
	Name            string            `json:"Name"`
	Itemable        *Ref              `json:"Itemable,omitempty"`
	Consumable      *Ref              `json:"Consumable,omitempty"`
	Durable         *RefWithDataTable `json:"Durable,omitempty"`
	Processing      *Ref              `json:"Processing,omitempty"`
	AdditionalStats StatMap           `json:"AdditionalStats,omitempty"`
	ManualTags      *Tags             `json:"Manual_Tags,omitempty"`
	GeneratedTags   *Tags             `json:"Generated_Tags,omitempty"`
}

func (r ItemStatic) RowName() string { return r.Name }

// HasTag returns true if any manual or generated tag satisfies fn.
func (r ItemStatic) HasTag(fn func(string) bool) bool {
	for _, tags := range []*Tags{r.ManualTags, r.GeneratedTags} {
		if tags == nil {
			continue
		}
		for _, v := range tags.GameplayTags {
			if fn(v.TagName) {
				return true
			}
		}
	}
	return false
}

// ItemTemplate is an instantiable reference to a static item. Several
// templates can point to the same static item.
type ItemTemplate struct {
	Name           string `json:"Name"`
	ItemStaticData *Ref   `json:"ItemStaticData,omitempty"`
}

func (r ItemTemplate) RowName() string { return r.Name }

// Itemable carries display metadata of an item. Text fields hold
// localization calls, e.g. NSLOCTEXT("ns", "key", "Stick").
type Itemable struct {
	Name        string  `json:"Name"`
	DisplayName *string `json:"DisplayName,omitempty"`
	Icon        *string `json:"Icon,omitempty"`
	Description *string `json:"Description,omitempty"`
	FlavorText  *string `json:"FlavorText,omitempty"`
	Weight      float64 `json:"Weight"`
	MaxStack    int     `json:"MaxStack"`
}

func (r Itemable) RowName() string { return r.Name }

// Consumable describes effects of consuming an item.
type Consumable struct {
	Name     string              `json:"Name"`
	Stats    StatMap             `json:"Stats,omitempty"`
	Modifier *ConsumableModifier `json:"Modifier,omitempty"`
}

func (r Consumable) RowName() string { return r.Name }

// ConsumableModifier is a timed effect granted by a consumable.
type ConsumableModifier struct {
	Modifier         *Ref    `json:"Modifier,omitempty"`
	ModifierLifetime float64 `json:"ModifierLifetime"`
}

// Durable holds durability of an item.
type Durable struct {
	Name          string   `json:"Name"`
	MaxDurability *float64 `json:"Max_Durability,omitempty"`
}

func (r Durable) RowName() string { return r.Name }

// ModifierState holds stats granted by a modifier.
type ModifierState struct {
	Name         string  `json:"Name"`
	GrantedStats StatMap `json:"GrantedStats,omitempty"`
}

func (r ModifierState) RowName() string { return r.Name }

// Stat holds display formats of a stat.
type Stat struct {
	Name                string  `json:"Name"`
	PositiveDescription *string `json:"PositiveDescription,omitempty"`
	NegativeDescription *string `json:"NegativeDescription,omitempty"`
}

func (r Stat) RowName() string { return r.Name }
