package gamedata

import (
	"slices"
)

// LogoIcon is the site logo, it is synchronized together with entity
// icons.
const LogoIcon = "Logos/Icon_Icarus"

// FullRecipe is a recipe with resolved display data.
type FullRecipe struct {
	Name        string
	Requirement string
	CraftedAt   []FullCrafter
	Inputs      []FullItemCount
	Outputs     []FullItemCount
}

// FullCrafter is a crafter reference with display data.
type FullCrafter struct {
	Name        string
	DisplayName string
	Icon        string
}

// FullItemCount is an amount of an item or resource with display data.
type FullItemCount struct {
	Count int
	Item  FullItem
}

// FullItem holds display data of an item or resource.
type FullItem struct {
	Name        string
	DisplayName string
	Icon        string
	Description string
	FlavorText  string
	IsResource  bool
}

// Recipe returns the recipe with inputs, outputs and crafters
// expanded. It fails if the recipe or any referenced entity is absent.
func (gd *GameData) Recipe(name string) (*FullRecipe, error) {
	r, ok := gd.Recipes[name]
	if !ok {
		return nil, RecipeNotFoundError(name)
	}

	res := &FullRecipe{
		Name:        name,
		Requirement: r.Requirement,
	}

	for _, v := range r.CraftedAt {
		c, ok := gd.Crafters[v]
		if !ok {
			return nil, ItemNotFoundError(v, name)
		}
		res.CraftedAt = append(res.CraftedAt, FullCrafter{
			Name:        v,
			DisplayName: c.DisplayName,
			Icon:        c.Icon,
		})
	}

	var err error
	if res.Inputs, err = gd.fullCounts(name, r.Inputs); err != nil {
		return nil, err
	}
	if res.Outputs, err = gd.fullCounts(name, r.Outputs); err != nil {
		return nil, err
	}
	return res, nil
}

func (gd *GameData) fullCounts(
	recipe string,
	counts []ItemCount,
) ([]FullItemCount, error) {
	res := make([]FullItemCount, 0, len(counts))
	for _, v := range counts {
		fc, err := gd.ItemCountToFull(v)
		if err != nil {
			return nil, ItemNotFoundError(v.Item, recipe)
		}
		res = append(res, fc)
	}
	return res, nil
}

// ItemCountToFull resolves display data of an item count.
func (gd *GameData) ItemCountToFull(ic ItemCount) (FullItemCount, error) {
	if ic.IsResource {
		r, ok := gd.Resources[ic.Item]
		if !ok {
			return FullItemCount{}, ItemNotFoundError(ic.Item, "")
		}
		return FullItemCount{
			Count: ic.Count,
			Item: FullItem{
				Name:        ic.Item,
				DisplayName: r.DisplayName,
				Icon:        r.RecipeIcon,
				IsResource:  true,
			},
		}, nil
	}

	item, ok := gd.Items[ic.Item]
	if !ok {
		return FullItemCount{}, ItemNotFoundError(ic.Item, "")
	}
	return FullItemCount{
		Count: ic.Count,
		Item: FullItem{
			Name:        ic.Item,
			DisplayName: item.DisplayName,
			Icon:        item.Icon,
			Description: item.Description,
			FlavorText:  item.FlavorText,
		},
	}, nil
}

// Icons returns sorted unique icon paths of items, crafters and
// resources together with the logo.
func (gd *GameData) Icons() []string {
	set := map[string]struct{}{LogoIcon: {}}
	add := func(s string) {
		if s != "" {
			set[s] = struct{}{}
		}
	}
	for _, v := range gd.Items {
		add(v.Icon)
	}
	for _, v := range gd.Crafters {
		add(v.Icon)
	}
	for _, v := range gd.Resources {
		add(v.ResourceIcon)
		add(v.RecipeIcon)
	}

	res := make([]string, 0, len(set))
	for k := range set {
		res = append(res, k)
	}
	slices.Sort(res)
	return res
}

// FoodItems returns names of classified consumables in sorted order.
func (gd *GameData) FoodItems() []string {
	var res []string
	for k, v := range gd.Items {
		if v.Type != "" {
			res = append(res, k)
		}
	}
	slices.Sort(res)
	return res
}
