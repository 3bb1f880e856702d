package summarize

import (
	"maps"
	"slices"

	"github.com/icarusdb/icdb/pkg/gamedata"
)

// markUsable flags items that take part in no recipe. An item is usable
// if it is produced or consumed by a recipe, or if it is an input of a
// recipe producing a usable item. The walk goes from outputs to inputs
// with an explicit stack, visited items are never expanded twice, so
// cyclic recipes terminate.
func markUsable(gd *gamedata.GameData) (int, []string) {
	names := slices.Sorted(maps.Keys(gd.Items))
	visited := make(map[string]struct{}, len(names))
	usable := make(map[string]struct{}, len(names))

	for _, start := range names {
		stack := []string{start}
		for len(stack) > 0 {
			name := stack[len(stack)-1]
			stack = stack[:len(stack)-1]
			if _, ok := visited[name]; ok {
				continue
			}
			visited[name] = struct{}{}

			item := gd.Items[name]
			if len(item.Recipes) > 0 || len(item.IngredientIn) > 0 {
				usable[name] = struct{}{}
			}

			for _, rn := range item.Recipes {
				recipe, ok := gd.Recipes[rn]
				if !ok {
					continue
				}
				for _, in := range recipe.Inputs {
					if in.IsResource {
						continue
					}
					if _, ok := gd.Items[in.Item]; !ok {
						continue
					}
					usable[in.Item] = struct{}{}
					stack = append(stack, in.Item)
				}
			}
		}
	}

	var unusable []string
	for _, name := range names {
		if _, ok := usable[name]; ok {
			gd.Items[name].Usable = nil
			continue
		}
		no := false
		gd.Items[name].Usable = &no
		unusable = append(unusable, name)
	}
	return len(usable), unusable
}
