package ioexport

import (
	"context"
	"database/sql"
	"maps"
	"slices"

	"github.com/icarusdb/icdb/pkg/gamedata"
)

func insertStats(ctx context.Context, tx *sql.Tx, gd *gamedata.GameData) error {
	q := `INSERT INTO stats (id, name, positive_format, negative_format)
	VALUES (?, ?, ?, ?)`
	for _, name := range slices.Sorted(maps.Keys(gd.Stats)) {
		s := gd.Stats[name]
		_, err := tx.ExecContext(ctx, q,
			EntityID(KindStat, name).String(), name,
			s.PositiveFormat, s.NegativeFormat,
		)
		if err != nil {
			return ExportInsertError("stats", err)
		}
	}
	return nil
}

func insertItems(ctx context.Context, tx *sql.Tx, gd *gamedata.GameData) error {
	q := `INSERT INTO items (id, name, display_name, icon, description,
	flavor_text, type, stack_size, weight, durability, modifier_lifetime,
	usable) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`
	for _, name := range slices.Sorted(maps.Keys(gd.Items)) {
		it := gd.Items[name]
		id := EntityID(KindItem, name).String()

		var durability, lifetime sql.NullFloat64
		if it.Durability != nil {
			durability = sql.NullFloat64{Float64: *it.Durability, Valid: true}
		}
		if it.Modifier != nil {
			lifetime = sql.NullFloat64{Float64: it.Modifier.Lifetime, Valid: true}
		}

		_, err := tx.ExecContext(ctx, q,
			id, name, it.DisplayName, it.Icon, it.Description, it.FlavorText,
			string(it.Type), it.StackSize, it.Weight, durability, lifetime,
			it.IsUsable(),
		)
		if err != nil {
			return ExportInsertError("items", err)
		}

		if err = insertItemStats(ctx, tx, id, "item", it.Stats); err != nil {
			return err
		}
		if it.Modifier != nil {
			err = insertItemStats(ctx, tx, id, "modifier", it.Modifier.Stats)
			if err != nil {
				return err
			}
		}
		if it.Workshop != nil {
			err = insertCosts(ctx, tx, id, "craft", it.Workshop.CraftCost)
			if err != nil {
				return err
			}
			err = insertCosts(ctx, tx, id, "research", it.Workshop.ResearchCost)
			if err != nil {
				return err
			}
		}
	}
	return nil
}

func insertItemStats(
	ctx context.Context,
	tx *sql.Tx,
	itemID, source string,
	stats map[string]float64,
) error {
	q := `INSERT INTO item_stats (item_id, stat_id, source, value)
	VALUES (?, ?, ?, ?)`
	for _, name := range slices.Sorted(maps.Keys(stats)) {
		_, err := tx.ExecContext(ctx, q,
			itemID, EntityID(KindStat, name).String(), source, stats[name],
		)
		if err != nil {
			return ExportInsertError("item_stats", err)
		}
	}
	return nil
}

func insertCosts(
	ctx context.Context,
	tx *sql.Tx,
	itemID, kind string,
	costs map[string]int,
) error {
	q := `INSERT INTO workshop_costs (item_id, kind, currency, amount)
	VALUES (?, ?, ?, ?)`
	for _, currency := range slices.Sorted(maps.Keys(costs)) {
		_, err := tx.ExecContext(ctx, q, itemID, kind, currency, costs[currency])
		if err != nil {
			return ExportInsertError("workshop_costs", err)
		}
	}
	return nil
}

func insertResources(ctx context.Context, tx *sql.Tx, gd *gamedata.GameData) error {
	q := `INSERT INTO resources (id, name, display_name, resource_icon,
	recipe_icon) VALUES (?, ?, ?, ?, ?)`
	for _, name := range slices.Sorted(maps.Keys(gd.Resources)) {
		r := gd.Resources[name]
		_, err := tx.ExecContext(ctx, q,
			EntityID(KindResource, name).String(), name,
			r.DisplayName, r.ResourceIcon, r.RecipeIcon,
		)
		if err != nil {
			return ExportInsertError("resources", err)
		}
	}
	return nil
}

func insertCrafters(ctx context.Context, tx *sql.Tx, gd *gamedata.GameData) error {
	q := `INSERT INTO crafters (id, name, display_name, icon)
	VALUES (?, ?, ?, ?)`
	for _, name := range slices.Sorted(maps.Keys(gd.Crafters)) {
		c := gd.Crafters[name]
		_, err := tx.ExecContext(ctx, q,
			EntityID(KindCrafter, name).String(), name, c.DisplayName, c.Icon,
		)
		if err != nil {
			return ExportInsertError("crafters", err)
		}
	}
	return nil
}

func insertRecipes(ctx context.Context, tx *sql.Tx, gd *gamedata.GameData) error {
	q := `INSERT INTO recipes (id, name, requirement) VALUES (?, ?, ?)`
	qIO := `INSERT INTO recipe_io (recipe_id, direction, position, entity_id,
	is_resource, count) VALUES (?, ?, ?, ?, ?, ?)`
	qCrafter := `INSERT INTO recipe_crafters (recipe_id, crafter_id)
	VALUES (?, ?)`

	for _, name := range slices.Sorted(maps.Keys(gd.Recipes)) {
		r := gd.Recipes[name]
		id := EntityID(KindRecipe, name).String()
		if _, err := tx.ExecContext(ctx, q, id, name, r.Requirement); err != nil {
			return ExportInsertError("recipes", err)
		}

		dirs := []struct {
			direction string
			counts    []gamedata.ItemCount
		}{
			{"input", r.Inputs},
			{"output", r.Outputs},
		}
		for _, d := range dirs {
			for i, v := range d.counts {
				kind := KindItem
				if v.IsResource {
					kind = KindResource
				}
				_, err := tx.ExecContext(ctx, qIO,
					id, d.direction, i, EntityID(kind, v.Item).String(),
					v.IsResource, v.Count,
				)
				if err != nil {
					return ExportInsertError("recipe_io", err)
				}
			}
		}

		for _, c := range r.CraftedAt {
			_, err := tx.ExecContext(ctx, qCrafter,
				id, EntityID(KindCrafter, c).String(),
			)
			if err != nil {
				return ExportInsertError("recipe_crafters", err)
			}
		}
	}
	return nil
}
