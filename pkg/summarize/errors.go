package summarize

import (
	"fmt"
	"runtime"

	"github.com/gnames/gn"
	"github.com/icarusdb/icdb/pkg/errcode"
)

func FieldParseError(entity, field string, err error) error {
	msg := "Cannot parse <em>%s</em> of <em>%s</em>"
	vars := []any{field, entity}
	pc, _, _, _ := runtime.Caller(1)
	fn := runtime.FuncForPC(pc)
	return &gn.Error{
		Code: errcode.LocalizationParseError,
		Msg:  msg,
		Vars: vars,
		Err: fmt.Errorf("from %s: %s of %s: %w",
			fn.Name(), field, entity, err),
	}
}

func IconError(entity string, err error) error {
	msg := "Cannot normalize icon of <em>%s</em>"
	vars := []any{entity}
	pc, _, _, _ := runtime.Caller(1)
	fn := runtime.FuncForPC(pc)
	return &gn.Error{
		Code: errcode.IconFormatError,
		Msg:  msg,
		Vars: vars,
		Err:  fmt.Errorf("from %s: icon of %s: %w", fn.Name(), entity, err),
	}
}

func StatFormatError(stat string, err error) error {
	msg := "Cannot process description of stat <em>%s</em>"
	vars := []any{stat}
	pc, _, _, _ := runtime.Caller(1)
	fn := runtime.FuncForPC(pc)
	return &gn.Error{
		Code: errcode.StatFormatError,
		Msg:  msg,
		Vars: vars,
		Err:  fmt.Errorf("from %s: stat %s: %w", fn.Name(), stat, err),
	}
}

func ProcessingNotFoundError(station, processing string) error {
	msg := "Processing <em>%s</em> of crafter <em>%s</em> not found"
	vars := []any{processing, station}
	pc, _, _, _ := runtime.Caller(1)
	fn := runtime.FuncForPC(pc)
	return &gn.Error{
		Code: errcode.ProcessingNotFoundError,
		Msg:  msg,
		Vars: vars,
		Err: fmt.Errorf("from %s: processing %q of %q not found",
			fn.Name(), processing, station),
	}
}

func RecipeSetNotFoundError(station, recipeSet string) error {
	msg := "Default recipe set <em>%s</em> of crafter <em>%s</em> not found"
	vars := []any{recipeSet, station}
	pc, _, _, _ := runtime.Caller(1)
	fn := runtime.FuncForPC(pc)
	return &gn.Error{
		Code: errcode.RecipeSetNotFoundError,
		Msg:  msg,
		Vars: vars,
		Err: fmt.Errorf("from %s: default recipe set %q of %q not found",
			fn.Name(), recipeSet, station),
	}
}

func UnknownDataTableError(table, entity string) error {
	msg := "Unknown data table <em>%s</em> referenced by <em>%s</em>"
	vars := []any{table, entity}
	pc, _, _, _ := runtime.Caller(1)
	fn := runtime.FuncForPC(pc)
	return &gn.Error{
		Code: errcode.UnknownDataTableError,
		Msg:  msg,
		Vars: vars,
		Err: fmt.Errorf("from %s: unknown data table %q in %q",
			fn.Name(), table, entity),
	}
}
