package gamedata

import (
	"fmt"
	"runtime"

	"github.com/gnames/gn"
	"github.com/icarusdb/icdb/pkg/errcode"
)

func RecipeNotFoundError(name string) error {
	msg := "Cannot find recipe <em>%s</em>"
	vars := []any{name}
	pc, _, _, _ := runtime.Caller(1)
	fn := runtime.FuncForPC(pc)
	return &gn.Error{
		Code: errcode.DatasetRecipeNotFoundError,
		Msg:  msg,
		Vars: vars,
		Err:  fmt.Errorf("from %s: recipe %q not found", fn.Name(), name),
	}
}

func ItemNotFoundError(name, recipe string) error {
	msg := "Cannot find <em>%s</em> referenced by recipe <em>%s</em>"
	vars := []any{name, recipe}
	pc, _, _, _ := runtime.Caller(1)
	fn := runtime.FuncForPC(pc)
	return &gn.Error{
		Code: errcode.DatasetItemNotFoundError,
		Msg:  msg,
		Vars: vars,
		Err: fmt.Errorf("from %s: %q of recipe %q not found",
			fn.Name(), name, recipe),
	}
}
