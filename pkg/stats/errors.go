package stats

import (
	"fmt"
	"runtime"

	"github.com/gnames/gn"
	"github.com/icarusdb/icdb/pkg/errcode"
)

func StatParseError(key string) error {
	msg := "Stat key <em>%s</em> cannot be parsed"
	vars := []any{key}
	pc, _, _, _ := runtime.Caller(1)
	fn := runtime.FuncForPC(pc)
	return &gn.Error{
		Code: errcode.StatParseError,
		Msg:  msg,
		Vars: vars,
		Err:  fmt.Errorf("from %s: stat %q cannot be parsed", fn.Name(), key),
	}
}

func ModifierNotFoundError(modifier, consumable string) error {
	msg := "Modifier <em>%s</em> of consumable <em>%s</em> not found"
	vars := []any{modifier, consumable}
	pc, _, _, _ := runtime.Caller(1)
	fn := runtime.FuncForPC(pc)
	return &gn.Error{
		Code: errcode.ModifierNotFoundError,
		Msg:  msg,
		Vars: vars,
		Err: fmt.Errorf("from %s: modifier %q of consumable %q not found",
			fn.Name(), modifier, consumable),
	}
}
