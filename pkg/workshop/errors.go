package workshop

import (
	"fmt"
	"runtime"

	"github.com/gnames/gn"
	"github.com/icarusdb/icdb/pkg/errcode"
)

func CurrencyError(currency, item string) error {
	msg := "Workshop currency <em>%s</em> of <em>%s</em> is not known"
	vars := []any{currency, item}
	pc, _, _, _ := runtime.Caller(1)
	fn := runtime.FuncForPC(pc)
	return &gn.Error{
		Code: errcode.WorkshopCurrencyError,
		Msg:  msg,
		Vars: vars,
		Err: fmt.Errorf("from %s: unknown currency %q in %q",
			fn.Name(), currency, item),
	}
}
