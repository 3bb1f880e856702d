package datatable

import (
	"fmt"
	"runtime"

	"github.com/gnames/gn"
	"github.com/icarusdb/icdb/pkg/errcode"
)

func DuplicateKeyError(table, key string) error {
	msg := "Table <em>%s</em> has duplicate key <em>%s</em>"
	vars := []any{table, key}
	pc, _, _, _ := runtime.Caller(1)
	fn := runtime.FuncForPC(pc)
	return &gn.Error{
		Code: errcode.DuplicateKeyError,
		Msg:  msg,
		Vars: vars,
		Err: fmt.Errorf("from %s: duplicate key %q in %s",
			fn.Name(), key, table),
	}
}
