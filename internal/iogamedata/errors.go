package iogamedata

import (
	"fmt"
	"runtime"

	"github.com/gnames/gn"
	"github.com/icarusdb/icdb/pkg/errcode"
)

func DatasetReadError(path string, err error) error {
	msg := "Cannot read summarized dataset <em>%s</em>"
	vars := []any{path}
	pc, _, _, _ := runtime.Caller(1)
	fn := runtime.FuncForPC(pc)
	return &gn.Error{
		Code: errcode.DatasetReadError,
		Msg:  msg,
		Vars: vars,
		Err:  fmt.Errorf("from %s: cannot read %s: %w", fn.Name(), path, err),
	}
}
