package ioload

import (
	"errors"
	"fmt"
	"runtime"

	"github.com/gnames/gn"
	"github.com/icarusdb/icdb/pkg/errcode"
)

var errInvalidJSON = errors.New("invalid JSON")

func TableDecodeError(path string, err error) error {
	msg := "Cannot decode table <em>%s</em>"
	vars := []any{path}
	pc, _, _, _ := runtime.Caller(1)
	fn := runtime.FuncForPC(pc)
	return &gn.Error{
		Code: errcode.TableDecodeError,
		Msg:  msg,
		Vars: vars,
		Err:  fmt.Errorf("from %s: cannot decode %s: %w", fn.Name(), path, err),
	}
}

func TableRowStructError(path, field string) error {
	msg := "Table <em>%s</em> has no <em>%s</em> field"
	vars := []any{path, field}
	pc, _, _, _ := runtime.Caller(1)
	fn := runtime.FuncForPC(pc)
	return &gn.Error{
		Code: errcode.TableRowStructError,
		Msg:  msg,
		Vars: vars,
		Err: fmt.Errorf("from %s: %s is missing in %s",
			fn.Name(), field, path),
	}
}
