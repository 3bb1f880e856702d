package ioexport

import (
	"fmt"
	"runtime"

	"github.com/gnames/gn"
	"github.com/icarusdb/icdb/pkg/errcode"
)

func ExportOpenError(path string, err error) error {
	msg := "Cannot create database <em>%s</em>"
	vars := []any{path}
	pc, _, _, _ := runtime.Caller(1)
	fn := runtime.FuncForPC(pc)
	return &gn.Error{
		Code: errcode.ExportOpenError,
		Msg:  msg,
		Vars: vars,
		Err:  fmt.Errorf("from %s: cannot create %s: %w", fn.Name(), path, err),
	}
}

func ExportSchemaError(err error) error {
	msg := "Cannot create database schema"
	pc, _, _, _ := runtime.Caller(1)
	fn := runtime.FuncForPC(pc)
	return &gn.Error{
		Code: errcode.ExportSchemaError,
		Msg:  msg,
		Err:  fmt.Errorf("from %s: cannot create schema: %w", fn.Name(), err),
	}
}

func ExportInsertError(table string, err error) error {
	msg := "Cannot insert data into <em>%s</em>"
	vars := []any{table}
	pc, _, _, _ := runtime.Caller(1)
	fn := runtime.FuncForPC(pc)
	return &gn.Error{
		Code: errcode.ExportInsertError,
		Msg:  msg,
		Vars: vars,
		Err:  fmt.Errorf("from %s: cannot insert into %s: %w", fn.Name(), table, err),
	}
}
