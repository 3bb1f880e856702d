package iosummary

import (
	"fmt"
	"runtime"

	"github.com/gnames/gn"
	"github.com/icarusdb/icdb/pkg/errcode"
)

func EncodeError(err error) error {
	msg := "Cannot encode summarized dataset"
	pc, _, _, _ := runtime.Caller(1)
	fn := runtime.FuncForPC(pc)
	return &gn.Error{
		Code: errcode.WriteFileError,
		Msg:  msg,
		Err:  fmt.Errorf("from %s: cannot encode dataset: %w", fn.Name(), err),
	}
}
