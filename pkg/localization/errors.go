package localization

import (
	"fmt"
	"runtime"

	"github.com/gnames/gn"
	"github.com/icarusdb/icdb/pkg/errcode"
)

func ParseError(text, reason string) error {
	msg := "Cannot parse localization call <em>%s</em>: %s"
	vars := []any{text, reason}
	pc, _, _, _ := runtime.Caller(1)
	fn := runtime.FuncForPC(pc)
	return &gn.Error{
		Code: errcode.LocalizationParseError,
		Msg:  msg,
		Vars: vars,
		Err: fmt.Errorf("from %s: cannot parse %q: %s",
			fn.Name(), text, reason),
	}
}
