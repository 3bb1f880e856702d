// Package localization extracts human-readable text from localization
// calls embedded in raw string fields.
//
// A field looks like a function call:
//
//	NSLOCTEXT("Items", "Stick_Name", "Stick")
//
// Unquoted arguments run to the next comma or closing parenthesis.
// Quoted arguments support a doubled quote ("") and the backslash
// escapes \" \' \n \r.
package localization

import (
	"strings"

	"github.com/gnames/gnlib"
)

// FuncNSLOCTEXT is the only localization function with extractable text.
const FuncNSLOCTEXT = "NSLOCTEXT"

// Call is a parsed localization call.
type Call struct {
	Function string
	Args     []string
}

type state int

const (
	startArg state = iota
	inQuoted
	afterQuoted
	inUnquoted
)

// Parse splits a localization call into the function name and its
// arguments.
func Parse(text string) (Call, error) {
	open := strings.IndexByte(text, '(')
	if open == -1 {
		return Call{}, ParseError(text, "no opening parenthesis")
	}

	res := Call{Function: strings.TrimSpace(text[:open])}
	var arg strings.Builder
	var afterComma bool
	st := startArg

	push := func() {
		val := arg.String()
		if st == inUnquoted {
			val = strings.TrimRight(val, " \t")
		}
		res.Args = append(res.Args, val)
		arg.Reset()
	}

	for i := open + 1; i < len(text); i++ {
		c := text[i]
		switch st {
		case startArg:
			switch c {
			case ' ', '\t':
			case '"':
				st = inQuoted
			case ',':
				push()
				afterComma = true
			case ')':
				if afterComma {
					push()
				}
				return res, nil
			default:
				arg.WriteByte(c)
				st = inUnquoted
			}
		case inQuoted:
			switch c {
			case '\\':
				if i+1 >= len(text) {
					return Call{}, ParseError(text, "truncated escape sequence")
				}
				i++
				switch text[i] {
				case '"':
					arg.WriteByte('"')
				case '\'':
					arg.WriteByte('\'')
				case 'n':
					arg.WriteByte('\n')
				case 'r':
					arg.WriteByte('\r')
				default:
					return Call{}, ParseError(text,
						"unknown escaped character '"+string(text[i])+"'")
				}
			case '"':
				if i+1 < len(text) && text[i+1] == '"' {
					arg.WriteByte('"')
					i++
				} else {
					st = afterQuoted
				}
			default:
				arg.WriteByte(c)
			}
		case afterQuoted:
			switch c {
			case ' ', '\t':
			case ',':
				push()
				afterComma = true
				st = startArg
			case ')':
				push()
				return res, nil
			default:
				arg.WriteByte(c)
				st = inUnquoted
			}
		case inUnquoted:
			switch c {
			case ',':
				push()
				afterComma = true
				st = startArg
			case ')':
				push()
				return res, nil
			default:
				arg.WriteByte(c)
			}
		}
	}

	return Call{}, ParseError(text, "no closing parenthesis")
}

// ExtractTranslation returns the text of a localization field.
// A nil field or a call of a function other than NSLOCTEXT yields
// ok == false without an error.
func ExtractTranslation(field *string) (string, bool, error) {
	if field == nil {
		return "", false, nil
	}

	call, err := Parse(*field)
	if err != nil {
		return "", false, err
	}

	if call.Function != FuncNSLOCTEXT {
		return "", false, nil
	}

	if len(call.Args) < 3 {
		return "", false, ParseError(*field, "NSLOCTEXT has no third argument")
	}

	return gnlib.FixUtf8(call.Args[2]), true, nil
}
