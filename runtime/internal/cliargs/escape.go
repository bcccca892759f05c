package cliargs

import (
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/pkg/errors"
)

// Unescape interprets backslash escapes in a format typed on a command
// line: \n \t \\ \" \' \a \b \f \r \v \xHH \ooo \uXXXX \UXXXXXXXX.
// \xHH and \ooo produce raw bytes.
func Unescape(s string) (string, error) {
	if strings.IndexByte(s, '\\') < 0 {
		return s, nil
	}
	buf := make([]byte, 0, len(s))
	for i := 0; i < len(s); {
		if s[i] != '\\' {
			buf = append(buf, s[i])
			i++
			continue
		}
		if i+1 < len(s) && (s[i+1] == '"' || s[i+1] == '\'') {
			buf = append(buf, s[i+1])
			i += 2
			continue
		}
		r, multibyte, tail, err := strconv.UnquoteChar(s[i:], 0)
		if err != nil {
			return "", errors.Errorf("bad escape at offset %d in %q", i, s)
		}
		if r < utf8.RuneSelf || !multibyte {
			buf = append(buf, byte(r))
		} else {
			buf = utf8.AppendRune(buf, r)
		}
		i = len(s) - len(tail)
	}
	return string(buf), nil
}
