package stack

import (
	"path"
	"runtime"
	"strconv"
	"strings"
)

// Record returns a "function(file:line)" record of the caller.
// depth=0 records the immediate caller of Record.
func Record(depth int) string {
	pc, file, line, ok := runtime.Caller(depth + 1)
	if !ok {
		return "unknown"
	}

	var b strings.Builder
	if fn := runtime.FuncForPC(pc); fn != nil {
		b.WriteString(funcName(fn.Name()))
	}
	b.WriteByte('(')
	b.WriteString(path.Base(file))
	b.WriteByte(':')
	b.WriteString(strconv.Itoa(line))
	b.WriteByte(')')

	return b.String()
}

// funcName strips the directory part of a fully qualified function name,
// keeping "pkg.Func" (or "pkg.(*Type).Method").
func funcName(full string) string {
	if i := strings.LastIndexByte(full, '/'); i >= 0 {
		return full[i+1:]
	}

	return full
}
