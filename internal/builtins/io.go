package builtins

import (
	"os"

	"github.com/maximvlas/flsgo/internal/interp"
	"github.com/maximvlas/flsgo/internal/value"
)

// RegisterIO wires the file-system natives. Each native opens and
// closes its file within the call; no file handle is held across a call
// boundary.
func RegisterIO(i *interp.Interpreter) {
	i.DefineNative("readFile", 1, func(args []value.Value, reportError func(string, ...any)) value.Value {
		path, ok := stringArg(args, 0)
		if !ok {
			reportError("readFile() takes one string argument (path).")
			return value.NilValue
		}
		content, err := os.ReadFile(path)
		if err != nil {
			reportError("Could not read file \"%s\".", path)
			return value.NilValue
		}
		return i.Intern(string(content))
	})

	i.DefineNative("writeFile", 2, func(args []value.Value, reportError func(string, ...any)) value.Value {
		path, content, ok := stringPairArg(args)
		if !ok {
			reportError("writeFile() takes two string arguments (path, content).")
			return value.NilValue
		}
		if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
			reportError("Could not open file \"%s\" for writing.", path)
		}
		return value.NilValue
	})

	i.DefineNative("appendFile", 2, func(args []value.Value, reportError func(string, ...any)) value.Value {
		path, content, ok := stringPairArg(args)
		if !ok {
			reportError("appendFile() takes two string arguments (path, content).")
			return value.NilValue
		}
		f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
		if err != nil {
			reportError("Could not open file \"%s\" for appending.", path)
			return value.NilValue
		}
		defer f.Close()
		if _, err := f.WriteString(content); err != nil {
			reportError("Could not append to file \"%s\".", path)
		}
		return value.NilValue
	})

	i.DefineNative("fileExists", 1, func(args []value.Value, reportError func(string, ...any)) value.Value {
		path, ok := stringArg(args, 0)
		if !ok {
			reportError("fileExists() takes one string argument (path).")
			return value.NilValue
		}
		_, err := os.Stat(path)
		return value.BoolVal(err == nil)
	})

	i.DefineNative("deleteFile", 1, func(args []value.Value, reportError func(string, ...any)) value.Value {
		path, ok := stringArg(args, 0)
		if !ok {
			reportError("deleteFile() takes one string argument (path).")
			return value.NilValue
		}
		return value.BoolVal(os.Remove(path) == nil)
	})

	i.DefineNative("fileSize", 1, func(args []value.Value, reportError func(string, ...any)) value.Value {
		path, ok := stringArg(args, 0)
		if !ok {
			reportError("fileSize() takes one string argument (path).")
			return value.NilValue
		}
		info, err := os.Stat(path)
		if err != nil {
			return value.NilValue
		}
		return value.NumberVal(float64(info.Size()))
	})

	i.DefineNative("isDir", 1, func(args []value.Value, reportError func(string, ...any)) value.Value {
		path, ok := stringArg(args, 0)
		if !ok {
			reportError("isDir() takes one string argument (path).")
			return value.NilValue
		}
		info, err := os.Stat(path)
		return value.BoolVal(err == nil && info.IsDir())
	})

	i.DefineNative("isFile", 1, func(args []value.Value, reportError func(string, ...any)) value.Value {
		path, ok := stringArg(args, 0)
		if !ok {
			reportError("isFile() expects one string argument.")
			return value.NilValue
		}
		info, err := os.Stat(path)
		return value.BoolVal(err == nil && info.Mode().IsRegular())
	})
}

func stringArg(args []value.Value, idx int) (string, bool) {
	if idx >= len(args) || !value.IsString(args[idx]) {
		return "", false
	}
	return value.AsString(args[idx]).String(), true
}

func stringPairArg(args []value.Value) (string, string, bool) {
	a, okA := stringArg(args, 0)
	b, okB := stringArg(args, 1)
	return a, b, okA && okB
}
