package builtins

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/maximvlas/flsgo/internal/interp"
	"github.com/maximvlas/flsgo/internal/lexer"
	"github.com/maximvlas/flsgo/internal/parser"
)

func run(t *testing.T, src string) (string, interp.InterpretResult) {
	t.Helper()
	l := lexer.New(src)
	p := parser.New(l)
	statements := p.ParseProgram()
	require.Empty(t, p.Errors())

	var out bytes.Buffer
	i := interp.New(&out)
	RegisterSystem(i)
	RegisterIO(i)
	RegisterMath(i)
	RegisterStrings(i)

	result := i.Interpret(statements)
	return out.String(), result
}

func TestWriteJoinsArgumentsWithSpaces(t *testing.T) {
	out, result := run(t, `write(1, "two", 3);`)
	require.Equal(t, interp.InterpretOK, result)
	require.Equal(t, "1 two 3", out)
}

func TestWritelnAppendsNewline(t *testing.T) {
	out, result := run(t, `writeln("hi");`)
	require.Equal(t, interp.InterpretOK, result)
	require.Equal(t, "hi\n", out)
}

func TestMathNatives(t *testing.T) {
	out, result := run(t, `writeln(sqrt(16)); writeln(abs(-3));`)
	require.Equal(t, interp.InterpretOK, result)
	require.Equal(t, "4\n3\n", out)
}

func TestStringComparisonNatives(t *testing.T) {
	out, result := run(t, `writeln(compareStr("a", "b")); writeln(sameText("ABC", "abc")); writeln(compareText("ABC", "abc"));`)
	require.Equal(t, interp.InterpretOK, result)
	require.Equal(t, "-1\ntrue\n0\n", out)
}

func TestNormalizeReturnsNFCForm(t *testing.T) {
	// "e" + U+0301 (combining acute) composes to the single code point U+00E9.
	out, result := run(t, "writeln(normalize(\"é\") == \"é\");")
	require.Equal(t, interp.InterpretOK, result)
	require.Equal(t, "true\n", out)
}

func TestFileRoundTrip(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "greeting.txt")

	src := `writeFile("` + escapePath(path) + `", "hello");
writeln(readFile("` + escapePath(path) + `"));
writeln(fileExists("` + escapePath(path) + `"));
writeln(isFile("` + escapePath(path) + `"));
writeln(isDir("` + escapePath(path) + `"));`

	out, result := run(t, src)
	require.Equal(t, interp.InterpretOK, result)
	require.Equal(t, "hello\ntrue\ntrue\nfalse\n", out)

	_, err := os.Stat(path)
	require.NoError(t, err)
}

func TestAppendFileAddsToExistingContent(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "log.txt")

	src := `writeFile("` + escapePath(path) + `", "a");
appendFile("` + escapePath(path) + `", "b");
writeln(readFile("` + escapePath(path) + `"));`

	out, result := run(t, src)
	require.Equal(t, interp.InterpretOK, result)
	require.Equal(t, "ab\n", out)
}

func TestDeleteFileRemovesIt(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "gone.txt")
	require.NoError(t, os.WriteFile(path, []byte("x"), 0o644))

	src := `writeln(deleteFile("` + escapePath(path) + `"));
writeln(fileExists("` + escapePath(path) + `"));`

	out, result := run(t, src)
	require.Equal(t, interp.InterpretOK, result)
	require.Equal(t, "true\nfalse\n", out)
}

func TestReadMissingFileIsRuntimeError(t *testing.T) {
	_, result := run(t, `readFile("/does/not/exist.txt");`)
	require.Equal(t, interp.InterpretRuntimeError, result)
}

// escapePath turns OS-specific separators that might include a backslash
// (Windows) into forward slashes so the fls string literal stays valid;
// the interpreter itself doesn't use backslash escapes.
func escapePath(p string) string {
	out := make([]rune, 0, len(p))
	for _, r := range p {
		if r == '\\' {
			out = append(out, '/')
			continue
		}
		out = append(out, r)
	}
	return string(out)
}
