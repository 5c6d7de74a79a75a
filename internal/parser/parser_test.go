package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tsuki/internal/ast"
)

func parseToString(t *testing.T, source string) string {
	t.Helper()
	exprs, parseErrors, scanErrors := ParseSource(source)
	require.Empty(t, scanErrors, "Should scan without errors")
	require.Empty(t, parseErrors, "Should parse without errors")
	return ast.PrettyPrint(exprs)
}

func TestParseProgram(t *testing.T) {
	source := `{printfln: println} := import("fmt")
{each: each} := import("std")

names := ["Nobu", "Sol", "Thomas", "Damian", "Ryan", "Zen", "Esfir"]
each(names) <| func(name) println("Hello, %{}!", name)


// fizzbuzz
std := import("std")

public func fizzbuzz(n) match ([n % 3, n % 5]) {
    [0, 0] -> "FizzBuzz",
    [0, _] -> "Fizz",
    [_, 0] -> "Buzz",
    _ -> string(n),
}

std.range(1, 101) |> std.each() <| func(n) {
    std.println(fizzbuzz(n))
}`
	expected := `(assignI (object printfln:println) (import "fmt"))
(assignI (object each:each) (import "std"))
(assignI names (list "Nobu" "Sol" "Thomas" "Damian" "Ryan" "Zen" "Esfir"))
(each names (lambda (name) (println "Hello, %{}!" name)))
(assignI std (import "std"))
(func [public] fizzbuzz (n) (match ((list (Mod n 3) (Mod n 5))) (list 0 0) -> "FizzBuzz" (list 0 :_:) -> "Fizz" (list :_: 0) -> "Buzz" :_: -> (string n)))
std.std.(each (lambda (n) (block std.(println (fizzbuzz n)))))`

	assert.Equal(t, expected, parseToString(t, source))
}

func TestParseAnonymousFunc(t *testing.T) {
	out := parseToString(t, `add := func (x, y) x + y`)
	assert.Equal(t, "(assignI add (lambda (x y) (Plus x y)))", out)
}

func TestParseShorthandAnonymousFunc(t *testing.T) {
	out := parseToString(t, `something := -> 100`)
	assert.Equal(t, "(assignI something (lambda () 100))", out)
}

func TestParseCallbackFunc(t *testing.T) {
	out := parseToString(t, `some_func() <~ (a, b) a + b`)
	assert.Equal(t, "(some_func (lambda (a b) (Plus a b)))", out)
}

func TestParseCallbackFuncWithoutParams(t *testing.T) {
	out := parseToString(t, `run() <~ println("done")`)
	assert.Equal(t, `(run (lambda () (println "done")))`, out)
}

func TestParseAtomExpr(t *testing.T) {
	out := parseToString(t, "name := :nobu")
	assert.Equal(t, "(assignI name :nobu)", out)
}

func TestParseUnderscoreExpr(t *testing.T) {
	out := parseToString(t, "underscore := _")
	assert.Equal(t, "(assignI underscore :_:)", out)
}

func TestParseListAndObjectExpr(t *testing.T) {
	out := parseToString(t, `[1, 2, "abc", {name: "Nobuharu", age: 16}]`)
	assert.Equal(t, `(list 1 2 "abc" (object name:"Nobuharu" age:16))`, out)
}

func TestParseEmptyBracesAreObject(t *testing.T) {
	out := parseToString(t, "x := {}")
	assert.Equal(t, "(assignI x (object))", out)
}

func TestParseMatchExpr(t *testing.T) {
	out := parseToString(t, `match name { "nobu" -> println("cool!"), _ -> { println("hello") } }`)
	assert.Equal(t, `(match name "nobu" -> (println "cool!") :_: -> (block (println "hello")))`, out)
}

func TestParseAssignExpr(t *testing.T) {
	out := parseToString(t, `[name, _] := ["Nobu", 16] [some_list.0, _] = [1, 3]`)
	assert.Equal(t, `(assignI (list name :_:) (list "Nobu" 16))
(assign (list some_list.0 :_:) (list 1 3))`, out)
}

func TestParseBindingFlavors(t *testing.T) {
	assert.Equal(t, "(assign x 5)", parseToString(t, "x = 5"))
	assert.Equal(t, "(assignI x 5)", parseToString(t, "x := 5"))
	assert.Equal(t, "(assignPI x 5)", parseToString(t, "x |= 5"))
	assert.Equal(t, "(assignM x 5)", parseToString(t, "x $= 5"))
}

func TestParseCompoundAssign(t *testing.T) {
	assert.Equal(t, "(assign x (PlusEq x 2))", parseToString(t, "x += 2"))
	assert.Equal(t, "(assign x (MinusEq x 2))", parseToString(t, "x -= 2"))
	assert.Equal(t, "(assign x (MulEq x 2))", parseToString(t, "x *= 2"))
	assert.Equal(t, "(assign x (DivEq x 2))", parseToString(t, "x /= 2"))
	assert.Equal(t, "(assign x (ModEq x 2))", parseToString(t, "x %= 2"))
}

func TestParseIncrementDecrement(t *testing.T) {
	assert.Equal(t, "(assign i (Plus i 1))", parseToString(t, "i++"))
	assert.Equal(t, "(assign i (Minus i 1))", parseToString(t, "i--"))
}

func TestParseMemberAssignment(t *testing.T) {
	out := parseToString(t, `person.name = "Nobu"`)
	assert.Equal(t, `(set person.name "Nobu")`, out)
}

func TestParseMemberAssignmentByIndex(t *testing.T) {
	out := parseToString(t, "some_list.0 = 5")
	assert.Equal(t, "(set some_list.0 5)", out)
}

func TestParseMemberAccessBindsBelowAssignment(t *testing.T) {
	// The '=' must stay outside the access; only the member goes inside
	out := parseToString(t, "config.port = default_port()")
	assert.Equal(t, "(set config.port (default_port))", out)
}

func TestParseShortHandMatchExpr(t *testing.T) {
	out := parseToString(t, `name := cool? ? "nobu" : "sol"`)
	assert.Equal(t, `(assignI name (match cool? true -> "nobu" :_: -> "sol"))`, out)
}

func TestParseUnsafeExpr(t *testing.T) {
	out := parseToString(t, `result := unsafe ( 100 / 0 )`)
	assert.Equal(t, "(assignI result (unsafe ((Div 100 0))))", out)
}

func TestParseShellOperator(t *testing.T) {
	out := parseToString(t, "result := $`echo \"Hello\\nWorld\"`")
	assert.Equal(t, `(assignI result (shell_op "echo "Hello\nWorld""))`, out)
}

func TestParseUnaryExpr(t *testing.T) {
	assert.Equal(t, "(Not false)", parseToString(t, "not false"))
	assert.Equal(t, "(Bang false)", parseToString(t, "!false"))
	assert.Equal(t, "(Minus 5)", parseToString(t, "- 5"))
}

func TestParsePrecedence(t *testing.T) {
	assert.Equal(t, "(Plus 1 (Mul 2 3))", parseToString(t, "1 + 2 * 3"))
	assert.Equal(t, "(Minus (Minus 1 2) 3)", parseToString(t, "1 - 2 - 3"),
		"Same-level operators fold to the left")
	assert.Equal(t, "(Eq (Less 1 2) true)", parseToString(t, "1 < 2 == true"))
	assert.Equal(t, "(Or (And a b) c)", parseToString(t, "a and b or c"))
	assert.Equal(t, "(PipePipe (AmpAmp a b) c)", parseToString(t, "a && b || c"))
}

func TestParseRestParam(t *testing.T) {
	out := parseToString(t, "func some_func(_, nums+) {}")
	assert.Equal(t, "(func some_func (Underscore nums+) (object))", out)
}

func TestParseUnpackingArg(t *testing.T) {
	out := parseToString(t, "some_func(...abc)")
	assert.Equal(t, "(some_func ...abc)", out)
}

func TestParsePipeIntoCall(t *testing.T) {
	out := parseToString(t, "value |> process(extra)")
	assert.Equal(t, "(process value extra)", out)
}

func TestParseLeftPipeAppendsArg(t *testing.T) {
	out := parseToString(t, "process(a) <| b")
	assert.Equal(t, "(process a b)", out)
}

func TestParseDecorators(t *testing.T) {
	out := parseToString(t, `@[some_decorator("something"), another] public func abc() {}`)
	assert.Equal(t, `(assignPI abc (another (some_decorator (lambda () (object)) "something")))`, out)
}

func TestParseDecoratorOrder(t *testing.T) {
	// The first listed decorator wraps the function; the last is outermost
	out := parseToString(t, "@[a, b, c] func f() {}")
	assert.Equal(t, "(assignI f (c (b (a (lambda () (object))))))", out)
}

func TestParseMacros(t *testing.T) {
	source := `def NAME "Nobu" println(#NAME) redef NAME "Sol" println(#NAME)`
	expected := "null\n(println \"Nobu\")\nnull\n(println \"Sol\")"
	assert.Equal(t, expected, parseToString(t, source))
}

func TestParseMacroExpansionIsIndependent(t *testing.T) {
	exprs, parseErrors, scanErrors := ParseSource("def V [1] f(#V) g(#V)")
	require.Empty(t, scanErrors)
	require.Empty(t, parseErrors)
	require.Len(t, exprs, 3)

	first := exprs[1].(*ast.Call).Args[0].Value.(*ast.ListLiteral)
	second := exprs[2].(*ast.Call).Args[0].Value.(*ast.ListLiteral)
	assert.NotSame(t, first, second, "Each use must splice a fresh copy")
}

func TestParseTryExpr(t *testing.T) {
	out := parseToString(t, `try result {} else {}`)
	assert.Equal(t, "(match (error? result) true -> (object) false -> (object))", out)
}

func TestParseTryWithoutElse(t *testing.T) {
	out := parseToString(t, "try result {}")
	assert.Equal(t, "(match (error? result) true -> (object) false -> null)", out)
}

func TestParseGroupedAssignmentValue(t *testing.T) {
	out := parseToString(t, "a = (b = c)")
	assert.Equal(t, "(assign a ((assign b c)))", out)
}

func TestParseTrailingCommaInList(t *testing.T) {
	out := parseToString(t, "[1, 2, 3,]")
	assert.Equal(t, "(list 1 2 3)", out)
}
