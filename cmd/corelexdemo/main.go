// Command corelexdemo lexes its argument (or a built-in sample sentence)
// using a small hand-built grammar and prints the resulting token forest.
// It exists to exercise the public lexer API end to end, not as a
// general-purpose tokenizer.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/coregx/corelex/lexer"
	"github.com/coregx/corelex/stmt"
)

func buildGrammar() *stmt.Statement {
	word := stmt.Save("word", stmt.MustReader(`\w+`))
	number := stmt.Save("number", stmt.MustReader(`\d+`))
	space := stmt.MustReader(" +")
	token := stmt.Alternation(number, word)
	return stmt.Concat(token, stmt.ZeroOrMore(stmt.Concat(space, token)))
}

func main() {
	flag.Parse()

	input := "the answer is 42"
	if flag.NArg() > 0 {
		input = flag.Arg(0)
	}

	lx, err := lexer.New(buildGrammar())
	if err != nil {
		fmt.Fprintln(os.Stderr, "corelexdemo: compile:", err)
		os.Exit(1)
	}

	forest, err := lx.Lex(input)
	if err != nil {
		fmt.Fprintln(os.Stderr, "corelexdemo: lex:", err)
		os.Exit(1)
	}

	for _, tok := range forest {
		fmt.Printf("%-8s %-12q [%d,%d)\n", tok.Name, tok.Text, tok.Start, tok.End)
	}
}
