// Command lumisp is the host CLI for the interpreter (§6): one-shot
// expression evaluation, file evaluation, and an interactive read-eval-
// print loop, dispatched from stdlib flag/log alone — no CLI framework.
package main

import (
	"bufio"
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	lumisp "github.com/mongoosemoo/lumisp"
)

func main() {
	evalExpr := flag.String("e", "", "Evaluate a single expression and print its result")
	interactive := flag.Bool("i", false, "Start an interactive read-eval-print loop")
	flag.Parse()

	ev := lumisp.NewEvaluator()
	env := ev.NewScope()

	switch {
	case *evalExpr != "":
		runOne(ev, env, *evalExpr)
	case *interactive:
		repl(ev, env)
	case flag.NArg() == 1:
		runFile(ev, env, flag.Arg(0))
	default:
		fmt.Fprintln(os.Stderr, "usage: lumisp [-e EXPR | -i | FILE]")
		os.Exit(2)
	}
}

func runOne(ev *lumisp.Evaluator, env *lumisp.Environment, src string) {
	forms, err := lumisp.ReadAll(src)
	if err != nil {
		log.Fatalf("lumisp: %v", err)
	}
	var last lumisp.Value
	for _, form := range forms {
		last, err = ev.Eval(form, env)
		if err != nil {
			log.Fatalf("lumisp: %v", err)
		}
	}
	fmt.Println(lumisp.Format(last))
}

func runFile(ev *lumisp.Evaluator, env *lumisp.Environment, path string) {
	data, err := os.ReadFile(path)
	if err != nil {
		log.Fatalf("lumisp: %v", err)
	}
	forms, err := lumisp.ReadAll(string(data))
	if err != nil {
		log.Fatalf("lumisp: %v", err)
	}
	var last lumisp.Value
	for _, form := range forms {
		last, err = ev.Eval(form, env)
		if err != nil {
			log.Fatalf("lumisp: %v", err)
		}
	}
	fmt.Println(lumisp.Format(last))
}

// repl reads one top-level datum per prompt, accumulating lines until the
// reader reports a complete datum or a genuine parse error, evaluates it
// against the shared session environment, and prints the canonical result —
// no line editing or history, since line editing is out of scope for this
// core; this is the minimal loop needed to drive the evaluator interactively.
func repl(ev *lumisp.Evaluator, env *lumisp.Environment) {
	scanner := bufio.NewScanner(os.Stdin)
	var buf string
	fmt.Fprint(os.Stdout, "> ")
	for scanner.Scan() {
		if buf == "" {
			buf = scanner.Text()
		} else {
			buf = buf + "\n" + scanner.Text()
		}

		v, err := ev.EvalSource(buf, env)
		if err != nil {
			if lumisp.IsIncompleteInput(err) {
				fmt.Fprint(os.Stdout, "... ")
				continue
			}
			fmt.Fprintf(os.Stderr, "error: %v\n", err)
		} else {
			fmt.Fprintln(os.Stdout, lumisp.Format(v))
		}
		buf = ""
		fmt.Fprint(os.Stdout, "> ")
	}
	if err := scanner.Err(); err != nil && err != io.EOF {
		log.Fatalf("lumisp: %v", err)
	}
	fmt.Fprintln(os.Stdout)
}
