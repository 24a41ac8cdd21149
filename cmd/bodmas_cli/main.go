package main

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/bodmaslab/bodmas-master/internal/apperr"
	"github.com/bodmaslab/bodmas-master/internal/solver"
	"github.com/bodmaslab/bodmas-master/pkg/utils"
)

func main() {
	sv := solver.New()

	args := os.Args[1:]
	if len(args) > 0 {
		for _, expression := range args {
			if err := solveAndPrint(sv, expression); err != nil {
				printError(err)
				os.Exit(1)
			}
		}
		return
	}

	repl(sv)
}

func repl(sv *solver.Solver) {
	fmt.Println("BODMAS Master. Type an expression, or quit to leave.")

	scanner := bufio.NewScanner(os.Stdin)
	fmt.Print("bodmas> ")
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		switch line {
		case "":
		case "quit", "exit":
			return
		default:
			if err := solveAndPrint(sv, line); err != nil {
				printError(err)
			}
		}
		fmt.Print("bodmas> ")
	}

	if err := scanner.Err(); err != nil {
		fmt.Fprintln(os.Stderr, "Error reading input:", err)
	}
}

func solveAndPrint(sv *solver.Solver, expression string) error {
	sol, err := sv.Solve(expression)
	if err != nil {
		return err
	}

	fmt.Println(sol.Expression)
	for _, step := range sol.Steps {
		fmt.Printf("step %d: %s -> %s\n", step.Index, step.Description, step.Expression)
	}
	fmt.Println("=", utils.FormatNumber(sol.Value))
	return nil
}

func printError(err error) {
	if kind := apperr.Kind(err); kind != "" {
		fmt.Fprintf(os.Stderr, "%s: %s\n", kind, err)
		return
	}
	fmt.Fprintln(os.Stderr, err)
}
