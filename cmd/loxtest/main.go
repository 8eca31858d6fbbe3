// Command loxtest is the golden-file descendant of the teacher's
// two-binary comparison harness (root main.go, test/*.go): instead of
// diffing a reference interpreter's output against a target binary's,
// it diffs golox's own output against a checked-in .golden file per
// .lox script in testdata/.
package main

import (
	"bytes"
	"flag"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/fatih/color"

	"golox/internal/lox"
)

const width = 100

var update = flag.Bool("update", false, "write actual output over the golden file instead of comparing")

// Case is one testdata/<name>.lox paired with its expected stdout.
type Case struct {
	Name       string
	ScriptPath string
	GoldenPath string
	Expected   string
	Actual     string
	Passed     bool
}

func main() {
	flag.Parse()

	dir := "testdata"
	if flag.NArg() > 0 {
		dir = flag.Arg(0)
	}

	cases, err := collectCases(dir)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	failed := 0
	for _, tc := range cases {
		runCase(tc)
		if *update {
			if err := os.WriteFile(tc.GoldenPath, []byte(tc.Actual), 0o644); err != nil {
				fmt.Fprintln(os.Stderr, err)
				os.Exit(1)
			}
			continue
		}
		printResult(tc)
		if !tc.Passed {
			failed++
		}
	}

	if *update {
		fmt.Printf("updated %d golden file(s)\n", len(cases))
		return
	}

	fmt.Println()
	fmt.Printf("%d/%d passed\n", len(cases)-failed, len(cases))
	if failed > 0 {
		os.Exit(1)
	}
}

// collectCases finds every <name>.lox under dir and pairs it with the
// path of its sibling <name>.golden (which need not exist yet; -update
// creates it), sorted by name.
func collectCases(dir string) ([]*Case, error) {
	var cases []*Case
	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || !strings.HasSuffix(path, ".lox") {
			return nil
		}
		golden := strings.TrimSuffix(path, ".lox") + ".golden"
		cases = append(cases, &Case{
			Name:       strings.TrimSuffix(d.Name(), ".lox"),
			ScriptPath: path,
			GoldenPath: golden,
		})
		return nil
	})
	if err != nil {
		return nil, err
	}
	sort.Slice(cases, func(i, j int) bool { return cases[i].Name < cases[j].Name })
	return cases, nil
}

// runCase lexes, parses, and interprets the script in-process, capturing
// stdout rather than spawning a child process per case (the teacher's
// harness ran two separate executables; golox has exactly one).
func runCase(tc *Case) {
	src, err := os.ReadFile(tc.ScriptPath)
	if err != nil {
		tc.Actual = err.Error()
		return
	}

	var out bytes.Buffer
	_ = lox.New(&out).RunFile(string(src))
	tc.Actual = out.String()

	golden, err := os.ReadFile(tc.GoldenPath)
	if err == nil {
		tc.Expected = string(golden)
	}
	tc.Passed = tc.Expected == tc.Actual
}

func printResult(tc *Case) {
	status := color.GreenString("passed")
	if !tc.Passed {
		status = color.RedString("failed")
	}
	fmt.Printf("[%s] %s\n", status, tc.Name)

	if tc.Passed {
		return
	}
	divider := strings.Repeat("-", width)
	fmt.Println(divider)
	fmt.Printf("%-*s%s\n", width/2, "expected", "actual")
	printDiff(tc.Expected, tc.Actual)
	fmt.Println(divider)
}

// printDiff prints expected/actual side by side, line by line, the way
// the teacher's printDiff does.
func printDiff(expected, actual string) {
	expLines := strings.Split(expected, "\n")
	actLines := strings.Split(actual, "\n")

	n := len(expLines)
	if len(actLines) > n {
		n = len(actLines)
	}
	for i := 0; i < n; i++ {
		var e, a string
		if i < len(expLines) {
			e = expLines[i]
		}
		if i < len(actLines) {
			a = actLines[i]
		}
		spaces := width/2 - len(e)
		if spaces < 1 {
			spaces = 1
		}
		fmt.Printf("%s%s%s\n", e, strings.Repeat(" ", spaces), a)
	}
}
