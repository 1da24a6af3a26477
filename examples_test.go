package utilz_test

import (
	"fmt"
	"strconv"
	"time"

	"github.com/Metehan120/utilz"
)

// ============================================================================
// Example 1: Defaults and conditional branching without if/else ladders
// ============================================================================

func Example_optionSugar() {
	ports := map[string]int{"http": 8080}

	port := utilz.Lookup(ports, "http").
		IfSome(func(p int) { fmt.Println("configured port:", p) }).
		OrDefault(80)
	fmt.Println("using port:", port)

	fallback := utilz.Lookup(ports, "grpc").OrDefault(80)
	fmt.Println("missing entry falls back to:", fallback)

	// Output:
	// configured port: 8080
	// using port: 8080
	// missing entry falls back to: 80
}

func Example_resultSugar() {
	utilz.ResultOf(strconv.Atoi("42")).
		IfOk(func(v int) { fmt.Println("parsed:", v) }).
		IfErr(func(err error) { fmt.Println("failed to parse") })

	utilz.ResultOf(strconv.Atoi("nope")).
		IfErr(func(err error) { fmt.Println("failed to parse") })

	// Output:
	// parsed: 42
	// failed to parse
}

// ============================================================================
// Example 2: Building up collections conditionally
// ============================================================================

func Example_collectionSugar() {
	verbose := true
	dryRun := false

	var flags []string
	utilz.PushIf(&flags, "--verbose", verbose)
	utilz.PushIf(&flags, "--dry-run", dryRun)
	utilz.PushIfWith(&flags, verbose, func() string { return "--log-level=debug" })
	fmt.Println(flags)

	env := map[string]string{"HOME": "/root"}
	utilz.InsertIf(env, "DEBUG", "1", verbose)
	fmt.Println(utilz.GetOr(env, "SHELL", "/bin/sh"))
	fmt.Println(env["DEBUG"])

	// Output:
	// [--verbose --log-level=debug]
	// /bin/sh
	// 1
}

// ============================================================================
// Example 3: Strings, durations, numbers
// ============================================================================

func Example_valueSugar() {
	fmt.Println(utilz.ContainsAll("hello world", "hello", "world"))
	fmt.Println(utilz.ToTitleCase("hello world"))
	fmt.Println(utilz.Pretty(3661 * time.Second))
	fmt.Println(utilz.ClampTo(15, 0, 10))
	fmt.Println(utilz.IsEven(4), utilz.IsOdd(4))

	// Output:
	// true
	// Hello world
	// 1h 1m 1s
	// 10
	// true false
}

// ============================================================================
// Example 4: The in-memory log facility
// ============================================================================

func Example_logging() {
	utilz.ClearLogs()
	utilz.SetUpLogger(utilz.WarnLevel)

	utilz.LogInfo("below the filter, discarded")
	utilz.LogError("kept")

	for _, line := range utilz.GetLogs() {
		fmt.Println(line)
	}

	utilz.ClearLogs()
	fmt.Println("after clear:", len(utilz.GetLogs()))

	// Output:
	// [ERROR] kept
	// after clear: 0
}

func ExampleLogger() {
	log := utilz.NewLogger()
	log.SetLevel(utilz.DebugLevel)

	log.Debug("scoped to this handle")
	log.Error("so is this")

	for _, line := range log.Lines() {
		fmt.Println(line)
	}

	// Output:
	// [DEBUG] scoped to this handle
	// [ERROR] so is this
}
