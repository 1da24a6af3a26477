/*
Package utilz provides small ergonomic helpers for Go's built-in types.

# Overview

Utilz shortens the conditional-branching and default-value boilerplate that
accumulates around options, errors, booleans, slices, maps and strings. Every
helper is a thin, constant-time wrapper over a language primitive; the only
stateful piece is a small in-memory log facility with a severity filter.

# Highlights

  - Option and Result carriers: IfSome, OrDefault, IfOk, IfErr, OrExit
  - Bool sugar: Not, Toggle, ThenVal, IfTrue, IfFalse
  - Slice sugar: PushIf, PushIfWith (lazy value production)
  - Map sugar: GetOr, InsertIf, Lookup
  - String sugar: ContainsAll, ContainsAny, ToTitleCase
  - Reflection sugar: TypeName, MemSize, View
  - Conversions: TryConvert, Convert, ConvertOr (checked integer narrowing)
  - Duration formatting: Pretty ("1h 2m 3s")
  - Clamping and parity: ClampTo, IsEven, IsOdd, Xor
  - Iterator sugar: FindMapOr, FindMapSeqOr
  - Tap-style chaining: Tap
  - In-memory logging: Logger, plus a package-level default

# Quick Example

	user := utilz.Lookup(users, "bob").
	    IfSome(func(u User) { fmt.Println("found", u.Name) }).
	    OrDefault(guest)

	var flags []string
	utilz.PushIf(&flags, "--verbose", verbose)

	fmt.Println(utilz.Pretty(93 * time.Second)) // "1m 33s"

# Logging

The log facility keeps entries in memory rather than writing them anywhere.
Entries below the current filter are discarded at call time; stored entries
are never re-filtered.

	utilz.SetUpLogger(utilz.WarnLevel)
	utilz.LogInfo("ignored")
	utilz.LogError("kept")
	fmt.Println(utilz.GetLogs()) // ["[ERROR] kept"]

Library code that should not share process-wide state can own its handle:

	log := utilz.NewLogger()
	log.SetLevel(utilz.DebugLevel)
	log.Debug("scoped to this logger")

# Philosophy

Use what you want, ignore the rest. Helpers never panic; the one deliberately
fatal path is OrExit, which prints to stderr and terminates the process.
*/
package utilz
