// Package casekit converts identifiers between naming styles and carries the
// tooling built on top of that conversion.
//
// The root package only reports build details. The work happens in the
// subpackages:
//
//   - casing: ToCamelCase, ToPascalCase, ToSnakeCaseLower and ToSnakeCaseUpper,
//     the Style enum, and deferred conversions through Pending
//   - textutil: slugs, tag stripping, whitespace normalization, pattern
//     matching, locale-aware title casing and a fluent string builder
//   - batch: converts many names at once with bounded concurrency and reports
//     names that collide after conversion
//   - rekey: renames every mapping key of a YAML or JSON document while
//     keeping comments, key order and values intact
//   - caseerrors: sentinel errors and typed error values shared by all packages
//
// # Installation
//
//	go get github.com/erraggy/casekit
//
// The command-line tool lives in cmd/casekit:
//
//	go install github.com/erraggy/casekit/cmd/casekit@latest
//
// # Quick Start
//
//	import "github.com/erraggy/casekit/casing"
//
//	casing.ToCamelCase("user_id")      // "userId"
//	casing.ToSnakeCaseLower("UserID")  // "user_id"
//	casing.ToSnakeCaseUpper("2Tone")   // "_2TONE"
//
// Rename the keys of a document:
//
//	import "github.com/erraggy/casekit/rekey"
//
//	result, err := rekey.RekeyWithOptions(
//		rekey.WithFilePath("config.yaml"),
//		rekey.WithStyle(casing.SnakeLower),
//	)
//	if err != nil {
//		log.Fatal(err)
//	}
//	os.Stdout.Write(result.Document)
//
// # MCP Server
//
// "casekit mcp" serves the conversions as Model Context Protocol tools over
// stdio. See internal/mcpserver for the tool list and the CASEKIT_*
// environment variables it reads.
package casekit
