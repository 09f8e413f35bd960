// Package rekey renames the mapping keys of YAML and JSON documents to a
// target naming style.
//
// Documents are processed as go.yaml.in/yaml/v4 node trees, so key order,
// comments and anchors survive the round trip. Only string keys are renamed;
// values are never touched.
//
// # Quick Start
//
//	result, err := rekey.RekeyWithOptions(
//		rekey.WithFilePath("config.yaml"),
//		rekey.WithStyle(casing.SnakeLower),
//		rekey.WithSkipKeys("$ref"),
//	)
//	if err != nil {
//		log.Fatal(err)
//	}
//	os.Stdout.Write(result.Document)
//
// # Collisions
//
// Two keys of the same mapping may convert to the same name, for example
// "userId" and "user_id" under snake case. By default the later key keeps
// its original spelling and the collision is reported in Result.Collisions.
// With WithStrict(true) the first collision aborts the run and is returned
// as a *caseerrors.CollisionError.
//
// # Depth
//
// Mappings nested deeper than the configured maximum (see WithMaxDepth) are
// copied unchanged and counted in Result.DepthLimited.
package rekey
