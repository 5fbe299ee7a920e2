// Package testutil provides utilities for testing assetunion components.
//
// Key components:
//   - TestEnvironment: a project layout (sources and outputs) on an
//     in-memory or temp-dir filesystem, with helpers to set file times
//   - ErrorFS: a filesystem wrapper that fails chosen operations
//
// Usage guidelines:
//   - Prefer EnvMemoryOnly; use EnvIsolated for tests that must see the OS
//   - Set mtimes explicitly; never rely on the wall clock for staleness
package testutil
