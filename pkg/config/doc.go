// Package config handles configuration management for assetunion.
//
// Configuration is layered with koanf, lowest precedence first:
//
//  1. embedded defaults (embedded/defaults.toml)
//  2. the user file, $XDG_CONFIG_HOME/assetunion/config.toml
//  3. the project file: an explicit path, or the first of assetunion.toml,
//     .assetunion.toml, assetunion.yaml, assetunion.yml in the project dir
//  4. ASSETUNION_* environment variables
//  5. explicit overrides, usually command-line flags
//
// Environment names map to keys by lower-casing and turning a double
// underscore into a key separator: ASSETUNION_SOURCE_DIR sets source_dir and
// ASSETUNION_LOGGING__FILE sets logging.file.
//
// Relative paths in the result are resolved against the directory holding
// the project file, so a config can be used from any working directory.
package config
