// Package filesystem provides filesystem implementations for assetunion.
//
// The bundler only needs to stat, read and write whole files, so the FS
// interface is kept to those operations plus Chtimes, which tests use to
// pin modification times. NewOS talks to the real filesystem; NewAferoFS
// wraps any afero.Fs, typically an in-memory one in tests.
package filesystem
