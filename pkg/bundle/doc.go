// Package bundle joins an ordered list of source files into one output file.
//
// A Bundler is built once per output:
//
//	b, err := bundle.New([]string{"reset.css", "site.css"}, cfg)
//	if err != nil {
//		return err
//	}
//	b.SetOutput("public/site.css")
//	if _, err := b.RebuildIfNeeded(); err != nil {
//		return err
//	}
//	b.ModifyResult(strings.TrimSpace)
//	saved, err := b.Save()
//
// Sources are read from the configured source directory and joined with a
// single newline between files. RebuildIfNeeded only reads them when the
// output is missing or older than a source. Save writes nothing until a
// rebuild has produced a result.
//
// A Bundler is not safe for concurrent use, and nothing coordinates two
// Bundlers writing the same output.
package bundle
