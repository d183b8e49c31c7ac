// Package compiler hosts the template normalization front end: the pieces
// that turn a component's template declaration into a canonical, fully
// resolved form before any further compilation happens.
//
// Main sub-packages:
//
//   - core: core types shared across the compiler (ViewEncapsulation)
//   - metadata: compile-time metadata for directives, templates and stylesheets
//   - ml_parser: lenient HTML tokenizer and tree parser
//   - url_resolver: URL resolution against module and template URLs
//   - css: style URL extraction and resolvability rules
//   - resource_loader: template and stylesheet fetching (file, HTTP, LRU-cached)
//   - templateparser: pre-parse classification of template elements
//   - normalizer: the DirectiveNormalizer itself
//   - config: compiler-wide defaults (encapsulation, whitespace handling)
//
// The entry point is normalizer.DirectiveNormalizer. Everything else in this
// tree exists to serve it.
package compiler
