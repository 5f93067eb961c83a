// Package props provides a properties-format override parser for the
// config package: flat "key = value" lines with # and ! comments, the
// traditional format for parser training runs.
//
// The format is flat, so unlike config/parser/yaml this parser
// rejects navigation paths. Values stay raw strings; the
// configuration resolver owns the typed parsing.
package props
