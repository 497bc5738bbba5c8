// Package render turns coupling maps and swap strategy layers into Graphviz
// DOT documents and, through github.com/goccy/go-graphviz, SVG images.
//
// DOT output is plain text and deterministic: nodes in ascending qubit order,
// edges in coupling enumeration order. SVG rendering runs the Graphviz layout
// engine and is only as deterministic as Graphviz itself.
package render
