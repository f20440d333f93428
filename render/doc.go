// Package render turns measured block geometry into SVG and keeps
// connections snappable.
//
// The pipeline for one render request: measure the block's rows
// (package measure), serialize the outline and highlight paths into
// the block's PathObject, push connection offsets into the rendered
// connections, and update the per-kind spatial index so subsequent
// drags can query nearby connections. Rendering a block repositions its
// children and re-renders its ancestors, so callers only render the
// block they mutated.
//
// Everything here is single threaded by contract: rendering and
// connection operations run synchronously in response to user input or
// programmatic mutation, and a measure pass must complete before the
// model is mutated again. A multi-threaded host must serialize access
// with one coarse lock around the workspace.
package render
