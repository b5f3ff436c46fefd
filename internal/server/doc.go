// Package server implements the MCP (Model Context Protocol) server for the vision demos.
//
// This package provides a JSON-RPC 2.0 server that exposes the face detection
// viewer, the image processing playground and the sentiment checker as MCP
// tools. Each tool call is one independent request: decode the input, run a
// single operation, return the result.
//
// # Protocol
//
// The server communicates over stdio using JSON-RPC 2.0:
//   - Input: JSON-RPC requests on stdin (one per line)
//   - Output: JSON-RPC responses on stdout
//
// Supported MCP methods:
//   - initialize: Protocol handshake
//   - tools/list: Enumerate available tools
//   - tools/call: Execute a tool with arguments
//   - ping: Health check
//
// # Available Tools
//
// Face Detection:
//   - face_detect: Find faces and draw green boxes around them
//
// Image Processing Playground (one operation per call, never chained):
//   - image_original, image_resize, image_shift
//   - image_draw_line, image_draw_circle
//   - image_gaussian_blur, image_threshold, image_canny
//   - image_put_text
//
// Sentiment:
//   - sentiment_polarity: Polarity score and Positive/Negative/Neutral label
//   - sentiment_subjectivity: Subjectivity score and objective/subjective label
//   - sentiment_analyze: Both scores with the scored word groups
//
// # Images
//
// Image tools take either a file path ("path") or base64 bytes
// ("image_base64" plus "filename", whose extension is checked against the
// demo's allow-list). Output images are returned as base64 PNG with a caption.
// Nothing is cached between calls.
//
// # Parameters
//
// Playground arguments are decoded over the operation's defaults, so omitted
// fields keep their default while an explicit 0 is honored.
//
// # Error Handling
//
// Tool execution errors are returned as JSON-RPC error responses with:
//   - code: -32602 for undecodable or out-of-range arguments, -32000 for any
//     other tool failure, -32700 for lines that are not JSON
//   - message: Human-readable error description
//   - data: The Go error string
//
// # Usage
//
// The server is typically started by an MCP client:
//
//	srv := server.New(detector, logger, version)
//	if err := srv.Run(); err != nil {
//	    log.Fatal(err)
//	}
package server
