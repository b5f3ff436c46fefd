package server

import (
	"encoding/json"
	"errors"
	"fmt"
	"image"
	"time"

	"github.com/ironsheep/vision-demos/internal/detection"
	"github.com/ironsheep/vision-demos/internal/imaging"
	"github.com/ironsheep/vision-demos/internal/playground"
	"github.com/ironsheep/vision-demos/internal/sentiment"
)

// errInvalidArguments marks tool arguments that could not be decoded.
var errInvalidArguments = errors.New("invalid arguments")

// ToolCallParams represents the parameters for a tools/call MCP request.
type ToolCallParams struct {
	// Name is the tool to invoke (e.g., "face_detect", "image_resize").
	Name string `json:"name"`

	// Arguments contains the tool-specific parameters as JSON.
	Arguments json.RawMessage `json:"arguments"`
}

// handleToolsCall processes a tools/call request and executes the specified tool.
//
// The response wraps the tool result in MCP's content format:
//
//	{
//	  "content": [{"type": "text", "text": "<JSON result>"}]
//	}
//
// Argument errors return a JSON-RPC error response with code -32602; any
// other tool execution error uses code -32000.
func (s *Server) handleToolsCall(req *MCPRequest) *MCPResponse {
	var params ToolCallParams
	if err := json.Unmarshal(req.Params, &params); err != nil {
		return s.errorResponse(req.ID, codeInvalidParams, "Invalid params", err.Error())
	}

	start := time.Now()
	result, err := s.executeTool(params.Name, params.Arguments)
	log := s.log.WithField("tool", params.Name).WithField("duration", time.Since(start))
	if err != nil {
		log.WithError(err).Info("tool failed")
		if errors.Is(err, errInvalidArguments) || errors.Is(err, playground.ErrInvalidParams) {
			return s.errorResponse(req.ID, codeInvalidParams, "Invalid params", err.Error())
		}
		return s.errorResponse(req.ID, codeToolFailed, "Tool execution failed", err.Error())
	}
	log.Debug("tool done")

	return &MCPResponse{
		JSONRPC: "2.0",
		ID:      req.ID,
		Result: map[string]interface{}{
			"content": []map[string]interface{}{
				{
					"type": "text",
					"text": mustMarshalJSON(result),
				},
			},
		},
	}
}

// executeTool dispatches tool execution to the appropriate handler function.
//
// Each tool handler:
//  1. Unmarshals arguments from JSON over the defaults of the tool
//  2. Loads the image from a path or base64 bytes, when the tool takes one
//  3. Calls the detection, playground or sentiment package
//  4. Returns the result or error
func (s *Server) executeTool(name string, args json.RawMessage) (interface{}, error) {
	switch name {
	// Face Detection
	case "face_detect":
		return s.handleFaceDetect(args)

	// Sentiment
	case "sentiment_polarity":
		return s.handleSentimentPolarity(args)
	case "sentiment_subjectivity":
		return s.handleSentimentSubjectivity(args)
	case "sentiment_analyze":
		return s.handleSentimentAnalyze(args)
	}

	// Image Processing Playground
	for op, tool := range playgroundTools {
		if tool == name {
			return s.handlePlayground(op, args)
		}
	}

	return nil, fmt.Errorf("unknown tool: %s", name)
}

// errorResponse creates a JSON-RPC error response with the given details.
func (s *Server) errorResponse(id interface{}, code int, message, data string) *MCPResponse {
	return &MCPResponse{
		JSONRPC: "2.0",
		ID:      id,
		Error: &MCPError{
			Code:    code,
			Message: message,
			Data:    data,
		},
	}
}

// mustMarshalJSON converts a value to pretty-printed JSON string.
// It returns an empty string on marshal failure.
func mustMarshalJSON(v interface{}) string {
	b, _ := json.MarshalIndent(v, "", "  ")
	return string(b)
}

// decodeArgs unmarshals tool arguments into v. Missing arguments leave v
// untouched.
func decodeArgs(args json.RawMessage, v interface{}) error {
	if len(args) == 0 || string(args) == "null" {
		return nil
	}
	if err := json.Unmarshal(args, v); err != nil {
		return fmt.Errorf("%w: %v", errInvalidArguments, err)
	}
	return nil
}

// imageSource locates the input image of a tool call.
type imageSource struct {
	Path        string `json:"path"`
	ImageBase64 string `json:"image_base64"`
	Filename    string `json:"filename"`
}

// load reads and decodes the image. A path takes precedence over base64
// bytes; giving neither is ErrNoImage.
func (src imageSource) load(allowed imaging.Extensions) (*image.NRGBA, error) {
	var (
		upload imaging.Upload
		err    error
	)
	switch {
	case src.Path != "":
		upload, err = imaging.LoadFile(src.Path)
	case src.ImageBase64 != "":
		if src.Filename == "" {
			return nil, fmt.Errorf("%w: filename is required with image_base64", errInvalidArguments)
		}
		upload, err = imaging.UploadFromBase64(src.Filename, src.ImageBase64)
	default:
		return nil, imaging.ErrNoImage
	}
	if err != nil {
		return nil, err
	}
	return imaging.Decode(upload, allowed)
}

// === Face Detection Handlers ===

func (s *Server) handleFaceDetect(args json.RawMessage) (interface{}, error) {
	var a imageSource
	if err := decodeArgs(args, &a); err != nil {
		return nil, err
	}
	if s.detector == nil {
		return nil, detection.ErrNoClassifier
	}
	img, err := a.load(imaging.FaceExtensions)
	if err != nil {
		return nil, err
	}
	return detection.DetectFaces(s.detector, img)
}

// === Image Processing Playground Handlers ===

type playgroundArgs struct {
	imageSource
	playground.Params
}

func (s *Server) handlePlayground(op playground.Operation, args json.RawMessage) (interface{}, error) {
	a := playgroundArgs{Params: playground.DefaultParams(op)}
	if err := decodeArgs(args, &a); err != nil {
		return nil, err
	}
	img, err := a.load(imaging.PlaygroundExtensions)
	if err != nil {
		return nil, err
	}
	return playground.Apply(img, op, a.Params)
}

// === Sentiment Handlers ===

type sentimentArgs struct {
	Text string `json:"text"`
}

func (s *Server) handleSentimentPolarity(args json.RawMessage) (interface{}, error) {
	var a sentimentArgs
	if err := decodeArgs(args, &a); err != nil {
		return nil, err
	}
	return sentiment.CheckPolarity(a.Text), nil
}

func (s *Server) handleSentimentSubjectivity(args json.RawMessage) (interface{}, error) {
	var a sentimentArgs
	if err := decodeArgs(args, &a); err != nil {
		return nil, err
	}
	return sentiment.CheckSubjectivity(a.Text), nil
}

func (s *Server) handleSentimentAnalyze(args json.RawMessage) (interface{}, error) {
	var a sentimentArgs
	if err := decodeArgs(args, &a); err != nil {
		return nil, err
	}
	return sentiment.Analyze(a.Text), nil
}
