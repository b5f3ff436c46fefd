package web

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/ironsheep/vision-demos/internal/detection"
	"github.com/ironsheep/vision-demos/internal/imaging"
	"github.com/ironsheep/vision-demos/internal/playground"
	"github.com/ironsheep/vision-demos/internal/sentiment"
)

// SentimentRequest is the body of POST /api/sentiment.
type SentimentRequest struct {
	Text string `json:"text" form:"text"`
}

// SentimentResponse reports both checks for a comment.
type SentimentResponse struct {
	Text         string                 `json:"text"`
	Polarity     sentiment.Verdict      `json:"polarity"`
	Subjectivity sentiment.Verdict      `json:"subjectivity"`
	Assessments  []sentiment.Assessment `json:"assessments"`
}

// abortJSON records err and replies with its status.
func abortJSON(c *gin.Context, err error) {
	_ = c.Error(err)
	c.AbortWithStatusJSON(statusFor(err), gin.H{"error": err.Error()})
}

// APIDetectFaces handles POST /api/faces.
func (h *Handler) APIDetectFaces(c *gin.Context) {
	upload, err := h.readUpload(c)
	if err != nil {
		abortJSON(c, err)
		return
	}
	img, err := imaging.Decode(upload, imaging.FaceExtensions)
	if err != nil {
		abortJSON(c, err)
		return
	}
	result, err := detection.DetectFaces(h.detector, img)
	if err != nil {
		abortJSON(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}

// APIApplyOperation handles POST /api/playground/:operation.
func (h *Handler) APIApplyOperation(c *gin.Context) {
	op, err := playground.ParseOperation(c.Param("operation"))
	if err != nil {
		abortJSON(c, err)
		return
	}
	upload, err := h.readUpload(c)
	if err != nil {
		abortJSON(c, err)
		return
	}
	p, err := bindParams(c, op)
	if err != nil {
		abortJSON(c, err)
		return
	}
	img, err := imaging.Decode(upload, imaging.PlaygroundExtensions)
	if err != nil {
		abortJSON(c, err)
		return
	}
	result, err := playground.Apply(img, op, p)
	if err != nil {
		abortJSON(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}

// APIAnalyzeSentiment handles POST /api/sentiment.
func (h *Handler) APIAnalyzeSentiment(c *gin.Context) {
	var req SentimentRequest
	if err := c.ShouldBind(&req); err != nil {
		abortJSON(c, badRequest(err))
		return
	}
	c.JSON(http.StatusOK, analyzeComment(req.Text))
}

func analyzeComment(text string) SentimentResponse {
	score := sentiment.Analyze(text)
	return SentimentResponse{
		Text:         text,
		Polarity:     sentiment.Verdict{Score: score.Polarity, Label: sentiment.PolarityLabel(score.Polarity)},
		Subjectivity: sentiment.Verdict{Score: score.Subjectivity, Label: sentiment.SubjectivityLabel(score.Subjectivity)},
		Assessments:  score.Assessments,
	}
}
