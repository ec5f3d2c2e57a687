package moderation

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"regexp"
	"strings"
	"time"

	"github.com/glimmerhq/storyshowcase/internal/models"
)

const defaultGeminiBaseURL = "https://generativelanguage.googleapis.com"

// defaultConfidence is used when the service omits the confidence field
const defaultConfidence = 0.5

// instructionTemplate is the fixed screening payload. The verdict must be
// JSON with exactly the fields named here.
const instructionTemplate = `You are a content moderator for a beauty and wellness marketplace. Analyze the attached media and respond with a single JSON object, no prose, with these fields:

- "contentTypeLabel": the single beauty/wellness treatment shown, as a short label (e.g. "Manicure", "Balayage"), or "" if none is identifiable
- "tags": array of short descriptive tags for the content
- "moderationStatus": "safe" or "unsafe"
- "moderationReasons": array of human-readable reasons when unsafe, empty when safe
- "confidence": number between 0 and 1 for the overall verdict
- "flaggedCategories": object with boolean fields "nudity", "profanity", "violence", "illegalItems", "contactInfo", "offTopicContent"

Perform exactly these six checks and no others:
1. nudity: nudity or sexual content
2. profanity: visible profane text or gestures
3. violence: violence or gore
4. illegalItems: weapons, drugs, or other illegal items
5. contactInfo: visible phone numbers, email addresses, social handles, or URLs
6. offTopicContent: content unrelated to the allowed services listed below

Allowed services:
%s`

var fenceRe = regexp.MustCompile("(?s)```(?:json)?\\s*(.*?)\\s*```")

// GeminiAnalyzer screens media via the Gemini generateContent REST API.
type GeminiAnalyzer struct {
	httpClient  *http.Client
	baseURL     string
	apiKey      string
	model       string
	instruction string
}

// NewGeminiAnalyzer creates an analyzer for the given model. The allowed
// services list is baked into the instruction payload once.
func NewGeminiAnalyzer(apiKey, model string, allowedServices []string) *GeminiAnalyzer {
	return &GeminiAnalyzer{
		httpClient:  &http.Client{Timeout: 60 * time.Second},
		baseURL:     defaultGeminiBaseURL,
		apiKey:      apiKey,
		model:       model,
		instruction: fmt.Sprintf(instructionTemplate, strings.Join(allowedServices, ", ")),
	}
}

type geminiRequest struct {
	Contents         []geminiContent         `json:"contents"`
	GenerationConfig *geminiGenerationConfig `json:"generationConfig,omitempty"`
}

type geminiContent struct {
	Parts []geminiPart `json:"parts"`
}

type geminiPart struct {
	Text       string            `json:"text,omitempty"`
	InlineData *geminiInlineData `json:"inlineData,omitempty"`
}

type geminiInlineData struct {
	MIMEType string `json:"mimeType"`
	Data     string `json:"data"`
}

type geminiGenerationConfig struct {
	ResponseMIMEType string `json:"responseMimeType,omitempty"`
}

type geminiResponse struct {
	Candidates []struct {
		Content geminiContent `json:"content"`
	} `json:"candidates"`
}

// verdictPayload mirrors the service's JSON verdict. Pointer fields
// distinguish missing from zero so defaults can be applied.
type verdictPayload struct {
	ContentTypeLabel  *string                   `json:"contentTypeLabel"`
	Tags              []string                  `json:"tags"`
	ModerationStatus  *string                   `json:"moderationStatus"`
	ModerationReasons []string                  `json:"moderationReasons"`
	Confidence        *float64                  `json:"confidence"`
	FlaggedCategories *models.FlaggedCategories `json:"flaggedCategories"`
}

// Analyze sends one media still for screening and decodes the verdict.
// A missing credential fails before any request is made.
func (g *GeminiAnalyzer) Analyze(ctx context.Context, mediaBytes []byte, mimeType string) (*models.ModerationResult, error) {
	if strings.TrimSpace(g.apiKey) == "" {
		return nil, ErrMissingCredential
	}
	if len(mediaBytes) == 0 {
		return nil, fmt.Errorf("moderation: media bytes are required")
	}

	reqBody := geminiRequest{
		Contents: []geminiContent{{
			Parts: []geminiPart{
				{Text: g.instruction},
				{InlineData: &geminiInlineData{
					MIMEType: mimeType,
					Data:     base64.StdEncoding.EncodeToString(mediaBytes),
				}},
			},
		}},
		GenerationConfig: &geminiGenerationConfig{ResponseMIMEType: "application/json"},
	}

	payload, err := json.Marshal(reqBody)
	if err != nil {
		return nil, fmt.Errorf("moderation: marshal request: %w", err)
	}

	url := fmt.Sprintf("%s/v1beta/models/%s:generateContent", g.baseURL, g.model)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(payload))
	if err != nil {
		return nil, fmt.Errorf("moderation: build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("x-goog-api-key", g.apiKey)

	resp, err := g.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("moderation: request failed: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("moderation: read response: %w", err)
	}

	if resp.StatusCode == http.StatusNotFound {
		return nil, fmt.Errorf("%w: %s", ErrModelNotFound, g.model)
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &ServiceError{StatusCode: resp.StatusCode, Body: string(body)}
	}

	var gr geminiResponse
	if err := json.Unmarshal(body, &gr); err != nil {
		return nil, &ParseError{Body: string(body), Err: err}
	}
	if len(gr.Candidates) == 0 || len(gr.Candidates[0].Content.Parts) == 0 {
		return nil, &ParseError{Body: string(body), Err: fmt.Errorf("no candidates in response")}
	}

	text := gr.Candidates[0].Content.Parts[0].Text
	return parseVerdict(text)
}

// parseVerdict decodes the verdict text, stripping markdown code fences if
// the model wrapped its JSON in them, and applies defaults for omitted
// optional fields.
func parseVerdict(text string) (*models.ModerationResult, error) {
	cleaned := strings.TrimSpace(text)
	if m := fenceRe.FindStringSubmatch(cleaned); m != nil {
		cleaned = m[1]
	}

	var v verdictPayload
	if err := json.Unmarshal([]byte(cleaned), &v); err != nil {
		return nil, &ParseError{Body: text, Err: err}
	}

	result := &models.ModerationResult{
		Tags:              []string{},
		ModerationReasons: []string{},
		Confidence:        defaultConfidence,
	}
	if v.ContentTypeLabel != nil {
		result.ContentTypeLabel = *v.ContentTypeLabel
	}
	if v.Tags != nil {
		result.Tags = v.Tags
	}
	if v.ModerationStatus != nil {
		result.ModerationStatus = strings.ToLower(strings.TrimSpace(*v.ModerationStatus))
	}
	if v.ModerationReasons != nil {
		result.ModerationReasons = v.ModerationReasons
	}
	if v.Confidence != nil {
		result.Confidence = *v.Confidence
	}
	if v.FlaggedCategories != nil {
		result.FlaggedCategories = *v.FlaggedCategories
	}

	return result, nil
}
