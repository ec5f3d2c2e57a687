package moderation

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
)

func testAnalyzer(serverURL, apiKey string) *GeminiAnalyzer {
	a := NewGeminiAnalyzer(apiKey, "gemini-2.0-flash", []string{"Manicure", "Balayage"})
	a.baseURL = serverURL
	return a
}

func verdictServer(t *testing.T, verdictText string) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		resp := geminiResponse{}
		resp.Candidates = []struct {
			Content geminiContent `json:"content"`
		}{
			{Content: geminiContent{Parts: []geminiPart{{Text: verdictText}}}},
		}
		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(resp); err != nil {
			t.Errorf("encode response: %v", err)
		}
	}))
}

const sampleVerdict = `{
	"contentTypeLabel": "Manicure",
	"tags": ["Gel nails", "Nail art"],
	"moderationStatus": "safe",
	"moderationReasons": [],
	"confidence": 0.95,
	"flaggedCategories": {
		"nudity": false, "profanity": false, "violence": false,
		"illegalItems": false, "contactInfo": false, "offTopicContent": false
	}
}`

func TestAnalyze_MissingCredential_NoRequest(t *testing.T) {
	requests := 0
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requests++
	}))
	defer srv.Close()

	a := testAnalyzer(srv.URL, "")
	_, err := a.Analyze(context.Background(), []byte("media"), "image/jpeg")
	if !errors.Is(err, ErrMissingCredential) {
		t.Fatalf("expected ErrMissingCredential, got %v", err)
	}
	if requests != 0 {
		t.Fatalf("expected no network call, server saw %d requests", requests)
	}
}

func TestAnalyze_FencedAndUnfencedVerdictsMatch(t *testing.T) {
	variants := []struct {
		name string
		text string
	}{
		{"plain", sampleVerdict},
		{"json fence", "```json\n" + sampleVerdict + "\n```"},
		{"bare fence", "```\n" + sampleVerdict + "\n```"},
	}

	var results []string
	for _, v := range variants {
		srv := verdictServer(t, v.text)
		a := testAnalyzer(srv.URL, "test-key")
		got, err := a.Analyze(context.Background(), []byte("media"), "image/jpeg")
		srv.Close()
		if err != nil {
			t.Fatalf("%s: unexpected error: %v", v.name, err)
		}
		encoded, err := json.Marshal(got)
		if err != nil {
			t.Fatalf("%s: marshal result: %v", v.name, err)
		}
		results = append(results, string(encoded))
	}

	for i := 1; i < len(results); i++ {
		if results[i] != results[0] {
			t.Fatalf("variant %q parsed differently:\n%s\nvs\n%s", variants[i].name, results[i], results[0])
		}
	}
}

func TestAnalyze_VerdictFields(t *testing.T) {
	srv := verdictServer(t, sampleVerdict)
	defer srv.Close()

	a := testAnalyzer(srv.URL, "test-key")
	got, err := a.Analyze(context.Background(), []byte("media"), "image/jpeg")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if got.ContentTypeLabel != "Manicure" {
		t.Fatalf("expected label Manicure, got %q", got.ContentTypeLabel)
	}
	if len(got.Tags) != 2 || got.Tags[0] != "Gel nails" || got.Tags[1] != "Nail art" {
		t.Fatalf("unexpected tags: %v", got.Tags)
	}
	if got.ModerationStatus != "safe" {
		t.Fatalf("expected safe status, got %q", got.ModerationStatus)
	}
	if got.Confidence != 0.95 {
		t.Fatalf("expected confidence 0.95, got %v", got.Confidence)
	}
	if got.FlaggedCategories.Any() {
		t.Fatalf("expected no flags, got %+v", got.FlaggedCategories)
	}
}

func TestAnalyze_DefaultsForOmittedFields(t *testing.T) {
	srv := verdictServer(t, `{"moderationStatus": "safe"}`)
	defer srv.Close()

	a := testAnalyzer(srv.URL, "test-key")
	got, err := a.Analyze(context.Background(), []byte("media"), "image/jpeg")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if got.ContentTypeLabel != "" {
		t.Fatalf("expected empty label, got %q", got.ContentTypeLabel)
	}
	if got.Tags == nil || len(got.Tags) != 0 {
		t.Fatalf("expected empty tags slice, got %v", got.Tags)
	}
	if got.ModerationReasons == nil || len(got.ModerationReasons) != 0 {
		t.Fatalf("expected empty reasons slice, got %v", got.ModerationReasons)
	}
	if got.Confidence != defaultConfidence {
		t.Fatalf("expected default confidence %v, got %v", defaultConfidence, got.Confidence)
	}
	if got.FlaggedCategories.Any() {
		t.Fatalf("expected all flags false, got %+v", got.FlaggedCategories)
	}
}

func TestAnalyze_StatusNormalized(t *testing.T) {
	srv := verdictServer(t, `{"moderationStatus": "  SAFE  "}`)
	defer srv.Close()

	a := testAnalyzer(srv.URL, "test-key")
	got, err := a.Analyze(context.Background(), []byte("media"), "image/jpeg")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.ModerationStatus != "safe" {
		t.Fatalf("expected normalized status safe, got %q", got.ModerationStatus)
	}
}

func TestAnalyze_ModelNotFound(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"error": {"code": 404, "message": "model not found"}}`, http.StatusNotFound)
	}))
	defer srv.Close()

	a := testAnalyzer(srv.URL, "test-key")
	_, err := a.Analyze(context.Background(), []byte("media"), "image/jpeg")
	if !errors.Is(err, ErrModelNotFound) {
		t.Fatalf("expected ErrModelNotFound, got %v", err)
	}
}

func TestAnalyze_ServiceErrorKeepsBody(t *testing.T) {
	const rawBody = `{"error": {"code": 500, "message": "internal failure"}}`
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, rawBody, http.StatusInternalServerError)
	}))
	defer srv.Close()

	a := testAnalyzer(srv.URL, "test-key")
	_, err := a.Analyze(context.Background(), []byte("media"), "image/jpeg")

	var svcErr *ServiceError
	if !errors.As(err, &svcErr) {
		t.Fatalf("expected *ServiceError, got %v", err)
	}
	if svcErr.StatusCode != http.StatusInternalServerError {
		t.Fatalf("expected status 500, got %d", svcErr.StatusCode)
	}
	if svcErr.Body != rawBody+"\n" {
		t.Fatalf("expected raw body kept, got %q", svcErr.Body)
	}
}

func TestAnalyze_ParseError(t *testing.T) {
	srv := verdictServer(t, "I am sorry, I cannot analyze this image.")
	defer srv.Close()

	a := testAnalyzer(srv.URL, "test-key")
	_, err := a.Analyze(context.Background(), []byte("media"), "image/jpeg")

	var parseErr *ParseError
	if !errors.As(err, &parseErr) {
		t.Fatalf("expected *ParseError, got %v", err)
	}
	if parseErr.Body == "" {
		t.Fatal("expected parse error to keep the offending text")
	}
}

func TestAnalyze_EmptyMedia(t *testing.T) {
	a := testAnalyzer("http://unused", "test-key")
	if _, err := a.Analyze(context.Background(), nil, "image/jpeg"); err == nil {
		t.Fatal("expected error for empty media bytes")
	}
}

func TestAnalyze_RequestShape(t *testing.T) {
	var gotKey string
	var gotReq geminiRequest
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotKey = r.Header.Get("x-goog-api-key")
		if err := json.NewDecoder(r.Body).Decode(&gotReq); err != nil {
			t.Errorf("decode request: %v", err)
		}
		fmt.Fprint(w, `{"candidates": [{"content": {"parts": [{"text": "{}"}]}}]}`)
	}))
	defer srv.Close()

	a := testAnalyzer(srv.URL, "test-key")
	if _, err := a.Analyze(context.Background(), []byte("media"), "video/mp4"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if gotKey != "test-key" {
		t.Fatalf("expected api key header, got %q", gotKey)
	}
	if len(gotReq.Contents) != 1 || len(gotReq.Contents[0].Parts) != 2 {
		t.Fatalf("expected one content with instruction and media parts, got %+v", gotReq.Contents)
	}
	if gotReq.Contents[0].Parts[0].Text == "" {
		t.Fatal("expected instruction text in first part")
	}
	inline := gotReq.Contents[0].Parts[1].InlineData
	if inline == nil || inline.MIMEType != "video/mp4" || inline.Data == "" {
		t.Fatalf("expected inline media part, got %+v", inline)
	}
}
