package moderation

import (
	"context"
	"fmt"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/rekognition"
	rekognitiontypes "github.com/aws/aws-sdk-go-v2/service/rekognition/types"

	"github.com/glimmerhq/storyshowcase/internal/models"
)

// RekognitionAnalyzer screens media via AWS Rekognition using byte payloads
// (no S3 dependency). It only fills the category flags; it cannot identify a
// treatment, so the content label and tags stay empty.
type RekognitionAnalyzer struct {
	client rekognitionAPI
}

type rekognitionAPI interface {
	DetectModerationLabels(ctx context.Context, params *rekognition.DetectModerationLabelsInput, optFns ...func(*rekognition.Options)) (*rekognition.DetectModerationLabelsOutput, error)
}

// NewRekognitionAnalyzer creates an analyzer using ambient AWS credentials/profile.
func NewRekognitionAnalyzer(ctx context.Context, region string) (*RekognitionAnalyzer, error) {
	loadOptions := []func(*awsconfig.LoadOptions) error{}
	trimmedRegion := strings.TrimSpace(region)
	if trimmedRegion != "" {
		loadOptions = append(loadOptions, awsconfig.WithRegion(trimmedRegion))
	}

	cfg, err := awsconfig.LoadDefaultConfig(ctx, loadOptions...)
	if err != nil {
		return nil, fmt.Errorf("load aws config: %w", err)
	}

	return &RekognitionAnalyzer{
		client: rekognition.NewFromConfig(cfg),
	}, nil
}

// Analyze calls Rekognition DetectModerationLabels and folds its label
// hierarchy into the six category flags.
func (r *RekognitionAnalyzer) Analyze(ctx context.Context, mediaBytes []byte, mimeType string) (*models.ModerationResult, error) {
	_ = mimeType
	if len(mediaBytes) == 0 {
		return nil, fmt.Errorf("moderation: media bytes are required")
	}

	output, err := r.client.DetectModerationLabels(ctx, &rekognition.DetectModerationLabelsInput{
		Image: &rekognitiontypes.Image{
			Bytes: mediaBytes,
		},
	})
	if err != nil {
		return nil, &ServiceError{StatusCode: 0, Body: err.Error()}
	}

	result := &models.ModerationResult{
		Tags:              []string{},
		ModerationStatus:  "safe",
		ModerationReasons: []string{},
		Confidence:        1,
	}

	maxConfidence := 0.0
	for _, label := range output.ModerationLabels {
		name := aws.ToString(label.Name)
		parent := aws.ToString(label.ParentName)
		if !flagCategory(&result.FlaggedCategories, name, parent) {
			continue
		}
		result.ModerationReasons = append(result.ModerationReasons, name)
		if label.Confidence != nil && float64(*label.Confidence) > maxConfidence {
			maxConfidence = float64(*label.Confidence)
		}
	}

	if result.FlaggedCategories.Any() {
		result.ModerationStatus = "unsafe"
		result.Confidence = maxConfidence / 100
	}

	return result, nil
}

// flagCategory maps a Rekognition label onto a category flag. Returns false
// when the label fits none of the six checks.
func flagCategory(flags *models.FlaggedCategories, name, parent string) bool {
	switch {
	case matchesAny(name, parent, "Explicit Nudity", "Explicit", "Non-Explicit Nudity", "Suggestive", "Swimwear or Underwear"):
		flags.Nudity = true
	case matchesAny(name, parent, "Rude Gestures", "Middle Finger"):
		flags.Profanity = true
	case matchesAny(name, parent, "Violence", "Visually Disturbing", "Graphic Violence"):
		flags.Violence = true
	case matchesAny(name, parent, "Drugs & Tobacco", "Drugs", "Weapons", "Alcohol", "Gambling"):
		flags.IllegalItems = true
	default:
		return false
	}
	return true
}

func matchesAny(name, parent string, candidates ...string) bool {
	for _, c := range candidates {
		if strings.EqualFold(name, c) || strings.EqualFold(parent, c) {
			return true
		}
	}
	return false
}
