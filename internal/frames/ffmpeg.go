package frames

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"os"
	"os/exec"
	"strconv"
)

// Fallback dimensions when the probe cannot report the video's native size
const (
	fallbackWidth  = 720
	fallbackHeight = 1280
)

// jpegQuality is ffmpeg's -q:v scale (2 is near-lossless)
const jpegQuality = 2

// FFmpegExtractor shells out to ffprobe/ffmpeg to grab a representative
// still. The seek point is early in the clip but past any black lead-in.
type FFmpegExtractor struct {
	ffprobePath string
	ffmpegPath  string
}

// NewFFmpegExtractor creates an extractor using ffprobe/ffmpeg from PATH
func NewFFmpegExtractor() *FFmpegExtractor {
	return &FFmpegExtractor{
		ffprobePath: "ffprobe",
		ffmpegPath:  "ffmpeg",
	}
}

type probeOutput struct {
	Format struct {
		Duration string `json:"duration"`
	} `json:"format"`
	Streams []struct {
		Width  int `json:"width"`
		Height int `json:"height"`
	} `json:"streams"`
}

// ExtractFrame decodes the video and returns one JPEG at the computed seek
// offset, at the video's native dimensions when known.
func (e *FFmpegExtractor) ExtractFrame(ctx context.Context, videoBytes []byte) ([]byte, error) {
	if len(videoBytes) == 0 {
		return nil, fmt.Errorf("%w: empty video", ErrExtraction)
	}

	tmp, err := os.CreateTemp("", "frame-src-*")
	if err != nil {
		return nil, fmt.Errorf("frames: create temp file: %w", err)
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(videoBytes); err != nil {
		tmp.Close()
		return nil, fmt.Errorf("frames: write temp file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return nil, fmt.Errorf("frames: close temp file: %w", err)
	}

	probe, err := e.probe(ctx, tmp.Name())
	if err != nil {
		return nil, err
	}

	duration, _ := strconv.ParseFloat(probe.Format.Duration, 64)
	seek := seekOffset(duration)

	args := []string{
		"-v", "error",
		"-ss", strconv.FormatFloat(seek, 'f', -1, 64),
		"-i", tmp.Name(),
		"-frames:v", "1",
		"-q:v", strconv.Itoa(jpegQuality),
	}
	if len(probe.Streams) == 0 || probe.Streams[0].Width <= 0 || probe.Streams[0].Height <= 0 {
		args = append(args, "-vf", fmt.Sprintf("scale=%d:%d", fallbackWidth, fallbackHeight))
	}
	args = append(args, "-f", "image2pipe", "-vcodec", "mjpeg", "pipe:1")

	var stdout, stderr bytes.Buffer
	cmd := exec.CommandContext(ctx, e.ffmpegPath, args...)
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr
	if err := cmd.Run(); err != nil {
		return nil, fmt.Errorf("%w: ffmpeg: %s", ErrExtraction, stderr.String())
	}
	if stdout.Len() == 0 {
		return nil, fmt.Errorf("%w: ffmpeg produced no frame", ErrExtraction)
	}

	return stdout.Bytes(), nil
}

func (e *FFmpegExtractor) probe(ctx context.Context, path string) (*probeOutput, error) {
	var stdout, stderr bytes.Buffer
	cmd := exec.CommandContext(ctx, e.ffprobePath,
		"-v", "error",
		"-show_entries", "format=duration:stream=width,height",
		"-select_streams", "v:0",
		"-of", "json",
		path,
	)
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr
	if err := cmd.Run(); err != nil {
		return nil, fmt.Errorf("%w: ffprobe: %s", ErrExtraction, stderr.String())
	}

	var out probeOutput
	if err := json.Unmarshal(stdout.Bytes(), &out); err != nil {
		return nil, fmt.Errorf("%w: ffprobe output: %v", ErrExtraction, err)
	}
	return &out, nil
}

// seekOffset picks the frame timestamp: one second in, or 10% of the
// duration for clips shorter than ten seconds.
func seekOffset(duration float64) float64 {
	if duration <= 0 {
		return 0
	}
	offset := duration * 0.1
	if offset > 1 {
		offset = 1
	}
	return offset
}
