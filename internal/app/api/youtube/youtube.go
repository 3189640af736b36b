// Package youtube builds transcripts from the public caption track of a
// YouTube video instead of transcribing audio.
package youtube

import (
	"context"
	"encoding/xml"
	"net/url"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/samber/lo"
	"go.uber.org/zap"

	"autoscribe/internal/app/api/custom_http"
	"autoscribe/internal/app/api/provider"
	apperrors "autoscribe/internal/app/errors"
	"autoscribe/internal/app/logging"
	"autoscribe/internal/app/model"
)

const (
	DefaultTimedTextURL = "https://video.google.com/timedtext"
	DefaultTimeout      = 30 * time.Second
)

var embedPath = regexp.MustCompile(`/embed/([^/?]+)`)

// Config holds the settings for the caption adapter
type Config struct {
	TimedTextURL string
	Timeout      time.Duration
}

// DefaultConfig returns the public timed-text endpoint settings
func DefaultConfig() Config {
	return Config{TimedTextURL: DefaultTimedTextURL, Timeout: DefaultTimeout}
}

// captionTrack is the timed-text XML document
type captionTrack struct {
	XMLName xml.Name `xml:"transcript"`
	Cues    []cue    `xml:"text"`
}

type cue struct {
	Start string `xml:"start,attr"`
	Dur   string `xml:"dur,attr"`
	Text  string `xml:",chardata"`
}

// Provider implements provider.Transcriber over YouTube caption tracks
type Provider struct {
	config Config
	client *custom_http.Client
	logger *zap.Logger
}

// NewProvider creates a caption adapter. No credential is required.
func NewProvider(config Config, logger *zap.Logger) *Provider {
	if config.TimedTextURL == "" {
		config.TimedTextURL = DefaultTimedTextURL
	}
	logger = logging.OrNop(logger).Named("youtube")
	return &Provider{
		config: config,
		client: custom_http.NewClient("YouTube", "", "", config.Timeout, logger),
		logger: logger,
	}
}

// Name returns the provider choice served by this adapter
func (p *Provider) Name() provider.Choice {
	return provider.ChoiceYouTube
}

// Transcribe fetches the caption track for the video in the given language
func (p *Provider) Transcribe(ctx context.Context, in provider.Input, language string) (*model.Transcript, error) {
	videoID, err := ExtractVideoID(in.URL)
	if err != nil {
		return nil, err
	}

	query := url.Values{}
	query.Set("lang", language)
	query.Set("v", videoID)

	body, err := p.client.GetBytes(ctx, p.config.TimedTextURL+"?"+query.Encode())
	if err != nil {
		return nil, err
	}
	if len(strings.TrimSpace(string(body))) == 0 {
		return nil, apperrors.ErrCaptionsNotFound
	}

	segments, err := parseCaptions(body)
	if err != nil {
		p.logger.Debug("caption track unusable", zap.String("video_id", videoID), zap.Error(err))
		return nil, apperrors.ErrCaptionsNotFound
	}

	p.logger.Info("captions fetched",
		zap.String("video_id", videoID),
		zap.String("language", language),
		zap.Int("cues", len(segments)),
	)

	text := strings.Join(lo.Map(segments, func(s model.Segment, _ int) string { return s.Text }), " ")
	return model.NewTranscript(text, segments), nil
}

// ExtractVideoID returns the video id from youtu.be, watch and embed URLs
func ExtractVideoID(raw string) (string, error) {
	u, err := url.Parse(strings.TrimSpace(raw))
	if err != nil || u.Host == "" {
		return "", apperrors.ErrInvalidYouTubeURL
	}

	host := strings.ToLower(u.Hostname())
	var id string
	switch {
	case host == "youtu.be":
		id = strings.Trim(u.Path, "/")
	case strings.Contains(host, "youtube.com") && u.Query().Get("v") != "":
		id = u.Query().Get("v")
	default:
		if m := embedPath.FindStringSubmatch(u.Path); m != nil {
			id = m[1]
		}
	}

	if id == "" {
		return "", apperrors.ErrInvalidYouTubeURL
	}
	return id, nil
}

func parseCaptions(body []byte) ([]model.Segment, error) {
	var track captionTrack
	if err := xml.Unmarshal(body, &track); err != nil {
		return nil, err
	}
	if len(track.Cues) == 0 {
		return nil, apperrors.ErrCaptionsNotFound
	}

	segments := make([]model.Segment, 0, len(track.Cues))
	for _, c := range track.Cues {
		start, err := strconv.ParseFloat(c.Start, 64)
		if err != nil {
			return nil, err
		}
		dur, err := strconv.ParseFloat(c.Dur, 64)
		if err != nil {
			dur = 0
		}
		segments = append(segments, model.Segment{
			Start: start,
			End:   start + dur,
			Text:  cleanCueText(c.Text),
		})
	}
	return segments, nil
}

// cleanCueText resolves the HTML entities and inline markup that caption
// tracks carry inside already XML-decoded cue text.
func cleanCueText(s string) string {
	if !strings.ContainsAny(s, "&<") {
		return s
	}
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(s))
	if err != nil {
		return s
	}
	return doc.Text()
}
