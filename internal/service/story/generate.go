package story

import (
	"context"
	"fmt"
	"strings"

	"github.com/bolchaal/bolchaal-backend/internal/domain"
	"github.com/bolchaal/bolchaal-backend/pkg/ctxutil"
)

// GenerateInput describes the story to generate.
type GenerateInput struct {
	Pair   domain.LangPair
	Prompt string
	Level  int
}

// Validate checks the input fields.
func (i GenerateInput) Validate() error {
	if err := i.Pair.Validate(); err != nil {
		return err
	}
	if strings.TrimSpace(i.Prompt) == "" {
		return domain.NewValidationError("prompt", "required")
	}
	if i.Level < 0 || i.Level > 5 {
		return domain.NewValidationError("level", "must be between 0 and 5")
	}
	return nil
}

// levelGuidance scales story length and vocabulary difficulty to the
// learner's proficiency level.
var levelGuidance = map[int]string{
	0: "The story should be very simple and short (less than 100 words) as the reader is new to %s.",
	1: "The story should be short (less than 200 words) and use simple language as the reader knows some common words in %s.",
	2: "The story should be medium length (less than 300 words) and use words of intermediate difficulty as the reader can have basic conversations in %s.",
	3: "The story should be medium length (less than 400 words) and use high-intermediate language, but not too difficult, as the reader can talk about various topics in %s.",
	4: "The story should be long (around 400 to 600 words) and use advanced language as the reader can discuss most topics in detail in %s.",
}

// Generate creates a story from the prompt, scaled to the learner's level,
// with bilingual titles and a generated cover image. The story is persisted
// before cover generation starts; a cover failure is logged and the story is
// returned without one.
func (s *Service) Generate(ctx context.Context, input GenerateInput) (*domain.Story, error) {
	creator, ok := ctxutil.UserEmailFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}
	if err := input.Validate(); err != nil {
		return nil, err
	}

	content, err := s.genai.Generate(ctx, storyPrompt(input))
	if err != nil {
		return nil, fmt.Errorf("generate story: %w", err)
	}

	learnName, err := s.title(ctx, content, input.Pair.LearnLang)
	if err != nil {
		return nil, fmt.Errorf("generate title: %w", err)
	}
	instructName, err := s.title(ctx, content, input.Pair.InstructLang)
	if err != nil {
		return nil, fmt.Errorf("generate title: %w", err)
	}

	created, err := s.stories.Create(ctx, &domain.Story{
		Prompt:       input.Prompt,
		Content:      withParagraphMarkers(content),
		Level:        input.Level,
		InstructLang: input.Pair.InstructLang,
		LearnLang:    input.Pair.LearnLang,
		InstructName: instructName,
		LearnName:    learnName,
		Published:    true,
		Creator:      creator,
	})
	if err != nil {
		return nil, fmt.Errorf("persist story: %w", err)
	}

	coverURL, err := s.generateCover(ctx, created.ID.String(), content, input.Pair.LearnLang)
	if err != nil {
		s.log.WarnContext(ctx, "cover generation failed, story published without cover",
			"story_id", created.ID, "error", err)
		return created, nil
	}
	if err := s.stories.SetCoverURL(ctx, created.ID, coverURL); err != nil {
		return nil, fmt.Errorf("attach cover: %w", err)
	}
	created.CoverURL = &coverURL

	s.log.InfoContext(ctx, "story generated",
		"story_id", created.ID, "level", input.Level, "learn_lang", input.Pair.LearnLang)

	return created, nil
}

func storyPrompt(input GenerateInput) string {
	learn := languageName(input.Pair.LearnLang)

	var b strings.Builder
	fmt.Fprintf(&b, "You are a story generator. Please reset any previous context and generate a new story. The story should be written in %s. ", learn)

	guidance, ok := levelGuidance[input.Level]
	if !ok {
		guidance = "The story should be appropriate for the reader's level in %s."
	}
	fmt.Fprintf(&b, guidance, learn)
	fmt.Fprintf(&b, " Here is the prompt: %s", input.Prompt)

	return b.String()
}

func (s *Service) title(ctx context.Context, content, lang string) (string, error) {
	prompt := fmt.Sprintf(
		"Generate a short and catchy title in %s for the following story: %s. Provide only one title and nothing else.",
		languageName(lang), content)

	title, err := s.genai.Generate(ctx, prompt)
	if err != nil {
		return "", err
	}

	return strings.TrimSpace(title), nil
}

// generateCover renders cover art for the story and uploads it, returning the
// public URL. The object key is the story id.
func (s *Service) generateCover(ctx context.Context, storyID, content, learnLang string) (string, error) {
	img, err := s.covers.GenerateCover(ctx, coverPrompt(content, learnLang))
	if err != nil {
		return "", err
	}

	key := storyID + ".png"
	if err := s.blobs.Put(ctx, s.storage.CoverBucket, key, img, "image/png"); err != nil {
		return "", err
	}

	return s.blobs.URL(s.storage.CoverBucket, key), nil
}

func coverPrompt(content, learnLang string) string {
	style := "similar to the style of modern animated films. Characters should look cute, but not too childish"
	switch learnLang {
	case "hi":
		style += ", depicting characters of Indian nationality"
	case "en":
		style += ", depicting characters of American or British nationality"
	}

	return fmt.Sprintf("%s in the style of %s", content, style)
}

// withParagraphMarkers replaces newlines with the paragraph marker the
// tokenizer understands, so the client renders breaks from a flat token
// stream.
func withParagraphMarkers(content string) string {
	content = strings.ReplaceAll(content, "\r\n", "\n")
	return strings.ReplaceAll(content, "\n", " "+domain.ParagraphMarker+" ")
}

var languageNames = map[string]string{
	"en": "English",
	"hi": "Hindi",
}

func languageName(code string) string {
	if name, ok := languageNames[code]; ok {
		return name
	}
	return code
}
