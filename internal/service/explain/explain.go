package explain

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/bolchaal/bolchaal-backend/internal/adapter/provider/genai"
	"github.com/bolchaal/bolchaal-backend/internal/domain"
)

// explainPromptFmt requests entries in the exact JSON envelope parseEntries
// expects. Categories stay in English regardless of the instruction language;
// the client localizes labels itself.
const explainPromptFmt = `You are a language teacher explaining notable words, idioms, and grammar concepts to a learner.

Explain the term %q (a %s term) for a learner whose instruction language is %s.
- Categorize each notable item as "word", "idiom", or "grammar" (use exactly these English category values).
- For words and idioms, provide the pronunciation (romanized for Hindi, phonetic for English).
- For words, give the part of speech in %s. If the term has multiple parts of speech, create a separate entry for each, with its own definition, usage, and other forms.
- Definitions list every meaning in %s as a numbered list (1. meaning 2. meaning).
- Usage is a sentence in the term's own language, followed by its %s translation in parentheses. Never mix languages inside one sentence.
- For grammar items, provide the explanation in %s.

Respond with only this JSON object and nothing else:

{
  "result": [
    {
      "category": "word | idiom | grammar",
      "term": "term",
      "pronunciation": "pronunciation",
      "partOfSpeech": "part of speech",
      "definition": "1. meaning 1 2. meaning 2",
      "usage": "usage sentence (translation)",
      "otherForms": {"noun": "form", "verb": "form"},
      "explanation": "grammar explanation"
    }
  ]
}

Omit fields that do not apply to an entry's category.`

// entryPayload mirrors one element of the model's "result" array.
type entryPayload struct {
	Category      string            `json:"category"`
	Term          string            `json:"term"`
	Pronunciation *string           `json:"pronunciation"`
	PartOfSpeech  *string           `json:"partOfSpeech"`
	Definition    string            `json:"definition"`
	Usage         *string           `json:"usage"`
	OtherForms    map[string]string `json:"otherForms"`
	Explanation   *string           `json:"explanation"`
}

// Explain returns all dictionary entries for a term, generating and caching
// them on first lookup. The cache key is the exact term text within the
// language pair.
func (s *Service) Explain(ctx context.Context, input Input) ([]domain.DictEntry, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	cached, err := s.dict.FindByTerm(ctx, input.Pair, input.Term)
	if err != nil {
		return nil, fmt.Errorf("dictionary lookup: %w", err)
	}
	if len(cached) > 0 {
		s.log.DebugContext(ctx, "dictionary cache hit",
			"term", input.Term, "pair", input.Pair.String(), "entries", len(cached))
		return cached, nil
	}

	raw, err := s.genai.Generate(ctx, explainPrompt(input))
	if err != nil {
		return nil, err
	}

	entries, err := parseEntries(raw, input.Pair)
	if err != nil {
		return nil, err
	}
	if len(entries) == 0 {
		// Every parsed entry was a discarded phrase; nothing to cache.
		return nil, nil
	}

	for i := range entries {
		if entries[i].Category == domain.CategoryGrammar {
			continue
		}
		url, err := s.audioURL(ctx, entries[i].Term, input.Pair.LearnLang)
		if err != nil {
			return nil, err
		}
		entries[i].AudioURL = &url
	}

	if err := s.dict.CreateBatch(ctx, entries); err != nil {
		return nil, fmt.Errorf("cache entries: %w", err)
	}

	s.log.InfoContext(ctx, "term explained",
		"term", input.Term, "pair", input.Pair.String(), "entries", len(entries))

	return entries, nil
}

func explainPrompt(input Input) string {
	instruct := languageName(input.Pair.InstructLang)
	learn := languageName(input.Pair.LearnLang)
	return fmt.Sprintf(explainPromptFmt,
		input.Term, learn, instruct, instruct, instruct, instruct, instruct)
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

// parseEntries extracts the structured entry list from a model response.
// Any deviation from the expected shape fails with ExplanationParseError
// carrying the raw response; partial results are never returned.
func parseEntries(raw string, pair domain.LangPair) ([]domain.DictEntry, error) {
	jsonStr, err := genai.ExtractJSON(strings.ReplaceAll(raw, "`", ""))
	if err != nil {
		return nil, &domain.ExplanationParseError{Reason: err.Error(), Raw: raw}
	}

	var payload struct {
		Result []entryPayload `json:"result"`
	}
	if err := json.Unmarshal([]byte(jsonStr), &payload); err != nil {
		return nil, &domain.ExplanationParseError{Reason: "unmarshal: " + err.Error(), Raw: raw}
	}
	if len(payload.Result) == 0 {
		return nil, &domain.ExplanationParseError{Reason: "empty result list", Raw: raw}
	}

	var entries []domain.DictEntry
	for i, item := range payload.Result {
		category := domain.EntryCategory(item.Category)
		switch category {
		case domain.CategoryPhrase:
			// Produced by the model but never cached or returned.
			continue
		case domain.CategoryWord, domain.CategoryIdiom, domain.CategoryGrammar:
		default:
			return nil, &domain.ExplanationParseError{
				Reason: fmt.Sprintf("entry %d: unknown category %q", i, item.Category),
				Raw:    raw,
			}
		}
		if item.Term == "" {
			return nil, &domain.ExplanationParseError{
				Reason: fmt.Sprintf("entry %d: missing term", i),
				Raw:    raw,
			}
		}
		if item.Definition == "" && category != domain.CategoryGrammar {
			return nil, &domain.ExplanationParseError{
				Reason: fmt.Sprintf("entry %d: missing definition", i),
				Raw:    raw,
			}
		}

		entries = append(entries, domain.DictEntry{
			InstructLang:  pair.InstructLang,
			LearnLang:     pair.LearnLang,
			Category:      category,
			Term:          item.Term,
			Pronunciation: item.Pronunciation,
			PartOfSpeech:  item.PartOfSpeech,
			Definition:    item.Definition,
			Usage:         item.Usage,
			OtherForms:    item.OtherForms,
			Explanation:   item.Explanation,
		})
	}

	return entries, nil
}

// audioURL returns the public URL of a pronunciation clip for term, reusing a
// previously stored clip when one exists.
func (s *Service) audioURL(ctx context.Context, term, learnLang string) (string, error) {
	bucket := s.storage.AudioBucket(learnLang)
	if bucket == "" {
		return "", fmt.Errorf("audio for %q: %w", learnLang, domain.ErrUnsupportedLanguage)
	}
	key := audioKey(term)

	exists, err := s.blobs.Exists(ctx, bucket, key)
	if err != nil {
		return "", fmt.Errorf("check audio %s: %w", key, err)
	}
	if exists {
		return s.blobs.URL(bucket, key), nil
	}

	audio, err := s.tts.Synthesize(ctx, term, learnLang)
	if err != nil {
		return "", fmt.Errorf("synthesize %q: %w", term, err)
	}
	if err := s.blobs.Put(ctx, bucket, key, audio, "audio/mpeg"); err != nil {
		return "", fmt.Errorf("store audio %s: %w", key, err)
	}

	return s.blobs.URL(bucket, key), nil
}

// audioKey derives the object key from the term: lowercased, spaces replaced
// with underscores.
func audioKey(term string) string {
	return strings.ReplaceAll(strings.ToLower(term), " ", "_") + ".mp3"
}
