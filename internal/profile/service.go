// Package profile describes a piece of scraped text: sizes, rune classes,
// Chinese share, a language guess and frequent words.
package profile

import (
	"context"
	"strings"
	"unicode/utf8"

	"github.com/rs/zerolog"

	mdwerrors "github.com/msto63/textkit/foundation/core/errors"
	"github.com/msto63/textkit/foundation/utils/charx"
	"github.com/msto63/textkit/foundation/utils/mapx"
	"github.com/msto63/textkit/foundation/utils/stringx"
)

// DefaultChineseRatio is the share of Chinese runes above which text
// counts as mainly Chinese
const DefaultChineseRatio = 0.5

// Report is the profile of one text
type Report struct {
	Bytes         int            `json:"bytes"`
	Runes         int            `json:"runes"`
	Words         int            `json:"words"`
	Sentences     int            `json:"sentences"`
	Lines         int            `json:"lines"`
	Classes       map[string]int `json:"classes"`
	Chinese       int            `json:"chinese"`
	ChineseRatio  float64        `json:"chinese_ratio"`
	MainlyChinese bool           `json:"mainly_chinese"`
	Language      string         `json:"language"`
	Keywords      []string       `json:"keywords"`
}

// Config holds service configuration
type Config struct {
	Logger       zerolog.Logger
	MaxKeywords  int
	ChineseRatio float64
}

// Service profiles text
type Service struct {
	logger       zerolog.Logger
	maxKeywords  int
	chineseRatio float64
}

// NewService creates a profile service
func NewService(cfg Config) *Service {
	if cfg.MaxKeywords <= 0 {
		cfg.MaxKeywords = 10
	}
	if cfg.ChineseRatio <= 0 {
		cfg.ChineseRatio = DefaultChineseRatio
	}
	return &Service{
		logger:       cfg.Logger,
		maxKeywords:  cfg.MaxKeywords,
		chineseRatio: cfg.ChineseRatio,
	}
}

// Analyze profiles text. Empty text is rejected.
func (s *Service) Analyze(ctx context.Context, text string) (*Report, error) {
	if text == "" {
		return nil, mdwerrors.InvalidInput(mdwerrors.ModuleProfile, "analyze", text, "non-empty text")
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	s.logger.Debug().Int("bytes", len(text)).Msg("profiling text")

	report := &Report{
		Bytes:         len(text),
		Runes:         utf8.RuneCountInString(text),
		Words:         countWords(text),
		Sentences:     countSentences(text),
		Lines:         len(stringx.SplitLines(strings.TrimRight(text, "\r\n"))),
		Classes:       countClasses(text),
		Chinese:       charx.CountChinese(text),
		MainlyChinese: charx.IsMainlyChinese(text, s.chineseRatio),
	}
	report.ChineseRatio = float64(report.Chinese) / float64(report.Runes)
	report.Language = detectLanguage(text, report.MainlyChinese)
	report.Keywords = extractKeywords(text, s.maxKeywords)

	return report, nil
}

func countClasses(text string) map[string]int {
	classes := make(map[string]int, 4)
	for _, r := range text {
		classes[charx.Classify(r).String()]++
	}
	return classes
}

// countWords counts whitespace separated fields; every CJK ideograph is a
// word of its own
func countWords(text string) int {
	count := 0
	for _, field := range strings.FieldsFunc(text, charx.IsWhitespaceLike) {
		cjk := 0
		for _, r := range field {
			if charx.IsCJK(r) {
				cjk++
			}
		}
		if cjk == 0 || cjk < utf8.RuneCountInString(field) {
			count++
		}
		count += cjk
	}
	return count
}

func countSentences(text string) int {
	count := 0
	for _, r := range text {
		switch r {
		case '.', '!', '?', '。', '！', '？':
			count++
		}
	}
	if count == 0 && strings.TrimSpace(text) != "" {
		count = 1
	}
	return count
}

var (
	germanWords  = []string{"und", "der", "die", "das", "ist", "ein", "eine", "nicht", "mit", "für"}
	englishWords = []string{"the", "and", "is", "are", "was", "were", "have", "has", "with", "for"}
)

// detectLanguage returns "zh" for mainly Chinese text and otherwise picks
// between "de" and "en" by counting common words
func detectLanguage(text string, mainlyChinese bool) string {
	if mainlyChinese {
		return "zh"
	}

	padded := " " + strings.ToLower(text) + " "
	count := func(words []string) int {
		n := 0
		for _, w := range words {
			if strings.Contains(padded, " "+w+" ") {
				n++
			}
		}
		return n
	}

	if count(germanWords) > count(englishWords) {
		return "de"
	}
	return "en"
}

var stopWords = map[string]bool{
	"the": true, "a": true, "an": true, "and": true, "or": true, "but": true,
	"in": true, "on": true, "at": true, "to": true, "for": true, "of": true,
	"with": true, "by": true, "from": true, "is": true, "are": true, "was": true,
	"der": true, "die": true, "das": true, "und": true, "oder": true, "aber": true,
	"auf": true, "zu": true, "für": true, "von": true,
	"mit": true, "bei": true, "aus": true, "ist": true, "sind": true, "war": true,
}

// extractKeywords returns up to limit words of three or more runes by
// descending frequency, ties broken alphabetically
func extractKeywords(text string, limit int) []string {
	counts := make(map[string]int)
	for _, word := range strings.Fields(strings.ToLower(text)) {
		word = strings.Trim(word, ".,!?;:\"'()[]{}")
		if utf8.RuneCountInString(word) < 3 || stopWords[word] {
			continue
		}
		counts[word]++
	}

	words := mapx.KeysByValue(counts)
	if len(words) > limit {
		words = words[:limit]
	}
	return words
}
