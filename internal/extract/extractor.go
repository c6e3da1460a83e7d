package extract

import (
	"regexp"
	"strings"

	"go.uber.org/zap"
)

// Extractor pulls typed items out of raw records. It is stateless with
// respect to its inputs: identical records always yield identical items.
type Extractor struct {
	nameFixes []nameFix
	log       *zap.Logger
}

type nameFix struct {
	re      *regexp.Regexp
	correct string
}

// Option configures an Extractor.
type Option func(*Extractor)

// WithNameCorrections installs a whole-word misspelling map applied to
// every record before pattern matching. Useful for fixing recurring
// transcription errors in meeting notes.
func WithNameCorrections(corrections map[string]string) Option {
	return func(e *Extractor) {
		for wrong, correct := range corrections {
			e.nameFixes = append(e.nameFixes, nameFix{
				re:      regexp.MustCompile(`\b` + regexp.QuoteMeta(wrong) + `\b`),
				correct: correct,
			})
		}
		// Map iteration order is random; keep the pass deterministic.
		sortNameFixes(e.nameFixes)
	}
}

// WithLogger sets the logger used for skipped-record warnings.
func WithLogger(log *zap.Logger) Option {
	return func(e *Extractor) { e.log = log }
}

// New returns an Extractor with the given options applied.
func New(opts ...Option) *Extractor {
	e := &Extractor{log: zap.NewNop()}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

func sortNameFixes(fixes []nameFix) {
	for i := 1; i < len(fixes); i++ {
		for j := i; j > 0 && fixes[j].re.String() < fixes[j-1].re.String(); j-- {
			fixes[j], fixes[j-1] = fixes[j-1], fixes[j]
		}
	}
}

// CorrectNames applies the configured misspelling fixes, matching whole
// words only so partial words are never rewritten.
func (e *Extractor) CorrectNames(text string) string {
	for _, fix := range e.nameFixes {
		text = fix.re.ReplaceAllString(text, fix.correct)
	}
	return text
}

// Commitments extracts first-person future commitments from records.
// Every rule is run against every record; all matches are kept.
func (e *Extractor) Commitments(records []Record) []Item {
	var items []Item
	for _, rec := range records {
		text, ok := e.prepare(rec)
		if !ok {
			continue
		}
		for _, rule := range commitmentRules {
			for _, m := range rule.Pattern.FindAllStringSubmatch(text, -1) {
				if item, ok := e.capture(rec, rule, m[1], SourceMarkdownCommitment); ok {
					items = append(items, item)
				}
			}
		}
	}
	return Dedupe(items)
}

// Requests extracts second-person requests and explicit mentions. For
// request phrasing the first matching rule wins per record; an explicit
// mention yields one item carrying the whole cleaned message.
func (e *Extractor) Requests(records []Record) []Item {
	var items []Item
	for _, rec := range records {
		text, ok := e.prepare(rec)
		if !ok {
			continue
		}
		if mentionRe.MatchString(rec.Text) || rec.Flags.Mention {
			cleaned := CleanText(text)
			if cleaned != "" {
				item := e.item(rec, cleaned, SourceChatMessage)
				item.Flags.Mention = true
				items = append(items, item)
			}
		}
		for _, rule := range requestRules {
			if m := rule.Pattern.FindStringSubmatch(text); m != nil {
				if item, ok := e.capture(rec, rule, m[1], SourceChatMessage); ok {
					items = append(items, item)
				}
				break
			}
		}
	}
	return Dedupe(items)
}

// Decisions extracts retrospective decision statements.
func (e *Extractor) Decisions(records []Record) []Item {
	var items []Item
	for _, rec := range records {
		text, ok := e.prepare(rec)
		if !ok {
			continue
		}
		for _, rule := range decisionRules {
			for _, m := range rule.Pattern.FindAllStringSubmatch(text, -1) {
				if item, ok := e.capture(rec, rule, m[1], SourceMarkdownDecision); ok {
					items = append(items, item)
				}
			}
		}
	}
	return Dedupe(items)
}

// prepare validates a record and applies the name-correction pass.
// Records without text are skipped with a warning, never an error.
func (e *Extractor) prepare(rec Record) (string, bool) {
	if strings.TrimSpace(rec.Text) == "" {
		e.log.Warn("skipping record with no text", zap.String("origin", rec.SourceRef))
		return "", false
	}
	return e.CorrectNames(rec.Text), true
}

func (e *Extractor) capture(rec Record, rule Rule, span string, src Source) (Item, bool) {
	cleaned := CleanText(span)
	if len(cleaned) < rule.MinLen {
		return Item{}, false
	}
	if rule.DropQuestions && strings.HasSuffix(cleaned, "?") {
		return Item{}, false
	}
	return e.item(rec, cleaned, src), true
}

func (e *Extractor) item(rec Record, text string, src Source) Item {
	return Item{
		Source:    src,
		Text:      text,
		OriginRef: rec.SourceRef,
		Timestamp: rec.Timestamp,
		Flags:     rec.Flags,
	}
}

// CleanText normalizes a captured span: strips bracketed mention and
// link markup, strips emphasis characters, collapses whitespace and
// capitalizes the first letter.
func CleanText(text string) string {
	text = markupRefRe.ReplaceAllString(text, "")
	text = emphasisRe.ReplaceAllString(text, "")
	text = strings.Join(strings.Fields(text), " ")
	if text == "" {
		return ""
	}
	return strings.ToUpper(text[:1]) + text[1:]
}

// Dedupe removes items with identical text, comparing case-insensitively
// and preserving first-seen order.
func Dedupe(items []Item) []Item {
	seen := make(map[string]bool, len(items))
	out := items[:0:0]
	for _, item := range items {
		key := strings.ToLower(item.Text)
		if seen[key] {
			continue
		}
		seen[key] = true
		out = append(out, item)
	}
	return out
}

// DedupeStrings is Dedupe for plain task strings.
func DedupeStrings(tasks []string) []string {
	seen := make(map[string]bool, len(tasks))
	out := tasks[:0:0]
	for _, task := range tasks {
		key := strings.ToLower(task)
		if seen[key] {
			continue
		}
		seen[key] = true
		out = append(out, task)
	}
	return out
}
