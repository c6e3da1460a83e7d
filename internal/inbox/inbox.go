package inbox

import (
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/mattn/go-runewidth"
	"go.uber.org/zap"

	"github.com/ecallahan/weekflow/internal/extract"
	"github.com/ecallahan/weekflow/internal/records"
	"github.com/ecallahan/weekflow/internal/score"
)

// namespace for deterministic item IDs; the same record always maps to
// the same ID so review marks survive across runs.
var itemNamespace = uuid.MustParse("f3c1a6de-8a43-45e2-9f0b-7c52e86f21aa")

// Item is one scored communication in the priority inbox. Items are
// never mutated after scoring.
type Item struct {
	ID        string
	Source    extract.Source
	From      string
	Subject   string
	Preview   string
	Timestamp time.Time
	Permalink string
	Flags     extract.Flags
	Urgency   score.Level
	Impact    score.Level
	Priority  int
	Category  score.InboxCategory
}

// Stats summarizes an inbox run.
type Stats struct {
	Total         int
	Emails        int
	ChatMessages  int
	HighPriority  int
	NeedsDecision int
	Mentions      int
}

// Summary groups the top items by priority tier.
type Summary struct {
	GeneratedAt time.Time
	Stats       Stats
	P1          []Item // priority 9
	P2          []Item // priority 6 or 8
	P3          []Item // priority 4 or 5
	P4          []Item // priority 3 and below
}

// Inbox aggregates communications from multiple sources and scores
// each on arrival.
type Inbox struct {
	engine *score.Engine
	items  []Item
	log    *zap.Logger
}

// New returns an empty Inbox over the given engine.
func New(engine *score.Engine, log *zap.Logger) *Inbox {
	if log == nil {
		log = zap.NewNop()
	}
	return &Inbox{engine: engine, log: log}
}

// AddEmails scores and adds email records. Records with no subject and
// no snippet are skipped with a warning.
func (b *Inbox) AddEmails(emails []records.Email) {
	for _, email := range emails {
		if email.Subject == "" && email.Snippet == "" {
			b.log.Warn("skipping empty email record", zap.String("id", email.ID))
			continue
		}
		subject := email.Subject
		if subject == "" {
			subject = "No Subject"
		}
		item := Item{
			Source:    extract.SourceEmail,
			From:      orUnknown(email.From),
			Subject:   subject,
			Preview:   truncate(email.Snippet, 100),
			Timestamp: email.Date.Time,
			Flags:     extract.Flags{Attachment: email.HasAttachment},
		}
		b.add(item)
	}
}

// AddChatMessages scores and adds chat records. Bot messages are
// skipped entirely.
func (b *Inbox) AddChatMessages(messages []records.ChatMessage) {
	for _, msg := range messages {
		if msg.BotID != "" {
			continue
		}
		if msg.Text == "" {
			b.log.Warn("skipping empty chat record", zap.String("channel", msg.Channel))
			continue
		}
		channel := msg.ChannelName
		if channel == "" {
			channel = "direct-message"
		}
		from := msg.UserName
		if from == "" {
			from = orUnknown(msg.User)
		}
		item := Item{
			Source:    extract.SourceChatMessage,
			From:      from,
			Subject:   "#" + channel,
			Preview:   truncate(msg.Text, 100),
			Timestamp: msg.Time(),
			Permalink: msg.Permalink,
			Flags: extract.Flags{
				DirectMessage: msg.IsDM(),
				Mention:       msg.IsMention || strings.Contains(msg.Text, "@"),
				Thread:        msg.InThread(),
			},
		}
		b.add(item)
	}
}

func (b *Inbox) add(item Item) {
	in := score.Input{
		From:    item.From,
		Subject: item.Subject,
		Text:    item.Preview,
		Source:  item.Source,
		Flags:   item.Flags,
	}
	item.Urgency, item.Impact, item.Priority = b.engine.Score(in)
	item.Category = b.engine.InboxCategory(in)
	item.ID = uuid.NewSHA1(itemNamespace, []byte(string(item.Source)+"|"+item.From+"|"+item.Subject+"|"+item.Preview)).String()
	b.items = append(b.items, item)
}

// Items returns everything added so far, in arrival order.
func (b *Inbox) Items() []Item {
	return b.items
}

// Filter drops items the predicate rejects. Stats and summaries after
// a Filter reflect only the remaining items.
func (b *Inbox) Filter(keep func(Item) bool) {
	kept := b.items[:0]
	for _, item := range b.items {
		if keep(item) {
			kept = append(kept, item)
		}
	}
	b.items = kept
}

// Summarize sorts items by priority and groups the top maxItems into
// tiers. The sort is stable so arrival order breaks ties.
func (b *Inbox) Summarize(maxItems int) Summary {
	sorted := make([]Item, len(b.items))
	copy(sorted, b.items)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Priority > sorted[j].Priority
	})
	if maxItems > 0 && len(sorted) > maxItems {
		sorted = sorted[:maxItems]
	}

	summary := Summary{GeneratedAt: time.Now(), Stats: b.stats()}
	for _, item := range sorted {
		switch {
		case item.Priority == 9:
			summary.P1 = append(summary.P1, item)
		case item.Priority == 6 || item.Priority == 8:
			summary.P2 = append(summary.P2, item)
		case item.Priority == 4 || item.Priority == 5:
			summary.P3 = append(summary.P3, item)
		default:
			summary.P4 = append(summary.P4, item)
		}
	}
	return summary
}

func (b *Inbox) stats() Stats {
	stats := Stats{Total: len(b.items)}
	for _, item := range b.items {
		switch item.Source {
		case extract.SourceEmail:
			stats.Emails++
		case extract.SourceChatMessage:
			stats.ChatMessages++
		}
		if item.Priority >= 7 {
			stats.HighPriority++
		}
		if item.Category == score.DecisionRequired {
			stats.NeedsDecision++
		}
		if item.Flags.Mention {
			stats.Mentions++
		}
	}
	return stats
}

func orUnknown(s string) string {
	if s == "" {
		return "Unknown"
	}
	return s
}

// truncate clips without cutting a rune mid-sequence.
func truncate(s string, max int) string {
	return runewidth.Truncate(s, max, "")
}
