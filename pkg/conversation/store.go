package conversation

import (
	"context"
	"crypto/md5"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/servvia/servvia/pkg/helpers"
)

const (
	// DefaultTTL clears idle conversations after two hours.
	DefaultTTL = 2 * time.Hour
	// DefaultMaxHistory bounds stored history length; oldest entries are
	// evicted first.
	DefaultMaxHistory = 20
	// DefaultHistoryCharCap truncates individual messages when history is
	// formatted for prompts.
	DefaultHistoryCharCap = 500
	// DefaultFormattedMessages is how many recent messages FormattedHistory
	// includes when the caller passes no limit.
	DefaultFormattedMessages = 10
)

// Options tunes a Store. Zero values fall back to the defaults above.
type Options struct {
	TTL            time.Duration
	MaxHistory     int
	HistoryCharCap int
}

// Store owns per-user conversation state: accumulated context and message
// history, keyed by user identifier. Writes go through the configured
// backend; on any storage fault the store degrades transparently to a
// process-local map so a broken cache never aborts a turn.
type Store struct {
	backend  Backend
	fallback *MemoryBackend
	logger   *log.Logger

	ttl            time.Duration
	maxHistory     int
	historyCharCap int

	locks sync.Map // user key -> *sync.Mutex
}

func NewStore(backend Backend, logger *log.Logger, opts Options) *Store {
	if opts.TTL <= 0 {
		opts.TTL = DefaultTTL
	}
	if opts.MaxHistory <= 0 {
		opts.MaxHistory = DefaultMaxHistory
	}
	if opts.HistoryCharCap <= 0 {
		opts.HistoryCharCap = DefaultHistoryCharCap
	}
	return &Store{
		backend:        backend,
		fallback:       NewMemoryBackend(),
		logger:         logger,
		ttl:            opts.TTL,
		maxHistory:     opts.MaxHistory,
		historyCharCap: opts.HistoryCharCap,
	}
}

// lockUser serializes read-modify-write cycles for one user. Distinct users
// proceed in parallel.
func (s *Store) lockUser(user string) func() {
	mu, _ := s.locks.LoadOrStore(userKey(user), &sync.Mutex{})
	mu.(*sync.Mutex).Lock()
	return mu.(*sync.Mutex).Unlock
}

// userKey hashes the identifier so raw emails never appear in cache keys.
func userKey(user string) string {
	sum := md5.Sum([]byte(user))
	return hex.EncodeToString(sum[:])[:12]
}

func contextKey(user string) string { return fmt.Sprintf("servvia:%s:context", userKey(user)) }
func historyKey(user string) string { return fmt.Sprintf("servvia:%s:history", userKey(user)) }

func (s *Store) getData(ctx context.Context, key string, dest any) bool {
	if s.backend != nil {
		raw, err := s.backend.Get(ctx, key)
		if err == nil {
			if err := json.Unmarshal(raw, dest); err == nil {
				return true
			}
			s.logger.Warn("Discarding undecodable cache entry", "key", key)
		} else if err != ErrNotFound {
			s.logger.Warn("Cache read failed, using in-memory fallback", "key", key, "error", err)
		}
	}

	raw, err := s.fallback.Get(ctx, key)
	if err != nil {
		return false
	}
	return json.Unmarshal(raw, dest) == nil
}

func (s *Store) setData(ctx context.Context, key string, value any) {
	raw, err := json.Marshal(value)
	if err != nil {
		s.logger.Error("Failed to encode conversation state", "key", key, "error", err)
		return
	}

	// The in-memory copy is written unconditionally so fallback reads stay
	// warm across a cache outage.
	_ = s.fallback.Set(ctx, key, raw, s.ttl)

	if s.backend != nil {
		if err := s.backend.Set(ctx, key, raw, s.ttl); err != nil {
			s.logger.Warn("Cache write failed, kept in-memory copy", "key", key, "error", err)
		}
	}
}

// Context returns the stored context for user, or empty defaults when none
// exists or the TTL has lapsed.
func (s *Store) Context(ctx context.Context, user string) UserContext {
	var uc UserContext
	s.getData(ctx, contextKey(user), &uc)
	return uc
}

// SetContext replaces the stored context and refreshes its timestamp.
func (s *Store) SetContext(ctx context.Context, user string, uc UserContext) {
	uc.LastUpdated = time.Now()
	s.setData(ctx, contextKey(user), uc)
}

// AppendMessage records one turn in the user's history, evicting the oldest
// entries beyond the configured maximum.
func (s *Store) AppendMessage(ctx context.Context, user string, role Role, content string) {
	unlock := s.lockUser(user)
	defer unlock()

	var messages []Message
	s.getData(ctx, historyKey(user), &messages)

	messages = append(messages, Message{
		ID:        uuid.New().String(),
		Role:      role,
		Content:   content,
		Timestamp: time.Now(),
	})
	messages = helpers.SafeLastN(messages, s.maxHistory)

	s.setData(ctx, historyKey(user), messages)
	s.logger.Debug("Appended message", "user", userKey(user), "role", role, "total", len(messages))
}

// History returns the most recent limit messages in original order. A
// non-positive limit returns everything stored.
func (s *Store) History(ctx context.Context, user string, limit int) []Message {
	var messages []Message
	s.getData(ctx, historyKey(user), &messages)
	if limit > 0 {
		messages = helpers.SafeLastN(messages, limit)
	}
	return messages
}

// FormattedHistory renders the most recent messages as role-prefixed lines
// for prompt building, truncating long messages to the configured cap.
func (s *Store) FormattedHistory(ctx context.Context, user string, maxMessages int) string {
	if maxMessages <= 0 {
		maxMessages = DefaultFormattedMessages
	}
	messages := s.History(ctx, user, maxMessages)
	if len(messages) == 0 {
		return ""
	}

	lines := make([]string, 0, len(messages))
	for _, msg := range messages {
		prefix := "User"
		if msg.Role == RoleAssistant {
			prefix = "ServVia"
		}
		lines = append(lines, prefix+": "+helpers.TruncateRunes(msg.Content, s.historyCharCap))
	}
	return strings.Join(lines, "\n")
}

// Clear drops all conversation state for a user.
func (s *Store) Clear(ctx context.Context, user string) {
	keys := []string{contextKey(user), historyKey(user)}
	_ = s.fallback.Delete(ctx, keys...)
	if s.backend != nil {
		if err := s.backend.Delete(ctx, keys...); err != nil {
			s.logger.Warn("Cache delete failed", "user", userKey(user), "error", err)
		}
	}
	s.logger.Info("Cleared conversation", "user", userKey(user))
}

// Summary renders the tracked context as a short human-readable line.
func (s *Store) Summary(ctx context.Context, user string) string {
	uc := s.Context(ctx, user)

	var parts []string
	if len(uc.Medications) > 0 {
		parts = append(parts, "Medications: "+strings.Join(uc.Medications, ", "))
	}
	if len(uc.Conditions) > 0 {
		parts = append(parts, "Discussing: "+strings.Join(uc.Conditions, ", "))
	}
	if len(uc.Herbs) > 0 {
		parts = append(parts, "Remedies mentioned: "+strings.Join(uc.Herbs, ", "))
	}
	if len(parts) == 0 {
		return "No context tracked yet"
	}
	return strings.Join(parts, " | ")
}

var followUpCues = []string{
	"what about", "how about", "and", "also", "too",
	"can i", "should i", "is it", "will it", "does it",
	"how long", "how much", "how often", "how do",
	"what if", "but", "instead", "alternatively",
	"tell me more", "more about", "explain",
	"the same", "that", "this", "it",
}

// IsFollowUp reports whether query reads like a follow-up to the ongoing
// conversation: either it contains a follow-up cue, or it is short and the
// user already has history.
func (s *Store) IsFollowUp(ctx context.Context, user, query string) bool {
	q := strings.ToLower(query)
	for _, cue := range followUpCues {
		if strings.Contains(q, cue) {
			return true
		}
	}
	if len(strings.Fields(query)) <= 6 {
		return len(s.History(ctx, user, 1)) > 0
	}
	return false
}
