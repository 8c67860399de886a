package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"gorm.io/gorm"

	"github.com/reliefmap/reliefmap/internal/models"
	apperrors "github.com/reliefmap/reliefmap/pkg/errors"
	"github.com/reliefmap/reliefmap/pkg/metrics"
)

// AdminPartnerName is the identity members converse with. Members never pick
// a partner themselves; the sidebar pins them to the admin channel.
const AdminPartnerName = "ADMIN"

// ChatPartner is one sidebar entry: the other party's name and how many of
// their messages to the current user remain unread.
type ChatPartner struct {
	Name   string `json:"name"`
	Unread int64  `json:"unread"`
}

// MessageService orchestrates conversation retrieval, partner-list
// derivation, and unread-count bookkeeping.
type MessageService struct {
	db      *gorm.DB
	timeNow func() time.Time
}

// NewMessageService constructs a MessageService.
func NewMessageService(db *gorm.DB) (*MessageService, error) {
	if db == nil {
		return nil, errors.New("message service: db is required")
	}
	return &MessageService{
		db:      db,
		timeNow: time.Now,
	}, nil
}

// Send persists a chat message, stamping the timestamp and the unread flag.
// The sender is the authenticated identity; the recipient is taken as-is
// without an existence check.
func (s *MessageService) Send(ctx context.Context, msg *models.Message) (*models.Message, error) {
	ctx = ensureContext(ctx)

	if msg == nil {
		return nil, apperrors.NewBadRequest("message payload is required")
	}
	if strings.TrimSpace(msg.Sender) == "" {
		return nil, apperrors.NewBadRequest("sender is required")
	}
	if strings.TrimSpace(msg.Content) == "" {
		return nil, apperrors.NewBadRequest("message content is required")
	}

	msg.ID = ""
	msg.Timestamp = s.timeNow()
	msg.IsRead = false

	if err := s.db.WithContext(ctx).Create(msg).Error; err != nil {
		return nil, fmt.Errorf("message service: create message: %w", err)
	}

	metrics.MessagesSent.WithLabelValues(msg.Role).Inc()
	return msg, nil
}

// GetConversation returns all messages between the two users in ascending
// timestamp order, and marks the partner's messages to currentUser as read.
// Callers must expect that mutation from this read path.
func (s *MessageService) GetConversation(ctx context.Context, currentUser, partner string) ([]models.Message, error) {
	ctx = ensureContext(ctx)

	currentUser = strings.TrimSpace(currentUser)
	partner = strings.TrimSpace(partner)

	msgs := []models.Message{}
	if currentUser == "" || partner == "" {
		return msgs, nil
	}

	if err := s.MarkConversationRead(ctx, currentUser, partner); err != nil {
		return nil, err
	}

	err := s.db.WithContext(ctx).
		Where("(sender = ? AND recipient = ?) OR (sender = ? AND recipient = ?)",
			currentUser, partner, partner, currentUser).
		Order("timestamp ASC").
		Find(&msgs).Error
	if err != nil {
		return nil, fmt.Errorf("message service: load conversation: %w", err)
	}

	return msgs, nil
}

// MarkConversationRead flips every message from partner addressed to
// currentUser to read. A single predicate-scoped update, atomic in the store.
func (s *MessageService) MarkConversationRead(ctx context.Context, currentUser, partner string) error {
	ctx = ensureContext(ctx)

	err := s.db.WithContext(ctx).Model(&models.Message{}).
		Where("sender = ? AND recipient = ? AND is_read = ?", partner, currentUser, false).
		Update("is_read", true).Error
	if err != nil {
		return fmt.Errorf("message service: mark conversation read: %w", err)
	}
	return nil
}

// GetUnreadCount counts unread messages addressed to the user.
func (s *MessageService) GetUnreadCount(ctx context.Context, username string) (int64, error) {
	ctx = ensureContext(ctx)

	var count int64
	err := s.db.WithContext(ctx).Model(&models.Message{}).
		Where("recipient = ? AND is_read = ?", strings.TrimSpace(username), false).
		Count(&count).Error
	if err != nil {
		return 0, fmt.Errorf("message service: count unread: %w", err)
	}
	return count, nil
}

// GetChatPartners derives the sidebar partner list.
//
// Members always get exactly one entry, the admin channel, annotated with
// their own unread count. Admins get every counterpart ordered by most
// recent activity first: messages are scanned newest-first and partners kept
// in first-seen order, accumulating per-partner unread counts along the way.
func (s *MessageService) GetChatPartners(ctx context.Context, currentUser string, isAdmin bool) ([]ChatPartner, error) {
	ctx = ensureContext(ctx)
	currentUser = strings.TrimSpace(currentUser)

	if !isAdmin {
		unread, err := s.GetUnreadCount(ctx, currentUser)
		if err != nil {
			return nil, err
		}
		return []ChatPartner{{Name: AdminPartnerName, Unread: unread}}, nil
	}

	var msgs []models.Message
	if err := s.db.WithContext(ctx).
		Order("timestamp DESC").
		Find(&msgs).Error; err != nil {
		return nil, fmt.Errorf("message service: scan messages: %w", err)
	}

	order := make([]string, 0)
	seen := make(map[string]struct{})
	unread := make(map[string]int64)

	for _, m := range msgs {
		var partner string
		switch {
		case m.Sender == currentUser:
			partner = m.Recipient
		case m.Recipient == currentUser:
			partner = m.Sender
			if !m.IsRead {
				unread[partner]++
			}
		}

		if partner == "" {
			continue
		}
		if _, ok := seen[partner]; !ok {
			seen[partner] = struct{}{}
			order = append(order, partner)
		}
	}

	partners := make([]ChatPartner, 0, len(order))
	for _, name := range order {
		partners = append(partners, ChatPartner{Name: name, Unread: unread[name]})
	}
	return partners, nil
}
