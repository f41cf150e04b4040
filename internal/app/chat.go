package app

import (
	"context"
	"strings"

	"github.com/rs/zerolog/log"

	"agentix_travel/internal/adapters/observability"
	"agentix_travel/internal/domain"
)

const chatSystemPrompt = `You are a helpful travel assistant for Agentix Travel, a hotel booking platform. Your role is to:

1. Help users find hotels and answer questions about destinations
2. Explain the booking process and how it works
3. Address concerns about payment security and booking guarantees
4. Provide travel tips and recommendations

Key facts about Agentix Travel:
- We offer 2+ million hotels in 190+ countries
- Payments are processed securely via Stripe (PCI DSS Level 1 compliant)
- All bookings are confirmed directly with hotels
- We offer 24/7 support
- Many hotels offer free cancellation

Be friendly, concise, and helpful. Keep responses under 150 words unless more detail is needed. If you don't know something specific about a booking, suggest the user check their confirmation email or contact support.`

const chatHistoryLimit = 10

// ChatService answers support questions. A completion provider is
// optional: without one, or when one fails, replies come from a fixed
// keyword table so the widget always answers.
type ChatService struct {
	provider domain.ChatCompleter // nil means canned replies only
}

func NewChatService(provider domain.ChatCompleter) *ChatService {
	return &ChatService{provider: provider}
}

// ChatReply carries the answer plus whether it came from the canned
// table rather than the provider.
type ChatReply struct {
	Message string `json:"message"`
	IsDemo  bool   `json:"isDemo,omitempty"`
}

// Reply forwards the message with bounded history to the provider and
// degrades to a canned reply on any failure.
func (s *ChatService) Reply(ctx context.Context, history []domain.ChatTurn, message string) ChatReply {
	if s.provider == nil {
		observability.ObserveChat("fallback")
		return ChatReply{Message: cannedReply(message), IsDemo: true}
	}

	if len(history) > chatHistoryLimit {
		history = history[len(history)-chatHistoryLimit:]
	}
	answer, err := s.provider.Complete(ctx, chatSystemPrompt, history, message)
	if err != nil || answer == "" {
		log.Warn().Err(err).Msg("chat completion failed, serving canned reply")
		observability.ObserveChat("fallback")
		return ChatReply{Message: cannedReply(message), IsDemo: true}
	}
	observability.ObserveChat("provider")
	return ChatReply{Message: answer}
}

// cannedReply picks the first matching topic; order matters, earlier
// topics win when a message mentions several.
func cannedReply(message string) string {
	m := strings.ToLower(message)
	for _, c := range cannedReplies {
		for _, kw := range c.keywords {
			if strings.Contains(m, kw) {
				return c.reply
			}
		}
	}
	return "I can help you with hotel searches, booking questions, payment security, cancellation policies, and travel tips. What would you like to know?"
}

var cannedReplies = []struct {
	keywords []string
	reply    string
}{
	{
		[]string{"book", "reservation"},
		"To book a hotel, simply search for your destination, select your dates, choose a room, and complete the secure checkout. You'll receive an instant confirmation email with all your booking details.",
	},
	{
		[]string{"cancel", "refund"},
		"Cancellation policies vary by hotel and rate type. Free cancellation options are clearly marked during booking. Check your confirmation email for specific terms, or contact our support team for help.",
	},
	{
		[]string{"payment", "secure", "safe"},
		"Your payment is completely secure. We use Stripe for processing, which is PCI DSS Level 1 certified, the highest security standard. Your card details are never stored on our servers.",
	},
	{
		[]string{"confirm", "guarantee"},
		"Every booking is confirmed directly with the hotel. You'll receive an official confirmation number that the hotel recognizes. If any issues arise, we'll find you alternative accommodation at no extra cost.",
	},
	{
		[]string{"contact", "support", "help"},
		"I'm here to help! For booking issues, check your confirmation email first. For urgent matters, contact support@agentixtravel.com or call our 24/7 hotline. What specific question can I help with?",
	},
	{
		[]string{"hello", "hi", "hey"},
		"Hello! Welcome to Agentix Travel. I'm your AI assistant. I can help you find hotels, explain our booking process, or answer questions about your travel plans. What can I help you with today?",
	},
}
