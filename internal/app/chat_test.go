package app

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"agentix_travel/internal/domain"
)

type fakeCompleter struct {
	answer string
	err    error

	gotSystem  string
	gotHistory []domain.ChatTurn
	gotMessage string
}

func (f *fakeCompleter) Complete(ctx context.Context, system string, history []domain.ChatTurn, message string) (string, error) {
	f.gotSystem = system
	f.gotHistory = history
	f.gotMessage = message
	return f.answer, f.err
}

func TestReplyUsesProvider(t *testing.T) {
	provider := &fakeCompleter{answer: "Sure, I can help with that."}
	svc := NewChatService(provider)

	reply := svc.Reply(context.Background(), nil, "Which hotels are near the waterfront?")
	require.Equal(t, "Sure, I can help with that.", reply.Message)
	require.False(t, reply.IsDemo)
	require.Contains(t, provider.gotSystem, "Agentix Travel")
	require.Equal(t, "Which hotels are near the waterfront?", provider.gotMessage)
}

func TestReplyCapsHistory(t *testing.T) {
	provider := &fakeCompleter{answer: "ok"}
	svc := NewChatService(provider)

	history := make([]domain.ChatTurn, 25)
	for i := range history {
		history[i] = domain.ChatTurn{Role: "user", Content: strings.Repeat("x", i+1)}
	}
	svc.Reply(context.Background(), history, "latest")
	require.Len(t, provider.gotHistory, 10)
	require.Equal(t, history[15], provider.gotHistory[0])
}

func TestReplyFallsBackOnProviderError(t *testing.T) {
	svc := NewChatService(&fakeCompleter{err: errors.New("upstream down")})

	reply := svc.Reply(context.Background(), nil, "Is my payment safe?")
	require.True(t, reply.IsDemo)
	require.Contains(t, reply.Message, "Stripe")
}

func TestReplyNoProviderIsCanned(t *testing.T) {
	svc := NewChatService(nil)

	reply := svc.Reply(context.Background(), nil, "hello there")
	require.True(t, reply.IsDemo)
	require.Contains(t, reply.Message, "Welcome to Agentix Travel")
}

func TestCannedReplyTopics(t *testing.T) {
	cases := []struct {
		message string
		want    string
	}{
		{"How do I book a room?", "To book a hotel"},
		{"Can I get a refund?", "Cancellation policies vary"},
		{"is checkout secure?", "completely secure"},
		{"will my stay be guaranteed?", "confirmed directly with the hotel"},
		{"I need support", "I'm here to help"},
		{"hey", "Welcome to Agentix Travel"},
		{"what's the weather like", "hotel searches, booking questions"},
	}
	for _, c := range cases {
		require.Contains(t, cannedReply(c.message), c.want, "message %q", c.message)
	}
}

func TestCannedReplyEarlierTopicWins(t *testing.T) {
	// "cancel my booking" mentions both; booking is checked first.
	require.Contains(t, cannedReply("cancel my booking"), "To book a hotel")
}
