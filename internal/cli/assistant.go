package cli

import (
	"context"
	"strings"

	"github.com/dmitrijs2005/studyhub/internal/models"
	"github.com/dmitrijs2005/studyhub/internal/services"
)

func speaker(r models.Role) string {
	if r == models.RoleAssistant {
		return "AI"
	}
	return "You"
}

// Chat sends one message, taken from args or prompted for.
func (a *App) Chat(ctx context.Context, args []string) error {
	msg := strings.Join(args, " ")
	if msg == "" {
		var err error
		if msg, err = GetMultiline(a.reader, "Ask the study assistant", a.out); err != nil {
			return a.fail(err)
		}
	}

	a.printf("Thinking...\n")
	reply, err := a.core.Chat.Send(ctx, msg)
	if err != nil {
		a.printf("AI: %s\n", services.ChatFallbackReply)
		return a.fail(err)
	}
	a.printf("AI: %s\n", reply.Content)
	return nil
}

func (a *App) History(ctx context.Context, _ []string) error {
	msgs, err := a.core.Chat.History(ctx)
	if err != nil {
		return a.fail(err)
	}
	if len(msgs) == 0 {
		a.printf("No messages yet\n")
	}
	for _, m := range msgs {
		a.printf("%s: %s\n", speaker(m.Role), m.Content)
	}
	return nil
}

// Videos searches tutorial videos for a topic.
func (a *App) Videos(ctx context.Context, args []string) error {
	topic := strings.Join(args, " ")
	if topic == "" {
		var err error
		if topic, err = GetSimpleText(a.reader, "Enter a topic to search videos", a.out); err != nil {
			return a.fail(err)
		}
	}

	videos, err := a.core.Videos.Search(ctx, topic)
	if err != nil {
		return a.fail(err)
	}
	if len(videos) == 0 {
		a.printf("No videos found. Try a different search term.\n")
		return nil
	}
	for _, v := range videos {
		a.printf("%s\n  %s\n  %s\n", v.Title, v.ChannelTitle, v.WatchURL())
	}
	return nil
}
