package captions

import (
	"context"
	"fmt"
	"strings"

	"promogen/internal/contextutil"
	"promogen/internal/docstore"
	"promogen/internal/llm"
)

// generationMaxTokens bounds the caption completion so a full multi-day
// campaign fits in one response.
const generationMaxTokens = 4096

// Generator turns a product query and retrieved context into a multi-day
// set of Instagram captions with hashtags.
type Generator struct {
	client    *llm.Client
	maxTokens int
}

// NewGenerator creates a new Generator.
func NewGenerator(client *llm.Client) *Generator {
	return &Generator{client: client, maxTokens: generationMaxTokens}
}

// Generate asks the language model for lengthDays days of captions and
// parses its reply. Segments are separated by blank lines; within one
// segment the first line is the caption and the second, when present, the
// hashtags. Day labels are assigned by position. A reply with no usable
// segments is an error; a segment count differing from lengthDays is not.
func (g *Generator) Generate(ctx context.Context, query, searchContext, campaignType, demographic string, lengthDays int) ([]docstore.DayCaption, error) {
	logger := contextutil.LoggerFromContext(ctx)

	messages := []llm.Message{
		{
			Role: "user",
			Content: fmt.Sprintf("Using the following context: %s. Create %d days' worth of Instagram captions to market this product: %s. For each day, generate captions along with relevant hashtags.",
				searchContext, lengthDays, query),
		},
		{
			Role: "assistant",
			Content: fmt.Sprintf("Each day should have a unique caption and a unique set of hashtags. Campaign type should be %s. Target demographic is %s.",
				campaignType, demographic),
		},
		{
			Role:    "user",
			Content: `Output should be in the format: {"day": "Day 1", "caption": "Caption text", "hashtags": "#hashtag1 #hashtag2"}`,
		},
	}

	reply, err := g.client.ChatWithMessages(ctx, messages, llm.ChatParams{MaxTokens: g.maxTokens})
	if err != nil {
		return nil, fmt.Errorf("failed to generate captions: %w", err)
	}

	days := parseDays(strings.TrimSpace(reply))
	if len(days) == 0 {
		return nil, fmt.Errorf("caption response contained no usable segments")
	}
	if len(days) != lengthDays {
		logger.WarnContext(ctx, "caption count does not match campaign length",
			"want_days", lengthDays, "got_days", len(days))
	}
	return days, nil
}

// parseDays splits a model reply into per-day captions. Blank lines
// separate days; blank segments are dropped.
func parseDays(content string) []docstore.DayCaption {
	var days []docstore.DayCaption
	for _, segment := range strings.Split(content, "\n\n") {
		segment = strings.TrimSpace(segment)
		if segment == "" {
			continue
		}
		lines := strings.Split(segment, "\n")
		caption := strings.TrimSpace(lines[0])
		hashtags := ""
		if len(lines) > 1 {
			hashtags = strings.TrimSpace(lines[1])
		}
		days = append(days, docstore.DayCaption{
			Day:      fmt.Sprintf("Day %d", len(days)+1),
			Caption:  caption,
			Hashtags: hashtags,
		})
	}
	return days
}
