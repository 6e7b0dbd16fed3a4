package generation

import (
	"fmt"
	"strings"

	"github.com/postroom/postroom-backend/internal/domain"
)

func platformName(ch domain.Channel) string {
	if ch == domain.ChannelLinkedIn {
		return "LinkedIn"
	}
	return "X/Twitter"
}

func platformTone(ch domain.Channel) string {
	if ch == domain.ChannelLinkedIn {
		return "professional, insightful, thought-provoking"
	}
	return "concise, engaging, punchy"
}

func platformLength(ch domain.Channel) string {
	if ch == domain.ChannelLinkedIn {
		return "100-500 characters"
	}
	return "under 280 characters"
}

// buildPrompt assembles the generation prompt every council member
// receives. The same text is stored in the draft's metadata verbatim.
func buildPrompt(ch domain.Channel, inspiration string, examples []*domain.PublishedPost) string {
	name := platformName(ch)

	var b strings.Builder
	fmt.Fprintf(&b, "Create a new %s post inspired by the following content.\n", name)
	b.WriteString(fewShotSection(examples))
	b.WriteString("\nThe new post should:\n")
	b.WriteString("- Cover a similar topic or theme but with a fresh, unique perspective\n")
	fmt.Fprintf(&b, "- Match the tone appropriate for %s (%s)\n", name, platformTone(ch))
	b.WriteString("- Be completely original, not a rephrasing of the inspiration\n")
	fmt.Fprintf(&b, "- Be %s\n", platformLength(ch))
	b.WriteString("- Be ready to post as-is (no hashtags unless natural, no emojis unless fitting)\n")
	fmt.Fprintf(&b, "\nInspiration content:\n\"%s\"\n", inspiration)
	b.WriteString("\nGenerate ONLY the post content. No explanations, no quotes around it, no meta-commentary.")
	return b.String()
}

func fewShotSection(examples []*domain.PublishedPost) string {
	if len(examples) == 0 {
		return ""
	}

	var b strings.Builder
	b.WriteString("\nHere are examples of our top-performing posts that received the most engagement. Use these as inspiration for tone, style, and what resonates with our audience:\n\n")
	for i, ex := range examples {
		fmt.Fprintf(&b, "--- TOP POST %d (%d likes) ---\n%s\n\n", i+1, ex.LikesCount, ex.Content)
	}
	b.WriteString("Study what makes these posts successful and incorporate similar qualities into your new post.\n")
	return b.String()
}

// buildJudgePrompt assembles the judging prompt. The verdict contract at
// the end is the only machine-read part of the whole exchange.
func buildJudgePrompt(ch domain.Channel, candidates []domain.GenerationCandidate) string {
	name := platformName(ch)

	var b strings.Builder
	fmt.Fprintf(&b, "You are a social media expert judging %s posts for maximum impact.\n\n", name)
	fmt.Fprintf(&b, "Evaluate these %d candidate posts and pick the BEST one.\n\n", len(candidates))
	b.WriteString("Consider:\n")
	b.WriteString("- Engagement potential (will people like, comment, share?)\n")
	b.WriteString("- Authenticity and originality\n")
	fmt.Fprintf(&b, "- Appropriate tone for %s\n", name)
	b.WriteString("- Clarity and punch\n")
	b.WriteString("- Professional quality\n\n")
	for i, c := range candidates {
		fmt.Fprintf(&b, "--- CANDIDATE %d (%s) ---\n%s\n\n", i+1, c.ProviderName, c.Content)
	}
	b.WriteString("Respond in this exact JSON format:\n")
	fmt.Fprintf(&b, "{\"winner\": <number 1-%d>, \"reason\": \"<brief explanation>\"}", len(candidates))
	return b.String()
}
