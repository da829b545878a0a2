// Package changes provides commit classification against release conventions.
package changes

import "strings"

// EmojiOptions configures the gitmoji convention parser. The tag lists are
// ordered; when a message carries several known emoji, the highest
// severity one wins and becomes the category.
type EmojiOptions struct {
	// MajorTags lists emoji codes that imply a major bump.
	MajorTags []string
	// MinorTags lists emoji codes that imply a minor bump.
	MinorTags []string
	// PatchTags lists emoji codes that imply a patch bump.
	PatchTags []string
}

// DefaultEmojiOptions returns the conventional gitmoji bump mapping.
func DefaultEmojiOptions() EmojiOptions {
	return EmojiOptions{
		MajorTags: []string{":boom:"},
		MinorTags: []string{
			":sparkles:", ":children_crossing:", ":lipstick:",
			":iphone:", ":egg:", ":chart_with_upwards_trend:",
		},
		PatchTags: []string{
			":ambulance:", ":lock:", ":bug:", ":zap:", ":goal_net:",
			":alien:", ":wheelchair:", ":speech_balloon:", ":mag:",
			":apple:", ":penguin:", ":checkered_flag:", ":robot:",
			":green_apple:",
		},
	}
}

// EmojiParser classifies messages by their leading gitmoji marker. The
// emoji itself is the changelog category, so every recognized marker has
// its own section.
type EmojiParser struct {
	opts EmojiOptions
}

// NewEmojiParser creates a gitmoji convention parser.
func NewEmojiParser(opts EmojiOptions) *EmojiParser {
	return &EmojiParser{opts: opts}
}

// Parse classifies one commit message.
func (p *EmojiParser) Parse(sha, message string) (Token, error) {
	const op = "changes.EmojiParser.Parse"

	if err := checkMessage(op, message); err != nil {
		return Token{}, err
	}

	subject, _ := splitSubject(message)
	token := Token{
		SHA:         sha,
		Raw:         message,
		Category:    p.DefaultCategory(),
		Description: subject,
		Bump:        BumpNone,
	}

	// Highest severity emoji anywhere in the subject wins.
	if emoji, ok := containsAny(subject, p.opts.MajorTags); ok {
		token.Category = emoji
		token.Bump = BumpMajor
		token.Breaking = true
		token.Description = stripMarker(subject, emoji)
		return token, nil
	}
	if emoji, ok := containsAny(subject, p.opts.MinorTags); ok {
		token.Category = emoji
		token.Bump = BumpMinor
		token.Description = stripMarker(subject, emoji)
		return token, nil
	}
	if emoji, ok := containsAny(subject, p.opts.PatchTags); ok {
		token.Category = emoji
		token.Bump = BumpPatch
		token.Description = stripMarker(subject, emoji)
		return token, nil
	}

	return token, nil
}

// SectionOrder returns the emoji sections in bump-severity order.
func (p *EmojiParser) SectionOrder() []string {
	order := make([]string, 0, len(p.opts.MajorTags)+len(p.opts.MinorTags)+len(p.opts.PatchTags))
	order = append(order, p.opts.MajorTags...)
	order = append(order, p.opts.MinorTags...)
	order = append(order, p.opts.PatchTags...)
	return order
}

// DefaultCategory returns the catch-all emoji section.
func (p *EmojiParser) DefaultCategory() string {
	return "Other"
}

// stripMarker removes the first occurrence of the marker from the subject.
func stripMarker(subject, marker string) string {
	return strings.TrimSpace(strings.Replace(subject, marker, "", 1))
}
