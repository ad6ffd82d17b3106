package prompts

import (
	"log/slog"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// KeyCommunity is the YAML key holding the community response template.
const KeyCommunity = "community_prompt"

// Placeholder names recognized in templates.
const (
	PlaceholderContext     = "context_combined"
	PlaceholderPostTitle   = "post_title"
	PlaceholderPostContent = "post_content"
	PlaceholderUserQuery   = "user_query"
)

const fallbackCommunity = `You are a warm, emotionally attuned parenting expert assistant responding publicly in a community forum for Hestia AI.

Your role is to help caregivers of young children (ages 0-6) navigate parenting challenges with gentle guidance grounded in research-backed advice.

You are replying to a public post from a parent. Use a tone that feels like a supportive, well-read friend who understands what raising a young child is really like.

Use these principles:
- Validate the parent's emotional experience before offering any suggestions.
- Make your language gentle, encouraging, and non-judgmental.
- Offer practical, specific strategies that are easy to try, even for tired or overwhelmed caregivers.
- Keep your reply focused: one helpful, clear, and affirming response is better than a list of options.
- If useful, briefly share a developmental insight (e.g., "It's normal at this age for kids to...").
- Do not include or assume any personal user details.
- End your response with a gentle invitation for other parents to share their experiences or tips on this topic, fostering a supportive community discussion.

Use the following expert advice from our structured knowledge base as input. Do not quote it directly. Instead, synthesize relevant concepts and present them naturally in your own words:

{context_combined}

Here is the parent's post:

Title: {post_title}
Content: {post_content}
`

const fallbackPrivate = `You are a warm, emotionally attuned parenting expert assistant designed to help caregivers
navigate challenges with young children. Synthesize the following information to provide a
thoughtful response:

{context_combined}

User Question: {user_query}
`

// Store holds the prompt templates used by answer synthesis.
type Store struct {
	community string
	loaded    bool
	logger    *slog.Logger
}

// NewStore returns a store backed by the built-in templates.
func NewStore(logger *slog.Logger) *Store {
	if logger == nil {
		logger = slog.Default()
	}
	return &Store{community: fallbackCommunity, logger: logger}
}

// Load reads templates from the YAML file at path. Any failure to read
// or parse the file is logged and the built-in templates are used, so
// Load never returns an error.
func Load(path string, logger *slog.Logger) *Store {
	s := NewStore(logger)
	if path == "" {
		return s
	}

	data, err := os.ReadFile(path)
	if err != nil {
		s.logger.Warn("failed to read prompts file, using built-in templates",
			"path", path,
			"error", err)
		return s
	}

	var templates map[string]string
	if err := yaml.Unmarshal(data, &templates); err != nil {
		s.logger.Warn("failed to parse prompts file, using built-in templates",
			"path", path,
			"error", err)
		return s
	}

	if tpl, ok := templates[KeyCommunity]; ok && strings.TrimSpace(tpl) != "" {
		s.community = tpl
		s.loaded = true
		s.logger.Info("loaded community prompt template", "path", path)
	} else {
		s.logger.Warn("prompts file missing community template, using built-in",
			"path", path,
			"key", KeyCommunity)
	}
	return s
}

// Community returns the template used when responding to a forum post.
func (s *Store) Community() string {
	return s.community
}

// Loaded reports whether the community template came from a template file
// rather than the built-in fallback. Callers deciding between template
// variants for a bare query must not treat the fallback's post placeholders
// as a loaded template's shape.
func (s *Store) Loaded() bool {
	return s.loaded
}

// Private returns the template used for direct questions without a post.
func (s *Store) Private() string {
	return fallbackPrivate
}

// HasPostPlaceholders reports whether tpl expects post title and content.
func HasPostPlaceholders(tpl string) bool {
	return strings.Contains(tpl, marker(PlaceholderPostTitle)) &&
		strings.Contains(tpl, marker(PlaceholderPostContent))
}

// Render substitutes {name} markers in tpl with the given values.
// Unrecognized markers are left untouched.
func Render(tpl string, vars map[string]string) string {
	pairs := make([]string, 0, len(vars)*2)
	for name, value := range vars {
		pairs = append(pairs, marker(name), value)
	}
	return strings.NewReplacer(pairs...).Replace(tpl)
}

func marker(name string) string {
	return "{" + name + "}"
}
