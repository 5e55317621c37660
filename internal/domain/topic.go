package domain

// TopicIcon is an exhaustive descriptor for the icon a client should render
// for a topic. Topics map to icons by identifier, never by name matching.
type TopicIcon string

const (
	IconLayers   TopicIcon = "Layers"
	IconGitMerge TopicIcon = "GitMerge"
	IconDatabase TopicIcon = "Database"
	IconListTree TopicIcon = "ListTree"
)

// Topic is a curriculum unit. Topics are immutable and defined from static
// configuration at process start.
type Topic struct {
	ID          string
	Title       string
	Description string
	KeyConcepts []string
	Icon        TopicIcon
}
