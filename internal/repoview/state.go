package repoview

// State is the observable state of the detail screen. Exactly one of
// Loading, Loaded or Failed is active at a time.
type State interface {
	isState()
}

// Loading means the lookup request is outstanding.
type Loading struct{}

// Loaded means the lookup succeeded and Display is shown.
type Loaded struct {
	Display Display
}

// Failed means the lookup failed; Message is shown in place of the content.
type Failed struct {
	Message string
}

func (Loading) isState() {}
func (Loaded) isState()  {}
func (Failed) isState()  {}

// Display is the repository as it's shown to the user.
type Display struct {
	Name        string
	Description string
	Language    string
	Stars       string
	LastUpdate  string
	// UpdatedAgo is a relative rendition of the last update ("3 days ago").
	// Empty if the timestamp couldn't be parsed.
	UpdatedAgo string
	AvatarURL  string
	// Avatar is what the image loader rendered for AvatarURL. Empty until the
	// image has loaded.
	Avatar  string
	HTMLURL string
}
