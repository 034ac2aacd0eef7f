package repoview

import (
	"time"

	"github.com/dustin/go-humanize"
	"github.com/simplegithub/sgh/internal/gh"
	"github.com/simplegithub/sgh/internal/utils/timeutils"
	"golang.org/x/text/feature/plural"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/message/catalog"
)

// Message keys. The English text doubles as the key.
const (
	NoDescriptionProvided = "No description provided."
	NoLanguageSpecified   = "No language specified."
	Unknown               = "Unknown"
	UnexpectedError       = "An unexpected error occurred."

	starsKey = "%d stars"
)

var messages = newCatalog()

func newCatalog() *catalog.Builder {
	b := catalog.NewBuilder(catalog.Fallback(language.English))
	set := func(tag language.Tag, key string, msg catalog.Message) {
		if err := b.Set(tag, key, msg); err != nil {
			panic(err)
		}
	}

	set(language.English, starsKey, plural.Selectf(1, "%d",
		"one", "%d star",
		"other", "%d stars",
	))
	set(language.English, NoDescriptionProvided, catalog.String(NoDescriptionProvided))
	set(language.English, NoLanguageSpecified, catalog.String(NoLanguageSpecified))
	set(language.English, Unknown, catalog.String(Unknown))
	set(language.English, UnexpectedError, catalog.String(UnexpectedError))

	// Korean has no grammatical plural; a single "other" form covers every count.
	set(language.Korean, starsKey, plural.Selectf(1, "%d",
		"other", "별 %d개",
	))
	set(language.Korean, NoDescriptionProvided, catalog.String("설명이 없습니다."))
	set(language.Korean, NoLanguageSpecified, catalog.String("지정된 언어가 없습니다."))
	set(language.Korean, Unknown, catalog.String("알 수 없음"))
	set(language.Korean, UnexpectedError, catalog.String("알 수 없는 오류가 발생했습니다."))
	return b
}

// Formatter maps a repository summary onto display fields.
type Formatter struct {
	printer  *message.Printer
	location *time.Location
	now      func() time.Time
}

// NewFormatter returns a Formatter for the given locale (e.g., "en", "ko-KR").
// Unsupported or malformed locales fall back to English. A nil location
// means UTC.
func NewFormatter(locale string, location *time.Location) *Formatter {
	if location == nil {
		location = time.UTC
	}
	return &Formatter{
		printer:  message.NewPrinter(matchLocale(locale), message.Catalog(messages)),
		location: location,
		now:      time.Now,
	}
}

func matchLocale(locale string) language.Tag {
	requested, err := language.Parse(locale)
	if err != nil {
		return language.English
	}
	supported := messages.Languages()
	_, idx, confidence := language.NewMatcher(supported).Match(requested)
	if confidence == language.No {
		return language.English
	}
	return supported[idx]
}

// Format builds the display fields for repo. Missing optional fields and an
// unparsable timestamp are replaced by placeholders; nothing here fails.
func (f *Formatter) Format(repo *gh.Repository) Display {
	d := Display{
		Name:        repo.FullName,
		Description: f.orPlaceholder(repo.Description, NoDescriptionProvided),
		Language:    f.orPlaceholder(repo.Language, NoLanguageSpecified),
		Stars:       f.Stars(repo.Stars),
		AvatarURL:   repo.Owner.AvatarURL,
		HTMLURL:     repo.HTMLURL,
	}
	d.LastUpdate, d.UpdatedAgo = f.lastUpdate(repo.UpdatedAt)
	return d
}

// Stars renders a star count with the locale's plural form.
func (f *Formatter) Stars(n int) string {
	return f.printer.Sprintf(starsKey, n)
}

// Text returns the localized text for one of the message keys.
func (f *Formatter) Text(key string) string {
	return f.printer.Sprintf(key)
}

func (f *Formatter) orPlaceholder(v *string, key string) string {
	if v == nil {
		return f.Text(key)
	}
	return *v
}

func (f *Formatter) lastUpdate(updatedAt string) (string, string) {
	t, err := timeutils.ParseWire(updatedAt)
	if err != nil {
		return f.Text(Unknown), ""
	}
	return t.In(f.location).Format(timeutils.DisplayLayout), humanize.RelTime(t, f.now(), "ago", "from now")
}
