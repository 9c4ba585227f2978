package arbor

import (
	"fmt"
	"io/fs"

	"github.com/leonelquinteros/gotext"
)

// Translator localizes the strings arbor shows itself ("Yes", "No") and any
// strings screens pass through Scene.T.
type Translator interface {
	Get(str string, vars ...any) string
}

// untranslated returns strings unchanged, formatting vars if given.
type untranslated struct{}

func (untranslated) Get(str string, vars ...any) string {
	if len(vars) == 0 {
		return str
	}
	return fmt.Sprintf(str, vars...)
}

// NoTranslation returns a Translator that leaves strings unchanged.
func NoTranslation() Translator { return untranslated{} }

// ParseTranslations builds a Translator from the contents of a gettext .po
// file. Missing entries fall back to the original string.
func ParseTranslations(po []byte) Translator {
	p := gotext.NewPo()
	p.Parse(po)
	return p
}

// LoadTranslations reads and parses a .po file from fsys.
func LoadTranslations(fsys fs.FS, name string) (Translator, error) {
	data, err := fs.ReadFile(fsys, name)
	if err != nil {
		return nil, fmt.Errorf("arbor: read translations: %w", err)
	}
	return ParseTranslations(data), nil
}
