// Package locale looks up player-facing text. Catalogs are gettext .po
// files, either built in or read from a directory.
package locale

import (
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/leonelquinteros/gotext"
)

// Domain is the gettext domain of every catalog
const Domain = "default"

// DefaultLang is used when a requested language has no built-in catalog
const DefaultLang = "en_GB"

// titleKey must be translated by every built-in catalog
const titleKey = "MAZE_TITLE"

//go:embed catalog
var catalogs embed.FS

// builtin is the parsed embedded catalog; nil while an external directory is in use
var builtin *gotext.Po

func init() {
	// Usable before Configure runs, e.g. in tests
	if err := Configure("", DefaultLang); err != nil {
		panic(err)
	}
}

// Configure selects the catalog for lang. With an empty dir the built-in
// catalogs are used; otherwise dir/<lang>/LC_MESSAGES/default.po must exist.
func Configure(dir, lang string) error {
	if dir != "" {
		path := filepath.Join(dir, lang, "LC_MESSAGES", Domain+".po")
		if _, err := os.Stat(path); err != nil {
			return fmt.Errorf("locale catalog: %w", err)
		}
		gotext.Configure(dir, lang, Domain)
		builtin = nil
		return nil
	}

	data, err := catalogs.ReadFile(catalogPath(lang))
	if errors.Is(err, fs.ErrNotExist) {
		data, err = catalogs.ReadFile(catalogPath(DefaultLang))
	}
	if err != nil {
		return fmt.Errorf("built-in locale catalog: %w", err)
	}

	po := gotext.NewPo()
	po.Parse(data)
	if po.Get(titleKey) == titleKey {
		return fmt.Errorf("built-in locale catalog %s: no translation for %s", lang, titleKey)
	}
	builtin = po
	return nil
}

// Get returns the translation of key, formatted with vars. Unknown keys are returned as-is.
func Get(key string, vars ...interface{}) string {
	if builtin != nil {
		return builtin.Get(key, vars...)
	}
	return gotext.Get(key, vars...)
}

func catalogPath(lang string) string {
	// embed.FS paths always use forward slashes
	return "catalog/" + lang + "/LC_MESSAGES/" + Domain + ".po"
}
