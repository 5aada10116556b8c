package catalog

// Theme is a genre label from the catalog's closed enumeration.
type Theme string

const (
	ThemeContePhilosophique Theme = "Conte philosophique"
	ThemeCyberpunk          Theme = "Cyberpunk"
	ThemeFantasy            Theme = "Fantasy"
	ThemePhilosophique      Theme = "Philosophique"
	ThemeClassique          Theme = "Classique"
	ThemeScienceFiction     Theme = "Science-Fiction"
	ThemeDystopie           Theme = "Dystopie"
	ThemeThriller           Theme = "Thriller"
	ThemePolicier           Theme = "Policier"
	ThemeRomance            Theme = "Romance"
	ThemeHistorique         Theme = "Historique"
	ThemeYoungAdult         Theme = "Young Adult"
	ThemeHorreur            Theme = "Horreur"
	ThemeAventure           Theme = "Aventure"
	ThemeBiographie         Theme = "Biographie"
	ThemeEssai              Theme = "Essai"
	ThemeMythologie         Theme = "Mythologie"
)

// DefaultTheme is substituted for any value outside the enumeration.
const DefaultTheme = ThemeClassique

// AllThemes lists every valid theme, in display order.
var AllThemes = []Theme{
	ThemeContePhilosophique,
	ThemeCyberpunk,
	ThemeFantasy,
	ThemePhilosophique,
	ThemeClassique,
	ThemeScienceFiction,
	ThemeDystopie,
	ThemeThriller,
	ThemePolicier,
	ThemeRomance,
	ThemeHistorique,
	ThemeYoungAdult,
	ThemeHorreur,
	ThemeAventure,
	ThemeBiographie,
	ThemeEssai,
	ThemeMythologie,
}

var validThemes = func() map[Theme]bool {
	m := make(map[Theme]bool, len(AllThemes))
	for _, t := range AllThemes {
		m[t] = true
	}
	return m
}()

// IsValid reports whether t is a member of the enumeration.
// The match is case-sensitive and exact.
func (t Theme) IsValid() bool {
	return validThemes[t]
}

// NormalizeTheme validates a raw theme string from the server and substitutes
// DefaultTheme when it is not a known genre. This guards against server-side
// data drift breaking enum-typed logic on the client.
func NormalizeTheme(raw string) Theme {
	if t := Theme(raw); t.IsValid() {
		return t
	}
	return DefaultTheme
}

// normalize rewrites a book's theme in place to a member of the enumeration.
func (b *Book) normalize() {
	b.Theme = NormalizeTheme(string(b.Theme))
}
