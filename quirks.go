package hydrogen

import "strings"

// QuirksMode classifies how leniently a document should be treated
// with respect to legacy deviations. It is set once per parse from
// doctype inspection, and lives on the session rather than on any
// node.
type QuirksMode int

const (
	QuirksModeNone QuirksMode = iota
	QuirksModeLimited
	QuirksModeFull
)

func (m QuirksMode) String() string {
	switch m {
	case QuirksModeNone:
		return "none"
	case QuirksModeLimited:
		return "limited"
	case QuirksModeFull:
		return "full"
	}
	return "unknown"
}

// Public identifier prefixes that force full quirks mode, per the
// HTML serialization of the legacy doctype table.
var fullQuirksPublicPrefixes = []string{
	"+//silmaril//dtd html pro v0r11 19970101//",
	"-//advasoft ltd//dtd html 3.0 aswedit + extensions//",
	"-//as//dtd html 3.0 aswedit + extensions//",
	"-//ietf//dtd html 2.0 level 1//",
	"-//ietf//dtd html 2.0 level 2//",
	"-//ietf//dtd html 2.0 strict level 1//",
	"-//ietf//dtd html 2.0 strict level 2//",
	"-//ietf//dtd html 2.0 strict//",
	"-//ietf//dtd html 2.0//",
	"-//ietf//dtd html 2.1e//",
	"-//ietf//dtd html 3.0//",
	"-//ietf//dtd html 3.2 final//",
	"-//ietf//dtd html 3.2//",
	"-//ietf//dtd html 3//",
	"-//ietf//dtd html level 0//",
	"-//ietf//dtd html level 1//",
	"-//ietf//dtd html level 2//",
	"-//ietf//dtd html level 3//",
	"-//ietf//dtd html strict level 0//",
	"-//ietf//dtd html strict level 1//",
	"-//ietf//dtd html strict level 2//",
	"-//ietf//dtd html strict level 3//",
	"-//ietf//dtd html strict//",
	"-//ietf//dtd html//",
	"-//metrius//dtd metrius presentational//",
	"-//microsoft//dtd internet explorer 2.0 html strict//",
	"-//microsoft//dtd internet explorer 2.0 html//",
	"-//microsoft//dtd internet explorer 2.0 tables//",
	"-//microsoft//dtd internet explorer 3.0 html strict//",
	"-//microsoft//dtd internet explorer 3.0 html//",
	"-//microsoft//dtd internet explorer 3.0 tables//",
	"-//netscape comm. corp.//dtd html//",
	"-//netscape comm. corp.//dtd strict html//",
	"-//o'reilly and associates//dtd html 2.0//",
	"-//o'reilly and associates//dtd html extended 1.0//",
	"-//o'reilly and associates//dtd html extended relaxed 1.0//",
	"-//softquad software//dtd hotmetal pro 6.0::19990601::extensions to html 4.0//",
	"-//softquad//dtd hotmetal pro 4.0::19971010::extensions to html 4.0//",
	"-//spyglass//dtd html 2.0 extended//",
	"-//sq//dtd html 2.0 hotmetal + extensions//",
	"-//sun microsystems corp.//dtd hotjava html//",
	"-//sun microsystems corp.//dtd hotjava strict html//",
	"-//w3c//dtd html 3 1995-03-24//",
	"-//w3c//dtd html 3.2 draft//",
	"-//w3c//dtd html 3.2 final//",
	"-//w3c//dtd html 3.2//",
	"-//w3c//dtd html 3.2s draft//",
	"-//w3c//dtd html 4.0 frameset//",
	"-//w3c//dtd html 4.0 transitional//",
	"-//w3c//dtd html experimental 19960712//",
	"-//w3c//dtd html experimental 970421//",
	"-//w3c//dtd w3 html//",
	"-//w3o//dtd w3 html 3.0//",
	"-//webtechs//dtd mozilla html 2.0//",
	"-//webtechs//dtd mozilla html//",
}

var fullQuirksPublicExact = []string{
	"-//w3o//dtd w3 html strict 3.0//en//",
	"-/w3c/dtd html 4.0 transitional/en",
	"html",
}

var limitedQuirksPublicPrefixes = []string{
	"-//w3c//dtd xhtml 1.0 frameset//",
	"-//w3c//dtd xhtml 1.0 transitional//",
}

// These flip between full and limited quirks depending on whether a
// system identifier is present.
var systemDependentPublicPrefixes = []string{
	"-//w3c//dtd html 4.01 frameset//",
	"-//w3c//dtd html 4.01 transitional//",
}

const ibmTransitionalSystemID = "http://www.ibm.com/data/dtd/v11/ibmxhtml1-transitional.dtd"

// QuirksModeOf classifies a doctype the way legacy-doctype sniffing
// does: anything other than a plain `html` name, a missing doctype,
// or one of the grandfathered public/system identifiers puts the
// document into full or limited quirks.
func QuirksModeOf(data DoctypeData) QuirksMode {
	if !strings.EqualFold(data.Name, "html") {
		return QuirksModeFull
	}

	public := strings.ToLower(data.PublicID)
	system := strings.ToLower(data.SystemID)

	if data.HasSystemID && system == ibmTransitionalSystemID {
		return QuirksModeFull
	}

	if data.HasPublicID {
		for _, id := range fullQuirksPublicExact {
			if public == id {
				return QuirksModeFull
			}
		}
		for _, prefix := range fullQuirksPublicPrefixes {
			if strings.HasPrefix(public, prefix) {
				return QuirksModeFull
			}
		}
		for _, prefix := range systemDependentPublicPrefixes {
			if strings.HasPrefix(public, prefix) {
				if data.HasSystemID {
					return QuirksModeLimited
				}
				return QuirksModeFull
			}
		}
		for _, prefix := range limitedQuirksPublicPrefixes {
			if strings.HasPrefix(public, prefix) {
				return QuirksModeLimited
			}
		}
	}

	return QuirksModeNone
}
