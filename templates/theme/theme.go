// Package theme holds the class tokens of the two visual variants.
// Variants differ only in color and spacing; markup is shared.
package theme

import "strings"

// Theme is a set of Tailwind class tokens.
type Theme struct {
	Name string

	Page      string
	Container string
	Skeleton  string

	Alert     string
	AlertText string

	Brand    string
	Subtitle string
	Tagline  string
	Date     string

	MediaFrame  string
	Unsupported string
	Overlay     string
	Title       string

	Card        string
	CardHeading string
	CardBody    string

	Footer string
}

// Cosmos is the default dark slate variant.
var Cosmos = Theme{
	Name:        "cosmos",
	Page:        "min-h-screen bg-slate-950",
	Container:   "container mx-auto px-6 py-16",
	Skeleton:    "bg-slate-800",
	Alert:       "max-w-md mx-auto border border-red-500 bg-slate-900 rounded-lg p-4",
	AlertText:   "text-red-400",
	Brand:       "bg-gradient-to-r from-blue-400 via-purple-400 to-cyan-400 bg-clip-text text-transparent",
	Subtitle:    "block text-3xl md:text-4xl font-light text-slate-400 mt-4 tracking-widest",
	Tagline:     "text-xl md:text-2xl text-slate-300 mb-4 font-light tracking-wide",
	Date:        "text-xl text-blue-400 font-medium",
	MediaFrame:  "mb-16 overflow-hidden rounded-2xl",
	Unsupported: "text-slate-400",
	Overlay:     "absolute inset-x-0 bottom-0 bg-gradient-to-t from-slate-950/95 to-transparent p-8",
	Title:       "text-3xl md:text-4xl font-bold text-white",
	Card:        "bg-slate-900 rounded-2xl p-12",
	CardHeading: "text-2xl font-semibold mb-8 text-blue-400",
	CardBody:    "text-slate-200 leading-relaxed text-xl",
	Footer:      "text-center mt-20 pt-12 border-t border-slate-800 text-slate-400 text-base",
}

// Nebula is the tighter violet variant.
var Nebula = Theme{
	Name:        "nebula",
	Page:        "min-h-screen bg-zinc-950",
	Container:   "container mx-auto px-4 py-10",
	Skeleton:    "bg-violet-950",
	Alert:       "max-w-md mx-auto border border-rose-500 bg-zinc-900 rounded-xl p-4",
	AlertText:   "text-rose-400",
	Brand:       "bg-gradient-to-r from-fuchsia-400 via-violet-400 to-indigo-400 bg-clip-text text-transparent",
	Subtitle:    "block text-2xl md:text-3xl font-light text-zinc-400 mt-2 tracking-widest",
	Tagline:     "text-lg md:text-xl text-zinc-300 mb-3 font-light tracking-wide",
	Date:        "text-lg text-violet-400 font-medium",
	MediaFrame:  "mb-10 overflow-hidden rounded-xl",
	Unsupported: "text-zinc-400",
	Overlay:     "absolute inset-x-0 bottom-0 bg-gradient-to-t from-zinc-950/95 to-transparent p-6",
	Title:       "text-2xl md:text-3xl font-bold text-white",
	Card:        "bg-zinc-900 rounded-xl p-8",
	CardHeading: "text-xl font-semibold mb-6 text-violet-400",
	CardBody:    "text-zinc-200 leading-relaxed text-lg",
	Footer:      "text-center mt-14 pt-8 border-t border-zinc-800 text-zinc-400 text-sm",
}

var byName = map[string]Theme{
	Cosmos.Name: Cosmos,
	Nebula.Name: Nebula,
}

// Lookup returns the theme called name, ignoring case and whitespace.
func Lookup(name string) (Theme, bool) {
	th, ok := byName[strings.ToLower(strings.TrimSpace(name))]
	return th, ok
}

// Resolve returns the theme called name, or fallback when unknown.
func Resolve(name string, fallback Theme) Theme {
	if th, ok := Lookup(name); ok {
		return th
	}
	return fallback
}
