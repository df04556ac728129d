// Package icon is the fixed registry of domain icons used by values, services,
// competitive advantages and assets.
//
// In memory an icon is a closed tag; only the presentation layer turns the tag into
// an asset. On the wire and in storage the tag is written as its canonical name.
package icon

import "strings"

// Icon is a registered icon tag. The zero value is Star, the fallback icon.
type Icon uint8

const (
	Star Icon = iota
	Building
	Rocket
	ShieldCheck
	Users
	LightBulb
	Heart
	BarChart
	Diamond
	Feather
	Eye
	Target

	count
)

// Fallback is used for unknown names and out-of-range tags.
const Fallback = Star

// legacySuffix is carried by icon names in older documents ("RocketIcon").
const legacySuffix = "Icon"

var names = [count]string{
	Star:        "Star",
	Building:    "Building",
	Rocket:      "Rocket",
	ShieldCheck: "ShieldCheck",
	Users:       "Users",
	LightBulb:   "LightBulb",
	Heart:       "Heart",
	BarChart:    "BarChart",
	Diamond:     "Diamond",
	Feather:     "Feather",
	Eye:         "Eye",
	Target:      "Target",
}

var byName = func() map[string]Icon {
	m := make(map[string]Icon, count)
	for i, n := range names {
		m[n] = Icon(i)
	}
	return m
}()

// registryOrder lists icons in the order the admin icon picker shows them.
var registryOrder = []Icon{
	Building, Rocket, ShieldCheck, Users, LightBulb, Heart,
	BarChart, Diamond, Feather, Eye, Target, Star,
}

// Valid reports whether i is a registered tag.
func (i Icon) Valid() bool {
	return i < count
}

// String returns the canonical name. Unregistered tags render as the fallback name.
func (i Icon) String() string {
	if !i.Valid() {
		return names[Fallback]
	}
	return names[i]
}

// Lookup resolves a persisted name. The legacy "<Name>Icon" spelling is accepted.
func Lookup(name string) (Icon, bool) {
	if i, ok := byName[name]; ok {
		return i, true
	}
	if trimmed, found := strings.CutSuffix(name, legacySuffix); found {
		if i, ok := byName[trimmed]; ok {
			return i, true
		}
	}
	return Fallback, false
}

// Parse resolves a persisted name and never fails: empty or unknown names become Star.
func Parse(name string) Icon {
	i, _ := Lookup(name)
	return i
}

// IsRegistered reports whether name is one of the canonical names.
func IsRegistered(name string) bool {
	_, ok := byName[name]
	return ok
}

// All returns every registered icon in picker order.
func All() []Icon {
	out := make([]Icon, len(registryOrder))
	copy(out, registryOrder)
	return out
}

// Names returns the canonical names in picker order.
func Names() []string {
	out := make([]string, len(registryOrder))
	for i, ic := range registryOrder {
		out[i] = ic.String()
	}
	return out
}
