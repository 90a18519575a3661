package style

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/

import (
	"fmt"
	"strings"

	"github.com/npillmayer/schuko/tracing"
)

// tracer will return a tracer. We are tracing to 'cascade.style'
func tracer() tracing.Trace {
	return tracing.Select("cascade.style")
}

// Property is a raw value for a CSS property, prior to any typing or
// inheritance resolution. For example, with
//
//     color: black
//
// a property value of "black" is set. This is what the selector matching
// collaborator hands to the typed adapter, one per node and property:
// either the "inherit" sentinel or a concrete native value.
type Property string

// NullStyle is an empty property value.
const NullStyle Property = ""

// PropertyInherit is the inherit-sentinel: it instructs the resolver to
// adopt the ancestor's resolved value.
const PropertyInherit Property = "inherit"

func (p Property) String() string {
	return string(p)
}

// IsInherit denotes the inherit-sentinel: no concrete value present at this
// node, the ancestor's resolved value is to be adopted.
func (p Property) IsInherit() bool {
	return p == "inherit"
}

// IsInitial denotes a property explicitly reset to its initial value.
func (p Property) IsInitial() bool {
	return p == "initial"
}

// IsEmpty checks wether a property is empty, i.e. the null-string.
func (p Property) IsEmpty() bool {
	return p == ""
}

// KeyValue is a container for a style property.
type KeyValue struct {
	Key   string
	Value Property
}

// --- CSS Property Groups ----------------------------------------------

// PropertyGroup is a collection of properties sharing a common topic.
// CSS knows a whole lot of properties. We split them up into organisatorial
// groups.
//
// The mapping of property into groups is documented with
// GroupNameFromPropertyKey[...].
type PropertyGroup struct {
	name      string
	propsDict map[string]Property
}

// NewPropertyGroup creates a new empty property group, given its name.
func NewPropertyGroup(groupname string) *PropertyGroup {
	pg := &PropertyGroup{}
	pg.name = groupname
	return pg
}

// Name returns the name of the property group. Once named (during
// construction), property groups may not be renamed.
func (pg *PropertyGroup) Name() string {
	return pg.name
}

// Stringer for property groups; used for debugging.
func (pg *PropertyGroup) String() string {
	s := "[" + pg.name + "] =\n"
	for k, v := range pg.propsDict {
		s += fmt.Sprintf("  %s = %s\n", k, v)
	}
	return s
}

// Properties returns all properties of a group.
func (pg *PropertyGroup) Properties() []KeyValue {
	i := 0
	r := make([]KeyValue, len(pg.propsDict))
	for k, v := range pg.propsDict {
		r[i] = KeyValue{k, v}
		i++
	}
	return r
}

// IsSet is a predicate wether a property is set within this group.
func (pg *PropertyGroup) IsSet(key string) bool {
	if pg.propsDict == nil {
		return false
	}
	v, ok := pg.propsDict[key]
	return ok && !v.IsEmpty()
}

// Get a property's value.
func (pg *PropertyGroup) Get(key string) (Property, bool) {
	if pg.propsDict == nil {
		return NullStyle, false
	}
	p, ok := pg.propsDict[key]
	return p, ok
}

// Set a property's value. Overwrites an existing value, if present.
//
// Style property values are converted to lower case, except font-family,
// where literal family names keep their case.
func (pg *PropertyGroup) Set(key string, p Property) {
	if pg.propsDict == nil {
		pg.propsDict = make(map[string]Property)
	}
	pg.propsDict[key] = normalize(key, p)
}

// Add a property's value. Does not overwrite an existing value, i.e., does
// nothing if a value is already set.
func (pg *PropertyGroup) Add(key string, p Property) {
	if pg.propsDict == nil {
		pg.propsDict = make(map[string]Property)
	}
	_, exists := pg.propsDict[key]
	if !exists {
		pg.propsDict[key] = normalize(key, p)
	}
}

func normalize(key string, p Property) Property {
	if key == "font-family" {
		return p
	}
	return Property(strings.ToLower(string(p)))
}

// GroupNameFromPropertyKey returns the style property group name for a
// style property.
// Example:
//    GroupNameFromPropertyKey("margin-top") => "Margins"
//
// Unknown style property keys will return a group name of "X".
func GroupNameFromPropertyKey(key string) string {
	groupname, found := groupNameFromPropertyKey[key]
	if !found {
		groupname = PGX
	}
	return groupname
}

// Symbolic names for string literals, denoting PropertyGroups.
const (
	PGMargins   = "Margins"
	PGPadding   = "Padding"
	PGBorder    = "Border"
	PGDimension = "Dimension"
	PGDisplay   = "Display"
	PGColor     = "Color"
	PGFont      = "Font"
	PGText      = "Text"
	PGX         = "X"
)

var groupNameFromPropertyKey = map[string]string{
	"margin-top":          PGMargins, // Margins
	"margin-left":         PGMargins,
	"margin-right":        PGMargins,
	"margin-bottom":       PGMargins,
	"padding-top":         PGPadding, // Padding
	"padding-left":        PGPadding,
	"padding-right":       PGPadding,
	"padding-bottom":      PGPadding,
	"border-top-color":    PGBorder, // Border
	"border-left-color":   PGBorder,
	"border-right-color":  PGBorder,
	"border-bottom-color": PGBorder,
	"border-top-width":    PGBorder,
	"border-left-width":   PGBorder,
	"border-right-width":  PGBorder,
	"border-bottom-width": PGBorder,
	"border-top-style":    PGBorder,
	"border-left-style":   PGBorder,
	"border-right-style":  PGBorder,
	"border-bottom-style": PGBorder,
	"width":               PGDimension, // Dimension
	"height":              PGDimension,
	"line-height":         PGDimension,
	"vertical-align":      PGDimension,
	"display":             PGDisplay, // Display
	"float":               PGDisplay,
	"clear":               PGDisplay,
	"position":            PGDisplay,
	"color":               PGColor, // Color
	"background-color":    PGColor,
	"font-family":         PGFont, // Font
	"font-style":          PGFont,
	"font-weight":         PGFont,
	"font-size":           PGFont,
	"text-align":          PGText, // Text
	"text-decoration":     PGText,
}

// PropertyKeys returns the keys of all style properties covered by the
// resolver, in no particular order.
func PropertyKeys() []string {
	keys := make([]string, 0, len(groupNameFromPropertyKey))
	for k := range groupNameFromPropertyKey {
		keys = append(keys, k)
	}
	return keys
}

// IsSupportedProperty is a predicate wether a property key belongs to the
// CSS 2.1 subset covered by the resolver.
func IsSupportedProperty(key string) bool {
	_, ok := groupNameFromPropertyKey[key]
	return ok
}

// SplitCompoundProperty splits up a shorthand property into its individual
// components. Returns a slice of key-value pairs representing the
// individual (fine grained) style properties.
// Example:
//    SplitCompoundProperty("padding", "3px")
// will return
//    "padding-top"    => "3px"
//    "padding-right"  => "3px"
//    "padding-bottom" => "3px"
//    "padding-left"   => "3px"
// For the logic behind this, refer to e.g.
// https://www.w3schools.com/css/css_padding.asp .
func SplitCompoundProperty(key string, value Property) ([]KeyValue, error) {
	fields := strings.Fields(value.String())
	switch key {
	case "margin":
		return feazeCompound4("margin", "", fourDirs, fields)
	case "padding":
		return feazeCompound4("padding", "", fourDirs, fields)
	case "border-color":
		return feazeCompound4("border", "color", fourDirs, fields)
	case "border-width":
		return feazeCompound4("border", "width", fourDirs, fields)
	case "border-style":
		return feazeCompound4("border", "style", fourDirs, fields)
	}
	return nil, fmt.Errorf("not recognized as compound property: %s", key)
}

// CSS logic to distribute individual values from compound shorthands is as
// follows: https://www.w3schools.com/css/css_border.asp
func feazeCompound4(pre string, suf string, dirs [4]string, fields []string) ([]KeyValue, error) {
	l := len(fields)
	if l == 0 || l > 4 {
		return nil, fmt.Errorf("expecting 1-4 values for %s-%s", pre, suf)
	}
	r := make([]KeyValue, 4)
	r[0] = KeyValue{p(pre, suf, dirs[0]), Property(fields[0])}
	if l >= 2 {
		r[1] = KeyValue{p(pre, suf, dirs[1]), Property(fields[1])}
		if l >= 3 {
			r[2] = KeyValue{p(pre, suf, dirs[2]), Property(fields[2])}
			if l == 4 {
				r[3] = KeyValue{p(pre, suf, dirs[3]), Property(fields[3])}
			} else {
				r[3] = KeyValue{p(pre, suf, dirs[3]), Property(fields[1])}
			}
		} else {
			r[2] = KeyValue{p(pre, suf, dirs[2]), Property(fields[0])}
			r[3] = KeyValue{p(pre, suf, dirs[3]), Property(fields[1])}
		}
	} else {
		r[1] = KeyValue{p(pre, suf, dirs[1]), Property(fields[0])}
		r[2] = KeyValue{p(pre, suf, dirs[2]), Property(fields[0])}
		r[3] = KeyValue{p(pre, suf, dirs[3]), Property(fields[0])}
	}
	return r, nil
}

var fourDirs = [4]string{"top", "right", "bottom", "left"}

func p(prefix string, suffix string, tag string) string {
	if suffix == "" {
		return prefix + "-" + tag
	}
	if prefix == "" {
		return tag + "-" + suffix
	}
	return prefix + "-" + tag + "-" + suffix
}

// --- Property Map -----------------------------------------------------

// PropertyMap holds CSS properties. nil is a legal (empty) property map.
// A property map is the raw result of selector matching for one node (and
// pseudo-element): per property either the "inherit" sentinel or the
// winning declaration's value. It is the input to the typed adapter.
type PropertyMap struct {
	// As CSS defines a whole lot of properties, we segment them into logical groups.
	m map[string]*PropertyGroup // into struct to make it opaque for clients
}

// NewPropertyMap returns a new empty property map.
func NewPropertyMap() *PropertyMap {
	return &PropertyMap{}
}

func (pmap *PropertyMap) String() string {
	s := "Property Map = {\n"
	for _, v := range pmap.m {
		s += v.String()
	}
	s += "}"
	return s
}

// Size returns the number of property groups.
func (pmap *PropertyMap) Size() int {
	if pmap == nil {
		return 0
	}
	return len(pmap.m)
}

// Group returns the property group for a group name or nil.
func (pmap *PropertyMap) Group(groupname string) *PropertyGroup {
	if pmap == nil {
		return nil
	}
	group := pmap.m[groupname]
	return group
}

// Property returns a style property value, together with an indicator
// wether it has been found in the properties map.
func (pmap *PropertyMap) Property(key string) (Property, bool) {
	groupname := GroupNameFromPropertyKey(key)
	group := pmap.Group(groupname)
	if group == nil {
		return NullStyle, false
	}
	return group.Get(key)
}

// Add adds a property to this property map, e.g.,
//
//    pm.Add("margin-top", "10px")
//
func (pmap *PropertyMap) Add(key string, value Property) {
	if pmap == nil {
		return
	}
	if pmap.m == nil {
		pmap.m = make(map[string]*PropertyGroup)
	}
	groupname := GroupNameFromPropertyKey(key)
	group, found := pmap.m[groupname]
	if !found {
		group = NewPropertyGroup(groupname)
		pmap.m[groupname] = group
	}
	group.Set(key, value)
}
