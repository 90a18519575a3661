package color

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/

import "strings"

// Lookup finds a color by its CSS3 keyword name. Matching is
// case-insensitive. An unknown keyword yields ok=false; this is not an
// error condition, unrecognized keywords are simply ignored by CSS.
func Lookup(name string) (Color, bool) {
	c, ok := cssColors[strings.ToLower(name)]
	if !ok {
		tracer().Debugf("unrecognized color keyword %q", name)
	}
	return c, ok
}

const opaque = 1.0

// cssColors maps the 147 CSS3 extended color keywords (including
// duplicate-valued aliases like gray/grey) onto their color values.
// The table is immutable after process start.
var cssColors = map[string]Color{
	"aliceblue": {240, 248, 255, opaque},
	"antiquewhite": {250, 235, 215, opaque},
	"aqua": {0, 255, 255, opaque},
	"aquamarine": {127, 255, 212, opaque},
	"azure": {240, 255, 255, opaque},
	"beige": {245, 245, 220, opaque},
	"bisque": {255, 228, 196, opaque},
	"black": {0, 0, 0, opaque},
	"blanchedalmond": {255, 235, 205, opaque},
	"blue": {0, 0, 255, opaque},
	"blueviolet": {138, 43, 226, opaque},
	"brown": {165, 42, 42, opaque},
	"burlywood": {222, 184, 135, opaque},
	"cadetblue": {95, 158, 160, opaque},
	"chartreuse": {127, 255, 0, opaque},
	"chocolate": {210, 105, 30, opaque},
	"coral": {255, 127, 80, opaque},
	"cornflowerblue": {100, 149, 237, opaque},
	"cornsilk": {255, 248, 220, opaque},
	"crimson": {220, 20, 60, opaque},
	"cyan": {0, 255, 255, opaque},
	"darkblue": {0, 0, 139, opaque},
	"darkcyan": {0, 139, 139, opaque},
	"darkgoldenrod": {184, 134, 11, opaque},
	"darkgray": {169, 169, 169, opaque},
	"darkgreen": {0, 100, 0, opaque},
	"darkgrey": {169, 169, 169, opaque},
	"darkkhaki": {189, 183, 107, opaque},
	"darkmagenta": {139, 0, 139, opaque},
	"darkolivegreen": {85, 107, 47, opaque},
	"darkorange": {255, 140, 0, opaque},
	"darkorchid": {153, 50, 204, opaque},
	"darkred": {139, 0, 0, opaque},
	"darksalmon": {233, 150, 122, opaque},
	"darkseagreen": {143, 188, 143, opaque},
	"darkslateblue": {72, 61, 139, opaque},
	"darkslategray": {47, 79, 79, opaque},
	"darkslategrey": {47, 79, 79, opaque},
	"darkturquoise": {0, 206, 209, opaque},
	"darkviolet": {148, 0, 211, opaque},
	"deeppink": {255, 20, 147, opaque},
	"deepskyblue": {0, 191, 255, opaque},
	"dimgray": {105, 105, 105, opaque},
	"dimgrey": {105, 105, 105, opaque},
	"dodgerblue": {30, 144, 255, opaque},
	"firebrick": {178, 34, 34, opaque},
	"floralwhite": {255, 250, 240, opaque},
	"forestgreen": {34, 139, 34, opaque},
	"fuchsia": {255, 0, 255, opaque},
	"gainsboro": {220, 220, 220, opaque},
	"ghostwhite": {248, 248, 255, opaque},
	"gold": {255, 215, 0, opaque},
	"goldenrod": {218, 165, 32, opaque},
	"gray": {128, 128, 128, opaque},
	"green": {0, 128, 0, opaque},
	"greenyellow": {173, 255, 47, opaque},
	"grey": {128, 128, 128, opaque},
	"honeydew": {240, 255, 240, opaque},
	"hotpink": {255, 105, 180, opaque},
	"indianred": {205, 92, 92, opaque},
	"indigo": {75, 0, 130, opaque},
	"ivory": {255, 255, 240, opaque},
	"khaki": {240, 230, 140, opaque},
	"lavender": {230, 230, 250, opaque},
	"lavenderblush": {255, 240, 245, opaque},
	"lawngreen": {124, 252, 0, opaque},
	"lemonchiffon": {255, 250, 205, opaque},
	"lightblue": {173, 216, 230, opaque},
	"lightcoral": {240, 128, 128, opaque},
	"lightcyan": {224, 255, 255, opaque},
	"lightgoldenrodyellow": {250, 250, 210, opaque},
	"lightgray": {211, 211, 211, opaque},
	"lightgreen": {144, 238, 144, opaque},
	"lightgrey": {211, 211, 211, opaque},
	"lightpink": {255, 182, 193, opaque},
	"lightsalmon": {255, 160, 122, opaque},
	"lightseagreen": {32, 178, 170, opaque},
	"lightskyblue": {135, 206, 250, opaque},
	"lightslategray": {119, 136, 153, opaque},
	"lightslategrey": {119, 136, 153, opaque},
	"lightsteelblue": {176, 196, 222, opaque},
	"lightyellow": {255, 255, 224, opaque},
	"lime": {0, 255, 0, opaque},
	"limegreen": {50, 205, 50, opaque},
	"linen": {250, 240, 230, opaque},
	"magenta": {255, 0, 255, opaque},
	"maroon": {128, 0, 0, opaque},
	"mediumaquamarine": {102, 205, 170, opaque},
	"mediumblue": {0, 0, 205, opaque},
	"mediumorchid": {186, 85, 211, opaque},
	"mediumpurple": {147, 112, 219, opaque},
	"mediumseagreen": {60, 179, 113, opaque},
	"mediumslateblue": {123, 104, 238, opaque},
	"mediumspringgreen": {0, 250, 154, opaque},
	"mediumturquoise": {72, 209, 204, opaque},
	"mediumvioletred": {199, 21, 133, opaque},
	"midnightblue": {25, 25, 112, opaque},
	"mintcream": {245, 255, 250, opaque},
	"mistyrose": {255, 228, 225, opaque},
	"moccasin": {255, 228, 181, opaque},
	"navajowhite": {255, 222, 173, opaque},
	"navy": {0, 0, 128, opaque},
	"oldlace": {253, 245, 230, opaque},
	"olive": {128, 128, 0, opaque},
	"olivedrab": {107, 142, 35, opaque},
	"orange": {255, 165, 0, opaque},
	"orangered": {255, 69, 0, opaque},
	"orchid": {218, 112, 214, opaque},
	"palegoldenrod": {238, 232, 170, opaque},
	"palegreen": {152, 251, 152, opaque},
	"paleturquoise": {175, 238, 238, opaque},
	"palevioletred": {219, 112, 147, opaque},
	"papayawhip": {255, 239, 213, opaque},
	"peachpuff": {255, 218, 185, opaque},
	"peru": {205, 133, 63, opaque},
	"pink": {255, 192, 203, opaque},
	"plum": {221, 160, 221, opaque},
	"powderblue": {176, 224, 230, opaque},
	"purple": {128, 0, 128, opaque},
	"red": {255, 0, 0, opaque},
	"rosybrown": {188, 143, 143, opaque},
	"royalblue": {65, 105, 225, opaque},
	"saddlebrown": {139, 69, 19, opaque},
	"salmon": {250, 128, 114, opaque},
	"sandybrown": {244, 164, 96, opaque},
	"seagreen": {46, 139, 87, opaque},
	"seashell": {255, 245, 238, opaque},
	"sienna": {160, 82, 45, opaque},
	"silver": {192, 192, 192, opaque},
	"skyblue": {135, 206, 235, opaque},
	"slateblue": {106, 90, 205, opaque},
	"slategray": {112, 128, 144, opaque},
	"slategrey": {112, 128, 144, opaque},
	"snow": {255, 250, 250, opaque},
	"springgreen": {0, 255, 127, opaque},
	"steelblue": {70, 130, 180, opaque},
	"tan": {210, 180, 140, opaque},
	"teal": {0, 128, 128, opaque},
	"thistle": {216, 191, 216, opaque},
	"tomato": {255, 99, 71, opaque},
	"turquoise": {64, 224, 208, opaque},
	"violet": {238, 130, 238, opaque},
	"wheat": {245, 222, 179, opaque},
	"white": {255, 255, 255, opaque},
	"whitesmoke": {245, 245, 245, opaque},
	"yellow": {255, 255, 0, opaque},
	"yellowgreen": {154, 205, 50, opaque},
}
