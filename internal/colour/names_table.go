package colour

// referenceColour is one row of the static named-colour table.
type referenceColour struct {
	name string
	hex  string
}

// referenceColours is the ordered reference table the name index is built
// from: the CSS basic colours plus an everyday-language extended set. Order
// matters: nearest-name ties resolve to the earliest entry.
var referenceColours = []referenceColour{
	// CSS basic colours.
	{"black", "#000000"}, {"white", "#FFFFFF"}, {"red", "#FF0000"},
	{"green", "#008000"}, {"blue", "#0000FF"}, {"yellow", "#FFFF00"},
	{"cyan", "#00FFFF"}, {"magenta", "#FF00FF"}, {"orange", "#FFA500"},
	{"pink", "#FFC0CB"}, {"purple", "#800080"}, {"brown", "#A52A2A"},
	{"gray", "#808080"}, {"grey", "#808080"}, {"navy", "#000080"},
	{"teal", "#008080"}, {"olive", "#808000"}, {"maroon", "#800000"},
	{"lime", "#00FF00"}, {"aqua", "#00FFFF"}, {"silver", "#C0C0C0"},
	{"gold", "#FFD700"}, {"steel blue", "#4682B4"}, {"mustard", "#FFDB58"},

	// Extended colours (CSS extended plus common everyday names).
	{"alice blue", "#F0F8FF"}, {"antique white", "#FAEBD7"},
	{"aquamarine", "#7FFFD4"}, {"azure", "#F0FFFF"},
	{"beige", "#F5F5DC"}, {"bisque", "#FFE4C4"},
	{"blanched almond", "#FFEBCD"}, {"blue violet", "#8A2BE2"},
	{"burlywood", "#DEB887"}, {"cadet blue", "#5F9EA0"},
	{"chartreuse", "#7FFF00"}, {"chocolate", "#D2691E"},
	{"coral", "#FF7F50"}, {"cornflower blue", "#6495ED"},
	{"cornsilk", "#FFF8DC"}, {"crimson", "#DC143C"},
	{"dark blue", "#00008B"}, {"dark cyan", "#008B8B"},
	{"dark goldenrod", "#B8860B"}, {"dark gray", "#A9A9A9"},
	{"dark green", "#006400"}, {"dark khaki", "#BDB76B"},
	{"dark magenta", "#8B008B"}, {"dark olive green", "#556B2F"},
	{"dark orange", "#FF8C00"}, {"dark orchid", "#9932CC"},
	{"dark red", "#8B0000"}, {"dark salmon", "#E9967A"},
	{"dark sea green", "#8FBC8F"}, {"dark slate blue", "#483D8B"},
	{"dark slate gray", "#2F4F4F"}, {"dark turquoise", "#00CED1"},
	{"dark violet", "#9400D3"}, {"deep pink", "#FF1493"},
	{"deep sky blue", "#00BFFF"}, {"dim gray", "#696969"},
	{"dodger blue", "#1E90FF"}, {"fire brick", "#B22222"},
	{"floral white", "#FFFAF0"}, {"forest green", "#228B22"},
	{"fuchsia", "#FF00FF"}, {"gainsboro", "#DCDCDC"},
	{"ghost white", "#F8F8FF"}, {"goldenrod", "#DAA520"},
	{"green yellow", "#ADFF2F"}, {"honeydew", "#F0FFF0"},
	{"hot pink", "#FF69B4"}, {"indian red", "#CD5C5C"},
	{"indigo", "#4B0082"}, {"ivory", "#FFFFF0"},
	{"khaki", "#F0E68C"}, {"lavender", "#E6E6FA"},
	{"lavender blush", "#FFF0F5"}, {"lawn green", "#7CFC00"},
	{"lemon chiffon", "#FFFACD"}, {"light blue", "#ADD8E6"},
	{"light coral", "#F08080"}, {"light cyan", "#E0FFFF"},
	{"light goldenrod yellow", "#FAFAD2"}, {"light gray", "#D3D3D3"},
	{"light green", "#90EE90"}, {"light pink", "#FFB6C1"},
	{"light salmon", "#FFA07A"}, {"light sea green", "#20B2AA"},
	{"light sky blue", "#89CEF0"}, {"light slate gray", "#778899"},
	{"light steel blue", "#B0C4DE"}, {"light yellow", "#FFFFE0"},
	{"lime green", "#32CD32"}, {"linen", "#FAF0E6"},
	{"medium aquamarine", "#66CDAA"}, {"medium blue", "#0000CD"},
	{"medium orchid", "#BA55D3"}, {"medium purple", "#9370DB"},
	{"medium sea green", "#4EEB3A"}, {"medium slate blue", "#7B68EE"},
	{"medium spring green", "#00FA9A"}, {"medium turquoise", "#48D1CC"},
	{"medium violet red", "#C71585"}, {"midnight blue", "#191970"},
	{"mint cream", "#F5FFFA"}, {"misty rose", "#FFE4E1"},
	{"moccasin", "#FFE4B5"}, {"navajo white", "#FFDEAD"},
	{"old lace", "#FDF5E6"}, {"olive drab", "#6B8E23"},
	{"orange red", "#FF4500"}, {"orchid", "#DA70D6"},
	{"pale goldenrod", "#EEE8AA"}, {"pale green", "#98FB98"},
	{"pale turquoise", "#AFEEEE"}, {"pale violet red", "#DB7093"},
	{"papaya whip", "#FFEFD5"}, {"peach puff", "#FFDAB9"},
	{"peru", "#CD853F"}, {"plum", "#DDA0DD"},
	{"powder blue", "#B0E0E6"}, {"rosy brown", "#BC8F8F"},
	{"royal blue", "#4169E1"}, {"saddle brown", "#8B4513"},
	{"salmon", "#FA8072"}, {"sandy brown", "#F4A460"},
	{"sea green", "#2E8B57"}, {"sea shell", "#FFF5EE"},
	{"sienna", "#A0522D"}, {"sky blue", "#87CEEB"},
	{"slate blue", "#6A5ACD"}, {"slate gray", "#708090"},
	{"snow", "#FFFAFA"}, {"spring green", "#00FF7F"},
	{"tan", "#D2B48C"}, {"thistle", "#D8BFD8"},
	{"tomato", "#FF6347"}, {"turquoise", "#40E0D0"},
	{"violet", "#EE82EE"}, {"wheat", "#F5DEB3"},
	{"white smoke", "#F5F5F5"}, {"yellow green", "#9ACD32"},
}

// primaryColours is the set of names that are themselves a basic colour
// family.
var primaryColours = map[string]bool{
	"red": true, "green": true, "blue": true, "yellow": true,
	"orange": true, "pink": true, "purple": true, "brown": true,
	"gray": true, "grey": true, "black": true, "white": true,
	"cyan": true, "magenta": true, "teal": true, "olive": true,
	"navy": true, "maroon": true, "lime": true, "aqua": true,
	"silver": true, "gold": true,
}

// colourToPrimary maps specific colour names to their basic family. Names
// absent from the map fall back to word inference in primaryFamily.
var colourToPrimary = map[string]string{
	// Reds.
	"crimson": "Red", "fire brick": "Red", "indian red": "Red",
	"dark salmon": "Red", "salmon": "Red", "light coral": "Red",

	// Oranges.
	"tomato": "Orange", "coral": "Orange", "orange red": "Orange",
	"dark orange": "Orange",

	// Blues.
	"dark blue": "Blue", "steel blue": "Blue", "cornflower blue": "Blue",
	"royal blue": "Blue", "dodger blue": "Blue", "deep sky blue": "Blue",
	"sky blue": "Blue", "light blue": "Blue", "powder blue": "Blue",
	"slate blue": "Blue", "dark slate blue": "Blue",
	"medium slate blue": "Blue", "medium blue": "Blue",

	// Greens.
	"dark green": "Green", "forest green": "Green", "sea green": "Green",
	"dark sea green": "Green", "medium sea green": "Green",
	"light sea green": "Green", "pale green": "Green",
	"spring green": "Green", "lawn green": "Green", "chartreuse": "Green",
	"lime green": "Green", "dark olive green": "Green",
	"olive drab": "Green", "dark khaki": "Green",

	// Yellows.
	"dark goldenrod": "Yellow", "goldenrod": "Yellow",
	"khaki": "Yellow", "yellow green": "Yellow", "green yellow": "Yellow",
	"lemon chiffon": "Yellow", "light yellow": "Yellow",
	"light goldenrod yellow": "Yellow", "pale goldenrod": "Yellow",
	"mustard": "Yellow",

	// Pinks.
	"hot pink": "Pink", "deep pink": "Pink", "light pink": "Pink",
	"pale violet red": "Pink", "medium violet red": "Pink",
	"fuchsia": "Pink",

	// Purples.
	"blue violet": "Purple", "indigo": "Purple", "dark violet": "Purple",
	"medium purple": "Purple", "thistle": "Purple", "plum": "Purple",
	"violet": "Purple", "orchid": "Purple", "medium orchid": "Purple",
	"dark orchid": "Purple", "dark magenta": "Purple",

	// Browns.
	"dark red": "Brown", "sienna": "Brown",
	"saddle brown": "Brown", "chocolate": "Brown", "peru": "Brown",
	"burlywood": "Brown", "tan": "Brown", "rosy brown": "Brown",
	"sandy brown": "Brown", "wheat": "Brown", "navajo white": "Brown",
	"moccasin": "Brown", "peach puff": "Brown",

	// Greys.
	"dark gray": "Gray", "light gray": "Gray", "slate gray": "Gray",
	"light slate gray": "Gray", "gainsboro": "Gray", "bisque": "Gray",

	// Blacks and whites.
	"dim gray": "Black", "dark slate gray": "Black",
	"midnight blue": "Black", "snow": "White", "honeydew": "White", "mint cream": "White",
	"azure": "White", "alice blue": "White", "ghost white": "White",
	"white smoke": "White", "sea shell": "White", "beige": "White",
	"old lace": "White", "floral white": "White", "ivory": "White",
	"antique white": "White", "linen": "White", "lavender blush": "White",
	"misty rose": "White", "cornsilk": "White", "blanched almond": "White",
	"papaya whip": "White",

	// Cyans and teals.
	"light cyan": "Cyan",
	"pale turquoise": "Cyan", "aquamarine": "Cyan", "turquoise": "Cyan",
	"medium turquoise": "Cyan", "dark turquoise": "Cyan",
	"cadet blue": "Cyan", "dark cyan": "Teal",
	"medium aquamarine": "Teal",
}
