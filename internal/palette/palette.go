// Package palette holds the ANSI escape tables used by mdtty themes.
// Palettes are process-wide immutable data; themes never mutate them.
package palette

import "strconv"

// SGR attribute prefixes shared by all palettes.
const (
	Reset     = "\x1b[0m"
	Bold      = "\x1b[1m"
	Dim       = "\x1b[2m"
	Italic    = "\x1b[3m"
	Underline = "\x1b[4m"
	Strike    = "\x1b[9m"
)

// Palette is a set of 256-color foreground prefixes for one theme.
type Palette struct {
	Text        string
	H1          string
	H2          string
	H3          string
	H4          string
	H5          string
	H6          string
	Emphasis    string
	Strong      string
	Strike      string
	CodeInline  string
	CodeBlock   string
	Quote       string
	ListMarker  string
	LinkText    string
	LinkURL     string
	Rule        string
	TableHeader string
	TableBorder string
}

func fg(n int) string {
	return "\x1b[38;5;" + strconv.Itoa(n) + "m"
}

var PaletteDefault = Palette{
	H1:          fg(208),
	H2:          fg(214),
	H3:          fg(220),
	H4:          fg(178),
	H5:          fg(172),
	H6:          fg(136),
	Emphasis:    fg(252),
	Strong:      fg(255),
	Strike:      fg(245),
	CodeInline:  fg(210),
	CodeBlock:   fg(150),
	Quote:       fg(245),
	ListMarker:  fg(75),
	LinkText:    fg(81),
	LinkURL:     fg(244),
	Rule:        fg(240),
	TableHeader: fg(208),
	TableBorder: fg(240),
}

var PaletteGruvbox = Palette{
	Text:        fg(223),
	H1:          fg(208),
	H2:          fg(214),
	H3:          fg(142),
	H4:          fg(109),
	H5:          fg(175),
	H6:          fg(132),
	Emphasis:    fg(223),
	Strong:      fg(229),
	Strike:      fg(245),
	CodeInline:  fg(167),
	CodeBlock:   fg(142),
	Quote:       fg(245),
	ListMarker:  fg(109),
	LinkText:    fg(109),
	LinkURL:     fg(245),
	Rule:        fg(241),
	TableHeader: fg(214),
	TableBorder: fg(241),
}

var PaletteDracula = Palette{
	Text:        fg(253),
	H1:          fg(141),
	H2:          fg(212),
	H3:          fg(117),
	H4:          fg(84),
	H5:          fg(228),
	H6:          fg(215),
	Emphasis:    fg(228),
	Strong:      fg(255),
	Strike:      fg(245),
	CodeInline:  fg(212),
	CodeBlock:   fg(84),
	Quote:       fg(61),
	ListMarker:  fg(117),
	LinkText:    fg(117),
	LinkURL:     fg(245),
	Rule:        fg(61),
	TableHeader: fg(141),
	TableBorder: fg(61),
}

var PaletteNord = Palette{
	Text:        fg(254),
	H1:          fg(110),
	H2:          fg(109),
	H3:          fg(111),
	H4:          fg(143),
	H5:          fg(174),
	H6:          fg(139),
	Emphasis:    fg(254),
	Strong:      fg(255),
	Strike:      fg(244),
	CodeInline:  fg(174),
	CodeBlock:   fg(144),
	Quote:       fg(244),
	ListMarker:  fg(110),
	LinkText:    fg(109),
	LinkURL:     fg(244),
	Rule:        fg(240),
	TableHeader: fg(110),
	TableBorder: fg(240),
}

var PaletteTokyoNight = Palette{
	Text:        fg(189),
	H1:          fg(111),
	H2:          fg(141),
	H3:          fg(117),
	H4:          fg(149),
	H5:          fg(179),
	H6:          fg(210),
	Emphasis:    fg(189),
	Strong:      fg(255),
	Strike:      fg(243),
	CodeInline:  fg(210),
	CodeBlock:   fg(149),
	Quote:       fg(243),
	ListMarker:  fg(111),
	LinkText:    fg(117),
	LinkURL:     fg(243),
	Rule:        fg(238),
	TableHeader: fg(141),
	TableBorder: fg(238),
}

var PaletteSolarizedDark = Palette{
	Text:        fg(244),
	H1:          fg(33),
	H2:          fg(37),
	H3:          fg(64),
	H4:          fg(136),
	H5:          fg(166),
	H6:          fg(125),
	Emphasis:    fg(245),
	Strong:      fg(254),
	Strike:      fg(240),
	CodeInline:  fg(166),
	CodeBlock:   fg(64),
	Quote:       fg(240),
	ListMarker:  fg(33),
	LinkText:    fg(37),
	LinkURL:     fg(240),
	Rule:        fg(240),
	TableHeader: fg(33),
	TableBorder: fg(240),
}

var PaletteSolarizedLight = Palette{
	Text:        fg(241),
	H1:          fg(33),
	H2:          fg(37),
	H3:          fg(64),
	H4:          fg(136),
	H5:          fg(166),
	H6:          fg(125),
	Emphasis:    fg(240),
	Strong:      fg(235),
	Strike:      fg(245),
	CodeInline:  fg(166),
	CodeBlock:   fg(64),
	Quote:       fg(245),
	ListMarker:  fg(33),
	LinkText:    fg(37),
	LinkURL:     fg(245),
	Rule:        fg(245),
	TableHeader: fg(33),
	TableBorder: fg(245),
}

var PaletteOneDark = Palette{
	Text:        fg(188),
	H1:          fg(39),
	H2:          fg(170),
	H3:          fg(114),
	H4:          fg(180),
	H5:          fg(73),
	H6:          fg(167),
	Emphasis:    fg(188),
	Strong:      fg(255),
	Strike:      fg(241),
	CodeInline:  fg(180),
	CodeBlock:   fg(114),
	Quote:       fg(241),
	ListMarker:  fg(39),
	LinkText:    fg(73),
	LinkURL:     fg(241),
	Rule:        fg(238),
	TableHeader: fg(170),
	TableBorder: fg(238),
}

var PaletteGithubDark = Palette{
	Text:        fg(253),
	H1:          fg(75),
	H2:          fg(75),
	H3:          fg(117),
	H4:          fg(153),
	H5:          fg(189),
	H6:          fg(245),
	Emphasis:    fg(253),
	Strong:      fg(255),
	Strike:      fg(243),
	CodeInline:  fg(210),
	CodeBlock:   fg(150),
	Quote:       fg(243),
	ListMarker:  fg(75),
	LinkText:    fg(75),
	LinkURL:     fg(243),
	Rule:        fg(239),
	TableHeader: fg(75),
	TableBorder: fg(239),
}

var PaletteCatppuccinMocha = Palette{
	Text:        fg(189),
	H1:          fg(183),
	H2:          fg(217),
	H3:          fg(223),
	H4:          fg(151),
	H5:          fg(117),
	H6:          fg(147),
	Emphasis:    fg(189),
	Strong:      fg(255),
	Strike:      fg(243),
	CodeInline:  fg(217),
	CodeBlock:   fg(151),
	Quote:       fg(243),
	ListMarker:  fg(117),
	LinkText:    fg(117),
	LinkURL:     fg(243),
	Rule:        fg(239),
	TableHeader: fg(183),
	TableBorder: fg(239),
}
