package app

// Layout constants define the default dimensions and spacing for the UI
const (
	// LineWidthLimit is the page width, margins included, when line width
	// limiting is on.
	LineWidthLimit = 80

	// GoldfishLines is how many wrapped lines stay visible in goldfish mode.
	GoldfishLines = 3

	// TitleRows is the height of the title bar above the page.
	TitleRows = 1

	// FooterMinRows is the default number of rows reserved for the bottom
	// status/help area.
	FooterMinRows = 2
	// FooterMaxRows is the expanded footer height used when content does not
	// fit within FooterMinRows.
	FooterMaxRows = 3

	// TabWidth is how many columns a typed tab occupies on the page.
	TabWidth = 4

	// PromptPopupWidth caps the width of the open/save path prompt.
	PromptPopupWidth = 72
)

// boldThreshold is the font weight from which the page is drawn bold.
const boldThreshold = 600

// Input limits define maximum sizes for user input
const (
	// InputCharLimit is the maximum number of characters allowed in the path prompt
	InputCharLimit = 1024
)

// Window title shown when no file is open.
const appTitle = "typewriter"
