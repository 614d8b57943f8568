// layout.go centralizes the terminal layout calculations for the page.
//
// The screen is a one-row title bar, the page, and a footer of two or three
// rows. The page is centred horizontally. Its width is the terminal width, or
// LineWidthLimit when line width limiting is on, and the margin setting takes
// that many blank columns from each side of it.
package app

// LayoutDimensions holds the calculated layout for one terminal size.
type LayoutDimensions struct {
	PageWidth  int // columns the page occupies, margins included
	TextWidth  int // columns available to text inside the margins
	LeftPad    int // blank columns left of the text
	PageHeight int // rows between the title bar and the footer
}

// calculateLayout computes the page geometry from the terminal size and the
// display options. Before the first resize the width is assumed to be
// LineWidthLimit so the page can already be wrapped.
func (m *Model) calculateLayout() LayoutDimensions {
	cfg := m.sess.Config()

	width := m.width
	if width <= 0 {
		width = LineWidthLimit
	}
	pageWidth := width
	if cfg.LimitLineWidth {
		pageWidth = min(pageWidth, LineWidthLimit)
	}

	margin := cfg.MarginSize
	if 2*margin >= pageWidth {
		margin = max(0, (pageWidth-1)/2)
	}

	footer := FooterMinRows
	if m.width > 0 {
		footer = m.footerHeightForWidth(m.width)
	}

	return LayoutDimensions{
		PageWidth:  pageWidth,
		TextWidth:  max(1, pageWidth-2*margin),
		LeftPad:    max(0, (width-pageWidth)/2) + margin,
		PageHeight: max(0, m.height-TitleRows-footer),
	}
}

// footerHeightForWidth returns how many rows should be reserved for the footer.
// It prefers FooterMinRows and expands to FooterMaxRows when the footer
// segments cannot fit without dropping content.
func (m *Model) footerHeightForWidth(width int) int {
	_, fit := m.buildStatusRows(width, FooterMinRows)
	if fit {
		return FooterMinRows
	}
	return FooterMaxRows
}

// updateLayout resizes the viewport and reflows the page.
func (m *Model) updateLayout() {
	layout := m.calculateLayout()
	m.viewport.Width = max(0, m.width)
	m.viewport.Height = layout.PageHeight
	m.refreshPage()
}
