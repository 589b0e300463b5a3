package constants

// Icon keys used when caching rasterized SVG icons.
const (
	IconChevronLeft = "chevron.left"
)

// ChevronLeftSVG is the back control glyph, drawn in white so a color mod can tint it.
const ChevronLeftSVG = `<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 24 24" width="24" height="24">
<path d="M15.5 3.5 L7 12 L15.5 20.5" fill="none" stroke="#FFFFFF" stroke-width="2.6" stroke-linecap="round" stroke-linejoin="round"/>
</svg>`
