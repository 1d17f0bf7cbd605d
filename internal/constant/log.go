package constant

const (
	LogActionCreateDraft = 11 + iota
	LogActionUpdateDraft
	LogActionDeleteDraft
)

const (
	LogActionAddSlide = 21 + iota
	LogActionUpdateSlide
	LogActionDeleteSlide
	LogActionReorderSlides
)

const (
	LogActionExportPDF = 31 + iota
	LogActionExportPPTX
	LogActionExportNativePPTX
)
