package consts

const (
	OutfitUploadTempKey = "outfit:upload:temp"
	ProgressDailyKey    = "progress:daily:"
)

const (
	OutfitSeqLock     = "outfit:seq:lock:"
	StyleAnalysisLock = "analysis:lock:"
)
