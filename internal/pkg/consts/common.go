package consts

const (
	MimePrefixImage = "image"
)

// 订阅计划与状态
const (
	PlanFree    = "free"
	PlanMonthly = "monthly"
	PlanYearly  = "yearly"

	PlanStatusActive   = "active"
	PlanStatusExpired  = "expired"
	PlanStatusCanceled = "canceled"
)

const (
	DefaultAvatarURL = "default_avatar.png"
)

// ProgressWindowDays 进度页展示的日期窗口长度（含今天）
const ProgressWindowDays = 8
