package errcode

// 错误码约定：
// - 0：无错误
// - 4xxx：业务可恢复/告警类错误（例如文档内容无法解析但流程可提示）
// - 5xxx：系统错误（需要中断流程）
const (
	OK              = 0
	InvalidDocument = 4001
	ResourceMissing = 4004
	SystemError     = 5000
)
