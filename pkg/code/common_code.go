package code

// 通用状态码
var (
	Success                   = NewSuss(1, lang{en: "Success", zh_cn: "成功"})
	Fail                      = NewError(0, lang{en: "Fail", zh_cn: "失败"})
	ErrorServerInternal       = NewError(10000000, lang{en: "Server internal error", zh_cn: "服务内部错误"})
	ErrorInvalidParams        = NewError(10000001, lang{en: "Invalid params", zh_cn: "入参错误"})
	ErrorNotFoundAPI          = NewError(10000002, lang{en: "Not found API", zh_cn: "找不到 API"})
	ErrorTooManyRequests      = NewError(10000003, lang{en: "Too many requests", zh_cn: "请求过多"})
	ErrorDBQuery              = NewError(10000004, lang{en: "Database query error", zh_cn: "数据库查询错误"})
	ErrorNotUserAuthToken     = NewError(10000005, lang{en: "Missing auth token", zh_cn: "缺少认证 Token"})
	ErrorInvalidUserAuthToken = NewError(10000006, lang{en: "Invalid or expired auth token", zh_cn: "认证 Token 无效或已过期"})
	ErrorTokenGenerate        = NewError(10000007, lang{en: "Token generate failed", zh_cn: "Token 生成失败"})
)

// 用户相关状态码
var (
	ErrorUserNotFound            = NewError(20010000, lang{en: "User not found", zh_cn: "用户不存在"})
	ErrorUserAlreadyExists       = NewError(20010001, lang{en: "Username already registered", zh_cn: "用户名已被注册"})
	ErrorUserUsernameNotValid    = NewError(20010002, lang{en: "Username format invalid", zh_cn: "用户名格式不正确"})
	ErrorUserPasswordWeak        = NewError(20010003, lang{en: "Password must be at least 8 characters and contain upper, lower and digit", zh_cn: "密码至少 8 位，且包含大写字母、小写字母和数字"})
	ErrorUserLoginPasswordFailed = NewError(20010004, lang{en: "Username or password invalid", zh_cn: "用户名或密码错误"})
	ErrorUserRegisterIsDisable   = NewError(20010005, lang{en: "Register is disabled", zh_cn: "注册已关闭"})
	ErrorUserRegister            = NewError(20010006, lang{en: "Register failed", zh_cn: "注册失败"})
	ErrorUserOldPasswordFailed   = NewError(20010007, lang{en: "Old password incorrect", zh_cn: "旧密码不正确"})
)

// 笔记相关状态码
var (
	ErrorNoteNotFound         = NewError(20020000, lang{en: "Note not found", zh_cn: "笔记不存在"})
	ErrorNoteAccessDenied     = NewError(20020001, lang{en: "No access to this note", zh_cn: "无权访问该笔记"})
	ErrorNoteNotOwner         = NewError(20020002, lang{en: "Only the owner can perform this action", zh_cn: "仅笔记所有者可执行该操作"})
	ErrorNoteTitleExists      = NewError(20020003, lang{en: "Note with this title already exists", zh_cn: "同名笔记已存在"})
	ErrorNoteForbiddenContent = NewError(20020004, lang{en: "Title contains forbidden word", zh_cn: "标题包含禁用词"})
	ErrorInvalidSortField     = NewError(20020005, lang{en: "Invalid sort field", zh_cn: "排序字段不合法"})
	ErrorInvalidPagination    = NewError(20020006, lang{en: "Pagination bounds invalid", zh_cn: "分页参数越界"})
)

// 分享相关状态码
var (
	ErrorShareNotOwner          = NewError(20030000, lang{en: "Only the owner can share the note", zh_cn: "仅笔记所有者可分享"})
	ErrorShareRecipientNotFound = NewError(20030001, lang{en: "Recipient not found", zh_cn: "接收用户不存在"})
	ErrorShareNotFound          = NewError(20030002, lang{en: "Share grant not found", zh_cn: "分享记录不存在"})
)
