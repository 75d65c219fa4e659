package api_router

import (
	"context"

	"github.com/haierkeys/note-keeper-service/internal/app"
	"github.com/haierkeys/note-keeper-service/internal/dto"
	"github.com/haierkeys/note-keeper-service/internal/middleware"
	pkgapp "github.com/haierkeys/note-keeper-service/pkg/app"
	"github.com/haierkeys/note-keeper-service/pkg/code"
	apperrors "github.com/haierkeys/note-keeper-service/pkg/errors"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// NoteHandler 笔记 API 路由处理器
// 使用 App Container 注入依赖，支持统一错误处理
type NoteHandler struct {
	*Handler
}

// NewNoteHandler 创建 NoteHandler 实例
func NewNoteHandler(a *app.App) *NoteHandler {
	return &NoteHandler{
		Handler: NewHandler(a),
	}
}

// Create 创建笔记
// @Summary 创建笔记
// @Description 创建一条新笔记，标题全局唯一且不得包含禁用词
// @Tags 笔记
// @Security UserAuthToken
// @Param token header string true "认证 Token"
// @Accept json
// @Produce json
// @Param params body dto.NoteCreateRequest true "创建参数"
// @Success 200 {object} pkgapp.Res{data=dto.NoteDTO} "成功"
// @Router /api/notes [post]
func (h *NoteHandler) Create(c *gin.Context) {
	response := pkgapp.NewResponse(c)
	params := &dto.NoteCreateRequest{}

	// 参数绑定和验证
	valid, errs := pkgapp.BindAndValid(c, params)
	if !valid {
		h.App.Logger().Error("NoteHandler.Create.BindAndValid errs", zap.Error(errs))
		response.ToResponse(code.ErrorInvalidParams.WithDetails(errs.ErrorsToString()).WithData(errs.MapsToString()))
		return
	}

	uid := pkgapp.GetUID(c)
	if uid == 0 {
		h.App.Logger().Error("NoteHandler.Create err uid=0")
		response.ToResponse(code.ErrorInvalidUserAuthToken)
		return
	}

	ctx := c.Request.Context()

	noteDTO, err := h.App.NoteService.Create(ctx, uid, params)
	if err != nil {
		h.logError(ctx, "NoteHandler.Create", err)
		apperrors.ErrorResponse(c, err)
		return
	}

	response.ToResponse(code.Success.WithData(noteDTO))
}

// Get 获取单条笔记详情
// @Summary 获取笔记详情
// @Description 获取单条笔记内容，所有者和被授权用户可读
// @Tags 笔记
// @Security UserAuthToken
// @Param token header string true "认证 Token"
// @Produce json
// @Param id path int true "笔记 ID"
// @Success 200 {object} pkgapp.Res{data=dto.NoteDTO} "成功"
// @Router /api/notes/{id} [get]
func (h *NoteHandler) Get(c *gin.Context) {
	response := pkgapp.NewResponse(c)

	noteID, ok := pathID(c, "id")
	if !ok {
		response.ToResponse(code.ErrorInvalidParams.WithDetails("invalid note id"))
		return
	}

	uid := pkgapp.GetUID(c)
	if uid == 0 {
		h.App.Logger().Error("NoteHandler.Get err uid=0")
		response.ToResponse(code.ErrorInvalidUserAuthToken)
		return
	}

	ctx := c.Request.Context()

	noteDTO, err := h.App.NoteService.Get(ctx, uid, noteID)
	if err != nil {
		h.logError(ctx, "NoteHandler.Get", err)
		apperrors.ErrorResponse(c, err)
		return
	}

	response.ToResponse(code.Success.WithData(noteDTO))
}

// Update 更新笔记
// @Summary 更新笔记
// @Description 更新笔记字段，请求中未出现的字段保持原值；标签为整体替换
// @Tags 笔记
// @Security UserAuthToken
// @Param token header string true "认证 Token"
// @Accept json
// @Produce json
// @Param id path int true "笔记 ID"
// @Param params body dto.NoteUpdateRequest true "更新参数"
// @Success 200 {object} pkgapp.Res{data=dto.NoteDTO} "成功"
// @Router /api/notes/{id} [put]
func (h *NoteHandler) Update(c *gin.Context) {
	response := pkgapp.NewResponse(c)
	params := &dto.NoteUpdateRequest{}

	noteID, ok := pathID(c, "id")
	if !ok {
		response.ToResponse(code.ErrorInvalidParams.WithDetails("invalid note id"))
		return
	}

	// 参数绑定和验证
	valid, errs := pkgapp.BindAndValid(c, params)
	if !valid {
		h.App.Logger().Error("NoteHandler.Update.BindAndValid errs", zap.Error(errs))
		response.ToResponse(code.ErrorInvalidParams.WithDetails(errs.ErrorsToString()).WithData(errs.MapsToString()))
		return
	}

	uid := pkgapp.GetUID(c)
	if uid == 0 {
		h.App.Logger().Error("NoteHandler.Update err uid=0")
		response.ToResponse(code.ErrorInvalidUserAuthToken)
		return
	}

	ctx := c.Request.Context()

	noteDTO, err := h.App.NoteService.Update(ctx, uid, noteID, params)
	if err != nil {
		h.logError(ctx, "NoteHandler.Update", err)
		apperrors.ErrorResponse(c, err)
		return
	}

	response.ToResponse(code.Success.WithData(noteDTO))
}

// Delete 删除笔记
// @Summary 删除笔记
// @Description 删除笔记，仅所有者可操作，级联删除全部共享授权
// @Tags 笔记
// @Security UserAuthToken
// @Param token header string true "认证 Token"
// @Produce json
// @Param id path int true "笔记 ID"
// @Success 200 {object} pkgapp.Res "成功"
// @Router /api/notes/{id} [delete]
func (h *NoteHandler) Delete(c *gin.Context) {
	response := pkgapp.NewResponse(c)

	noteID, ok := pathID(c, "id")
	if !ok {
		response.ToResponse(code.ErrorInvalidParams.WithDetails("invalid note id"))
		return
	}

	uid := pkgapp.GetUID(c)
	if uid == 0 {
		h.App.Logger().Error("NoteHandler.Delete err uid=0")
		response.ToResponse(code.ErrorInvalidUserAuthToken)
		return
	}

	ctx := c.Request.Context()

	if err := h.App.NoteService.Delete(ctx, uid, noteID); err != nil {
		h.logError(ctx, "NoteHandler.Delete", err)
		apperrors.ErrorResponse(c, err)
		return
	}

	response.ToResponse(code.Success)
}

// List 获取笔记列表
// @Summary 获取笔记列表
// @Description 按过滤条件获取当前用户的笔记列表，置顶笔记始终排在最前
// @Tags 笔记
// @Security UserAuthToken
// @Param token header string true "认证 Token"
// @Produce json
// @Param params query dto.NoteListRequest true "查询参数"
// @Success 200 {object} pkgapp.Res{data=[]dto.NoteDTO} "成功"
// @Router /api/notes [get]
func (h *NoteHandler) List(c *gin.Context) {
	response := pkgapp.NewResponse(c)
	params := &dto.NoteListRequest{}

	// 参数绑定和验证
	valid, errs := pkgapp.BindAndValid(c, params)
	if !valid {
		h.App.Logger().Error("NoteHandler.List.BindAndValid errs", zap.Error(errs))
		response.ToResponse(code.ErrorInvalidParams.WithDetails(errs.ErrorsToString()).WithData(errs.MapsToString()))
		return
	}

	uid := pkgapp.GetUID(c)
	if uid == 0 {
		h.App.Logger().Error("NoteHandler.List err uid=0")
		response.ToResponse(code.ErrorInvalidUserAuthToken)
		return
	}

	ctx := c.Request.Context()

	notes, count, err := h.App.NoteService.List(ctx, uid, params)
	if err != nil {
		h.logError(ctx, "NoteHandler.List", err)
		apperrors.ErrorResponse(c, err)
		return
	}

	// 回显生效的 limit/offset，缺省 limit 与服务层保持一致
	pager := pkgapp.NewPagerWithConfig(c, pkgapp.PaginationConfig{
		DefaultLimit: h.App.Config().Note.DefaultListLimit,
	}, int(count))
	response.ToResponseList(code.Success, notes, pager)
}

// Pin 置顶笔记
// @Summary 置顶笔记
// @Tags 笔记
// @Security UserAuthToken
// @Param token header string true "认证 Token"
// @Param id path int true "笔记 ID"
// @Success 200 {object} pkgapp.Res{data=dto.NoteDTO} "成功"
// @Router /api/notes/{id}/pin [put]
func (h *NoteHandler) Pin(c *gin.Context) {
	h.toggle(c, "NoteHandler.Pin", func(ctx context.Context, uid, noteID int64) (*dto.NoteDTO, error) {
		return h.App.NoteService.SetPinned(ctx, uid, noteID, true)
	})
}

// Unpin 取消置顶
// @Summary 取消置顶笔记
// @Tags 笔记
// @Security UserAuthToken
// @Param token header string true "认证 Token"
// @Param id path int true "笔记 ID"
// @Success 200 {object} pkgapp.Res{data=dto.NoteDTO} "成功"
// @Router /api/notes/{id}/unpin [put]
func (h *NoteHandler) Unpin(c *gin.Context) {
	h.toggle(c, "NoteHandler.Unpin", func(ctx context.Context, uid, noteID int64) (*dto.NoteDTO, error) {
		return h.App.NoteService.SetPinned(ctx, uid, noteID, false)
	})
}

// Favorite 收藏笔记
// @Summary 收藏笔记
// @Tags 笔记
// @Security UserAuthToken
// @Param token header string true "认证 Token"
// @Param id path int true "笔记 ID"
// @Success 200 {object} pkgapp.Res{data=dto.NoteDTO} "成功"
// @Router /api/notes/{id}/favorite [put]
func (h *NoteHandler) Favorite(c *gin.Context) {
	h.toggle(c, "NoteHandler.Favorite", func(ctx context.Context, uid, noteID int64) (*dto.NoteDTO, error) {
		return h.App.NoteService.SetFavorite(ctx, uid, noteID, true)
	})
}

// Unfavorite 取消收藏
// @Summary 取消收藏笔记
// @Tags 笔记
// @Security UserAuthToken
// @Param token header string true "认证 Token"
// @Param id path int true "笔记 ID"
// @Success 200 {object} pkgapp.Res{data=dto.NoteDTO} "成功"
// @Router /api/notes/{id}/unfavorite [put]
func (h *NoteHandler) Unfavorite(c *gin.Context) {
	h.toggle(c, "NoteHandler.Unfavorite", func(ctx context.Context, uid, noteID int64) (*dto.NoteDTO, error) {
		return h.App.NoteService.SetFavorite(ctx, uid, noteID, false)
	})
}

// Archive 归档笔记
// @Summary 归档笔记
// @Tags 笔记
// @Security UserAuthToken
// @Param token header string true "认证 Token"
// @Param id path int true "笔记 ID"
// @Success 200 {object} pkgapp.Res{data=dto.NoteDTO} "成功"
// @Router /api/notes/{id}/archive [put]
func (h *NoteHandler) Archive(c *gin.Context) {
	h.toggle(c, "NoteHandler.Archive", func(ctx context.Context, uid, noteID int64) (*dto.NoteDTO, error) {
		return h.App.NoteService.SetArchived(ctx, uid, noteID, true)
	})
}

// Unarchive 取消归档
// @Summary 取消归档笔记
// @Tags 笔记
// @Security UserAuthToken
// @Param token header string true "认证 Token"
// @Param id path int true "笔记 ID"
// @Success 200 {object} pkgapp.Res{data=dto.NoteDTO} "成功"
// @Router /api/notes/{id}/unarchive [put]
func (h *NoteHandler) Unarchive(c *gin.Context) {
	h.toggle(c, "NoteHandler.Unarchive", func(ctx context.Context, uid, noteID int64) (*dto.NoteDTO, error) {
		return h.App.NoteService.SetArchived(ctx, uid, noteID, false)
	})
}

// toggle 状态切换类接口的公共处理流程
func (h *NoteHandler) toggle(c *gin.Context, method string, fn func(ctx context.Context, uid, noteID int64) (*dto.NoteDTO, error)) {
	response := pkgapp.NewResponse(c)

	noteID, ok := pathID(c, "id")
	if !ok {
		response.ToResponse(code.ErrorInvalidParams.WithDetails("invalid note id"))
		return
	}

	uid := pkgapp.GetUID(c)
	if uid == 0 {
		h.App.Logger().Error(method + " err uid=0")
		response.ToResponse(code.ErrorInvalidUserAuthToken)
		return
	}

	ctx := c.Request.Context()

	noteDTO, err := fn(ctx, uid, noteID)
	if err != nil {
		h.logError(ctx, method, err)
		apperrors.ErrorResponse(c, err)
		return
	}

	response.ToResponse(code.Success.WithData(noteDTO))
}

// logError 记录错误日志，包含 Trace ID
func (h *NoteHandler) logError(ctx context.Context, method string, err error) {
	traceID := middleware.GetTraceID(ctx)
	h.App.Logger().Error(method,
		zap.Error(err),
		zap.String("traceId", traceID),
	)
}
