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

// ShareHandler 共享 API 路由处理器
// 使用 App Container 注入依赖，支持统一错误处理
type ShareHandler struct {
	*Handler
}

// NewShareHandler 创建 ShareHandler 实例
func NewShareHandler(a *app.App) *ShareHandler {
	return &ShareHandler{
		Handler: NewHandler(a),
	}
}

// Share 共享笔记给其他用户
// @Summary 共享笔记
// @Description 将笔记共享给目标用户，仅所有者可操作；重复授权不去重
// @Tags 共享
// @Security UserAuthToken
// @Param token header string true "认证 Token"
// @Accept json
// @Produce json
// @Param id path int true "笔记 ID"
// @Param params body dto.ShareCreateRequest true "共享参数"
// @Success 200 {object} pkgapp.Res{data=dto.ShareDTO} "成功"
// @Router /api/notes/{id}/share [post]
func (h *ShareHandler) Share(c *gin.Context) {
	response := pkgapp.NewResponse(c)
	params := &dto.ShareCreateRequest{}

	noteID, ok := pathID(c, "id")
	if !ok {
		response.ToResponse(code.ErrorInvalidParams.WithDetails("invalid note id"))
		return
	}

	// 参数绑定和验证
	valid, errs := pkgapp.BindAndValid(c, params)
	if !valid {
		h.App.Logger().Error("ShareHandler.Share.BindAndValid errs", zap.Error(errs))
		response.ToResponse(code.ErrorInvalidParams.WithDetails(errs.ErrorsToString()).WithData(errs.MapsToString()))
		return
	}

	uid := pkgapp.GetUID(c)
	if uid == 0 {
		h.App.Logger().Error("ShareHandler.Share err uid=0")
		response.ToResponse(code.ErrorInvalidUserAuthToken)
		return
	}

	ctx := c.Request.Context()

	shareDTO, err := h.App.ShareService.Share(ctx, uid, noteID, params)
	if err != nil {
		h.logError(ctx, "ShareHandler.Share", err)
		apperrors.ErrorResponse(c, err)
		return
	}

	response.ToResponse(code.Success.WithData(shareDTO))
}

// ListGrants 列出笔记的全部共享授权
// @Summary 列出笔记的共享授权
// @Description 列出某笔记的全部共享授权，仅所有者可查看
// @Tags 共享
// @Security UserAuthToken
// @Param token header string true "认证 Token"
// @Produce json
// @Param id path int true "笔记 ID"
// @Success 200 {object} pkgapp.Res{data=[]dto.ShareDTO} "成功"
// @Router /api/notes/{id}/shares [get]
func (h *ShareHandler) ListGrants(c *gin.Context) {
	response := pkgapp.NewResponse(c)

	noteID, ok := pathID(c, "id")
	if !ok {
		response.ToResponse(code.ErrorInvalidParams.WithDetails("invalid note id"))
		return
	}

	uid := pkgapp.GetUID(c)
	if uid == 0 {
		h.App.Logger().Error("ShareHandler.ListGrants err uid=0")
		response.ToResponse(code.ErrorInvalidUserAuthToken)
		return
	}

	ctx := c.Request.Context()

	grants, err := h.App.ShareService.ListGrants(ctx, uid, noteID)
	if err != nil {
		h.logError(ctx, "ShareHandler.ListGrants", err)
		apperrors.ErrorResponse(c, err)
		return
	}

	response.ToResponse(code.Success.WithData(grants))
}

// Unshare 撤销共享授权
// @Summary 撤销共享授权
// @Description 撤销一条共享授权，仅笔记所有者可操作
// @Tags 共享
// @Security UserAuthToken
// @Param token header string true "认证 Token"
// @Produce json
// @Param id path int true "授权 ID"
// @Success 200 {object} pkgapp.Res "成功"
// @Router /api/shares/{id} [delete]
func (h *ShareHandler) Unshare(c *gin.Context) {
	response := pkgapp.NewResponse(c)

	shareID, ok := pathID(c, "id")
	if !ok {
		response.ToResponse(code.ErrorInvalidParams.WithDetails("invalid share id"))
		return
	}

	uid := pkgapp.GetUID(c)
	if uid == 0 {
		h.App.Logger().Error("ShareHandler.Unshare err uid=0")
		response.ToResponse(code.ErrorInvalidUserAuthToken)
		return
	}

	ctx := c.Request.Context()

	if err := h.App.ShareService.Unshare(ctx, uid, shareID); err != nil {
		h.logError(ctx, "ShareHandler.Unshare", err)
		apperrors.ErrorResponse(c, err)
		return
	}

	response.ToResponse(code.Success)
}

// SharedWithMe 列出共享给当前用户的笔记
// @Summary 列出共享给我的笔记
// @Description 列出其他用户共享给当前用户的全部笔记，重复授权在视图层去重
// @Tags 共享
// @Security UserAuthToken
// @Param token header string true "认证 Token"
// @Produce json
// @Success 200 {object} pkgapp.Res{data=[]dto.SharedNoteDTO} "成功"
// @Router /api/notes/shared [get]
func (h *ShareHandler) SharedWithMe(c *gin.Context) {
	response := pkgapp.NewResponse(c)

	uid := pkgapp.GetUID(c)
	if uid == 0 {
		h.App.Logger().Error("ShareHandler.SharedWithMe err uid=0")
		response.ToResponse(code.ErrorInvalidUserAuthToken)
		return
	}

	ctx := c.Request.Context()

	notes, err := h.App.ShareService.ListSharedWithMe(ctx, uid)
	if err != nil {
		h.logError(ctx, "ShareHandler.SharedWithMe", err)
		apperrors.ErrorResponse(c, err)
		return
	}

	response.ToResponse(code.Success.WithData(notes))
}

// logError 记录错误日志，包含 Trace ID
func (h *ShareHandler) logError(ctx context.Context, method string, err error) {
	traceID := middleware.GetTraceID(ctx)
	h.App.Logger().Error(method,
		zap.Error(err),
		zap.String("traceId", traceID),
	)
}
