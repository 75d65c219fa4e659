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

// TagHandler 标签 API 路由处理器
type TagHandler struct {
	*Handler
}

// NewTagHandler 创建 TagHandler 实例
func NewTagHandler(a *app.App) *TagHandler {
	return &TagHandler{
		Handler: NewHandler(a),
	}
}

// List 获取全部标签
// @Summary 获取标签列表
// @Description 获取系统中全部标签，按名称排序
// @Tags 标签
// @Security UserAuthToken
// @Param token header string true "认证 Token"
// @Produce json
// @Success 200 {object} pkgapp.Res{data=[]dto.TagDTO} "成功"
// @Router /api/tags [get]
func (h *TagHandler) List(c *gin.Context) {
	response := pkgapp.NewResponse(c)

	uid := pkgapp.GetUID(c)
	if uid == 0 {
		h.App.Logger().Error("TagHandler.List err uid=0")
		response.ToResponse(code.ErrorInvalidUserAuthToken)
		return
	}

	ctx := c.Request.Context()

	tags, err := h.App.TagService.List(ctx)
	if err != nil {
		h.logError(ctx, "TagHandler.List", err)
		apperrors.ErrorResponse(c, err)
		return
	}

	response.ToResponse(code.Success.WithData(tags))
}

// Create 创建标签
// @Summary 创建标签
// @Description 创建标签，同名标签已存在时返回存量记录
// @Tags 标签
// @Security UserAuthToken
// @Param token header string true "认证 Token"
// @Accept json
// @Produce json
// @Param params body dto.TagCreateRequest true "标签参数"
// @Success 200 {object} pkgapp.Res{data=dto.TagDTO} "成功"
// @Router /api/tags [post]
func (h *TagHandler) Create(c *gin.Context) {
	response := pkgapp.NewResponse(c)
	params := &dto.TagCreateRequest{}

	// 参数绑定和验证
	valid, errs := pkgapp.BindAndValid(c, params)
	if !valid {
		h.App.Logger().Error("TagHandler.Create.BindAndValid errs", zap.Error(errs))
		response.ToResponse(code.ErrorInvalidParams.WithDetails(errs.ErrorsToString()).WithData(errs.MapsToString()))
		return
	}

	uid := pkgapp.GetUID(c)
	if uid == 0 {
		h.App.Logger().Error("TagHandler.Create err uid=0")
		response.ToResponse(code.ErrorInvalidUserAuthToken)
		return
	}

	ctx := c.Request.Context()

	tag, err := h.App.TagService.GetOrCreate(ctx, params.Name)
	if err != nil {
		h.logError(ctx, "TagHandler.Create", err)
		apperrors.ErrorResponse(c, err)
		return
	}

	response.ToResponse(code.Success.WithData(tag))
}

// logError 记录错误日志，包含 Trace ID
func (h *TagHandler) logError(ctx context.Context, method string, err error) {
	traceID := middleware.GetTraceID(ctx)
	h.App.Logger().Error(method,
		zap.Error(err),
		zap.String("traceId", traceID),
	)
}
