// Package service 实现业务逻辑层
package service

import (
	"context"
	"errors"
	"strings"

	"github.com/haierkeys/note-keeper-service/internal/domain"
	"github.com/haierkeys/note-keeper-service/internal/dto"
	"github.com/haierkeys/note-keeper-service/pkg/code"
	"github.com/haierkeys/note-keeper-service/pkg/logger"
	"github.com/haierkeys/note-keeper-service/pkg/timex"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// 未指定 limit 时的兜底值
const defaultListLimit = 20

// NoteService 定义笔记业务服务接口
type NoteService interface {
	// Create 创建笔记
	Create(ctx context.Context, uid int64, params *dto.NoteCreateRequest) (*dto.NoteDTO, error)

	// Get 获取单条笔记（含访问策略判定）
	Get(ctx context.Context, uid int64, noteID int64) (*dto.NoteDTO, error)

	// Update 更新笔记，未出现的字段保持原值
	Update(ctx context.Context, uid int64, noteID int64, params *dto.NoteUpdateRequest) (*dto.NoteDTO, error)

	// Delete 删除笔记（仅所有者），级联删除共享授权
	Delete(ctx context.Context, uid int64, noteID int64) error

	// List 按过滤条件分页获取当前用户的笔记
	List(ctx context.Context, uid int64, params *dto.NoteListRequest) ([]*dto.NoteDTO, int64, error)

	// SetPinned 置顶/取消置顶（仅所有者）
	SetPinned(ctx context.Context, uid int64, noteID int64, pinned bool) (*dto.NoteDTO, error)

	// SetFavorite 收藏/取消收藏（仅所有者）
	SetFavorite(ctx context.Context, uid int64, noteID int64, favorite bool) (*dto.NoteDTO, error)

	// SetArchived 归档/取消归档（仅所有者）
	SetArchived(ctx context.Context, uid int64, noteID int64, archived bool) (*dto.NoteDTO, error)
}

// noteService 实现 NoteService 接口
type noteService struct {
	noteRepo  domain.NoteRepository
	shareRepo domain.NoteShareRepository
	logger    *zap.Logger
	config    *ServiceConfig
}

// NewNoteService 创建 NoteService 实例
func NewNoteService(noteRepo domain.NoteRepository, shareRepo domain.NoteShareRepository, logger *zap.Logger, config *ServiceConfig) NoteService {
	return &noteService{
		noteRepo:  noteRepo,
		shareRepo: shareRepo,
		logger:    logger,
		config:    config,
	}
}

// domainToDTO 将领域模型转换为 DTO
func (s *noteService) domainToDTO(note *domain.Note) *dto.NoteDTO {
	if note == nil {
		return nil
	}
	tags := note.Tags
	if tags == nil {
		tags = []string{}
	}
	return &dto.NoteDTO{
		ID:          note.ID,
		UID:         note.UID,
		Title:       note.Title,
		Content:     note.Content,
		IsImportant: note.IsImportant,
		IsArchived:  note.IsArchived,
		IsPinned:    note.IsPinned,
		IsFavorite:  note.IsFavorite,
		Tags:        tags,
		CreatedAt:   timex.Time(note.CreatedAt),
		UpdatedAt:   timex.Time(note.UpdatedAt),
	}
}

// checkTitlePolicy 标题内容策略：不区分大小写的子串黑名单
func (s *noteService) checkTitlePolicy(title string) error {
	if s.config == nil {
		return nil
	}
	lower := strings.ToLower(title)
	for _, word := range s.config.Note.TitleDenylist {
		if word == "" {
			continue
		}
		if strings.Contains(lower, strings.ToLower(word)) {
			return code.ErrorNoteForbiddenContent
		}
	}
	return nil
}

// checkTitleUnique 标题全局唯一（跨所有用户）
func (s *noteService) checkTitleUnique(ctx context.Context, title string, excludeID int64) error {
	existing, err := s.noteRepo.GetByTitle(ctx, title)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil
		}
		return code.ErrorDBQuery
	}
	if existing != nil && existing.ID != excludeID {
		return code.ErrorNoteTitleExists
	}
	return nil
}

// getNoteWithGrants 获取笔记及其全部共享授权
func (s *noteService) getNoteWithGrants(ctx context.Context, noteID int64) (*domain.Note, []*domain.NoteShare, error) {
	note, err := s.noteRepo.GetByID(ctx, noteID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil, code.ErrorNoteNotFound
		}
		return nil, nil, code.ErrorDBQuery
	}

	grants, err := s.shareRepo.ListByNote(ctx, noteID)
	if err != nil {
		return nil, nil, code.ErrorDBQuery
	}
	return note, grants, nil
}

// Create 创建笔记
func (s *noteService) Create(ctx context.Context, uid int64, params *dto.NoteCreateRequest) (*dto.NoteDTO, error) {
	// 先查重后查禁用词，重复标题优先报冲突
	if err := s.checkTitleUnique(ctx, params.Title, 0); err != nil {
		return nil, err
	}
	if err := s.checkTitlePolicy(params.Title); err != nil {
		return nil, err
	}

	note := &domain.Note{
		UID:         uid,
		Title:       params.Title,
		Content:     params.Content,
		IsImportant: params.IsImportant,
		IsArchived:  params.IsArchived,
		IsPinned:    params.IsPinned,
		IsFavorite:  params.IsFavorite,
		Tags:        params.Tags,
	}

	created, err := s.noteRepo.Create(ctx, note)
	if err != nil {
		if s.logger != nil {
			s.logger.Error("NoteService.Create failed",
				zap.Int64(logger.FieldUID, uid),
				zap.Error(err),
			)
		}
		return nil, code.ErrorDBQuery.WithDetails(err.Error())
	}
	return s.domainToDTO(created), nil
}

// Get 获取单条笔记
// 直接按 ID 读取时，无权限映射为访问拒绝而不是静默过滤
func (s *noteService) Get(ctx context.Context, uid int64, noteID int64) (*dto.NoteDTO, error) {
	note, grants, err := s.getNoteWithGrants(ctx, noteID)
	if err != nil {
		return nil, err
	}
	if !domain.CanRead(uid, note, grants) {
		return nil, code.ErrorNoteAccessDenied
	}
	return s.domainToDTO(note), nil
}

// Update 更新笔记
// 所有者或持编辑授权者可写；指针字段语义为"有则更新"
func (s *noteService) Update(ctx context.Context, uid int64, noteID int64, params *dto.NoteUpdateRequest) (*dto.NoteDTO, error) {
	note, grants, err := s.getNoteWithGrants(ctx, noteID)
	if err != nil {
		return nil, err
	}
	if !domain.CanWrite(uid, note, grants) {
		return nil, code.ErrorNoteAccessDenied
	}

	if params.Title != nil {
		if err := s.checkTitleUnique(ctx, *params.Title, note.ID); err != nil {
			return nil, err
		}
		if err := s.checkTitlePolicy(*params.Title); err != nil {
			return nil, err
		}
		note.Title = *params.Title
	}
	if params.Content != nil {
		note.Content = *params.Content
	}
	if params.IsImportant != nil {
		note.IsImportant = *params.IsImportant
	}
	if params.Tags != nil {
		// 标签整体替换而不是合并
		note.Tags = *params.Tags
	}

	updated, err := s.noteRepo.Update(ctx, note)
	if err != nil {
		return nil, code.ErrorDBQuery.WithDetails(err.Error())
	}
	return s.domainToDTO(updated), nil
}

// Delete 删除笔记
// 仅所有者可删除；非所有者得到 NotFound，不泄露笔记是否存在
func (s *noteService) Delete(ctx context.Context, uid int64, noteID int64) error {
	note, err := s.noteRepo.GetByID(ctx, noteID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return code.ErrorNoteNotFound
		}
		return code.ErrorDBQuery
	}
	if !note.IsOwnedBy(uid) {
		return code.ErrorNoteNotFound
	}

	if err := s.noteRepo.Delete(ctx, noteID); err != nil {
		return code.ErrorDBQuery.WithDetails(err.Error())
	}

	if s.logger != nil {
		s.logger.Info("note deleted",
			zap.Int64(logger.FieldUID, uid),
			zap.Int64(logger.FieldNoteID, noteID),
		)
	}
	return nil
}

// buildFilter 将列表请求转换为查询条件，并在服务边界完成校验
func (s *noteService) buildFilter(params *dto.NoteListRequest) (*domain.NoteFilter, error) {
	sortBy := params.SortBy
	if sortBy == "" {
		sortBy = "id"
	}
	if !domain.IsValidNoteSortField(sortBy) {
		return nil, code.ErrorInvalidSortField
	}

	sortOrder := params.SortOrder
	if sortOrder == "" {
		sortOrder = domain.SortOrderAsc
	}
	if !domain.IsValidSortOrder(sortOrder) {
		return nil, code.ErrorInvalidSortField
	}

	limit := params.Limit
	if limit == 0 {
		limit = defaultListLimit
		if s.config != nil && s.config.Note.DefaultListLimit > 0 {
			limit = s.config.Note.DefaultListLimit
		}
	}

	// pinned / favorites 是快捷 scope，等价于对应的布尔过滤
	scope := domain.NoteScopeMine
	favorite := params.Favorite
	pinned := params.Pinned
	switch params.Scope {
	case "", "mine":
	case "shared":
		scope = domain.NoteScopeShared
	case "pinned":
		t := true
		pinned = &t
	case "favorites":
		t := true
		favorite = &t
	default:
		return nil, code.ErrorInvalidParams.WithDetails("invalid scope: " + params.Scope)
	}

	filter := &domain.NoteFilter{
		Scope:           scope,
		Keyword:         params.Keyword,
		Tag:             params.Tag,
		Favorite:        favorite,
		Pinned:          pinned,
		IncludeArchived: params.IncludeArchived,
		SortBy:          sortBy,
		SortOrder:       sortOrder,
		Limit:           limit,
		Offset:          params.Offset,
	}

	// 超界分页是参数错误，不做静默收敛
	if !filter.IsValidPagination() {
		return nil, code.ErrorInvalidPagination
	}
	return filter, nil
}

// List 按过滤条件分页获取当前用户的笔记
func (s *noteService) List(ctx context.Context, uid int64, params *dto.NoteListRequest) ([]*dto.NoteDTO, int64, error) {
	filter, err := s.buildFilter(params)
	if err != nil {
		return nil, 0, err
	}

	notes, err := s.noteRepo.List(ctx, uid, filter)
	if err != nil {
		return nil, 0, code.ErrorDBQuery.WithDetails(err.Error())
	}
	count, err := s.noteRepo.ListCount(ctx, uid, filter)
	if err != nil {
		return nil, 0, code.ErrorDBQuery.WithDetails(err.Error())
	}

	out := make([]*dto.NoteDTO, 0, len(notes))
	for _, note := range notes {
		out = append(out, s.domainToDTO(note))
	}
	return out, count, nil
}

// toggleFlag 状态位切换的公共路径：仅所有者可操作
func (s *noteService) toggleFlag(ctx context.Context, uid int64, noteID int64, apply func(*domain.Note)) (*dto.NoteDTO, error) {
	note, err := s.noteRepo.GetByID(ctx, noteID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, code.ErrorNoteNotFound
		}
		return nil, code.ErrorDBQuery
	}
	if !domain.CanToggle(uid, note) {
		return nil, code.ErrorNoteNotOwner
	}

	apply(note)
	if err := s.noteRepo.UpdateFlags(ctx, note); err != nil {
		return nil, code.ErrorDBQuery.WithDetails(err.Error())
	}

	updated, err := s.noteRepo.GetByID(ctx, noteID)
	if err != nil {
		return nil, code.ErrorDBQuery
	}
	return s.domainToDTO(updated), nil
}

// SetPinned 置顶/取消置顶
func (s *noteService) SetPinned(ctx context.Context, uid int64, noteID int64, pinned bool) (*dto.NoteDTO, error) {
	return s.toggleFlag(ctx, uid, noteID, func(n *domain.Note) { n.IsPinned = pinned })
}

// SetFavorite 收藏/取消收藏
func (s *noteService) SetFavorite(ctx context.Context, uid int64, noteID int64, favorite bool) (*dto.NoteDTO, error) {
	return s.toggleFlag(ctx, uid, noteID, func(n *domain.Note) { n.IsFavorite = favorite })
}

// SetArchived 归档/取消归档
func (s *noteService) SetArchived(ctx context.Context, uid int64, noteID int64, archived bool) (*dto.NoteDTO, error) {
	return s.toggleFlag(ctx, uid, noteID, func(n *domain.Note) { n.IsArchived = archived })
}

// 确保 noteService 实现了 NoteService 接口
var _ NoteService = (*noteService)(nil)
