// Package service 实现业务逻辑层
package service

import (
	"context"
	"errors"

	"github.com/haierkeys/note-keeper-service/internal/domain"
	"github.com/haierkeys/note-keeper-service/internal/dto"
	"github.com/haierkeys/note-keeper-service/pkg/code"
	"github.com/haierkeys/note-keeper-service/pkg/logger"
	"github.com/haierkeys/note-keeper-service/pkg/timex"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// ShareService 定义共享业务服务接口
type ShareService interface {
	// Share 将笔记共享给另一个用户（仅所有者）
	Share(ctx context.Context, uid int64, noteID int64, params *dto.ShareCreateRequest) (*dto.ShareDTO, error)

	// Unshare 撤销共享授权（仅笔记所有者）
	Unshare(ctx context.Context, uid int64, shareID int64) error

	// ListGrants 列出某笔记的全部授权（仅所有者）
	ListGrants(ctx context.Context, uid int64, noteID int64) ([]*dto.ShareDTO, error)

	// ListSharedWithMe 列出共享给当前用户的笔记
	ListSharedWithMe(ctx context.Context, uid int64) ([]*dto.SharedNoteDTO, error)
}

// shareService 实现 ShareService 接口
type shareService struct {
	noteRepo  domain.NoteRepository
	shareRepo domain.NoteShareRepository
	userRepo  domain.UserRepository
	logger    *zap.Logger
}

// NewShareService 创建 ShareService 实例
func NewShareService(noteRepo domain.NoteRepository, shareRepo domain.NoteShareRepository, userRepo domain.UserRepository, logger *zap.Logger) ShareService {
	return &shareService{
		noteRepo:  noteRepo,
		shareRepo: shareRepo,
		userRepo:  userRepo,
		logger:    logger,
	}
}

// domainToDTO 将领域模型转换为 DTO
func (s *shareService) domainToDTO(share *domain.NoteShare) *dto.ShareDTO {
	if share == nil {
		return nil
	}
	return &dto.ShareDTO{
		ID:         share.ID,
		NoteID:     share.NoteID,
		OwnerUID:   share.OwnerUID,
		TargetUID:  share.TargetUID,
		Permission: string(share.Permission),
		CanEdit:    share.CanEdit,
		CreatedAt:  timex.Time(share.CreatedAt),
	}
}

// Share 将笔记共享给另一个用户
// 校验顺序固定：笔记存在 -> 所有者 -> 接收者存在
func (s *shareService) Share(ctx context.Context, uid int64, noteID int64, params *dto.ShareCreateRequest) (*dto.ShareDTO, error) {
	note, err := s.noteRepo.GetByID(ctx, noteID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, code.ErrorNoteNotFound
		}
		return nil, code.ErrorDBQuery
	}

	if !domain.CanShare(uid, note) {
		return nil, code.ErrorShareNotOwner
	}

	target, err := s.userRepo.GetByUsername(ctx, params.TargetUsername)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, code.ErrorShareRecipientNotFound
		}
		return nil, code.ErrorDBQuery
	}

	// 不去重：同一 (note, target) 的重复授权是允许的
	share := &domain.NoteShare{
		NoteID:     noteID,
		OwnerUID:   uid,
		TargetUID:  target.UID,
		Permission: domain.SharePermissionRead,
		CanEdit:    params.CanEdit,
	}

	created, err := s.shareRepo.Create(ctx, share)
	if err != nil {
		return nil, code.ErrorDBQuery.WithDetails(err.Error())
	}

	if s.logger != nil {
		s.logger.Info("note shared",
			zap.Int64(logger.FieldUID, uid),
			zap.Int64(logger.FieldNoteID, noteID),
			zap.Int64("targetUid", target.UID),
			zap.Bool("canEdit", params.CanEdit),
		)
	}
	return s.domainToDTO(created), nil
}

// Unshare 撤销共享授权
func (s *shareService) Unshare(ctx context.Context, uid int64, shareID int64) error {
	share, err := s.shareRepo.GetByID(ctx, shareID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return code.ErrorShareNotFound
		}
		return code.ErrorDBQuery
	}

	if share.OwnerUID != uid {
		return code.ErrorShareNotOwner
	}

	if err := s.shareRepo.Delete(ctx, shareID); err != nil {
		return code.ErrorDBQuery.WithDetails(err.Error())
	}

	if s.logger != nil {
		s.logger.Info("share revoked",
			zap.Int64(logger.FieldUID, uid),
			zap.Int64(logger.FieldShareID, shareID),
			zap.Int64(logger.FieldNoteID, share.NoteID),
		)
	}
	return nil
}

// ListGrants 列出某笔记的全部授权
func (s *shareService) ListGrants(ctx context.Context, uid int64, noteID int64) ([]*dto.ShareDTO, error) {
	note, err := s.noteRepo.GetByID(ctx, noteID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, code.ErrorNoteNotFound
		}
		return nil, code.ErrorDBQuery
	}

	if !domain.CanShare(uid, note) {
		return nil, code.ErrorShareNotOwner
	}

	shares, err := s.shareRepo.ListByNote(ctx, noteID)
	if err != nil {
		return nil, code.ErrorDBQuery
	}

	out := make([]*dto.ShareDTO, 0, len(shares))
	for _, share := range shares {
		out = append(out, s.domainToDTO(share))
	}
	return out, nil
}

// ListSharedWithMe 列出共享给当前用户的笔记
// 同一笔记的重复授权在视图层去重，取最早的一条
func (s *shareService) ListSharedWithMe(ctx context.Context, uid int64) ([]*dto.SharedNoteDTO, error) {
	grants, err := s.shareRepo.ListByTarget(ctx, uid)
	if err != nil {
		return nil, code.ErrorDBQuery
	}

	seen := make(map[int64]struct{}, len(grants))
	out := make([]*dto.SharedNoteDTO, 0, len(grants))

	for _, grant := range grants {
		if _, ok := seen[grant.NoteID]; ok {
			continue
		}
		seen[grant.NoteID] = struct{}{}

		note, err := s.noteRepo.GetByID(ctx, grant.NoteID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				// 悬挂授权：笔记已删除但授权未清理，跳过
				continue
			}
			return nil, code.ErrorDBQuery
		}

		tags := note.Tags
		if tags == nil {
			tags = []string{}
		}
		out = append(out, &dto.SharedNoteDTO{
			Note: dto.NoteDTO{
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
			},
			Permission: string(grant.Permission),
			CanEdit:    grant.CanEdit,
		})
	}
	return out, nil
}

// 确保 shareService 实现了 ShareService 接口
var _ ShareService = (*shareService)(nil)
