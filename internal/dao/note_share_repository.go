package dao

import (
	"context"
	"time"

	"github.com/haierkeys/note-keeper-service/internal/domain"
	"github.com/haierkeys/note-keeper-service/internal/model"
	"github.com/haierkeys/note-keeper-service/pkg/timex"
)

// noteShareRepository 实现 domain.NoteShareRepository 接口
type noteShareRepository struct {
	dao *Dao
}

// NewNoteShareRepository 创建 NoteShareRepository 实例
func NewNoteShareRepository(dao *Dao) domain.NoteShareRepository {
	return &noteShareRepository{dao: dao}
}

// toDomain 将数据库模型转换为领域模型
func (r *noteShareRepository) toDomain(m *model.NoteShare) *domain.NoteShare {
	if m == nil {
		return nil
	}
	return &domain.NoteShare{
		ID:         m.ID,
		NoteID:     m.NoteID,
		OwnerUID:   m.OwnerUID,
		TargetUID:  m.TargetUID,
		Permission: domain.SharePermission(m.Permission),
		CanEdit:    m.CanEdit,
		CreatedAt:  time.Time(m.CreatedAt),
	}
}

// GetByID 根据ID获取共享授权
func (r *noteShareRepository) GetByID(ctx context.Context, id int64) (*domain.NoteShare, error) {
	var m model.NoteShare
	err := r.dao.db.WithContext(ctx).Where("id = ?", id).First(&m).Error
	if err != nil {
		return nil, err
	}
	return r.toDomain(&m), nil
}

// Create 创建共享授权
func (r *noteShareRepository) Create(ctx context.Context, share *domain.NoteShare) (*domain.NoteShare, error) {
	m := &model.NoteShare{
		NoteID:     share.NoteID,
		OwnerUID:   share.OwnerUID,
		TargetUID:  share.TargetUID,
		Permission: string(share.Permission),
		CanEdit:    share.CanEdit,
		CreatedAt:  timex.Time(time.Now()),
	}
	if err := r.dao.db.WithContext(ctx).Create(m).Error; err != nil {
		return nil, err
	}
	return r.toDomain(m), nil
}

// Delete 删除共享授权
func (r *noteShareRepository) Delete(ctx context.Context, id int64) error {
	return r.dao.db.WithContext(ctx).Where("id = ?", id).Delete(&model.NoteShare{}).Error
}

// ListByNote 获取某笔记的全部授权
func (r *noteShareRepository) ListByNote(ctx context.Context, noteID int64) ([]*domain.NoteShare, error) {
	var ms []*model.NoteShare
	err := r.dao.db.WithContext(ctx).
		Where("note_id = ?", noteID).
		Order("id ASC").
		Find(&ms).Error
	if err != nil {
		return nil, err
	}
	return r.toDomainList(ms), nil
}

// ListByTarget 获取授权给某用户的全部记录
func (r *noteShareRepository) ListByTarget(ctx context.Context, targetUID int64) ([]*domain.NoteShare, error) {
	var ms []*model.NoteShare
	err := r.dao.db.WithContext(ctx).
		Where("target_uid = ?", targetUID).
		Order("id ASC").
		Find(&ms).Error
	if err != nil {
		return nil, err
	}
	return r.toDomainList(ms), nil
}

func (r *noteShareRepository) toDomainList(ms []*model.NoteShare) []*domain.NoteShare {
	shares := make([]*domain.NoteShare, 0, len(ms))
	for _, m := range ms {
		shares = append(shares, r.toDomain(m))
	}
	return shares
}
