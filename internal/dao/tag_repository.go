package dao

import (
	"context"
	"time"

	"github.com/haierkeys/note-keeper-service/internal/domain"
	"github.com/haierkeys/note-keeper-service/internal/model"
	"github.com/haierkeys/note-keeper-service/pkg/convert"
	"github.com/haierkeys/note-keeper-service/pkg/timex"

	"golang.org/x/sync/singleflight"
	"gorm.io/gorm/clause"
)

// tagRepository 实现 domain.TagRepository 接口
type tagRepository struct {
	dao   *Dao
	group singleflight.Group
}

// NewTagRepository 创建 TagRepository 实例
func NewTagRepository(dao *Dao) domain.TagRepository {
	return &tagRepository{dao: dao}
}

// toDomain 将数据库模型转换为领域模型
func (r *tagRepository) toDomain(m *model.Tag) *domain.Tag {
	if m == nil {
		return nil
	}
	return convert.StructAssign(m, &domain.Tag{}).(*domain.Tag)
}

// GetByName 根据名称获取标签
func (r *tagRepository) GetByName(ctx context.Context, name string) (*domain.Tag, error) {
	var m model.Tag
	err := r.dao.db.WithContext(ctx).Where("name = ?", name).First(&m).Error
	if err != nil {
		return nil, err
	}
	return r.toDomain(&m), nil
}

// GetOrCreate 获取或创建标签
// 同名并发请求经 singleflight 合并，数据库层再以唯一索引兜底
func (r *tagRepository) GetOrCreate(ctx context.Context, name string) (*domain.Tag, error) {
	v, err, _ := r.group.Do(name, func() (interface{}, error) {
		m := &model.Tag{Name: name, CreatedAt: timex.Time(time.Now())}
		err := r.dao.db.WithContext(ctx).Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "name"}},
			DoNothing: true,
		}).Create(m).Error
		if err != nil {
			return nil, err
		}
		if m.ID == 0 {
			if err := r.dao.db.WithContext(ctx).Where("name = ?", name).First(m).Error; err != nil {
				return nil, err
			}
		}
		return r.toDomain(m), nil
	})
	if err != nil {
		return nil, err
	}
	return v.(*domain.Tag), nil
}

// List 获取全部标签
func (r *tagRepository) List(ctx context.Context) ([]*domain.Tag, error) {
	var ms []*model.Tag
	if err := r.dao.db.WithContext(ctx).Order("name ASC").Find(&ms).Error; err != nil {
		return nil, err
	}
	tags := make([]*domain.Tag, 0, len(ms))
	for _, m := range ms {
		tags = append(tags, r.toDomain(m))
	}
	return tags, nil
}
