package dao

import (
	"context"
	"time"

	"github.com/haierkeys/note-keeper-service/internal/domain"
	"github.com/haierkeys/note-keeper-service/internal/model"
	"github.com/haierkeys/note-keeper-service/pkg/timex"
)

// userRepository 实现 domain.UserRepository 接口
type userRepository struct {
	dao *Dao
}

// NewUserRepository 创建 UserRepository 实例
func NewUserRepository(dao *Dao) domain.UserRepository {
	return &userRepository{dao: dao}
}

// toDomain 将数据库模型转换为领域模型
func (r *userRepository) toDomain(m *model.User) *domain.User {
	if m == nil {
		return nil
	}
	return &domain.User{
		UID:       m.UID,
		Username:  m.Username,
		Password:  m.Password,
		IsDeleted: m.IsDeleted == 1,
		CreatedAt: time.Time(m.CreatedAt),
		UpdatedAt: time.Time(m.UpdatedAt),
	}
}

// toModel 将领域模型转换为数据库模型
func (r *userRepository) toModel(user *domain.User) *model.User {
	if user == nil {
		return nil
	}
	isDeleted := int64(0)
	if user.IsDeleted {
		isDeleted = 1
	}
	return &model.User{
		UID:       user.UID,
		Username:  user.Username,
		Password:  user.Password,
		IsDeleted: isDeleted,
		CreatedAt: timex.Time(user.CreatedAt),
		UpdatedAt: timex.Time(user.UpdatedAt),
	}
}

// GetByUID 根据UID获取用户
func (r *userRepository) GetByUID(ctx context.Context, uid int64) (*domain.User, error) {
	var m model.User
	err := r.dao.db.WithContext(ctx).
		Where("uid = ? AND is_deleted = 0", uid).
		First(&m).Error
	if err != nil {
		return nil, err
	}
	return r.toDomain(&m), nil
}

// GetByUsername 根据用户名获取用户
func (r *userRepository) GetByUsername(ctx context.Context, username string) (*domain.User, error) {
	var m model.User
	err := r.dao.db.WithContext(ctx).
		Where("username = ? AND is_deleted = 0", username).
		First(&m).Error
	if err != nil {
		return nil, err
	}
	return r.toDomain(&m), nil
}

// Create 创建用户
func (r *userRepository) Create(ctx context.Context, user *domain.User) (*domain.User, error) {
	m := r.toModel(user)
	m.CreatedAt = timex.Time(time.Now())
	m.UpdatedAt = timex.Time(time.Now())

	if err := r.dao.db.WithContext(ctx).Create(m).Error; err != nil {
		return nil, err
	}
	return r.toDomain(m), nil
}

// UpdatePassword 更新用户密码
func (r *userRepository) UpdatePassword(ctx context.Context, password string, uid int64) error {
	return r.dao.db.WithContext(ctx).
		Model(&model.User{}).
		Where("uid = ?", uid).
		Updates(map[string]interface{}{
			"password":   password,
			"updated_at": timex.Time(time.Now()),
		}).Error
}
