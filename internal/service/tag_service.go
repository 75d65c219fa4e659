// Package service 实现业务逻辑层
package service

import (
	"context"

	"github.com/haierkeys/note-keeper-service/internal/domain"
	"github.com/haierkeys/note-keeper-service/internal/dto"
	"github.com/haierkeys/note-keeper-service/pkg/code"
	"github.com/haierkeys/note-keeper-service/pkg/timex"

	"go.uber.org/zap"
)

// TagService 定义标签业务服务接口
type TagService interface {
	// List 获取全部标签
	List(ctx context.Context) ([]*dto.TagDTO, error)

	// GetOrCreate 获取或创建标签
	GetOrCreate(ctx context.Context, name string) (*dto.TagDTO, error)
}

// tagService 实现 TagService 接口
type tagService struct {
	tagRepo domain.TagRepository
	logger  *zap.Logger
}

// NewTagService 创建 TagService 实例
func NewTagService(tagRepo domain.TagRepository, logger *zap.Logger) TagService {
	return &tagService{tagRepo: tagRepo, logger: logger}
}

// domainToDTO 将领域模型转换为 DTO
func (s *tagService) domainToDTO(tag *domain.Tag) *dto.TagDTO {
	if tag == nil {
		return nil
	}
	return &dto.TagDTO{
		ID:        tag.ID,
		Name:      tag.Name,
		CreatedAt: timex.Time(tag.CreatedAt),
	}
}

// List 获取全部标签
func (s *tagService) List(ctx context.Context) ([]*dto.TagDTO, error) {
	tags, err := s.tagRepo.List(ctx)
	if err != nil {
		return nil, code.ErrorDBQuery
	}
	out := make([]*dto.TagDTO, 0, len(tags))
	for _, tag := range tags {
		out = append(out, s.domainToDTO(tag))
	}
	return out, nil
}

// GetOrCreate 获取或创建标签
// 先按名称查找，未命中再走并发安全的创建路径
func (s *tagService) GetOrCreate(ctx context.Context, name string) (*dto.TagDTO, error) {
	if name == "" {
		return nil, code.ErrorInvalidParams
	}
	if tag, err := s.tagRepo.GetByName(ctx, name); err == nil {
		return s.domainToDTO(tag), nil
	}
	tag, err := s.tagRepo.GetOrCreate(ctx, name)
	if err != nil {
		return nil, code.ErrorDBQuery.WithDetails(err.Error())
	}
	return s.domainToDTO(tag), nil
}

// 确保 tagService 实现了 TagService 接口
var _ TagService = (*tagService)(nil)
