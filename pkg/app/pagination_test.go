package app

import (
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
)

func newListContext(target string) *gin.Context {
	gin.SetMode(gin.TestMode)
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	c.Request = httptest.NewRequest("GET", target, nil)
	return c
}

func TestNewPager_EchoesLimitOffset(t *testing.T) {
	c := newListContext("/api/notes?limit=50&offset=100")

	pager := NewPager(c, 7)
	if pager.Limit != 50 {
		t.Fatalf("Limit = %d, want 50", pager.Limit)
	}
	if pager.Offset != 100 {
		t.Fatalf("Offset = %d, want 100", pager.Offset)
	}
	if pager.TotalRows != 7 {
		t.Fatalf("TotalRows = %d, want 7", pager.TotalRows)
	}
}

func TestNewPager_Defaults(t *testing.T) {
	c := newListContext("/api/notes")

	pager := NewPagerWithConfig(c, PaginationConfig{DefaultLimit: 25}, 0)
	if pager.Limit != 25 {
		t.Fatalf("Limit = %d, want 25", pager.Limit)
	}
	if pager.Offset != 0 {
		t.Fatalf("Offset = %d, want 0", pager.Offset)
	}

	// 配置为零值时回退到内置默认
	pager = NewPagerWithConfig(c, PaginationConfig{}, 0)
	if pager.Limit != DefaultPaginationConfig.DefaultLimit {
		t.Fatalf("Limit = %d, want %d", pager.Limit, DefaultPaginationConfig.DefaultLimit)
	}
}
