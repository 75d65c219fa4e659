package limiter

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/juju/ratelimit"
)

// Face limiter interface
// Face 限流器接口
type Face interface {
	Key(c *gin.Context) string
	GetBucket(key string) (*ratelimit.Bucket, bool)
	AddBuckets(rules ...BucketRule) Face
}

// BucketRule token bucket rule for a route prefix
// BucketRule 路由前缀的令牌桶规则
type BucketRule struct {
	Key          string        // bucket key // 桶的标识
	FillInterval time.Duration // token fill interval // 放置 token 的时间间隔
	Capacity     int64         // bucket capacity // 桶的容量
	Quantum      int64         // tokens added per interval // 每次放置的 token 数量
}

// Limiter holds the token buckets
// Limiter 持有令牌桶集合
type Limiter struct {
	limiterBuckets map[string]*ratelimit.Bucket
}
