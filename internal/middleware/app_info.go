package middleware

import (
	"github.com/haierkeys/note-keeper-service/global"

	"github.com/gin-gonic/gin"
)

func AppInfo() gin.HandlerFunc {

	return func(c *gin.Context) {
		c.Set("app_name", global.Name)

		c.Next()
	}
}

// AppInfoWithConfig 注入应用名称和版本信息
func AppInfoWithConfig(name string, version string) gin.HandlerFunc {

	return func(c *gin.Context) {
		c.Set("app_name", name)
		c.Set("app_version", version)

		c.Next()
	}
}
