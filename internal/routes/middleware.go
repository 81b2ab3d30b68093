package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"daily-planner/internal/handlers"
)

// RequestIDHeader はリクエストIDを受け渡すヘッダーです。
const RequestIDHeader = "X-Request-ID"

// RequestIDMiddleware はリクエストIDをコンテキストとレスポンスヘッダーに設定するミドルウェアです。
// クライアントが送ったIDがあればそれを使い、なければ生成します。
func RequestIDMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(RequestIDHeader)
		if id == "" || len(id) > 64 {
			id = uuid.NewString()
		}

		c.Set(handlers.RequestIDKey, id)
		c.Header(RequestIDHeader, id)
		c.Next()
	}
}
