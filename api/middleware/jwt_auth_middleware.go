package middleware

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v4"

	"github.com/stylesong/stylesong/api/controller"
)

// JwtAuthMiddleware 校验BaaS签发的Bearer令牌并提取用户标识
// 令牌签发不在本服务范围内，这里只做验签和取claim
func JwtAuthMiddleware(secret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		parts := strings.Fields(authHeader)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			controller.ErrorResponse(c, http.StatusUnauthorized, "NOT_AUTHORIZED", "缺少Bearer令牌")
			c.Abort()
			return
		}

		userID, err := extractUserID(parts[1], secret)
		if err != nil {
			controller.ErrorResponse(c, http.StatusUnauthorized, "NOT_AUTHORIZED", err.Error())
			c.Abort()
			return
		}

		c.Set("x-user-id", userID)
		c.Next()
	}
}

func extractUserID(tokenString, secret string) (string, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("非预期的签名算法: %v", token.Header["alg"])
		}
		return []byte(secret), nil
	})
	if err != nil {
		return "", fmt.Errorf("令牌无效: %w", err)
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok || !token.Valid {
		return "", fmt.Errorf("令牌无效")
	}

	for _, key := range []string{"id", "user_id", "sub"} {
		if v, ok := claims[key].(string); ok && v != "" {
			return v, nil
		}
	}
	return "", fmt.Errorf("令牌缺少用户标识claim")
}
