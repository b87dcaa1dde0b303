package middleware

import (
	"errors"
	"net/http"

	"gitee.com/flycash/school-notification/internal/pkg/jwt"
	"github.com/gin-gonic/gin"
)

var ErrSchoolIDNotFound = errors.New("请求中没有学校ID")

// AuthBuilder 校验 Authorization 头中的 JWT，把学校 ID 放到上下文里
type AuthBuilder struct {
	auth *jwt.JwtAuth
}

func NewAuthBuilder(auth *jwt.JwtAuth) *AuthBuilder {
	return &AuthBuilder{auth: auth}
}

func (b *AuthBuilder) Build() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		token := ctx.GetHeader("Authorization")
		if token == "" {
			ctx.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"code": 401, "msg": "缺少令牌"})
			return
		}
		claims, err := b.auth.Decode(token)
		if err != nil {
			ctx.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"code": 401, "msg": err.Error()})
			return
		}
		schoolID, err := jwt.SchoolID(claims)
		if err != nil || schoolID <= 0 {
			ctx.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"code": 401, "msg": jwt.ErrSchoolIDNotFound.Error()})
			return
		}
		ctx.Set(jwt.SchoolIDName, schoolID)
		ctx.Next()
	}
}

// SchoolID 取出 AuthBuilder 放进去的学校 ID
func SchoolID(ctx *gin.Context) (int64, error) {
	val, ok := ctx.Get(jwt.SchoolIDName)
	if !ok {
		return 0, ErrSchoolIDNotFound
	}
	v, ok := val.(int64)
	if !ok {
		return 0, ErrSchoolIDNotFound
	}
	return v, nil
}
