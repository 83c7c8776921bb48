package controller

import (
	"strings"

	"kmteams/auth"
	"kmteams/config"
	"kmteams/service"

	"github.com/gin-contrib/cache/persistence"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type RouteInfo struct {
	Method        string
	Path          string
	HandlerFunc   gin.HandlerFunc
	Authenticated bool
	RequiredRoles []string
}

func SetRoutes(r *gin.Engine, db *gorm.DB, cacheStore persistence.CacheStore, publisher service.GenerationPublisher) {
	cfg := config.Env()
	routes := make([]RouteInfo, 0)
	routes = append(routes, setupTeamGenerationController(db, cacheStore, publisher, cfg)...)
	routes = append(routes, setupTeamController(db, cacheStore, cfg)...)
	routes = append(routes, setupAgeClassController(db, cfg)...)
	for _, route := range routes {
		handlerfuncs := make([]gin.HandlerFunc, 0)
		if route.Authenticated {
			handlerfuncs = append(handlerfuncs, AuthMiddleware(route.RequiredRoles))
		}
		handlerfuncs = append(handlerfuncs, route.HandlerFunc)
		r.Handle(route.Method, "/api"+route.Path, handlerfuncs...)
	}
}

func tokenFromRequest(c *gin.Context) (string, bool) {
	if header := c.GetHeader("Authorization"); strings.HasPrefix(header, "Bearer ") {
		return strings.TrimPrefix(header, "Bearer "), true
	}
	authCookie, err := c.Cookie("auth")
	if err != nil {
		return "", false
	}
	return authCookie, true
}

func AuthMiddleware(roles []string) gin.HandlerFunc {
	return func(r *gin.Context) {
		tokenString, ok := tokenFromRequest(r)
		if !ok {
			r.JSON(401, gin.H{"error": "Unauthenticated"})
			r.Abort()
			return
		}
		token, err := auth.ParseToken(tokenString)
		if err != nil || !token.Valid {
			r.JSON(401, gin.H{"error": "Unauthenticated"})
			r.Abort()
			return
		}

		claims := &auth.Claims{}
		if err := claims.FromJWTClaims(token.Claims); err != nil {
			r.JSON(401, gin.H{"error": "Unauthenticated"})
			r.Abort()
			return
		}
		if err := claims.Valid(); err != nil {
			r.JSON(401, gin.H{"error": "Unauthenticated"})
			r.Abort()
			return
		}
		r.Set("user_id", claims.UserId)
		if len(roles) == 0 {
			r.Next()
			return
		}

		for _, requiredRole := range roles {
			if claims.HasPermission(requiredRole) {
				r.Next()
				return
			}
		}
		r.JSON(403, gin.H{"error": "Unauthorized"})
		r.Abort()
	}
}
