package api

import (
	"net/http"

	"lending-core/internal/domain/user"
	reqdto "lending-core/internal/handler/dto/request"
	"lending-core/internal/handler/httperr"
	"lending-core/internal/handler/middleware"
	"lending-core/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// actorOf aborts with 500 when the auth middleware did not run.
func actorOf(c *gin.Context) (user.Actor, bool) {
	actor, ok := middleware.GetActor(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusInternalServerError, errMissingActor, "Internal server error", nil)
	}
	return actor, ok
}

func pathID(c *gin.Context, name string) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param(name))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid "+name, nil)
		return uuid.Nil, false
	}
	return id, true
}

func pageQuery(c *gin.Context) (*queries.Cursor, int, bool) {
	var q reqdto.PageQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid paging parameters", nil)
		return nil, 0, false
	}
	var cursor *queries.Cursor
	if q.Cursor != "" {
		cursor = &queries.Cursor{After: q.Cursor}
	}
	return cursor, q.Limit, true
}
