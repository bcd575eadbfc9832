package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/sothea-dev/shoppos-api/internal/domain/entity"
	"github.com/sothea-dev/shoppos-api/internal/domain/enum"
)

// GetActor rebuilds the authenticated account from the Gin context. The
// auth middleware stores the token claims there; a nil return means the
// request never passed authentication.
func GetActor(c *gin.Context) *entity.Account {
	idVal, exists := c.Get("account_id")
	if !exists {
		return nil
	}
	id, ok := idVal.(uuid.UUID)
	if !ok {
		return nil
	}

	return &entity.Account{
		ID:          id,
		Username:    c.GetString("account_username"),
		DisplayName: c.GetString("account_display_name"),
		Kind:        enum.AccountKind(c.GetString("account_kind")),
	}
}
