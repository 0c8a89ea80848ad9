package interfaces

import (
	"time"
	"tractus/internal/domain/entities"
)

type ITokenIssuer interface {
	Issue(userID string, role entities.Role) (string, time.Time, error)
}
