//go:build e2e

package e2e

import (
	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/suite"

	"skybook/internal/pkg/config"
)

// SharedSuite gives each e2e suite its own database and a fully wired router.
type SharedSuite struct {
	suite.Suite
	Pool   *pgxpool.Pool
	Router *gin.Engine
	Config config.Config
}

func (s *SharedSuite) SetupSuite() {
	s.Pool, s.Router, s.Config = SetupE2EEnvironment(s.T())
}

func (s *SharedSuite) GetBaseDB() *pgxpool.Pool {
	return s.Pool
}
